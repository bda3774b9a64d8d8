package partition

// NoClass is returned by ClassOf for a state that belongs to no class.
const NoClass = -1
