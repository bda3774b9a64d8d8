package model_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/zmec/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDot_ContainsGraphName(t *testing.T) {
	b := model.NewBuilder(2)
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1})
	m, err := b.Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = model.WriteDot(&buf, m, nil, "example")
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "example"))
}
