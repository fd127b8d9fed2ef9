package vhdl_test

import (
	"encoding/json"
	"testing"

	"github.com/llfsmgen/llfsmgen/pkg/vhdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariableName(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
	}{
		{"x", true},
		{"machineX", true},
		{"std_logic_1164", true},
		{"A1_b2", true},
		{"", false},
		{"1abc", false},
		{"_abc", false},
		{"abc_", false},
		{"a__b", false},
		{"a-b", false},
		{"signal", false},
		{"SIGNAL", false},
		{"Entity", false},
		{"has space", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, err := vhdl.ParseVariableName(tt.raw)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.raw, name.String())
			} else {
				var syntaxErr *vhdl.SyntaxError
				assert.ErrorAs(t, err, &syntaxErr)
			}
		})
	}
}

func TestVariableName_CaseInsensitiveEquality(t *testing.T) {
	a := vhdl.MustParseVariableName("Initial")
	b := vhdl.MustParseVariableName("INITIAL")

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.String(), b.String())
}

func TestVariableName_JSONRejectsInvalid(t *testing.T) {
	var name vhdl.VariableName
	require.NoError(t, json.Unmarshal([]byte(`"clk"`), &name))
	assert.Equal(t, vhdl.VariableName("clk"), name)

	assert.Error(t, json.Unmarshal([]byte(`"process"`), &name))
}

func TestIsReserved(t *testing.T) {
	assert.True(t, vhdl.IsReserved("downto"))
	assert.True(t, vhdl.IsReserved("XNOR"))
	assert.False(t, vhdl.IsReserved("rising_edge"))
}
