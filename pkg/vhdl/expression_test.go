package vhdl_test

import (
	"testing"

	"github.com/llfsmgen/llfsmgen/pkg/vhdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpression_RoundTrip(t *testing.T) {
	tests := []string{
		"true",
		"x and machineX",
		"pong = '1'",
		"(a or b) and not c",
		"rising_edge(clk)",
		"counter + 1",
		"data(7 downto 0) = x\"FF\"",
		"-count * 2",
		"a /= b",
		"abs delta >= 10",
		"(others => '0')",
		"shift_left(value, 2)",
		"a & b & \"01\"",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			expr, err := vhdl.ParseExpression(text)
			require.NoError(t, err)
			assert.Equal(t, text, expr.String())
		})
	}
}

func TestParseExpression_Canonicalises(t *testing.T) {
	expr, err := vhdl.ParseExpression("  A   AND   TRUE ")
	require.NoError(t, err)
	assert.Equal(t, "A and true", expr.String())
}

func TestParseExpression_Precedence(t *testing.T) {
	expr, err := vhdl.ParseExpression("a = '1' and b")
	require.NoError(t, err)

	and, ok := expr.(vhdl.Binary)
	require.True(t, ok)
	assert.Equal(t, "and", and.Op)

	eq, ok := and.Left.(vhdl.Binary)
	require.True(t, ok)
	assert.Equal(t, "=", eq.Op)
}

func TestParseExpression_Errors(t *testing.T) {
	tests := []string{
		"",
		"a and",
		"(a",
		"a b",
		"x = 'ab'",
		"signal",
		"\"open",
		"a ? b",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := vhdl.ParseExpression(text)
			var syntaxErr *vhdl.SyntaxError
			assert.ErrorAs(t, err, &syntaxErr)
		})
	}
}

func TestParseCondition(t *testing.T) {
	cond, err := vhdl.ParseCondition("pong = '1'")
	require.NoError(t, err)
	assert.Equal(t, "pong = '1'", cond.String())

	_, err = vhdl.ParseCondition("   ")
	assert.Error(t, err)
}
