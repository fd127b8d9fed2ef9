package vhdl_test

import (
	"encoding/json"
	"testing"

	"github.com/llfsmgen/llfsmgen/pkg/vhdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePortSignals(t *testing.T) {
	signals, err := vhdl.ParsePortSignals("x: in std_logic;\ny: out std_logic;")
	require.NoError(t, err)
	require.Len(t, signals, 2)

	assert.Equal(t, vhdl.VariableName("x"), signals[0].Name)
	assert.Equal(t, vhdl.ModeIn, signals[0].Mode)
	assert.Equal(t, "std_logic", signals[0].Type.Name)
	assert.Equal(t, "x: in std_logic;", signals[0].String())
	assert.Equal(t, "y: out std_logic;", signals[1].String())
}

func TestParsePortSignals_Variants(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		rendered []string
	}{
		{"Vector", "data: inout std_logic_vector(7 downto 0);", []string{"data: inout std_logic_vector(7 downto 0);"}},
		{"Default", "en: in std_logic := '0';", []string{"en: in std_logic := '0';"}},
		{"Identifier List", "a, b: in bit;", []string{"a: in bit;", "b: in bit;"}},
		{"Integer Range", "n: buffer integer range 0 to 255;", []string{"n: buffer integer range 0 to 255;"}},
		{"Upper Case", "X: IN STD_LOGIC;", []string{"X: in std_logic;"}},
		{"Comments", "-- inputs\nx: in std_logic; -- trailing\n", []string{"-- inputs\nx: in std_logic; -- trailing"}},
		{"Empty", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals, err := vhdl.ParsePortSignals(tt.text)
			require.NoError(t, err)
			var rendered []string
			for _, s := range signals {
				rendered = append(rendered, s.String())
			}
			assert.Equal(t, tt.rendered, rendered)
		})
	}
}

func TestParsePortSignals_Errors(t *testing.T) {
	tests := []string{
		"x: std_logic;",
		"x in std_logic;",
		"x: in foo;",
		"x: in std_logic_vector;",
		"signal: in std_logic;",
		"x: in std_logic := ;",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := vhdl.ParsePortSignals(text)
			assert.Error(t, err)
		})
	}
}

func TestParseLocalSignals(t *testing.T) {
	signals, err := vhdl.ParseLocalSignals("signal machineX: std_logic;\nsignal count: unsigned(3 downto 0) := \"0000\";")
	require.NoError(t, err)
	require.Len(t, signals, 2)

	assert.Equal(t, "signal machineX: std_logic;", signals[0].String())
	assert.Equal(t, "signal count: unsigned(3 downto 0) := \"0000\";", signals[1].String())
	assert.Equal(t, 4, signals[1].Type.Width())

	_, err = vhdl.ParseLocalSignals("machineX: std_logic;")
	assert.Error(t, err)
}

func TestSignals_JSON(t *testing.T) {
	port, err := vhdl.ParsePortSignal("en: in std_logic := '1';")
	require.NoError(t, err)

	data, err := json.Marshal(port)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"en","mode":"in","type":"std_logic","defaultValue":"'1'"}`, string(data))

	var decoded vhdl.PortSignal
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, port.String(), decoded.String())

	assert.Error(t, json.Unmarshal([]byte(`{"name":"en","mode":"sideways","type":"std_logic"}`), &decoded))

	local := vhdl.LocalSignal{Name: "s", Type: vhdl.SignalType{Name: "bit"}}
	data, err = json.Marshal(local)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"s","type":"bit"}`, string(data))
}

func TestSplitDeclarations(t *testing.T) {
	text := "-- clock domain\nclk: in std_logic; -- 125 MHz\nrst: in std_logic;\n-- spare pins\n"

	decls, err := vhdl.SplitDeclarations(text)
	require.NoError(t, err)
	require.Len(t, decls, 2)

	assert.Equal(t, vhdl.Declaration{
		Text:   "clk: in std_logic;",
		Trivia: vhdl.Trivia{Leading: "-- clock domain", Trailing: "-- 125 MHz"},
	}, decls[0])
	assert.Equal(t, vhdl.Declaration{
		Text:   "rst: in std_logic;",
		Trivia: vhdl.Trivia{Trailing: "\n-- spare pins"},
	}, decls[1])
}

func TestSplitDeclarations_MissingSemicolon(t *testing.T) {
	decls, err := vhdl.SplitDeclarations("a: in bit;\nb: out bit  ")
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "b: out bit;", decls[1].Text)
}

func TestSplitDeclarations_QuotedDashes(t *testing.T) {
	decls, err := vhdl.SplitDeclarations("signal s: string := \"a--b;c\";")
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, "signal s: string := \"a--b;c\";", decls[0].Text)
	assert.Empty(t, decls[0].Trivia)
}

func TestSplitDeclarations_OnlyComments(t *testing.T) {
	_, err := vhdl.SplitDeclarations("-- nothing declared\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "comment does not belong to a declaration")
}

func TestParseLocalSignals_Comments(t *testing.T) {
	text := "-- shadow of x\nsignal machineX: std_logic; -- latched on entry"

	signals, err := vhdl.ParseLocalSignals(text)
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, text, signals[0].String())
}

func TestPortSignal_PortPutsCommentsAbove(t *testing.T) {
	signals, err := vhdl.ParsePortSignals("x: in std_logic; -- from the button")
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, "-- from the button\nx: in std_logic", signals[0].Port())
}

func TestSignals_JSONKeepsComments(t *testing.T) {
	signals, err := vhdl.ParsePortSignals("-- inputs\nx: in std_logic; -- trailing")
	require.NoError(t, err)
	require.Len(t, signals, 1)

	data, err := json.Marshal(signals[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","mode":"in","type":"std_logic","leadingComments":"-- inputs","trailingComments":"-- trailing"}`, string(data))

	var decoded vhdl.PortSignal
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, signals[0].String(), decoded.String())
}
