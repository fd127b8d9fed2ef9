package vhdl

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FrequencyUnit scales a clock frequency.
type FrequencyUnit string

const (
	Hertz     FrequencyUnit = "Hz"
	Kilohertz FrequencyUnit = "kHz"
	Megahertz FrequencyUnit = "MHz"
	Gigahertz FrequencyUnit = "GHz"
	Terahertz FrequencyUnit = "THz"
)

var unitScale = map[FrequencyUnit]uint64{
	Hertz:     1,
	Kilohertz: 1_000,
	Megahertz: 1_000_000,
	Gigahertz: 1_000_000_000,
	Terahertz: 1_000_000_000_000,
}

// Clock is a named clock input of a machine or an arrangement.
type Clock struct {
	Name      VariableName  `json:"name"`
	Frequency uint64        `json:"frequency"`
	Unit      FrequencyUnit `json:"unit"`
}

// ParseClock validates a clock name and a frequency such as "50 MHz".
func ParseClock(name, frequency string) (Clock, error) {
	id, err := ParseVariableName(strings.TrimSpace(name))
	if err != nil {
		return Clock{}, err
	}
	value, unit, err := parseFrequency(frequency)
	if err != nil {
		return Clock{}, err
	}
	return Clock{Name: id, Frequency: value, Unit: unit}, nil
}

func parseFrequency(text string) (uint64, FrequencyUnit, error) {
	trimmed := strings.TrimSpace(text)
	split := strings.IndexFunc(trimmed, func(r rune) bool { return r < '0' || r > '9' })
	if split <= 0 {
		return 0, "", syntaxErrorf(text, 0, "expected a frequency such as \"50 MHz\"")
	}
	value, err := strconv.ParseUint(trimmed[:split], 10, 64)
	if err != nil {
		return 0, "", syntaxErrorf(text, 0, "invalid frequency value")
	}
	unitText := strings.TrimSpace(trimmed[split:])
	for unit := range unitScale {
		if strings.EqualFold(unitText, string(unit)) {
			if value == 0 {
				return 0, "", syntaxErrorf(text, 0, "frequency must be positive")
			}
			return value, unit, nil
		}
	}
	return 0, "", syntaxErrorf(text, split, "unknown frequency unit %q", unitText)
}

// FrequencyText renders the frequency as it appears in a model, e.g. "50 MHz".
func (c Clock) FrequencyText() string {
	return fmt.Sprintf("%d %s", c.Frequency, c.Unit)
}

// Hertz returns the frequency in Hz.
func (c Clock) Hertz() uint64 { return c.Frequency * unitScale[c.Unit] }

// PeriodPicoseconds returns the clock period rounded down to picoseconds.
func (c Clock) PeriodPicoseconds() uint64 {
	hz := c.Hertz()
	if hz == 0 {
		return 0
	}
	return 1_000_000_000_000 / hz
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	type plain Clock
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if _, ok := unitScale[raw.Unit]; !ok {
		return &SyntaxError{Reason: fmt.Sprintf("unknown frequency unit %q", raw.Unit)}
	}
	*c = Clock(raw)
	return nil
}
