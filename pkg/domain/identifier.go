package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/llfsmgen/llfsmgen/pkg/vhdl"
)

const (
	MachineSuffix     = ".machine"
	ArrangementSuffix = ".arrangement"
)

// DeriveIdentifier returns the VHDL identifier named by a folder such as
// "PingMachine.machine". The suffix is compared case-insensitively and the
// remaining stem must be a valid, non-reserved basic identifier. Failures are
// InvalidFormat errors.
func DeriveIdentifier(folder, suffix string) (vhdl.VariableName, error) {
	base := filepath.Base(filepath.Clean(folder))
	if !HasSuffix(base, suffix) {
		return "", NewError(KindInvalidFormat, fmt.Sprintf("%q does not end in %s", base, suffix))
	}
	stem := strings.TrimSpace(base[:len(base)-len(suffix)])
	if stem == "" {
		return "", NewError(KindInvalidFormat, fmt.Sprintf("%q has no name before %s", base, suffix))
	}
	name, err := vhdl.ParseVariableName(stem)
	if err != nil {
		return "", WrapError(KindInvalidFormat, fmt.Sprintf("%q is not a valid identifier:", stem), err)
	}
	return name, nil
}

// HasSuffix reports whether the folder's base name ends in suffix, ignoring case.
func HasSuffix(folder, suffix string) bool {
	base := filepath.Base(filepath.Clean(folder))
	return len(base) >= len(suffix) && strings.EqualFold(base[len(base)-len(suffix):], suffix)
}
