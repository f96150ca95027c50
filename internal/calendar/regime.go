package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// Regime selects one of the holiday rule sets.
type Regime string

const (
	// RegimeBank is the Federal Reserve bank holiday schedule.
	RegimeBank Regime = "bank"

	// RegimeFederal is the OPM federal employee holiday schedule. It adds
	// Inauguration Day in years following a presidential election.
	RegimeFederal Regime = "federal"
)

var ErrUnknownRegime = errors.New("the holiday regime must be one of 'bank', 'federal'")

// ParseRegime parses a regime name. The empty string is the bank regime.
func ParseRegime(s string) (Regime, error) {
	switch Regime(strings.ToLower(strings.TrimSpace(s))) {
	case "", RegimeBank:
		return RegimeBank, nil
	case RegimeFederal:
		return RegimeFederal, nil
	}
	return "", fmt.Errorf("%w, got '%s'", ErrUnknownRegime, s)
}

// UnmarshalText implements encoding.TextUnmarshaler so that regimes can be
// bound from JSON bodies.
func (r *Regime) UnmarshalText(text []byte) error {
	parsed, err := ParseRegime(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
