package parser

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/fontconf/pkg/errors"
)

// parseInt coerces the text of an <int> element or attribute
func parseInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrParseInt, "invalid integer literal %q", raw)
	}
	return n, nil
}

// parseFloat coerces the text of a <double> element
func parseFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrParseFloat, "invalid float literal %q", raw)
	}
	return f, nil
}

// parseBool coerces the text of a <bool> element
func parseBool(raw string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrParseBool, "invalid bool literal %q", raw)
	}
	return b, nil
}

// parseYesNo coerces the ignore_missing attribute, which accepts exactly
// yes or no.
func parseYesNo(raw string) (bool, error) {
	switch raw {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, errors.Newf(errors.ErrInvalidFormat, "expected yes or no, got %q", raw)
	}
}

// parseCodepoint coerces a blank codepoint, which rule files usually
// write in hex (0x0020).
func parseCodepoint(raw string) (rune, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrParseInt, "invalid codepoint literal %q", raw)
	}
	return rune(n), nil
}
