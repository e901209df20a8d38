// Package validators holds the predicates the settings forms are checked with.
package validators

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/norskhelsenett/hecevent/pkg/entity"
)

var (
	dataElementTokenRegex = regexp.MustCompile(`^%([^%]+)%$`)
	decimalRegex          = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	prefixedIntegerRegex  = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[bB][01]+|[oO][0-7]+)$`)
)

// IsInteger reports whether f is a finite whole number.
func IsInteger(f float64) bool {
	return IsFloat(f) && f == math.Trunc(f)
}

// IsFloat reports whether f is a finite number.
func IsFloat(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsObject reports whether v is a JSON object (not an array, not null).
func IsObject(v entity.Value) bool {
	return v.Kind() == entity.ObjectKind
}

// IsDataElementToken reports whether s references a data element, e.g.
// "%pageName%". Its value is only known once the host resolves it, so it is
// accepted wherever a typed value is expected.
func IsDataElementToken(s string) bool {
	return dataElementTokenRegex.MatchString(s)
}

// ParseNumber converts numeric text the way the host platform does before
// storing a timestamp: surrounding whitespace is ignored, decimal and
// 0x/0o/0b integer literals are accepted, and only finite results count.
// Blank text is not a number.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	switch {
	case decimalRegex.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !isRangeError(err) {
			return 0, false
		}
		return f, IsFloat(f)
	case prefixedIntegerRegex.MatchString(s):
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(u), true
	}

	return 0, false
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
