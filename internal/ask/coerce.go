package ask

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Symbol is a normalized identifier such as a hash key or symbol answer.
type Symbol string

var (
	truthy = map[string]struct{}{"true": {}, "t": {}, "yes": {}, "y": {}}
	falsy  = map[string]struct{}{"false": {}, "f": {}, "no": {}, "n": {}}
)

// decimalLiteral matches base-10 integer and floating literals, nothing else.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// CoerceBoolean matches raw text against the truthy/falsy vocabulary.
func CoerceBoolean(raw string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := truthy[normalized]; ok {
		return true, nil
	}
	if _, ok := falsy[normalized]; ok {
		return false, nil
	}
	return false, coercionError(KindBoolean, raw)
}

// CoerceFloat parses a base-10 literal; integers are promoted.
func CoerceFloat(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if !decimalLiteral.MatchString(trimmed) {
		return 0, coercionError(KindFloat, raw)
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, coercionError(KindFloat, raw)
	}
	return value, nil
}

// CoerceInteger parses a base-10 literal, truncating fractions toward zero.
func CoerceInteger(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if !decimalLiteral.MatchString(trimmed) {
		return 0, coercionError(KindInteger, raw)
	}
	if value, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return value, nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, coercionError(KindInteger, raw)
	}
	truncated := math.Trunc(value)
	if truncated >= math.MaxInt64 || truncated < math.MinInt64 {
		return 0, coercionError(KindInteger, raw)
	}
	return int64(truncated), nil
}

// CoerceSymbol normalizes raw text into a lower-case identifier. Letters are
// kept, digits are dropped and every other run of characters becomes a single
// underscore, so "$f_ 0o8<0o" becomes "f_o_o".
func CoerceSymbol(raw string) (Symbol, error) {
	if name := identifier(raw, false); name != "" {
		return Symbol(name), nil
	}
	return "", coercionError(KindSymbol, raw)
}

// NormalizeKey normalizes a hash or choice key like CoerceSymbol but keeps
// digits, so "foo1" and "foo2" stay distinct.
func NormalizeKey(raw string) (Symbol, error) {
	if name := identifier(raw, true); name != "" {
		return Symbol(name), nil
	}
	return "", fmt.Errorf("%w: %q is not a valid key", ErrCoercion, raw)
}

// identifier lower-cases letters and collapses separator runs into one
// underscore, trimming both ends. Digits are kept only when keepDigits is set.
func identifier(raw string, keepDigits bool) string {
	var builder strings.Builder
	pendingSeparator := false
	for _, r := range raw {
		isLetter := r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
		isDigit := r >= '0' && r <= '9'
		switch {
		case isLetter, isDigit && keepDigits:
			if pendingSeparator && builder.Len() > 0 {
				builder.WriteByte('_')
			}
			pendingSeparator = false
			if isLetter {
				r |= 0x20
			}
			builder.WriteRune(r)
		case isDigit:
			// dropped
		default:
			pendingSeparator = true
		}
	}
	return builder.String()
}

// CoerceFile resolves raw text to an absolute path that exists on disk.
// A leading "~" expands to the current user's home directory.
func CoerceFile(raw string) (string, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return "", coercionError(KindFile, raw)
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: resolve home directory: %v", ErrCoercion, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: resolve %q: %v", ErrCoercion, raw, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("%w: %q does not exist", ErrCoercion, abs)
	}
	return abs, nil
}

// coerceScalar dispatches raw text to the coercion function for kind.
func coerceScalar(kind Kind, raw string) (any, error) {
	switch kind {
	case KindBoolean:
		return CoerceBoolean(raw)
	case KindFile:
		return CoerceFile(raw)
	case KindFloat:
		return CoerceFloat(raw)
	case KindInteger:
		return CoerceInteger(raw)
	case KindSymbol:
		return CoerceSymbol(raw)
	default:
		return nil, fmt.Errorf("kind %s is not a scalar", kind)
	}
}
