package ask

import (
	"fmt"
	"strings"
)

// Kind identifies the shape of answer a question expects.
type Kind int

const (
	KindUnknown Kind = iota
	KindBoolean
	KindFile
	KindFloat
	KindInteger
	KindSymbol
	KindArray
	KindMultipleChoice
	KindHash
	KindRange
)

var kindNames = map[Kind]string{
	KindBoolean:        "boolean",
	KindFile:           "file",
	KindFloat:          "float",
	KindInteger:        "integer",
	KindSymbol:         "symbol",
	KindArray:          "array",
	KindMultipleChoice: "multiple_choice",
	KindHash:           "hash",
	KindRange:          "range",
}

// Kinds lists every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindBoolean, KindFile, KindFloat, KindInteger, KindSymbol,
		KindArray, KindMultipleChoice, KindHash, KindRange,
	}
}

// String returns the configuration name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a configuration name to a Kind. Names are case-insensitive and
// accept "-" in place of "_"; "fixnum" and "int" are aliases for integer.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	switch normalized {
	case "fixnum", "int":
		return KindInteger, nil
	case "bool":
		return KindBoolean, nil
	case "choice", "choices":
		return KindMultipleChoice, nil
	}
	for kind, known := range kindNames {
		if known == normalized {
			return kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown type %q", name)
}

// scalar reports whether the kind yields a single coerced value.
func (k Kind) scalar() bool {
	switch k {
	case KindBoolean, KindFile, KindFloat, KindInteger, KindSymbol:
		return true
	default:
		return false
	}
}

// sized reports whether min/max bound the size of the answer.
func (k Kind) sized() bool {
	switch k {
	case KindArray, KindMultipleChoice, KindHash:
		return true
	default:
		return false
	}
}
