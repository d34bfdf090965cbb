package scoredomain

import "fmt"

// Variant selects one of the three parallel score tables.
type Variant int

const (
	VariantVanilla Variant = iota
	VariantRelax
	VariantAutopilot
)

// ParseVariant converts the rx request parameter into a Variant.
func ParseVariant(v int) (Variant, error) {
	rx := Variant(v)
	switch rx {
	case VariantVanilla, VariantRelax, VariantAutopilot:
		return rx, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidVariant, v)
	}
}

// Table returns the score table backing the variant, or ErrInvalidVariant.
func (v Variant) Table() (string, error) {
	switch v {
	case VariantVanilla:
		return "scores", nil
	case VariantRelax:
		return "scores_relax", nil
	case VariantAutopilot:
		return "scores_ap", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrInvalidVariant, int(v))
	}
}

func (v Variant) String() string {
	switch v {
	case VariantVanilla:
		return "vanilla"
	case VariantRelax:
		return "relax"
	case VariantAutopilot:
		return "autopilot"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Variants lists every variant in table order.
func Variants() []Variant {
	return []Variant{VariantVanilla, VariantRelax, VariantAutopilot}
}
