package catalog

// StockSpec is a tagged stock assignment: either one quantity for every
// variation, or a positional list mapped against size-sorted variations.
// Exactly one branch is set; the zero value is invalid.
type StockSpec struct {
	kind         stockKind
	uniform      int
	perVariation []int
}

type stockKind int

const (
	stockInvalid stockKind = iota
	stockUniform
	stockPerVariation
)

// UniformStock assigns qty to every variation.
func UniformStock(qty int) StockSpec {
	return StockSpec{kind: stockUniform, uniform: qty}
}

// PerVariationStock assigns quantities positionally against variations
// sorted by numeric size. Variations beyond the list length get zero.
func PerVariationStock(quantities []int) StockSpec {
	return StockSpec{kind: stockPerVariation, perVariation: quantities}
}

// IsZero reports whether the spec carries no assignment.
func (s StockSpec) IsZero() bool { return s.kind == stockInvalid }

// quantityAt resolves the quantity for the i-th size-sorted variation.
func (s StockSpec) quantityAt(i int) int {
	switch s.kind {
	case stockUniform:
		return s.uniform
	case stockPerVariation:
		if i < len(s.perVariation) {
			return s.perVariation[i]
		}
		return 0
	default:
		return 0
	}
}
