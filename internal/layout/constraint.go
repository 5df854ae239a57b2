package layout

import "strconv"

// Kind identifies which sizing rule a Constraint applies.
type Kind uint8

const (
	KindLength     Kind = iota // Exactly Value cells
	KindPercentage             // Value percent of the available length
	KindRatio                  // Value/Den of the available length
	KindMin                    // At least Value cells
	KindMax                    // At most Value cells
	KindFill                   // Share of leftover space, weighted by Value
)

// String returns the constraint kind name.
func (k Kind) String() string {
	switch k {
	case KindLength:
		return "Length"
	case KindPercentage:
		return "Percentage"
	case KindRatio:
		return "Ratio"
	case KindMin:
		return "Min"
	case KindMax:
		return "Max"
	case KindFill:
		return "Fill"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Constraint is one sizing rule for a segment of a layout axis.
// Constraints are plain values; build them with the constructors below.
type Constraint struct {
	Kind  Kind
	Value int // length, percent, ratio numerator, bound, or fill weight
	Den   int // ratio denominator; unused by other kinds
}

// Length fixes a segment to exactly n cells.
func Length(n int) Constraint {
	return Constraint{Kind: KindLength, Value: max(0, n)}
}

// Percentage sizes a segment to p percent of the available length.
func Percentage(p int) Constraint {
	return Constraint{Kind: KindPercentage, Value: max(0, p)}
}

// Ratio sizes a segment to num/den of the available length.
// A zero denominator resolves to an empty segment.
func Ratio(num, den int) Constraint {
	return Constraint{Kind: KindRatio, Value: max(0, num), Den: max(0, den)}
}

// Min sizes a segment to at least n cells.
func Min(n int) Constraint {
	return Constraint{Kind: KindMin, Value: max(0, n)}
}

// Max sizes a segment to at most n cells.
func Max(n int) Constraint {
	return Constraint{Kind: KindMax, Value: max(0, n)}
}

// Fill absorbs leftover space in proportion to weight.
func Fill(weight int) Constraint {
	return Constraint{Kind: KindFill, Value: max(0, weight)}
}

// String renders the constraint the way it is constructed, e.g. "Ratio(1/3)".
func (c Constraint) String() string {
	if c.Kind == KindRatio {
		return "Ratio(" + strconv.Itoa(c.Value) + "/" + strconv.Itoa(c.Den) + ")"
	}
	return c.Kind.String() + "(" + strconv.Itoa(c.Value) + ")"
}

// isRelative reports whether the constraint scales with the available length.
func (c Constraint) isRelative() bool {
	return c.Kind == KindPercentage || c.Kind == KindRatio
}

// fraction returns the relative size as num/den. Only meaningful for
// Percentage and Ratio constraints.
func (c Constraint) fraction() (num, den int) {
	if c.Kind == KindPercentage {
		return c.Value, 100
	}
	return c.Value, c.Den
}

// FromLengths builds one Length constraint per value.
func FromLengths(ns ...int) []Constraint {
	return from(Length, ns)
}

// FromPercentages builds one Percentage constraint per value.
func FromPercentages(ps ...int) []Constraint {
	return from(Percentage, ps)
}

// FromMins builds one Min constraint per value.
func FromMins(ns ...int) []Constraint {
	return from(Min, ns)
}

// FromMaxes builds one Max constraint per value.
func FromMaxes(ns ...int) []Constraint {
	return from(Max, ns)
}

// FromFills builds one Fill constraint per weight.
func FromFills(weights ...int) []Constraint {
	return from(Fill, weights)
}

// FromRatios builds one Ratio constraint per (num, den) pair.
func FromRatios(pairs ...[2]int) []Constraint {
	out := make([]Constraint, len(pairs))
	for i, p := range pairs {
		out[i] = Ratio(p[0], p[1])
	}
	return out
}

func from(ctor func(int) Constraint, values []int) []Constraint {
	out := make([]Constraint, len(values))
	for i, v := range values {
		out[i] = ctor(v)
	}
	return out
}
