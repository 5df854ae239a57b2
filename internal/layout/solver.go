package layout

import "math/big"

// shrinkOrder lists constraint kinds from most to least negotiable. When the
// demands exceed the available length, whole tiers are shrunk in this order.
// Percentage and Ratio share a tier. Min comes last so a Min keeps its floor
// whenever the Min floors alone fit.
var shrinkOrder = [][]Kind{
	{KindFill},
	{KindMax},
	{KindPercentage, KindRatio},
	{KindLength},
	{KindMin},
}

// Solve partitions area into one Rect per constraint of l, in order.
//
// All returned Rects share the cross-axis extent of the margin-inset area
// and never overlap. Solve never fails: an empty constraint list yields an
// empty slice and an empty area yields zero-size Rects at its origin.
func Solve(area Rect, l Layout) []Rect {
	n := len(l.Constraints)
	rects := make([]Rect, n)
	if n == 0 {
		return rects
	}
	if area.IsEmpty() {
		for i := range rects {
			rects[i] = Rect{X: area.X, Y: area.Y}
		}
		return rects
	}

	inner := area.InnerMargin(l.Margin)
	isRow := l.Direction == Row

	mainStart, mainSize := inner.X, inner.Width
	crossStart, crossSize := inner.Y, inner.Height
	if !isRow {
		mainStart, mainSize = inner.Y, inner.Height
		crossStart, crossSize = inner.X, inner.Width
	}

	spacing := resolveSpacing(l.Spacing, mainSize, n)
	available := mainSize - spacing*(n-1)

	sizes := resolveSizes(l.Constraints, available)

	used := 0
	for _, s := range sizes {
		used += s
	}
	free := available - used

	offset := justifyOffset(l.Justify, free, n)
	extra := justifySpacing(l.Justify, free, n)

	pos := mainStart + offset
	for i, size := range sizes {
		if isRow {
			rects[i] = Rect{X: pos, Y: crossStart, Width: size, Height: crossSize}
		} else {
			rects[i] = Rect{X: crossStart, Y: pos, Width: crossSize, Height: size}
		}
		pos += size + spacing + extra
	}
	return rects
}

// resolveSpacing returns the gap placed between adjacent segments. When the
// gaps alone would not fit, they shrink evenly so the segments stay inside.
func resolveSpacing(spacing, mainSize, n int) int {
	if n <= 1 || spacing <= 0 {
		return 0
	}
	gaps := n - 1
	if spacing*gaps > mainSize {
		return mainSize / gaps
	}
	return spacing
}

// resolveSizes assigns a main-axis length to every constraint such that the
// total never exceeds available.
func resolveSizes(constraints []Constraint, available int) []int {
	sizes := make([]int, len(constraints))
	if available <= 0 {
		return sizes
	}

	// Phase 1: hard demands and Min floors, all measured against the
	// original available length.
	for i, c := range constraints {
		switch c.Kind {
		case KindLength, KindMin:
			sizes[i] = c.Value
		case KindPercentage, KindRatio:
			num, den := c.fraction()
			sizes[i] = roundHalfEven(int64(num)*int64(available), int64(den))
		}
	}
	correctRelativeRounding(constraints, sizes, available)

	budget := available
	for _, s := range sizes {
		budget -= s
	}

	// Phase 2: Max constraints take what is left, up to their bound.
	for i, c := range constraints {
		if c.Kind != KindMax {
			continue
		}
		sizes[i] = min(c.Value, max(0, budget))
		budget -= sizes[i]
	}

	// Phase 3: leftover goes to weighted Fill, else grows Min, else trails.
	if budget > 0 {
		if !distributeFill(constraints, sizes, budget) {
			growMins(constraints, sizes, budget)
		}
		return sizes
	}

	// Phase 4: over-constrained, give back space tier by tier.
	deficit := -budget
	for _, tier := range shrinkOrder {
		if deficit == 0 {
			break
		}
		deficit = shrinkTier(constraints, sizes, tier, deficit)
	}
	return sizes
}

// correctRelativeRounding fixes the cumulative rounding error of the
// Percentage and Ratio segments so that their total equals the rounded
// exact total. The correction is applied to the final relative segment,
// walking backwards if that segment cannot absorb a negative correction.
func correctRelativeRounding(constraints []Constraint, sizes []int, available int) {
	exact := new(big.Rat)
	rounded := 0
	last := -1
	for i, c := range constraints {
		if !c.isRelative() {
			continue
		}
		num, den := c.fraction()
		if den == 0 {
			continue
		}
		exact.Add(exact, big.NewRat(int64(num), int64(den)))
		rounded += sizes[i]
		last = i
	}
	if last < 0 {
		return
	}

	exact.Mul(exact, new(big.Rat).SetInt64(int64(available)))
	target := roundHalfEvenRat(exact)
	delta := target - rounded
	for i := last; i >= 0 && delta != 0; i-- {
		if !constraints[i].isRelative() {
			continue
		}
		adjusted := max(0, sizes[i]+delta)
		delta -= adjusted - sizes[i]
		sizes[i] = adjusted
	}
}

// distributeFill splits budget among Fill constraints in proportion to their
// weights. Boundaries are rounded cumulatively so the last Fill segment ends
// exactly at the budget. Returns false if no Fill has a positive weight.
func distributeFill(constraints []Constraint, sizes []int, budget int) bool {
	totalWeight := int64(0)
	for _, c := range constraints {
		if c.Kind == KindFill {
			totalWeight += int64(c.Value)
		}
	}
	if totalWeight == 0 {
		return false
	}

	cum := int64(0)
	prevEnd := 0
	for i, c := range constraints {
		if c.Kind != KindFill {
			continue
		}
		cum += int64(c.Value)
		end := roundHalfEven(int64(budget)*cum, totalWeight)
		sizes[i] = end - prevEnd
		prevEnd = end
	}
	return true
}

// growMins splits budget evenly among Min constraints; the remainder goes
// to the last one.
func growMins(constraints []Constraint, sizes []int, budget int) {
	var mins []int
	for i, c := range constraints {
		if c.Kind == KindMin {
			mins = append(mins, i)
		}
	}
	if len(mins) == 0 {
		return
	}
	share := budget / len(mins)
	for _, i := range mins {
		sizes[i] += share
	}
	sizes[mins[len(mins)-1]] += budget - share*len(mins)
}

// shrinkTier reduces the segments whose kind is in tier by up to deficit
// cells and returns the deficit that remains. Lengths are scaled down
// proportionally with truncation; the units lost to truncation are handed
// back one at a time from the front of the tier.
func shrinkTier(constraints []Constraint, sizes []int, tier []Kind, deficit int) int {
	var members []int
	total := 0
	for i, c := range constraints {
		if inTier(c.Kind, tier) && sizes[i] > 0 {
			members = append(members, i)
			total += sizes[i]
		}
	}
	if total == 0 {
		return deficit
	}
	if deficit >= total {
		for _, i := range members {
			sizes[i] = 0
		}
		return deficit - total
	}

	keep := total - deficit
	assigned := 0
	original := make([]int, len(members))
	for j, i := range members {
		original[j] = sizes[i]
		sizes[i] = int(int64(sizes[i]) * int64(keep) / int64(total))
		assigned += sizes[i]
	}
	spare := keep - assigned
	for j, i := range members {
		if spare == 0 {
			break
		}
		if sizes[i] < original[j] {
			sizes[i]++
			spare--
		}
	}
	return 0
}

func inTier(k Kind, tier []Kind) bool {
	for _, t := range tier {
		if k == t {
			return true
		}
	}
	return false
}

// roundHalfEven returns num/den rounded to the nearest integer, ties to
// even. num must be non-negative; a zero den yields 0.
func roundHalfEven(num, den int64) int {
	if den <= 0 || num <= 0 {
		return 0
	}
	q, r := num/den, num%den
	switch {
	case 2*r > den:
		q++
	case 2*r == den && q%2 == 1:
		q++
	}
	return int(q)
}

func roundHalfEvenRat(r *big.Rat) int {
	num, den := r.Num(), r.Denom()
	if !num.IsInt64() || !den.IsInt64() {
		f, _ := r.Float64()
		return int(f + 0.5)
	}
	return roundHalfEven(num.Int64(), den.Int64())
}

// justifyOffset returns the initial offset for positioning segments
// based on the justify mode and unclaimed space.
func justifyOffset(justify Justify, freeSpace, count int) int {
	if freeSpace <= 0 || count == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (count * 2)
	case JustifySpaceEvenly:
		return freeSpace / (count + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra gap added after each segment
// based on the justify mode and unclaimed space.
func justifySpacing(justify Justify, freeSpace, count int) int {
	if freeSpace <= 0 || count <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (count - 1)
	case JustifySpaceAround:
		return freeSpace / count
	case JustifySpaceEvenly:
		return freeSpace / (count + 1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}
