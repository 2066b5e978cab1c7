package avl

import (
	"cmp"
	"time"
)

// Strategy identifies how Merge combined two trees.
type Strategy int

const (
	// at least one input was empty; the other input was returned as-is
	StrategyEmpty Strategy = iota
	// key ranges did not overlap; both trees were flattened, concatenated, and re-built
	StrategyDisjoint
	// key ranges overlapped; keys from the smaller tree were inserted into the larger tree
	StrategyReinsert
)

func (s Strategy) String() string {
	switch s {
	case StrategyEmpty:
		return "empty"
	case StrategyDisjoint:
		return "disjoint"
	case StrategyReinsert:
		return "reinsert"
	default:
		return "unknown"
	}
}

// Describes a completed merge.
type MergeResult struct {
	Strategy Strategy
	// sizes of the two inputs, in argument order
	SizeA int
	SizeB int
	// size of the merged tree
	Size int
	// keys present in both inputs, which only appear once in the output
	Dropped int
}

// Merges two trees into one. See MergeWithResult.
func Merge[K cmp.Ordered](a, b *Tree[K]) *Tree[K] {
	out, _ := MergeWithResult(a, b)
	return out
}

// Merges two trees into one, returning the merged tree and a description of how the merge was done.
//
// Both inputs are consumed: the returned tree may be one of the arguments, and any argument which is not returned is left empty. The result always contains the sorted union of the input keys.
//
// If the inputs carry a Counter, the merge charges the counter of a (or of b, if a has none), and the result carries that counter.
func MergeWithResult[K cmp.Ordered](a, b *Tree[K]) (*Tree[K], MergeResult) {
	start := time.Now()
	ctr := a.ctr
	if ctr == nil {
		ctr = b.ctr
	}
	res := MergeResult{
		SizeA: a.size,
		SizeB: b.size,
	}

	var out *Tree[K]
	switch {
	case a.Root == nil && b.Root == nil:
		res.Strategy = StrategyEmpty
		out = &Tree[K]{}
	case b.Root == nil:
		res.Strategy = StrategyEmpty
		out = a
	case a.Root == nil:
		res.Strategy = StrategyEmpty
		out = b
	default:
		// ranges which touch (equal boundary keys) are treated as overlapping, so the concatenation path never sees a shared key
		ctr.add(1)
		if cmp.Less(a.maxKey(ctr), b.minKey(ctr)) {
			res.Strategy = StrategyDisjoint
			out = mergeDisjoint(a, b, ctr)
		} else if cmp.Less(b.maxKey(ctr), a.minKey(ctr)) {
			res.Strategy = StrategyDisjoint
			out = mergeDisjoint(b, a, ctr)
		} else {
			res.Strategy = StrategyReinsert
			out, res.Dropped = mergeReinsert(a, b, ctr)
		}
	}

	if out != a {
		a.clear()
	}
	if out != b {
		b.clear()
	}
	out.ctr = ctr
	res.Size = out.size

	mergeTotal.WithLabelValues(res.Strategy.String()).Inc()
	mergeDuration.WithLabelValues(res.Strategy.String()).Observe(time.Since(start).Seconds())
	return out, res
}

// every key in lower must sort before every key in upper. O(m+n)
func mergeDisjoint[K cmp.Ordered](lower, upper *Tree[K], ctr *Counter) *Tree[K] {
	keys := make([]K, 0, lower.size+upper.size)
	keys = flattenInto(lower.Root, keys, ctr)
	split := len(keys)
	ctr.add(int64(split))
	keys = flattenInto(upper.Root, keys, ctr)
	ctr.add(int64(len(keys) - split))
	return buildTree(keys, ctr)
}

// inserts each key of the smaller tree into the larger one, and returns the larger tree. O(m log(m+n))
func mergeReinsert[K cmp.Ordered](a, b *Tree[K], ctr *Counter) (*Tree[K], int) {
	ctr.add(1)
	small, large := b, a
	if a.size < b.size {
		small, large = a, b
	}

	dropped := 0
	for _, k := range small.flatten(ctr) {
		if !large.insert(k, ctr) {
			dropped++
		}
	}
	return large, dropped
}
