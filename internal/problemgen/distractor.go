package problemgen

import (
	"math/rand/v2"
	"slices"
)

const (
	minOptions = 5

	// maxPolicyDraws bounds how many policy candidates are tried before
	// falling back to round numbers.
	maxPolicyDraws = 200
)

// Distractors returns the correct values plus synthesized wrong amounts,
// deduplicated and sorted ascending. The result has max(5, n+1) entries
// where n is the number of distinct correct values.
//
// Candidates mimic common mistakes relative to the first correct value:
// a small slip of a few thousand yen, a 10% tax confusion, a misplaced
// digit, halving or doubling, or an unrelated round amount.
func Distractors(rng *rand.Rand, correct []int64) []int64 {
	seen := make(map[int64]bool, len(correct)+minOptions)
	var out []int64
	for _, c := range correct {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	target := max(minOptions, len(out)+1)

	var base int64 = 10000
	if len(correct) > 0 && correct[0] > 0 {
		base = correct[0]
	}

	for draws := 0; len(out) < target && draws < maxPolicyDraws; draws++ {
		c := candidate(rng, base)
		if c <= 0 || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}

	// Policy stalled (tiny or degenerate base): step through round numbers.
	for c := int64(1000); len(out) < target; c += 1000 {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	slices.Sort(out)
	return out
}

func candidate(rng *rand.Rand, base int64) int64 {
	r := rng.Float64()
	switch {
	case r < 0.2:
		return base + int64(rng.IntN(10)-5)*1000
	case r < 0.4:
		return base * 11 / 10
	case r < 0.6:
		return base * 10
	case r < 0.8:
		if rng.IntN(2) == 0 {
			return base * 2
		}
		return base / 2
	default:
		return int64(10+rng.IntN(90)) * 1000
	}
}

// AccountOptions returns every correct account plus decoys drawn from
// chart without replacement, shuffled. The result has
// max(5, len(correct)) entries when the chart is large enough.
func AccountOptions(rng *rand.Rand, correct []string, chart []string) []string {
	seen := make(map[string]bool, len(chart))
	var out []string
	for _, a := range correct {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	target := max(minOptions, len(out))

	var pool []string
	for _, a := range chart {
		if !seen[a] {
			seen[a] = true
			pool = append(pool, a)
		}
	}
	for len(out) < target && len(pool) > 0 {
		i := rng.IntN(len(pool))
		out = append(out, pool[i])
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}

	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// ShuffleOptions returns a shuffled copy of opts.
func ShuffleOptions(rng *rand.Rand, opts []string) []string {
	out := slices.Clone(opts)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
