package battle

import (
	"cmp"
	"slices"
)

// Resolve compares the highest attacker die against the highest defender die,
// then the second highest against each other, and so on. Ties go to the
// defender. Dice without an opponent are ignored. The inputs are not modified.
func Resolve(attacker, defender []Face) Result {
	a := sortedDesc(attacker)
	d := sortedDesc(defender)

	var res Result
	for i := range min(len(a), len(d)) {
		if a[i] > d[i] {
			res.DefenderLosses++
		} else {
			res.AttackerLosses++
		}
	}
	return res
}

// ResolveConfig resolves the active pools of c.
func ResolveConfig(c Config) Result {
	return Resolve(c.AttackerPool(), c.DefenderPool())
}

func sortedDesc(in []Face) []Face {
	out := slices.Clone(in)
	slices.SortFunc(out, func(x, y Face) int { return cmp.Compare(y, x) })
	return out
}
