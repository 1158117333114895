package revenue

import (
	"sort"
	"strconv"
	"unicode"
)

// sortNatural orders labels with embedded numbers compared by value,
// the way a numeric-aware locale collation would.
func sortNatural(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		return naturalLess(labels[i], labels[j])
	})
}

func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		aChunk, aNum, aRest := nextChunk(a)
		bChunk, bNum, bRest := nextChunk(b)
		if aNum && bNum {
			av, _ := strconv.Atoi(aChunk)
			bv, _ := strconv.Atoi(bChunk)
			if av != bv {
				return av < bv
			}
		} else if aChunk != bChunk {
			return aChunk < bChunk
		}
		a, b = aRest, bRest
	}
	return a == "" && b != ""
}

// nextChunk splits off the leading run of digits or non-digits.
func nextChunk(s string) (chunk string, numeric bool, rest string) {
	runes := []rune(s)
	numeric = unicode.IsDigit(runes[0])
	i := 0
	for i < len(runes) && unicode.IsDigit(runes[i]) == numeric {
		i++
	}
	return string(runes[:i]), numeric, string(runes[i:])
}
