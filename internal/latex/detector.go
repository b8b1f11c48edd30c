package latex

import (
	"strings"

	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/types"
)

// Detection chains for the named equations. Each step is a set of
// alternatives; the step is satisfied by the earliest occurrence of any
// alternative after the previous step's match. The Einstein chain is
// intentionally stricter than the Einstein rewriter guard; detection
// answers "is this the full equation" while the guard only gates the
// substitution list.
var (
	einsteinChain    = [][]string{{"G"}, {"μν"}, {"Λ"}, {"g"}, {"μν"}, {"T"}, {"μν"}}
	schrodingerChain = [][]string{{"Ψ", "ψ"}, {"ħ", "h"}, {"∇^2"}}
	maxwellChain     = [][]string{{"∇"}, {"E", "B"}, {"∇"}, {"E", "B"}}
)

// Detect inspects the original, unmodified input and reports which
// structural patterns and named equations are present. It is read-only,
// independent of Rewrite, and never fails.
func Detect(input string) types.PatternFlags {
	return types.PatternFlags{
		HasSubscripts:         subscriptPattern.MatchString(input),
		HasSuperscripts:       superscriptPattern.MatchString(input),
		HasFractions:          fractionPattern.MatchString(input),
		HasGreekLetters:       containsGreekRune(input),
		IsEinsteinEquation:    containsInOrder(input, einsteinChain),
		IsSchrodingerEquation: containsInOrder(input, schrodingerChain),
		IsMaxwellEquation:     containsInOrder(input, maxwellChain),
	}
}

// containsInOrder reports whether every step of the chain occurs in s in
// the given relative order, each match starting after the end of the
// previous one.
func containsInOrder(s string, chain [][]string) bool {
	pos := 0
	for _, alts := range chain {
		offset, width := -1, 0
		for _, alt := range alts {
			i := strings.Index(s[pos:], alt)
			if i >= 0 && (offset < 0 || i < offset) {
				offset, width = i, len(alt)
			}
		}
		if offset < 0 {
			return false
		}
		pos += offset + width
	}
	return true
}
