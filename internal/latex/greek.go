package latex

import coregex "github.com/coregx/coregex"

// greekLetter is one entry of the fixed Greek alphabet table.
type greekLetter struct {
	Name  string // lowercase English name, e.g. "alpha"
	Glyph string // Unicode glyph, e.g. "α"
}

// greekAlphabet lists the 24 standard Greek letters in alphabet order.
// The rewriter walks this slice front to back; the order is part of the
// observable behavior and must not change.
var greekAlphabet = []greekLetter{
	{"alpha", "α"},
	{"beta", "β"},
	{"gamma", "γ"},
	{"delta", "δ"},
	{"epsilon", "ε"},
	{"zeta", "ζ"},
	{"eta", "η"},
	{"theta", "θ"},
	{"iota", "ι"},
	{"kappa", "κ"},
	{"lambda", "λ"},
	{"mu", "μ"},
	{"nu", "ν"},
	{"xi", "ξ"},
	{"omicron", "ο"},
	{"pi", "π"},
	{"rho", "ρ"},
	{"sigma", "σ"},
	{"tau", "τ"},
	{"upsilon", "υ"},
	{"phi", "φ"},
	{"chi", "χ"},
	{"psi", "ψ"},
	{"omega", "ω"},
}

// greekEntry is a table entry with its compiled name pattern and the
// LaTeX command it rewrites to.
type greekEntry struct {
	letter  greekLetter
	name    *coregex.Regex // case-insensitive whole-word English name
	command string         // `\alpha` etc., always the lowercase name
}

var greekEntries = buildGreekEntries()

func buildGreekEntries() []greekEntry {
	entries := make([]greekEntry, 0, len(greekAlphabet))
	for _, l := range greekAlphabet {
		entries = append(entries, greekEntry{
			letter:  l,
			name:    coregex.MustCompile(`(?i)\b` + l.Name + `\b`),
			command: `\` + l.Name,
		})
	}
	return entries
}

// containsGreekRune reports whether s has any character in the lowercase
// (α–ω) or uppercase (Α–Ω) Greek letter block.
func containsGreekRune(s string) bool {
	for _, r := range s {
		if (r >= 'α' && r <= 'ω') || (r >= 'Α' && r <= 'Ω') {
			return true
		}
	}
	return false
}
