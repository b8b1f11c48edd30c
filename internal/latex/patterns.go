package latex

import coregex "github.com/coregx/coregex"

// Canonical structural patterns. The rewriter and the detector must agree
// on what counts as a subscript, superscript or fraction, so both use
// these compiled patterns and nothing else.
//
// Braces are deliberately absent from the character classes: once a body
// has been wrapped in {...} the pattern no longer matches it, which makes
// the structural passes a fixed point on their own output.
var (
	// single Latin letter, underscore, alphanumeric run: x_1, T_ab
	subscriptPattern = coregex.MustCompile(`([A-Za-z])_([A-Za-z0-9]+)`)
	// alphanumeric, caret, alphanumeric run: x^2, c^4
	superscriptPattern = coregex.MustCompile(`([A-Za-z0-9])\^([A-Za-z0-9]+)`)
	// alphanumeric run, slash, alphanumeric run: a/b, 22/7
	fractionPattern = coregex.MustCompile(`([A-Za-z0-9]+)/([A-Za-z0-9]+)`)
)
