package latex

import (
	"fmt"
	"strings"
)

// CheckOutput runs best-effort sanity checks on rewritten LaTeX text and
// returns human-readable warnings. The rewriter itself never fails, so
// these checks are advisory only and surface in the UI next to the
// preview; an empty slice means nothing looked suspicious.
func CheckOutput(latex string) []string {
	var warnings []string

	depth := 0
	for i, r := range latex {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				warnings = append(warnings, fmt.Sprintf("unmatched closing brace at offset %d", i))
				depth = 0
			}
		}
	}
	if depth > 0 {
		warnings = append(warnings, fmt.Sprintf("%d unclosed brace(s)", depth))
	}

	if strings.Contains(latex, "{}") {
		warnings = append(warnings, "empty group {} in output")
	}
	if strings.HasSuffix(latex, `\`) {
		warnings = append(warnings, "output ends with a bare backslash")
	}

	return warnings
}
