// Package latex converts informally typed mathematical expressions into
// LaTeX-flavored text and reports which structural patterns an expression
// contains. The rewriter is an ordered list of substitution passes, each
// applied globally to the output of the previous one; there is no parser
// and no syntax tree, only text rewriting.
package latex

import (
	"strings"

	coregex "github.com/coregx/coregex"

	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/logger"
)

// Pass is one stage of the rewriting pipeline.
type Pass struct {
	Name  string
	Apply func(string) string
}

// pipeline is the ordered list of rewriting passes. Order matters: later
// passes see text already mutated by earlier ones, and the equation rules
// are written against that intermediate form.
var pipeline = []Pass{
	{Name: "subscripts", Apply: rewriteSubscripts},
	{Name: "superscripts", Apply: rewriteSuperscripts},
	{Name: "fractions", Apply: rewriteFractions},
	{Name: "greek", Apply: rewriteGreek},
	{Name: "equations", Apply: rewriteKnownEquations},
}

// Rewrite converts an informally typed expression into LaTeX-flavored
// text. Every input produces some output; unrecognized text passes
// through unchanged. The result is best effort and not guaranteed to be
// valid LaTeX.
func Rewrite(input string) string {
	out := input
	for _, p := range pipeline {
		out = p.Apply(out)
	}
	if out != input {
		logger.Debug("expression rewritten",
			logger.Int("inputLen", len(input)),
			logger.Int("outputLen", len(out)))
	}
	return out
}

func rewriteSubscripts(s string) string {
	return subscriptPattern.ReplaceAllString(s, `$1_{$2}`)
}

func rewriteSuperscripts(s string) string {
	return superscriptPattern.ReplaceAllString(s, `$1^{$2}`)
}

func rewriteFractions(s string) string {
	return fractionPattern.ReplaceAllString(s, `\frac{$1}{$2}`)
}

// rewriteGreek replaces, per table entry in order, the case-insensitive
// whole-word English name and every occurrence of the bare glyph with the
// LaTeX command form. Name matches directly preceded by a backslash are
// skipped so an already emitted \alpha never re-matches its own name.
func rewriteGreek(s string) string {
	for _, e := range greekEntries {
		s = replaceAllSkippingCommands(s, e.name, e.command)
		s = strings.ReplaceAll(s, e.letter.Glyph, e.command)
	}
	return s
}

// replaceAllSkippingCommands substitutes every match of re with repl,
// except matches immediately preceded by a backslash. RE2 has no
// lookbehind, so the guard is done on match positions instead.
func replaceAllSkippingCommands(s string, re *coregex.Regex, repl string) string {
	matches := re.FindAllStringIndex(s, -1)
	if matches == nil {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		if m[0] > 0 && s[m[0]-1] == '\\' {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(repl)
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// Substitution is one targeted rewrite inside an equation rule group.
type Substitution struct {
	Pattern *coregex.Regex
	Replace string
}

// EquationRule is a named guard-and-rewrite block for one known equation
// family. Triggered is evaluated on text already processed by the
// structural and Greek passes, so both the guard and the substitution
// patterns tolerate the brace insertion and glyph-to-command rewriting
// performed earlier in the pipeline.
type EquationRule struct {
	Name      string
	Triggered func(string) bool
	Subs      []Substitution
}

// equationRules holds the known equation families. The groups are
// independent and not mutually exclusive; adding a family is a new table
// entry, not new control flow.
var equationRules = []EquationRule{
	{
		// Einstein field equations. The fused glyph pair μν appears as
		// \mu\nu after the Greek pass, so the guard accepts either form.
		Name: "einstein-field",
		Triggered: func(s string) bool {
			return strings.Contains(s, "G") &&
				(strings.Contains(s, "μν") || strings.Contains(s, `\mu\nu`)) &&
				strings.Contains(s, "Λ")
		},
		Subs: []Substitution{
			{coregex.MustCompile(`G_?\{?(?:\\mu\\nu|μν)\}?`), `G_{\mu\nu}`},
			{coregex.MustCompile(`(?:Λ|\\Lambda)\s*g_?\{?(?:\\mu\\nu|μν)\}?`), `\Lambda g_{\mu\nu}`},
			{coregex.MustCompile(`T_?\{?(?:\\mu\\nu|μν)\}?`), `T_{\mu\nu}`},
			{coregex.MustCompile(`c\^?\{?4\}?`), `c^{4}`},
			{coregex.MustCompile(`8\s*(?:\\pi|π)\s*G`), `8\pi G`},
		},
	},
	{
		// Schrödinger equation. Ψ and ħ are untouched by the Greek pass
		// (the table holds only the lowercase alphabet), so the guard can
		// test for the literal glyphs.
		Name: "schrodinger",
		Triggered: func(s string) bool {
			return strings.Contains(s, "Ψ") && strings.Contains(s, "ħ")
		},
		Subs: []Substitution{
			{coregex.MustCompile(`iħ`), `i\hbar`},
			{coregex.MustCompile(`∂Ψ/∂t`), `\frac{\partial\Psi}{\partial t}`},
			{coregex.MustCompile(`∇\^\{?2\}?`), `\nabla^{2}`},
		},
	},
	{
		// Maxwell's equations in divergence/curl form.
		Name: "maxwell",
		Triggered: func(s string) bool {
			return strings.Contains(s, "∇") &&
				(strings.Contains(s, "E") || strings.Contains(s, "B"))
		},
		Subs: []Substitution{
			{coregex.MustCompile(`∇\s*\.\s*E`), `\nabla \cdot \vec{E}`},
			{coregex.MustCompile(`∇\s*\.\s*B`), `\nabla \cdot \vec{B}`},
			{coregex.MustCompile(`∇\s*×\s*E`), `\nabla \times \vec{E}`},
			{coregex.MustCompile(`∇\s*×\s*B`), `\nabla \times \vec{B}`},
		},
	},
}

func rewriteKnownEquations(s string) string {
	for _, rule := range equationRules {
		if !rule.Triggered(s) {
			continue
		}
		logger.Debug("equation rule triggered", logger.String("rule", rule.Name))
		for _, sub := range rule.Subs {
			s = sub.Pattern.ReplaceAllString(s, sub.Replace)
		}
	}
	return s
}
