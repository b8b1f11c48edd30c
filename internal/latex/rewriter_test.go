package latex

import "testing"

func TestRewritePassthrough(t *testing.T) {
	// Inputs with no trigger substrings come back unchanged.
	inputs := []string{
		"",
		"plain text",
		"hello world",
		"1 + 1 = 2",
		"f(x) = y",
	}
	for _, in := range inputs {
		if got := Rewrite(in); got != in {
			t.Errorf("Rewrite(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestRewriteStructuralPasses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"subscript", "x_1", "x_{1}"},
		{"subscript multichar body", "T_ab", "T_{ab}"},
		{"superscript", "x^2", "x^{2}"},
		{"superscript digit base", "2^10", "2^{10}"},
		{"fraction", "a/b", `\frac{a}{b}`},
		{"two fractions", "a/b + c/d", `\frac{a}{b} + \frac{c}{d}`},
		{"fraction is purely syntactic", "km/h", `\frac{km}{h}`},
		{"subscript then greek", "x_alpha", `x_{\alpha}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rewrite(tt.input); got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRewriteGreekLetters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"name", "alpha", `\alpha`},
		{"glyph", "α", `\alpha`},
		{"uppercase name", "ALPHA", `\alpha`},
		{"mixed case name", "Alpha", `\alpha`},
		{"several names", "alpha beta gamma", `\alpha \beta \gamma`},
		{"eta not matched inside theta", "theta", `\theta`},
		{"eta not matched inside zeta", "zeta", `\zeta`},
		{"psi not matched inside upsilon", "upsilon", `\upsilon`},
		{"name embedded in word survives", "alphabet", "alphabet"},
		{"command is not rematched", `\alpha + β`, `\alpha + \beta`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rewrite(tt.input); got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRewriteEinsteinFieldEquation(t *testing.T) {
	input := "G_μν + Λg_μν = c^4/(8πG) T_μν"
	want := `G_{\mu\nu} + \Lambda g_{\mu\nu} = c^{4}/(8\pi G) T_{\mu\nu}`
	if got := Rewrite(input); got != want {
		t.Errorf("Rewrite(%q) =\n  %q\nwant\n  %q", input, got, want)
	}
}

func TestRewriteSchrodingerEquation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"time dependent form",
			"iħ ∂Ψ/∂t = HΨ",
			`i\hbar \frac{\partial\Psi}{\partial t} = HΨ`,
		},
		{
			"laplacian",
			"∇^2 Ψ + ħ",
			`\nabla^{2} Ψ + ħ`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rewrite(tt.input); got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRewriteMaxwellEquations(t *testing.T) {
	input := "∇.E = 0 and ∇×B = 0"
	want := `\nabla \cdot \vec{E} = 0 and \nabla \times \vec{B} = 0`
	if got := Rewrite(input); got != want {
		t.Errorf("Rewrite(%q) = %q, want %q", input, got, want)
	}
}

// A second application of the pipeline must not change already rewritten
// output: braces are excluded from the structural character classes,
// emitted Greek commands are skipped by the backslash guard, and the
// equation guards no longer fire once their trigger glyphs are consumed.
func TestRewriteIsIdempotent(t *testing.T) {
	inputs := []struct {
		name  string
		input string
	}{
		{"structural", "x_1 + x^2 + a/b"},
		{"greek names", "alpha beta gamma delta"},
		{"greek glyphs", "α + ω"},
		{"einstein", "G_μν + Λg_μν = c^4/(8πG) T_μν"},
		{"schrodinger", "iħ ∂Ψ/∂t = -ħ ∇^2 Ψ"},
		{"maxwell", "∇.E = 0 and ∇×B = 0"},
	}
	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			once := Rewrite(tt.input)
			twice := Rewrite(once)
			if twice != once {
				t.Errorf("Rewrite not idempotent:\n  once:  %q\n  twice: %q", once, twice)
			}
		})
	}
}

func TestGreekTableShape(t *testing.T) {
	if len(greekAlphabet) != 24 {
		t.Fatalf("Greek table has %d entries, want 24", len(greekAlphabet))
	}
	if greekAlphabet[0].Name != "alpha" || greekAlphabet[23].Name != "omega" {
		t.Errorf("Greek table out of order: first=%q last=%q",
			greekAlphabet[0].Name, greekAlphabet[23].Name)
	}
	seen := make(map[string]bool)
	for _, l := range greekAlphabet {
		if seen[l.Glyph] {
			t.Errorf("duplicate glyph %q", l.Glyph)
		}
		seen[l.Glyph] = true
	}
}
