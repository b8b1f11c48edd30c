package latex

import (
	"strings"
	"testing"

	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/types"
)

func TestDetectStructuralFlags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.PatternFlags
	}{
		{"empty", "", types.PatternFlags{}},
		{"plain text", "plain text", types.PatternFlags{}},
		{"subscript", "x_1", types.PatternFlags{HasSubscripts: true}},
		{"superscript", "x^2", types.PatternFlags{HasSuperscripts: true}},
		{"fraction", "a/b", types.PatternFlags{HasFractions: true}},
		{"greek glyph lowercase", "α", types.PatternFlags{HasGreekLetters: true}},
		{"greek glyph uppercase", "Ω", types.PatternFlags{HasGreekLetters: true}},
		{
			"combined",
			"x_1 + y^2 = a/b + α",
			types.PatternFlags{
				HasSubscripts:   true,
				HasSuperscripts: true,
				HasFractions:    true,
				HasGreekLetters: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input); got != tt.want {
				t.Errorf("Detect(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectGreekNameIsNotAGreekLetter(t *testing.T) {
	// The flag looks for glyphs in the Greek Unicode blocks, not for
	// spelled-out names.
	if Detect("alpha").HasGreekLetters {
		t.Error("spelled-out name should not set HasGreekLetters")
	}
}

func TestDetectEinsteinEquation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"full chain in order", "G μν Λ g μν T μν", true},
		{"real equation", "G_μν + Λg_μν = (8πG/c^4) T_μν", true},
		{"lambda before G", "Λ μν G g μν T μν", false},
		{"chain incomplete", "G μν Λ", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input).IsEinsteinEquation; got != tt.want {
				t.Errorf("IsEinsteinEquation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectSchrodingerEquation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"uppercase psi with hbar", "Ψ ħ ∇^2", true},
		{"lowercase psi with plain h", "ψ h ∇^2", true},
		{"missing laplacian", "Ψ ħ", false},
		{"laplacian before psi", "∇^2 then Ψ ħ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input).IsSchrodingerEquation; got != tt.want {
				t.Errorf("IsSchrodingerEquation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectMaxwellEquation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"divergence and curl", "∇.E and ∇×B", true},
		{"single nabla", "∇.E", false},
		{"no field symbol", "∇ and ∇", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input).IsMaxwellEquation; got != tt.want {
				t.Errorf("IsMaxwellEquation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// The detector reads the original input; the rewriter's trigger for the
// Einstein family is looser (three unordered containments). Both
// definitions are preserved on purpose, so an input can trip the rewriter
// without tripping the detector.
func TestDetectorStricterThanRewriterGuard(t *testing.T) {
	input := "Λg_μν and G μν"
	if Detect(input).IsEinsteinEquation {
		t.Error("ordered chain should reject Λ before G")
	}
	got := Rewrite(input)
	if !strings.Contains(got, `\Lambda g_{\mu\nu}`) {
		t.Errorf("rewriter guard should still fire on %q, got %q", input, got)
	}
}

func TestDetectIndependentOfRewrite(t *testing.T) {
	input := "x_1 + α"
	before := Detect(input)
	_ = Rewrite(input)
	after := Detect(input)
	if before != after {
		t.Errorf("Detect changed across a Rewrite call: %+v vs %+v", before, after)
	}
}
