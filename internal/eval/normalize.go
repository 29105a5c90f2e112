package eval

import (
	"strings"
	"unicode"
)

// latexReplacer maps LaTeX-escaped names and alternate operator glyphs to one
// canonical spelling. Sizing commands collapse to plain parentheses.
var latexReplacer = strings.NewReplacer(
	`\left(`, "(",
	`\right)`, ")",
	`\left[`, "[",
	`\right]`, "]",
	`\cdot`, "*",
	`\times`, "*",
	`\div`, "/",
	`\sin`, "sin",
	`\cos`, "cos",
	`\tan`, "tan",
	`\cot`, "cot",
	`\sec`, "sec",
	`\csc`, "csc",
	`\log`, "log",
	`\ln`, "ln",
	`\sqrt`, "sqrt",
	`\pi`, "pi",
	`\theta`, "theta",
	`\alpha`, "alpha",
	`\beta`, "beta",
	"×", "*",
	"·", "*",
	"÷", "/",
)

// Normalize canonicalizes a math-expression string for comparison: strips
// whitespace, folds alternate operator symbols and LaTeX escapes to one
// spelling, and lowercases. It removes presentation noise only; it does not
// prove mathematical equivalence. Total and idempotent, empty in -> empty out.
func Normalize(expr string) string {
	if expr == "" {
		return ""
	}
	// Lowercase while stripping, then fold: the replacer keys are all
	// lowercase, so \Sin collapses in the same pass as \sin.
	var b strings.Builder
	b.Grow(len(expr))
	for _, r := range expr {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return latexReplacer.Replace(b.String())
}
