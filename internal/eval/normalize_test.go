package eval_test

import (
	"testing"

	"github.com/mind-engage/mathquiz/internal/eval"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"  x + 1 ", "x+1"},
		{"x × 2", "x*2"},
		{"x · y", "x*y"},
		{"6 ÷ 2", "6/2"},
		{`x \times 2`, "x*2"},
		{`\frac{1}{2} \cdot x`, `\frac{1}{2}*x`},
		{`\sin(\theta)`, "sin(theta)"},
		{`2\pi r`, "2pir"},
		{`\left( x+1 \right)`, "(x+1)"},
		{"X + Y", "x+y"},
		{`X \Times 2`, "x*2"},
		{`\Sin(X)`, "sin(x)"},
		{`\Left( x \Right)`, "(x)"},
	}
	for _, c := range cases {
		if got := eval.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"x + 1",
		`x \times 2 = 4`,
		`\sin(\theta) ÷ \cos(\theta)`,
		`\left( 2\pi \right)`,
		"X=-2, -3",
		`\Sin(x)`,
		`X \Times 2`,
		`\Left( x \Right)`,
	}
	for _, in := range inputs {
		once := eval.Normalize(in)
		if twice := eval.Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
