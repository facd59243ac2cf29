package calc

import (
	"math"
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected float64
	}{
		{name: "addition", expr: "1+2", expected: 3},
		{name: "precedence mul over add", expr: "2+3*4", expected: 14},
		{name: "parentheses", expr: "12*(3+4)", expected: 84},
		{name: "left associative subtraction", expr: "10-4-3", expected: 3},
		{name: "left associative division", expr: "100/5/2", expected: 10},
		{name: "true division", expr: "7/2", expected: 3.5},
		{name: "floor division", expr: "7//2", expected: 3},
		{name: "floor division negative", expr: "-7//2", expected: -4},
		{name: "modulo", expr: "10%3", expected: 1},
		{name: "power", expr: "2**10", expected: 1024},
		{name: "power right associative", expr: "2**3**2", expected: 512},
		{name: "unary minus", expr: "-5+8", expected: 3},
		{name: "double unary minus", expr: "--5", expected: 5},
		{name: "unary binds looser than power", expr: "-2**2", expected: -4},
		{name: "negative exponent", expr: "2**-2", expected: 0.25},
		{name: "floats", expr: "0.5*4", expected: 2},
		{name: "leading dot float", expr: ".5+.5", expected: 1},
		{name: "whitespace tolerated", expr: "  1 +\t2 ", expected: 3},
		{name: "nested parens", expr: "((2))*((3))", expected: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) error: %v", tt.expr, err)
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.expected)
			}
		})
	}
}

func TestEvaluateRejects(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{name: "identifier", expr: "x+1"},
		{name: "function call", expr: "abs(-1)"},
		{name: "dunder access", expr: "().__class__"},
		{name: "assignment", expr: "a=1"},
		{name: "comparison", expr: "1<2"},
		{name: "string literal", expr: `"hi"`},
		{name: "trailing garbage", expr: "1+2 oops"},
		{name: "trailing letter", expr: "2a"},
		{name: "unary plus", expr: "+5"},
		{name: "empty", expr: ""},
		{name: "only spaces", expr: "   "},
		{name: "unclosed paren", expr: "(1+2"},
		{name: "empty parens", expr: "()"},
		{name: "dangling operator", expr: "1+"},
		{name: "double dot number", expr: "1.2.3"},
		{name: "comma", expr: "1,2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := Evaluate(tt.expr); err == nil {
				t.Errorf("Evaluate(%q) = %v, want error", tt.expr, got)
			}
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	for _, expr := range []string{"1/0", "1%0", "1//0", "1/(2-2)"} {
		if got, err := Evaluate(expr); err == nil {
			t.Errorf("Evaluate(%q) = %v, want division-by-zero error", expr, got)
		}
	}
}

func TestEvaluateNonFinite(t *testing.T) {
	// Overflows to +Inf without a zero divisor anywhere.
	if got, err := Evaluate("10**400"); err == nil {
		t.Errorf("Evaluate(10**400) = %v, want non-finite error", got)
	}
}

func TestEvaluateInputBound(t *testing.T) {
	expr := strings.Repeat("(", MaxInputLen+1)
	_, err := Evaluate(expr)
	if err == nil {
		t.Fatal("expected error for oversized input")
	}
	if !strings.Contains(err.Error(), "too long") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		val      float64
		expected string
	}{
		{val: 84, expected: "84"},
		{val: 3.5, expected: "3.5"},
		{val: -4, expected: "-4"},
		{val: 0.25, expected: "0.25"},
	}
	for _, tt := range tests {
		if got := Format(tt.val); got != tt.expected {
			t.Errorf("Format(%v) = %q, want %q", tt.val, got, tt.expected)
		}
	}
}
