// Package calc evaluates plain arithmetic expressions. The grammar is
// closed: number literals, the binary operators + - * / % // **, unary
// minus and parentheses. Everything else is a parse error, which is the
// whole sandbox: there are no identifiers, calls or subscripts to abuse.
package calc

import (
	"fmt"
	"math"
	"strconv"
)

// MaxInputLen bounds the expression before parsing so adversarial
// nesting cannot blow the stack.
const MaxInputLen = 512

// Evaluate parses and evaluates expr. All arithmetic is float64;
// division by zero and non-finite results are reported as errors.
func Evaluate(expr string) (float64, error) {
	if len(expr) > MaxInputLen {
		return 0, fmt.Errorf("expression too long (%d bytes, max %d)", len(expr), MaxInputLen)
	}

	p := &parser{input: expr}
	p.next()

	n, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.err != nil {
		return 0, p.err
	}
	if p.tok.kind != tokEOF {
		return 0, fmt.Errorf("unexpected %q", p.tok.text)
	}
	return eval(n)
}

// Format renders a result the standard way, without forcing a trailing
// decimal point onto integer-valued results.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokFloorDiv
	tokPower
	tokLParen
	tokRParen
)

type token struct {
	kind tokKind
	text string
	val  float64
}

// expression tree, closed set of node kinds
type node interface{ isNode() }

type numberNode struct{ val float64 }

type unaryNode struct{ operand node }

type binaryNode struct {
	op          tokKind
	left, right node
}

func (numberNode) isNode() {}
func (unaryNode) isNode()  {}
func (binaryNode) isNode() {}

type parser struct {
	input string
	pos   int
	tok   token
	err   error
}

func (p *parser) next() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
	if p.pos >= len(p.input) {
		p.tok = token{kind: tokEOF, text: "end of expression"}
		return
	}

	c := p.input[p.pos]
	switch {
	case c >= '0' && c <= '9' || c == '.':
		start := p.pos
		for p.pos < len(p.input) && (p.input[p.pos] >= '0' && p.input[p.pos] <= '9' || p.input[p.pos] == '.') {
			p.pos++
		}
		text := p.input[start:p.pos]
		val, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.err = fmt.Errorf("bad number %q", text)
			p.tok = token{kind: tokEOF, text: text}
			return
		}
		p.tok = token{kind: tokNumber, text: text, val: val}
	case c == '+':
		p.pos++
		p.tok = token{kind: tokPlus, text: "+"}
	case c == '-':
		p.pos++
		p.tok = token{kind: tokMinus, text: "-"}
	case c == '*':
		if p.pos+1 < len(p.input) && p.input[p.pos+1] == '*' {
			p.pos += 2
			p.tok = token{kind: tokPower, text: "**"}
		} else {
			p.pos++
			p.tok = token{kind: tokStar, text: "*"}
		}
	case c == '/':
		if p.pos+1 < len(p.input) && p.input[p.pos+1] == '/' {
			p.pos += 2
			p.tok = token{kind: tokFloorDiv, text: "//"}
		} else {
			p.pos++
			p.tok = token{kind: tokSlash, text: "/"}
		}
	case c == '%':
		p.pos++
		p.tok = token{kind: tokPercent, text: "%"}
	case c == '(':
		p.pos++
		p.tok = token{kind: tokLParen, text: "("}
	case c == ')':
		p.pos++
		p.tok = token{kind: tokRParen, text: ")"}
	default:
		p.err = fmt.Errorf("unexpected character %q", string(c))
		p.tok = token{kind: tokEOF, text: string(c)}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// expr := term (('+'|'-') term)*
func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokPlus || p.tok.kind == tokMinus {
		op := p.tok.kind
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

// term := unary (('*'|'/'|'%'|'//') unary)*
func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokStar || p.tok.kind == tokSlash || p.tok.kind == tokPercent || p.tok.kind == tokFloorDiv {
		op := p.tok.kind
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

// unary := '-' unary | power
// Unary minus binds looser than '**', so -2**2 is -(2**2).
func (p *parser) parseUnary() (node, error) {
	if p.tok.kind == tokMinus {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{operand: operand}, nil
	}
	return p.parsePower()
}

// power := primary ['**' unary]
// Right recursion through unary makes '**' right-associative and lets
// the exponent carry its own sign: 2**-3 is valid.
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.tok.kind == tokPower {
		p.next()
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return binaryNode{op: tokPower, left: base, right: exp}, nil
	}
	return base, nil
}

// primary := number | '(' expr ')'
func (p *parser) parsePrimary() (node, error) {
	if p.err != nil {
		return nil, p.err
	}
	switch p.tok.kind {
	case tokNumber:
		n := numberNode{val: p.tok.val}
		p.next()
		return n, nil
	case tokLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.next()
		return inner, nil
	case tokEOF:
		return nil, fmt.Errorf("unexpected end of expression")
	default:
		return nil, fmt.Errorf("unexpected %q", p.tok.text)
	}
}

func eval(n node) (float64, error) {
	switch v := n.(type) {
	case numberNode:
		return v.val, nil
	case unaryNode:
		operand, err := eval(v.operand)
		if err != nil {
			return 0, err
		}
		return -operand, nil
	case binaryNode:
		left, err := eval(v.left)
		if err != nil {
			return 0, err
		}
		right, err := eval(v.right)
		if err != nil {
			return 0, err
		}
		return apply(v.op, left, right)
	default:
		return 0, fmt.Errorf("invalid expression")
	}
}

func apply(op tokKind, left, right float64) (float64, error) {
	var result float64
	switch op {
	case tokPlus:
		result = left + right
	case tokMinus:
		result = left - right
	case tokStar:
		result = left * right
	case tokSlash:
		if right == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		result = left / right
	case tokPercent:
		if right == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		result = math.Mod(left, right)
	case tokFloorDiv:
		if right == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		result = math.Floor(left / right)
	case tokPower:
		result = math.Pow(left, right)
	default:
		return 0, fmt.Errorf("operation not allowed")
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, fmt.Errorf("result is not a finite number")
	}
	return result, nil
}
