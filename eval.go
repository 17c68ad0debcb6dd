package graze

import (
	"fmt"
	"math/big"
	"unicode"
	"unicode/utf8"
)

// FormulaError describes a syntax error in a formula passed to [EvalFormula].
type FormulaError struct {
	// Offset is the byte offset of the error in the input.
	Offset int
	Msg    string
}

func (e *FormulaError) Error() string {
	return fmt.Sprintf("formula: %s at offset %d", e.Msg, e.Offset)
}

// EvalFormula evaluates an arithmetic expression exactly. It understands
// decimal numbers, parentheses, unary minus, the binary operators + - * /,
// the postfix square ², and implicit multiplication of adjacent factors, as
// in "(90/360)(1/2)²". Squaring binds tighter than unary minus, so "-2²" is
// -4. Every string returned by [Formula] is accepted.
//
// Division by zero is reported as an error.
func EvalFormula(s string) (*big.Rat, error) {
	p := &parser{src: s}
	p.next()
	v, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.tok != tokEOF {
		return nil, p.errorf("unexpected %s", p.tok)
	}
	return v, nil
}

type token int

const (
	tokEOF token = iota
	tokNum
	tokAdd
	tokSub
	tokMul
	tokQuo
	tokSquare
	tokLParen
	tokRParen
	tokIllegal
)

func (t token) String() string {
	switch t {
	case tokEOF:
		return "end of input"
	case tokNum:
		return "number"
	case tokAdd:
		return "'+'"
	case tokSub:
		return "'-'"
	case tokMul:
		return "'*'"
	case tokQuo:
		return "'/'"
	case tokSquare:
		return "'²'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return "illegal character"
	}
}

type parser struct {
	src string
	pos int

	// current token
	tok    token
	tokPos int
	lit    string
}

func (p *parser) errorf(format string, args ...any) error {
	return &FormulaError{Offset: p.tokPos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) next() {
	for p.pos < len(p.src) {
		r, n := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		p.pos += n
	}
	p.tokPos = p.pos
	p.lit = ""
	if p.pos >= len(p.src) {
		p.tok = tokEOF
		return
	}

	r, n := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += n
	switch r {
	case '+':
		p.tok = tokAdd
	case '-':
		p.tok = tokSub
	case '*', '×':
		p.tok = tokMul
	case '/':
		p.tok = tokQuo
	case '²':
		p.tok = tokSquare
	case '(':
		p.tok = tokLParen
	case ')':
		p.tok = tokRParen
	default:
		if r >= '0' && r <= '9' || r == '.' {
			start := p.pos - n
			for p.pos < len(p.src) {
				c := p.src[p.pos]
				if c >= '0' && c <= '9' || c == '.' {
					p.pos++
				} else {
					break
				}
			}
			p.tok = tokNum
			p.lit = p.src[start:p.pos]
			return
		}
		p.tok = tokIllegal
	}
}

func (p *parser) expr() (*big.Rat, error) {
	v, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.tok == tokAdd || p.tok == tokSub {
		op := p.tok
		p.next()
		w, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == tokAdd {
			v.Add(v, w)
		} else {
			v.Sub(v, w)
		}
	}
	return v, nil
}

func (p *parser) term() (*big.Rat, error) {
	v, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok {
		case tokMul:
			p.next()
			w, err := p.unary()
			if err != nil {
				return nil, err
			}
			v.Mul(v, w)
		case tokQuo:
			p.next()
			at := p.tokPos
			w, err := p.unary()
			if err != nil {
				return nil, err
			}
			if w.Sign() == 0 {
				return nil, &FormulaError{Offset: at, Msg: "division by zero"}
			}
			v.Quo(v, w)
		case tokLParen, tokNum:
			// implicit multiplication
			w, err := p.power()
			if err != nil {
				return nil, err
			}
			v.Mul(v, w)
		default:
			return v, nil
		}
	}
}

func (p *parser) power() (*big.Rat, error) {
	v, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.tok == tokSquare {
		p.next()
		v.Mul(v, v)
	}
	return v, nil
}

func (p *parser) unary() (*big.Rat, error) {
	if p.tok == tokSub {
		p.next()
		v, err := p.unary()
		if err != nil {
			return nil, err
		}
		return v.Neg(v), nil
	}
	return p.power()
}

func (p *parser) primary() (*big.Rat, error) {
	switch p.tok {
	case tokNum:
		v, ok := new(big.Rat).SetString(p.lit)
		if !ok {
			return nil, p.errorf("malformed number %q", p.lit)
		}
		p.next()
		return v, nil
	case tokLParen:
		p.next()
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.tok != tokRParen {
			return nil, p.errorf("expected ')', found %s", p.tok)
		}
		p.next()
		return v, nil
	default:
		return nil, p.errorf("unexpected %s", p.tok)
	}
}
