// Package sat - boolean-expression grammar.
//
// Grammar (NOT binds tighter than AND, which binds tighter than OR;
// binary operators are left-associative):
//
//	expr := VAR | '!' expr | expr '&' expr | expr '|' expr | '(' expr ')'
//	VAR  := 'x' digits     (1-based variable index)
//
// Pipeline: tokenizer → shunting-yard conversion to postfix → postfix
// evaluation under an assignment. The parsing layer is deliberately
// isolated from the CNF solvers; malformed input fails with a *ParseError
// identifying the offending position and token.
package sat

import (
	"fmt"
	"strconv"
	"unicode"
)

// ParseError reports a syntax error in a boolean expression.
// Pos is the 0-based rune offset of the offending token.
type ParseError struct {
	Pos   int
	Token string
	Msg   string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("sat: parse error at position %d near %q: %s", e.Pos, e.Token, e.Msg)
}

// token kinds produced by the tokenizer.
type tokKind int

const (
	tokVar tokKind = iota
	tokNot
	tokAnd
	tokOr
	tokLParen
	tokRParen
)

type token struct {
	kind tokKind
	v    int // variable index for tokVar (1-based)
	pos  int
	text string
}

// Expr is a parsed boolean expression in postfix form, ready for stack
// evaluation. Immutable after Parse.
type Expr struct {
	postfix []token
	vars    int // highest variable index referenced
}

// Vars returns the number of variables (the highest index referenced).
func (e *Expr) Vars() int { return e.vars }

// Parse tokenizes and converts the expression to postfix.
//
// Complexity: O(len(input)).
func Parse(input string) (*Expr, error) {
	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}

	return toPostfix(toks)
}

// tokenize splits the input into tokens, skipping whitespace.
// Variable tokens are 'x' followed by a positive decimal index.
func tokenize(input string) ([]token, error) {
	var (
		toks []token
		rs   = []rune(input)
		i    int
	)
	for i < len(rs) {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '!':
			toks = append(toks, token{kind: tokNot, pos: i, text: "!"})
			i++
		case r == '&':
			toks = append(toks, token{kind: tokAnd, pos: i, text: "&"})
			i++
		case r == '|':
			toks = append(toks, token{kind: tokOr, pos: i, text: "|"})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, pos: i, text: "("})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, pos: i, text: ")"})
			i++
		case r == 'x' || r == 'X':
			start := i
			i++
			j := i
			for j < len(rs) && unicode.IsDigit(rs[j]) {
				j++
			}
			if j == i {
				return nil, &ParseError{Pos: start, Token: string(r), Msg: "variable name needs a numeric index"}
			}
			idx, err := strconv.Atoi(string(rs[i:j]))
			if err != nil || idx < 1 {
				return nil, &ParseError{Pos: start, Token: string(rs[start:j]), Msg: "variable index must be a positive integer"}
			}
			toks = append(toks, token{kind: tokVar, v: idx, pos: start, text: string(rs[start:j])})
			i = j
		default:
			return nil, &ParseError{Pos: i, Token: string(r), Msg: "unexpected character"}
		}
	}

	return toks, nil
}

// precedence for the shunting-yard conversion; NOT > AND > OR.
func precedence(k tokKind) int {
	switch k {
	case tokNot:
		return 3
	case tokAnd:
		return 2
	case tokOr:
		return 1
	default:
		return 0
	}
}

// toPostfix runs the shunting-yard algorithm with strict well-formedness
// checks: operand/operator alternation, balanced parentheses, no dangling
// operator.
//
// Complexity: O(tokens).
func toPostfix(toks []token) (*Expr, error) {
	var (
		out         []token
		ops         []token
		wantOperand = true // state machine: operand expected next?
		maxVar      int
	)

	popUntilLParen := func(closing token) error {
		for {
			if len(ops) == 0 {
				return &ParseError{Pos: closing.pos, Token: closing.text, Msg: "unbalanced closing parenthesis"}
			}
			top := ops[len(ops)-1]
			ops = ops[:len(ops)-1]
			if top.kind == tokLParen {
				return nil
			}
			out = append(out, top)
		}
	}

	for _, t := range toks {
		switch t.kind {
		case tokVar:
			if !wantOperand {
				return nil, &ParseError{Pos: t.pos, Token: t.text, Msg: "expected operator"}
			}
			out = append(out, t)
			if t.v > maxVar {
				maxVar = t.v
			}
			wantOperand = false

		case tokNot:
			if !wantOperand {
				return nil, &ParseError{Pos: t.pos, Token: t.text, Msg: "expected operator"}
			}
			// Unary, right-associative: never pops equal precedence.
			ops = append(ops, t)

		case tokAnd, tokOr:
			if wantOperand {
				return nil, &ParseError{Pos: t.pos, Token: t.text, Msg: "expected operand"}
			}
			// Left-associative: pop operators of higher-or-equal precedence.
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind == tokLParen || precedence(top.kind) < precedence(t.kind) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
			wantOperand = true

		case tokLParen:
			if !wantOperand {
				return nil, &ParseError{Pos: t.pos, Token: t.text, Msg: "expected operator"}
			}
			ops = append(ops, t)

		case tokRParen:
			if wantOperand {
				return nil, &ParseError{Pos: t.pos, Token: t.text, Msg: "expected operand"}
			}
			if err := popUntilLParen(t); err != nil {
				return nil, err
			}
		}
	}

	if wantOperand {
		if len(toks) == 0 {
			return nil, &ParseError{Pos: 0, Token: "", Msg: "empty expression"}
		}
		last := toks[len(toks)-1]

		return nil, &ParseError{Pos: last.pos, Token: last.text, Msg: "dangling operator"}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokLParen {
			return nil, &ParseError{Pos: top.pos, Token: top.text, Msg: "unbalanced opening parenthesis"}
		}
		out = append(out, top)
	}

	return &Expr{postfix: out, vars: maxVar}, nil
}

// Eval runs the postfix machine under a total assignment: variables push
// their truth value, NOT negates the top, AND/OR fold the top two.
//
// Returns ErrBadWitness when the assignment is shorter than Vars().
//
// Complexity: O(len(postfix)) time, O(depth) space.
func (e *Expr) Eval(a Assignment) (bool, error) {
	if len(a) < e.vars {
		return false, ErrBadWitness
	}
	stack := make([]bool, 0, len(e.postfix))
	for i := range e.postfix {
		t := &e.postfix[i]
		switch t.kind {
		case tokVar:
			stack = append(stack, a[t.v-1])
		case tokNot:
			stack[len(stack)-1] = !stack[len(stack)-1]
		case tokAnd:
			b := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = stack[len(stack)-1] && b
		case tokOr:
			b := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = stack[len(stack)-1] || b
		}
	}

	return stack[0], nil
}
