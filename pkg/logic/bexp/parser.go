// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package bexp

import (
	"slices"

	"github.com/consensys/go-boolex/pkg/logic"
	"github.com/consensys/go-boolex/pkg/util"
	"github.com/consensys/go-boolex/pkg/util/source"
)

// Parse a given input string into an expression tree.  Connectives are
// left-associative and bind from loosest to tightest in the order OR, AND,
// XOR, XNOR, NOR, NAND, whilst negation binds to the single term which
// follows it.  Hence "not a or b" parses as "or(not(a), b)", and brackets
// (round or square) are needed to negate anything larger.
func Parse(input string) (*logic.Tree, []source.SyntaxError) {
	var (
		srcfile = source.NewSourceFile("expr", []byte(input))
		lexer   = source.NewLexer[rune](srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")

		return nil, []source.SyntaxError{*err}
	}
	// Remove any whitespace
	tokens = util.RemoveMatching(tokens, func(t source.Token) bool { return t.Kind == WHITESPACE })
	//
	parser := &Parser{srcfile, tokens, 0}
	// Parse everything from the loosest level down
	root, errs := parser.parseLevel(0)
	// Check all parsed
	if len(errs) == 0 && !parser.Done() {
		errs = parser.syntaxErrors(parser.lookahead(), "unknown token")
	}
	//
	if len(errs) != 0 {
		return nil, errs
	}
	// All good!
	return logic.NewTree(root), nil
}

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// LSQUARE signals "left square bracket"
const LSQUARE uint = 4

// RSQUARE signals "right square bracket"
const RSQUARE uint = 5

// IDENTIFIER signals a variable
const IDENTIFIER uint = 6

// NOT signals logical negation
const NOT uint = 7

// OR signals logical disjunction
const OR uint = 8

// AND signals logical conjunction
const AND uint = 9

// XOR signals exclusive disjunction
const XOR uint = 10

// XNOR signals the negation of exclusive disjunction
const XNOR uint = 11

// NOR signals the negation of disjunction
const NOR uint = 12

// NAND signals the negation of conjunction
const NAND uint = 13

// Connectives in parsing order, from loosest to tightest binding.
var levels = []struct {
	tag      uint
	operator logic.Operator
}{
	{OR, logic.OR},
	{AND, logic.AND},
	{XOR, logic.XOR},
	{XNOR, logic.XNOR},
	{NOR, logic.NOR},
	{NAND, logic.NAND},
}

// Rule for describing whitespace
var whitespace source.Scanner[rune] = source.Many(source.Or(
	source.Unit(' '),
	source.Unit('\t'),
	source.Unit('\n'),
	source.Unit('\r')))

// Rule for describing alphanumeric characters
var alphanumeric source.Scanner[rune] = source.Or(
	source.Within('0', '9'),
	source.Within('a', 'z'),
	source.Within('A', 'Z'))

// Rule for describing identifiers, which are single alphanumeric characters.
// Anything longer is not an identifier at all, rather than two identifiers
// side by side.
var identifier source.Scanner[rune] = source.NotFollowedBy(alphanumeric, alphanumeric)

// Construct a rule for a given keyword.  Keywords are matched
// case-insensitively, and fail where they run straight into further
// alphanumeric text (e.g. "orb" contains no keyword "or").
func keyword(word string) source.Scanner[rune] {
	return source.NotFollowedBy(source.StringFold(word), alphanumeric)
}

// lexing rules.  Symbols sharing a prefix are ordered longest first, and
// keywords likewise, since the first matching rule wins.
var rules []source.LexRule[rune] = []source.LexRule[rune]{
	source.Rule(source.Unit('('), LBRACE),
	source.Rule(source.Unit(')'), RBRACE),
	source.Rule(source.Unit('['), LSQUARE),
	source.Rule(source.Unit(']'), RSQUARE),
	source.Rule(source.Unit('-', '^'), XNOR),
	source.Rule(source.Unit('-', '+'), NOR),
	source.Rule(source.Unit('-', '*'), NAND),
	source.Rule(source.Unit('|', '|'), OR),
	source.Rule(source.Unit('|'), OR),
	source.Rule(source.Unit('+'), OR),
	source.Rule(source.Unit('&', '&'), AND),
	source.Rule(source.Unit('&'), AND),
	source.Rule(source.Unit('*'), AND),
	source.Rule(source.Unit('^'), XOR),
	source.Rule(source.Unit('~'), NOT),
	source.Rule(source.Unit('!'), NOT),
	source.Rule(keyword("xnor"), XNOR),
	source.Rule(keyword("xor"), XOR),
	source.Rule(keyword("nand"), NAND),
	source.Rule(keyword("nor"), NOR),
	source.Rule(keyword("not"), NOT),
	source.Rule(keyword("or"), OR),
	source.Rule(keyword("and"), AND),
	source.Rule(whitespace, WHITESPACE),
	source.Rule(identifier, IDENTIFIER),
	source.Rule(source.Eof[rune](), END_OF),
}

// Parser is a recursive descent parser for boolean expressions, with one
// parsing level per connective.
type Parser struct {
	srcfile *source.File
	tokens  []source.Token
	// Position within the tokens
	index int
}

// Done determines whether or not the parser has parsed all the available
// tokens.
func (p *Parser) Done() bool {
	return p.index+1 >= len(p.tokens)
}

func (p *Parser) parseLevel(level int) (logic.Node, []source.SyntaxError) {
	if level >= len(levels) {
		return p.parseTerm()
	}
	// Parse leftmost operand
	term, errs := p.parseLevel(level + 1)
	// Match any further operands at this level
	for len(errs) == 0 && p.follows(levels[level].tag) {
		// Consume connective
		p.expect(levels[level].tag)
		//
		var rhs logic.Node
		//
		rhs, errs = p.parseLevel(level + 1)
		//
		if len(errs) == 0 {
			term = conjoin(levels[level].operator, term, rhs)
		}
	}
	//
	return term, errs
}

func (p *Parser) parseTerm() (logic.Node, []source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case NOT:
		return p.parseNegatedTerm()
	case LBRACE:
		return p.parseBracketedTerm(LBRACE, RBRACE, "expected ')'")
	case LSQUARE:
		return p.parseBracketedTerm(LSQUARE, RSQUARE, "expected ']'")
	case IDENTIFIER:
		return p.parseVariable()
	}
	//
	return nil, p.syntaxErrors(token, "expected expression")
}

func (p *Parser) parseNegatedTerm() (logic.Node, []source.SyntaxError) {
	p.expect(NOT)
	// Negation applies to the very next term only
	term, errs := p.parseTerm()
	//
	if len(errs) != 0 {
		return term, errs
	}
	//
	return term.Negate(), nil
}

func (p *Parser) parseBracketedTerm(opening uint, closing uint, msg string) (logic.Node, []source.SyntaxError) {
	p.expect(opening)
	//
	term, errs := p.parseLevel(0)
	//
	if len(errs) == 0 && !p.match(closing) {
		return nil, p.syntaxErrors(p.lookahead(), msg)
	}
	//
	return term, errs
}

func (p *Parser) parseVariable() (logic.Node, []source.SyntaxError) {
	var (
		id   = p.expect(IDENTIFIER)
		name = p.string(id)
	)
	//
	variable, err := logic.NewVariable(name, false)
	//
	if err != nil {
		return nil, p.syntaxErrors(id, err.Error())
	}
	//
	return variable, nil
}

// Combine two operands with a given connective.
func conjoin(operator logic.Operator, lhs logic.Node, rhs logic.Node) logic.Node {
	expression, err := logic.NewExpression(operator, lhs, rhs, false)
	//
	if err != nil {
		panic("unreachable")
	}
	//
	return expression
}

// Get the text representing the given token as a string.
func (p *Parser) string(token source.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() source.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) source.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxErrors(token source.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
