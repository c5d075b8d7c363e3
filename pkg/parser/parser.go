// Package parser implements the two recursive-descent grammars that feed
// the normalizer: the schema grammar (CREATE TABLE) and the dependency
// grammar (functional and multi-valued dependency declarations).
package parser

import (
	"strings"

	"github.com/mjmoore-dev/dbnormalizer/pkg/lexer"
	"github.com/mjmoore-dev/dbnormalizer/pkg/model"
)

// base holds the cursor state shared by both grammars: the current and
// peek tokens, the full token stream, and the original source split into
// lines (for error echo). Every production method hangs off base through
// an embedding parser type, following the one-token-lookahead idiom.
type base struct {
	tokens []lexer.Token
	pos    int

	lines []string

	curToken  lexer.Token
	peekToken lexer.Token
}

func newBase(src string, tokens []lexer.Token) *base {
	b := &base{
		tokens: tokens,
		lines:  strings.Split(src, "\n"),
	}
	// Prime curToken/peekToken so the first call to a production method
	// sees a fully-loaded cursor.
	b.nextToken()
	b.nextToken()
	return b
}

func (b *base) nextToken() {
	b.curToken = b.peekToken
	if b.pos < len(b.tokens) {
		b.peekToken = b.tokens[b.pos]
		b.pos++
	} else {
		b.peekToken = lexer.Token{Kind: lexer.EOF}
	}
}

func (b *base) curTokenIs(k lexer.Kind) bool  { return b.curToken.Kind == k }
func (b *base) peekTokenIs(k lexer.Kind) bool { return b.peekToken.Kind == k }

// sourceLine returns the text of the line the token was read from, or ""
// if it falls outside the recorded source (should not happen).
func (b *base) sourceLine(tok lexer.Token) string {
	if tok.Line < 0 || tok.Line >= len(b.lines) {
		return ""
	}
	return b.lines[tok.Line]
}

// expectPeek advances past the peek token if it has kind k. Otherwise it
// reports a *model.ParseError: Unknown when the current or peek token is
// an Unknown token, Unexpected (with the expected grammar fragment) else.
func (b *base) expectPeek(k lexer.Kind, expected string) (lexer.Token, error) {
	if b.curToken.Kind == lexer.Unknown {
		return lexer.Token{}, model.NewUnknownToken(b.curToken, b.sourceLine(b.curToken))
	}
	if !b.peekTokenIs(k) {
		if b.peekToken.Kind == lexer.Unknown {
			return lexer.Token{}, model.NewUnknownToken(b.peekToken, b.sourceLine(b.peekToken))
		}
		return lexer.Token{}, model.NewUnexpectedToken(b.peekToken, b.sourceLine(b.peekToken), expected)
	}
	tok := b.peekToken
	b.nextToken()
	return tok, nil
}

// expectCur reports whether curToken has kind k, raising an Unexpected
// error (with the expected grammar fragment) when it does not.
func (b *base) expectCur(k lexer.Kind, expected string) error {
	if b.curToken.Kind == lexer.Unknown {
		return model.NewUnknownToken(b.curToken, b.sourceLine(b.curToken))
	}
	if !b.curTokenIs(k) {
		return model.NewUnexpectedToken(b.curToken, b.sourceLine(b.curToken), expected)
	}
	return nil
}
