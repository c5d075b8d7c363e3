package model

import (
	"fmt"
	"strings"

	"github.com/mjmoore-dev/dbnormalizer/pkg/lexer"
)

// ErrorKind enumerates the parser's error taxonomy (spec.md §7).
type ErrorKind int

const (
	ErrUnknownToken ErrorKind = iota
	ErrUnexpectedToken
	ErrDuplicateColumn
	ErrDuplicatePrimaryKey
	ErrUnknownColumn
	ErrDuplicateSingleBlock
	ErrDuplicateMultiBlock
	ErrDuplicateRhs
)

var errorKindNames = map[ErrorKind]string{
	ErrUnknownToken:         "Unknown",
	ErrUnexpectedToken:      "Unexpected",
	ErrDuplicateColumn:      "DuplicateColumn",
	ErrDuplicatePrimaryKey:  "DuplicatePrimaryKey",
	ErrUnknownColumn:        "UnknownColumn",
	ErrDuplicateSingleBlock: "DuplicateSingleBlock",
	ErrDuplicateMultiBlock:  "DuplicateMultiBlock",
	ErrDuplicateRhs:         "DuplicateRhs",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseError is the single error type raised by the lexer-consuming
// parsers. Every error carries the failing line's text (for echo), the
// offending token's position (to render a caret underline sized to the
// token), and a human-readable description of the kind of failure.
type ParseError struct {
	Kind       ErrorKind
	Token      lexer.Token
	SourceLine string
	Expected   string // grammar fragment, only set for ErrUnexpectedToken
	Name       string // offending identifier, for the *-named error kinds
}

func (e *ParseError) Error() string {
	var b strings.Builder

	b.WriteString(e.SourceLine)
	b.WriteByte('\n')

	caretStart := e.Token.Column - e.Token.Length
	if caretStart < 0 {
		caretStart = 0
	}
	b.WriteString(strings.Repeat(" ", caretStart))

	caretLen := e.Token.Length
	if caretLen < 1 {
		caretLen = 1
	}
	b.WriteString(strings.Repeat("^", caretLen))
	b.WriteByte('\n')

	fmt.Fprintf(&b, "line %d: %s", e.Token.Line+1, e.describe())

	return b.String()
}

func (e *ParseError) describe() string {
	switch e.Kind {
	case ErrUnknownToken:
		return fmt.Sprintf("unknown token %q found", e.Token.Literal)
	case ErrUnexpectedToken:
		return fmt.Sprintf("unexpected token of kind %s; expected grammar: %s", e.Token.Kind, e.Expected)
	case ErrDuplicateColumn:
		return fmt.Sprintf("duplicate column %q", e.Name)
	case ErrDuplicatePrimaryKey:
		return "duplicate KEY: clause"
	case ErrUnknownColumn:
		return fmt.Sprintf("column %q does not exist on the bound table", e.Name)
	case ErrDuplicateSingleBlock:
		return fmt.Sprintf("single-valued dependency block for %q already declared", e.Name)
	case ErrDuplicateMultiBlock:
		return fmt.Sprintf("multi-valued dependency block for %q already declared", e.Name)
	case ErrDuplicateRhs:
		return fmt.Sprintf("duplicate right-hand column %q in the same block", e.Name)
	default:
		return "parse error"
	}
}

func newUnknownToken(tok lexer.Token, line string) *ParseError {
	return &ParseError{Kind: ErrUnknownToken, Token: tok, SourceLine: line}
}

func newUnexpectedToken(tok lexer.Token, line, expected string) *ParseError {
	return &ParseError{Kind: ErrUnexpectedToken, Token: tok, SourceLine: line, Expected: expected}
}

func newDuplicateColumn(tok lexer.Token, line, name string) *ParseError {
	return &ParseError{Kind: ErrDuplicateColumn, Token: tok, SourceLine: line, Name: name}
}

func newDuplicatePrimaryKey(tok lexer.Token, line string) *ParseError {
	return &ParseError{Kind: ErrDuplicatePrimaryKey, Token: tok, SourceLine: line}
}

func newUnknownColumn(tok lexer.Token, line, name string) *ParseError {
	return &ParseError{Kind: ErrUnknownColumn, Token: tok, SourceLine: line, Name: name}
}

func newDuplicateSingleBlock(tok lexer.Token, line, name string) *ParseError {
	return &ParseError{Kind: ErrDuplicateSingleBlock, Token: tok, SourceLine: line, Name: name}
}

func newDuplicateMultiBlock(tok lexer.Token, line, name string) *ParseError {
	return &ParseError{Kind: ErrDuplicateMultiBlock, Token: tok, SourceLine: line, Name: name}
}

func newDuplicateRhs(tok lexer.Token, line, name string) *ParseError {
	return &ParseError{Kind: ErrDuplicateRhs, Token: tok, SourceLine: line, Name: name}
}

// NewUnknownToken, NewUnexpectedToken, ... are the parser-facing
// constructors; exported so pkg/parser can raise them without reaching
// into model's unexported helpers.
func NewUnknownToken(tok lexer.Token, line string) *ParseError { return newUnknownToken(tok, line) }
func NewUnexpectedToken(tok lexer.Token, line, expected string) *ParseError {
	return newUnexpectedToken(tok, line, expected)
}
func NewDuplicateColumn(tok lexer.Token, line, name string) *ParseError {
	return newDuplicateColumn(tok, line, name)
}
func NewDuplicatePrimaryKey(tok lexer.Token, line string) *ParseError {
	return newDuplicatePrimaryKey(tok, line)
}
func NewUnknownColumn(tok lexer.Token, line, name string) *ParseError {
	return newUnknownColumn(tok, line, name)
}
func NewDuplicateSingleBlock(tok lexer.Token, line, name string) *ParseError {
	return newDuplicateSingleBlock(tok, line, name)
}
func NewDuplicateMultiBlock(tok lexer.Token, line, name string) *ParseError {
	return newDuplicateMultiBlock(tok, line, name)
}
func NewDuplicateRhs(tok lexer.Token, line, name string) *ParseError {
	return newDuplicateRhs(tok, line, name)
}
