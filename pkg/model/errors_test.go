package model

import (
	"strings"
	"testing"

	"github.com/mjmoore-dev/dbnormalizer/pkg/lexer"
)

func TestParseErrorRendersCaretUnderToken(t *testing.T) {
	line := "CREATE TABLE Foo(orderId orderId INT);"
	tok := lexer.Token{Kind: lexer.Identifier, Literal: "orderId", Line: 0, Column: 32, Length: 7}

	err := NewDuplicateColumn(tok, line, "orderId")
	msg := err.Error()

	lines := strings.Split(msg, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (source, caret, message), got %d: %q", len(lines), msg)
	}
	if lines[0] != line {
		t.Fatalf("expected first line to echo the source line, got %q", lines[0])
	}
	caretLine := lines[1]
	if strings.Count(caretLine, "^") != tok.Length {
		t.Fatalf("expected caret underline of length %d, got %q", tok.Length, caretLine)
	}
	if !strings.HasPrefix(lines[2], "line 1: ") {
		t.Fatalf("expected message to start with 1-based line number, got %q", lines[2])
	}
	if !strings.Contains(lines[2], `duplicate column "orderId"`) {
		t.Fatalf("expected duplicate-column description, got %q", lines[2])
	}
}

func TestParseErrorCaretClampsAtLineStart(t *testing.T) {
	tok := lexer.Token{Kind: lexer.Identifier, Literal: "a", Line: 0, Column: 0, Length: 5}
	err := NewUnknownToken(tok, "a")
	if !strings.Contains(err.Error(), strings.Repeat("^", 5)) {
		t.Fatalf("expected a clamped, non-negative caret offset, got %q", err.Error())
	}
}

func TestErrorKindDescriptions(t *testing.T) {
	line := "KEY: orderId"
	tok := lexer.Token{Kind: lexer.Key, Literal: "KEY", Line: 0, Column: 3, Length: 3}

	cases := []struct {
		err  *ParseError
		want string
	}{
		{NewDuplicatePrimaryKey(tok, line), "duplicate KEY: clause"},
		{NewUnknownColumn(tok, line, "ghost"), `column "ghost" does not exist`},
		{NewDuplicateSingleBlock(tok, line, "orderId"), `single-valued dependency block for "orderId"`},
		{NewDuplicateMultiBlock(tok, line, "orderId"), `multi-valued dependency block for "orderId"`},
		{NewDuplicateRhs(tok, line, "qty"), `duplicate right-hand column "qty"`},
	}
	for _, c := range cases {
		if !strings.Contains(c.err.Error(), c.want) {
			t.Errorf("expected error to contain %q, got %q", c.want, c.err.Error())
		}
	}
}
