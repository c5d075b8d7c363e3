package lexer

import "testing"

func TestTokenizeSchemaKeywords(t *testing.T) {
	toks, err := Tokenize("CREATE TABLE IF NOT EXISTS Foo(id INT NOT NULL);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantKinds := []Kind{
		Create, Table, If, Not, Exists, Identifier, LParen,
		Identifier, Int, Not, Null, RParen, Semicolon, EOF,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantKinds), toks)
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: got kind %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestTokenizeCaseInsensitiveKeywords(t *testing.T) {
	toks, err := Tokenize("create table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != Create || toks[1].Kind != Table {
		t.Fatalf("expected lower-case keywords to classify as keywords, got %v", toks[:2])
	}
}

func TestTokenizeDependencyPunctuation(t *testing.T) {
	toks, err := Tokenize("KEY: orderId\norderId -> customerId\nproductId ->> tagId")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantKinds := []Kind{
		Key, Colon, Identifier,
		Identifier, Dash, RAngle, Identifier,
		Identifier, Dash, RAngle, RAngle, Identifier,
		EOF,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantKinds), toks)
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: got kind %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestTokenizeUnknownCharacter(t *testing.T) {
	toks, err := Tokenize("Foo @ Bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[1].Kind != Unknown || toks[1].Literal != "@" {
		t.Fatalf("expected an Unknown token for '@', got %v", toks[1])
	}
}

func TestNextPastEOFReturnsErrOutOfRange(t *testing.T) {
	l := New("")
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("unexpected error on first call: %v", err)
	}
	if tok.Kind != EOF {
		t.Fatalf("expected EOF, got %v", tok)
	}
	if _, err := l.Next(); err != ErrOutOfRange {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestLineTrackingAcrossCRLFAndLF(t *testing.T) {
	toks, err := Tokenize("a\r\nb\nc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4: %v", len(toks), toks)
	}
	if toks[0].Line != 0 || toks[1].Line != 1 || toks[2].Line != 2 {
		t.Fatalf("unexpected line numbers: %v", toks[:3])
	}
}
