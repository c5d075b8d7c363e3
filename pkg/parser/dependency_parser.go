package parser

import (
	"github.com/mjmoore-dev/dbnormalizer/pkg/lexer"
	"github.com/mjmoore-dev/dbnormalizer/pkg/model"
)

// DependencyParser builds a model.DependencyManager from a dependency
// declaration file, cross-validated against an already-parsed model.Table.
//
//	file     = { stmt }
//	stmt     = key_decl | fd
//	key_decl = "KEY" ":" ( identifier | "(" identifier { "," identifier } ")" )
//	fd       = identifier "-" ">" [ ">" ] rhs
//	rhs      = identifier | "(" identifier { "," identifier } ")"
type DependencyParser struct {
	*base
	table *model.Table

	// singleDeclared/multiDeclared track which determinants have already
	// had a singles/multis block stated, so a restatement can be reported
	// as DuplicateSingleBlock/DuplicateMultiBlock rather than silently
	// merged.
	singleDeclared map[string]bool
	multiDeclared  map[string]bool
}

// NewDependencyParser tokenizes src and binds the parser to table for
// column cross-validation.
func NewDependencyParser(src string, table *model.Table) (*DependencyParser, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return &DependencyParser{
		base:           newBase(src, toks),
		table:          table,
		singleDeclared: make(map[string]bool),
		multiDeclared:  make(map[string]bool),
	}, nil
}

// ParseManager runs the dependency grammar to completion, returning the
// manager it describes. On success the manager's primary-key list has
// already been propagated back onto the bound Table.
func (p *DependencyParser) ParseManager() (*model.DependencyManager, error) {
	mgr := model.NewDependencyManager()

	for p.curToken.Kind != lexer.EOF {
		if p.curTokenIs(lexer.Key) {
			if err := p.parseKeyDecl(mgr); err != nil {
				return nil, err
			}
		} else {
			if err := p.parseFD(mgr); err != nil {
				return nil, err
			}
		}
		p.nextToken()
	}

	for _, name := range mgr.PrimaryKey {
		p.table.AddPrimaryKey(name)
	}

	return mgr, nil
}

func (p *DependencyParser) parseKeyDecl(mgr *model.DependencyManager) error {
	if mgr.HasPrimaryKeyDeclared() {
		return model.NewDuplicatePrimaryKey(p.curToken, p.sourceLine(p.curToken))
	}

	if _, err := p.expectPeek(lexer.Colon, "KEY: <names>"); err != nil {
		return err
	}

	if p.peekTokenIs(lexer.LParen) {
		p.nextToken()
		names, err := p.parseIdentList()
		if err != nil {
			return err
		}
		for _, n := range names {
			if !p.table.HasColumn(n.Literal) {
				return model.NewUnknownColumn(n, p.sourceLine(n), n.Literal)
			}
			mgr.AddPrimaryKey(n.Literal)
		}
		return nil
	}

	nameTok, err := p.expectPeek(lexer.Identifier, "column name")
	if err != nil {
		return err
	}
	if !p.table.HasColumn(nameTok.Literal) {
		return model.NewUnknownColumn(nameTok, p.sourceLine(nameTok), nameTok.Literal)
	}
	mgr.AddPrimaryKey(nameTok.Literal)
	return nil
}

func (p *DependencyParser) parseFD(mgr *model.DependencyManager) error {
	lhsTok := p.curToken
	if lhsTok.Kind != lexer.Identifier {
		if lhsTok.Kind == lexer.Unknown {
			return model.NewUnknownToken(lhsTok, p.sourceLine(lhsTok))
		}
		return model.NewUnexpectedToken(lhsTok, p.sourceLine(lhsTok), "KEY: ... | identifier -> ...")
	}
	if !p.table.HasColumn(lhsTok.Literal) {
		return model.NewUnknownColumn(lhsTok, p.sourceLine(lhsTok), lhsTok.Literal)
	}

	if _, err := p.expectPeek(lexer.Dash, "-> or ->>"); err != nil {
		return err
	}
	if _, err := p.expectPeek(lexer.RAngle, "-> or ->>"); err != nil {
		return err
	}

	multi := false
	if p.peekTokenIs(lexer.RAngle) {
		p.nextToken()
		multi = true
	}

	names, err := p.parseRHS()
	if err != nil {
		return err
	}

	row := mgr.RowOrCreate(lhsTok.Literal)

	if multi {
		if p.multiDeclared[lhsTok.Literal] {
			return model.NewDuplicateMultiBlock(lhsTok, p.sourceLine(lhsTok), lhsTok.Literal)
		}
		p.multiDeclared[lhsTok.Literal] = true
	} else {
		if p.singleDeclared[lhsTok.Literal] {
			return model.NewDuplicateSingleBlock(lhsTok, p.sourceLine(lhsTok), lhsTok.Literal)
		}
		p.singleDeclared[lhsTok.Literal] = true
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if !p.table.HasColumn(n.Literal) {
			return model.NewUnknownColumn(n, p.sourceLine(n), n.Literal)
		}
		if seen[n.Literal] {
			return model.NewDuplicateRhs(n, p.sourceLine(n), n.Literal)
		}
		seen[n.Literal] = true

		if multi {
			row.AddMulti(n.Literal)
		} else {
			row.AddSingle(n.Literal)
		}
	}

	return nil
}

// parseRHS parses the single identifier or parenthesized identifier list
// that follows an arrow. curToken is left on the last token consumed.
func (p *DependencyParser) parseRHS() ([]lexer.Token, error) {
	if p.peekTokenIs(lexer.LParen) {
		p.nextToken()
		return p.parseIdentList()
	}
	tok, err := p.expectPeek(lexer.Identifier, "column name")
	if err != nil {
		return nil, err
	}
	return []lexer.Token{tok}, nil
}

// parseIdentList parses "(" identifier { "," identifier } ")" with
// curToken positioned on the "(" on entry, and left on ")" on return.
func (p *DependencyParser) parseIdentList() ([]lexer.Token, error) {
	var names []lexer.Token

	first, err := p.expectPeek(lexer.Identifier, "column name")
	if err != nil {
		return nil, err
	}
	names = append(names, first)

	for p.peekTokenIs(lexer.Comma) {
		p.nextToken()
		tok, err := p.expectPeek(lexer.Identifier, "column name")
		if err != nil {
			return nil, err
		}
		names = append(names, tok)
	}

	if _, err := p.expectPeek(lexer.RParen, ")"); err != nil {
		return nil, err
	}

	return names, nil
}
