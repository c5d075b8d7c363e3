package parser

import (
	"github.com/mjmoore-dev/dbnormalizer/pkg/lexer"
	"github.com/mjmoore-dev/dbnormalizer/pkg/model"
)

// SchemaParser builds a model.Table from a single CREATE TABLE statement.
//
//	schema  = "CREATE" "TABLE" [ "IF" "NOT" "EXISTS" ] identifier
//	          "(" columns ")" ";"
//	columns = column { "," column }
//	column  = identifier type [ null_spec ]
//	type    = ("INT" | "INTEGER") [ "(" intconst ")" ]
//	        | "VARCHAR" "(" intconst ")"
type SchemaParser struct {
	*base
}

// NewSchemaParser tokenizes src and returns a parser positioned at its
// first token.
func NewSchemaParser(src string) (*SchemaParser, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return &SchemaParser{base: newBase(src, toks)}, nil
}

// ParseTable runs the schema grammar to completion and returns the table
// it describes.
func (p *SchemaParser) ParseTable() (*model.Table, error) {
	if err := p.expectCur(lexer.Create, "CREATE TABLE ..."); err != nil {
		return nil, err
	}
	if _, err := p.expectPeek(lexer.Table, "CREATE TABLE ..."); err != nil {
		return nil, err
	}

	ifNotExists := false
	if p.peekTokenIs(lexer.If) {
		p.nextToken()
		if _, err := p.expectPeek(lexer.Not, "IF NOT EXISTS"); err != nil {
			return nil, err
		}
		if _, err := p.expectPeek(lexer.Exists, "IF NOT EXISTS"); err != nil {
			return nil, err
		}
		ifNotExists = true
	}

	nameTok, err := p.expectPeek(lexer.Identifier, "table name")
	if err != nil {
		return nil, err
	}
	table := model.NewTable(nameTok.Literal)
	table.IfNotExists = ifNotExists

	if _, err := p.expectPeek(lexer.LParen, "("); err != nil {
		return nil, err
	}

	for {
		col, err := p.parseColumn(table)
		if err != nil {
			return nil, err
		}
		table.AddColumn(col)

		if p.peekTokenIs(lexer.Comma) {
			p.nextToken()
			continue
		}
		break
	}

	if _, err := p.expectPeek(lexer.RParen, ")"); err != nil {
		return nil, err
	}
	if _, err := p.expectPeek(lexer.Semicolon, ";"); err != nil {
		return nil, err
	}

	return table, nil
}

func (p *SchemaParser) parseColumn(table *model.Table) (model.Column, error) {
	nameTok, err := p.expectPeek(lexer.Identifier, "column name")
	if err != nil {
		return model.Column{}, err
	}
	if table.HasColumn(nameTok.Literal) {
		return model.Column{}, model.NewDuplicateColumn(nameTok, p.sourceLine(nameTok), nameTok.Literal)
	}

	def, err := p.parseColumnDef()
	if err != nil {
		return model.Column{}, err
	}

	return model.Column{Name: nameTok.Literal, Def: def}, nil
}

func (p *SchemaParser) parseColumnDef() (model.ColumnDef, error) {
	var def model.ColumnDef

	switch {
	case p.peekTokenIs(lexer.Int):
		p.nextToken()
		def.DataType = "INT"
	case p.peekTokenIs(lexer.Integer):
		p.nextToken()
		def.DataType = "INTEGER"
	case p.peekTokenIs(lexer.Varchar):
		p.nextToken()
		def.DataType = "VARCHAR"
	default:
		if p.peekToken.Kind == lexer.Unknown {
			return def, model.NewUnknownToken(p.peekToken, p.sourceLine(p.peekToken))
		}
		return def, model.NewUnexpectedToken(p.peekToken, p.sourceLine(p.peekToken), "INT | INTEGER | VARCHAR")
	}

	mandatorySize := def.DataType == "VARCHAR"

	if p.peekTokenIs(lexer.LParen) {
		p.nextToken()
		sizeTok, err := p.expectPeek(lexer.IntConst, "integer size")
		if err != nil {
			return def, err
		}
		size := parseUintLiteral(sizeTok.Literal)
		def.Size = &size
		if _, err := p.expectPeek(lexer.RParen, ")"); err != nil {
			return def, err
		}
	} else if mandatorySize {
		if p.peekToken.Kind == lexer.Unknown {
			return def, model.NewUnknownToken(p.peekToken, p.sourceLine(p.peekToken))
		}
		return def, model.NewUnexpectedToken(p.peekToken, p.sourceLine(p.peekToken), "VARCHAR(<size>)")
	}

	switch {
	case p.peekTokenIs(lexer.Not):
		p.nextToken()
		if _, err := p.expectPeek(lexer.Null, "NOT NULL"); err != nil {
			return def, err
		}
		def.Nullable = false
	case p.peekTokenIs(lexer.Null):
		p.nextToken()
		def.Nullable = true
	default:
		def.Nullable = false
	}

	return def, nil
}

func parseUintLiteral(lit string) int {
	n := 0
	for i := 0; i < len(lit); i++ {
		n = n*10 + int(lit[i]-'0')
	}
	return n
}
