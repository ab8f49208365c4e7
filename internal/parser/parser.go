// Package parser reads compilation units and annotation text into the
// source model. It is built on participle and understands declarations
// only; bodies and expressions are carried through untouched.
package parser

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/srcmodel/internal/annotations"
	"github.com/toyz/srcmodel/internal/errors"
	"github.com/toyz/srcmodel/internal/source"
)

// Parser turns source text into *source.File values
type Parser struct {
	files       *participle.Parser[compilationUnit]
	annotations *participle.Parser[annotationNode]
}

// NewParser creates a new parser
func NewParser() *Parser {
	options := []participle.Option{
		participle.Lexer(sourceLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(4),
	}
	return &Parser{
		files:       participle.MustBuild[compilationUnit](options...),
		annotations: participle.MustBuild[annotationNode](options...),
	}
}

// ParseFile reads and parses the file at path
func (p *Parser) ParseFile(path string) (*source.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}
	f, err := p.ParseSource(path, string(data))
	if err != nil {
		return nil, err
	}
	f.Path = path
	return f, nil
}

// ParseSource parses one compilation unit. filename is only used in
// error locations.
func (p *Parser) ParseSource(filename, src string) (*source.File, error) {
	unit, err := p.files.ParseString(filename, src)
	if err != nil {
		return nil, syntaxError(filename, err)
	}
	b := &builder{filename: filename, src: src}
	return b.file(unit)
}

// ParseAnnotation parses annotation text such as `@Column(name = "id")`
// and appends the result to target.
func (p *Parser) ParseAnnotation(target *annotations.Target, text string) (*annotations.Annotation, error) {
	node, err := p.annotations.ParseString("", text)
	if err != nil {
		return nil, syntaxError("", err)
	}
	b := &builder{src: text}
	return b.annotation(target, node)
}

func syntaxError(filename string, err error) error {
	var perr participle.Error
	if !stderrors.As(err, &perr) {
		return errors.WrapParseError(filename, err)
	}
	pos := perr.Position()
	serr := errors.NewSyntaxErrorAt(perr.Message(), errors.SourceLocation{
		File:   filename,
		Line:   pos.Line,
		Column: pos.Column,
	})
	var unexpected *participle.UnexpectedTokenError
	if stderrors.As(err, &unexpected) {
		serr.WithToken(unexpected.Unexpected.Value)
	}
	return serr
}

var elided = func() map[lexer.TokenType]bool {
	symbols := sourceLexer.Symbols()
	return map[lexer.TokenType]bool{
		symbols["Whitespace"]: true,
		symbols["Comment"]:    true,
	}
}()

// rawText returns the source text spanned by the significant tokens,
// including any comments and whitespace between them.
func rawText(src string, tokens []lexer.Token) string {
	start, end := -1, -1
	for _, tok := range tokens {
		if tok.EOF() || elided[tok.Type] {
			continue
		}
		if start < 0 {
			start = tok.Pos.Offset
		}
		end = tok.Pos.Offset + len(tok.Value)
	}
	if start < 0 || end > len(src) {
		return ""
	}
	return src[start:end]
}

func joinName(parts []string) string {
	return strings.Join(parts, ".")
}
