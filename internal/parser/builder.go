package parser

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/srcmodel/internal/annotations"
	"github.com/toyz/srcmodel/internal/errors"
	"github.com/toyz/srcmodel/internal/source"
)

// builder converts a parse tree into the source model
type builder struct {
	filename string
	src      string
}

func (b *builder) file(unit *compilationUnit) (*source.File, error) {
	pkg := ""
	if unit.Package != nil {
		pkg = joinName(unit.Package.Parts)
	}
	f := source.NewFile(pkg)

	for _, imp := range unit.Imports {
		decl := source.Import{Static: imp.Static}
		parts := imp.Parts
		if n := len(parts); n > 0 && parts[n-1] == "*" {
			decl.Wildcard = true
			parts = parts[:n-1]
		}
		decl.Name = joinName(parts)
		f.AddImportDecl(decl)
	}

	for _, decl := range unit.Types {
		if err := b.class(f, decl); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (b *builder) class(f *source.File, decl *typeDecl) error {
	kind, _ := source.ParseKind(decl.Kind)
	c, err := f.AddClass(kind, decl.Name)
	if err != nil {
		return b.located(err, decl.Pos)
	}
	nodes, modifiers := splitPrefix(decl.Prefix)
	c.Modifiers = modifiers
	c.TypeParams = b.typeArgs(decl.TypeParams)
	c.Extends = b.types(decl.Extends)
	c.Implements = b.types(decl.Implements)

	if err := b.annotate(&c.Target, nodes); err != nil {
		return err
	}
	for _, m := range decl.Members {
		if err := b.member(c, m); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) member(c *source.Class, decl *memberDecl) error {
	typ := b.raw(decl.Type.Tokens)
	nodes, modifiers := splitPrefix(decl.Prefix)

	if decl.Field != nil {
		if decl.Name == "" {
			return b.syntax(fmt.Sprintf("field of type %s has no name", typ), decl.Pos)
		}
		fd, err := c.AddField(typ, decl.Name)
		if err != nil {
			return b.located(err, decl.Pos)
		}
		fd.Modifiers = modifiers
		if decl.Field.Init != nil {
			fd.Initializer = b.raw(decl.Field.Init.Tokens)
		}
		return b.annotate(&fd.Target, nodes)
	}

	returnType, name := typ, decl.Name
	if name == "" {
		// constructor: what was read as the type is the name
		returnType, name = "", typ
		if name != c.Name {
			return b.syntax(fmt.Sprintf("method %s has no return type", name), decl.Pos)
		}
	}
	m, err := c.AddMethod(returnType, name)
	if err != nil {
		return b.located(err, decl.Pos)
	}
	m.Modifiers = modifiers
	m.TypeParams = b.typeArgs(decl.TypeParams)
	m.Throws = b.types(decl.Method.Throws)
	if decl.Method.Body != nil {
		m.Body = b.raw(decl.Method.Body.Tokens)
	}
	if err := b.annotate(&m.Target, nodes); err != nil {
		return err
	}

	for _, pd := range decl.Method.Params {
		p, err := m.AddParameter(b.raw(pd.Type.Tokens), pd.Name)
		if err != nil {
			return b.located(err, pd.Pos)
		}
		paramNodes, final := splitParamPrefix(pd.Prefix)
		p.Final = final
		p.Varargs = pd.Varargs
		if err := b.annotate(&p.Target, paramNodes); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) annotate(target *annotations.Target, nodes []*annotationNode) error {
	for _, node := range nodes {
		if _, err := b.annotation(target, node); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) annotation(target *annotations.Target, node *annotationNode) (*annotations.Annotation, error) {
	var values []annotations.Value
	if args := node.Args; args != nil {
		if args.Single != nil {
			values = append(values, annotations.Value{
				Name:    annotations.DefaultValueName,
				Literal: b.raw(args.Single.Tokens),
			})
		}
		for _, pair := range args.Pairs {
			values = append(values, annotations.Value{
				Name:    pair.Name,
				Literal: b.raw(pair.Value.Tokens),
			})
		}
	}
	a, err := target.AddParsedAnnotation(joinName(node.Name), values...)
	if err != nil {
		return nil, b.located(err, node.Pos)
	}
	return a, nil
}

func (b *builder) types(nodes []*typeNode) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, b.raw(n.Tokens))
	}
	return out
}

func (b *builder) typeArgs(args *typeArgs) string {
	if args == nil {
		return ""
	}
	return strings.ReplaceAll(b.raw(args.Tokens), "\n", " ")
}

func (b *builder) raw(tokens []lexer.Token) string {
	return rawText(b.src, tokens)
}

func (b *builder) location(pos lexer.Position) errors.SourceLocation {
	return errors.SourceLocation{File: b.filename, Line: pos.Line, Column: pos.Column}
}

func (b *builder) syntax(message string, pos lexer.Position) error {
	return errors.NewSyntaxErrorAt(message, b.location(pos))
}

// located attaches a position to model errors raised while building
func (b *builder) located(err error, pos lexer.Position) error {
	var nameErr *errors.InvalidNameError
	if stderrors.As(err, &nameErr) {
		return nameErr.WithLocation(b.location(pos))
	}
	return err
}
