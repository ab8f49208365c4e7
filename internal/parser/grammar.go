package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar covers the declaration structure of a compilation unit.
// Expressions, initializers and method bodies are only matched for
// balanced brackets and kept as the text that was written.

var sourceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*(?s:.*?)\*/`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Char", Pattern: `'(\\.|[^'\\])*'`},
	{Name: "Number", Pattern: `[0-9][0-9a-zA-Z_.]*`},
	{Name: "Ident", Pattern: `[\p{L}_$][\p{L}\p{N}_$]*`},
	{Name: "Operator", Pattern: `==|!=|&&|\|\||->|::|\+\+|--|[-+*/%!&|^~?:<>=]`},
	{Name: "Punct", Pattern: `[{}()\[\];,.@]`},
})

type compilationUnit struct {
	Package *qualifiedName `parser:"( 'package' @@ ';' )?"`
	Imports []*importDecl  `parser:"@@*"`
	Types   []*typeDecl    `parser:"@@*"`
}

type qualifiedName struct {
	Parts []string `parser:"@Ident ( '.' @Ident )*"`
}

type importDecl struct {
	Pos    lexer.Position
	Static bool     `parser:"'import' @'static'?"`
	Parts  []string `parser:"@Ident ( '.' @( Ident | '*' ) )* ';'"`
}

type typeDecl struct {
	Pos        lexer.Position
	Prefix     []*declPrefix `parser:"@@*"`
	Kind       string        `parser:"@( 'class' | 'interface' )"`
	Name       string        `parser:"@Ident"`
	TypeParams *typeArgs     `parser:"@@?"`
	Extends    []*typeNode   `parser:"( 'extends' @@ ( ',' @@ )* )?"`
	Implements []*typeNode   `parser:"( 'implements' @@ ( ',' @@ )* )?"`
	Members    []*memberDecl `parser:"'{' @@* '}'"`
}

type memberDecl struct {
	Pos        lexer.Position
	Prefix     []*declPrefix `parser:"@@*"`
	TypeParams *typeArgs     `parser:"@@?"`
	Type       *typeNode     `parser:"@@"`
	Name       string        `parser:"@Ident?"`
	Method     *methodRest   `parser:"( @@"`
	Field      *fieldRest    `parser:"| @@ )"`
}

// declPrefix is one annotation or modifier before a declaration; the
// two may be interleaved.
type declPrefix struct {
	Annotation *annotationNode `parser:"  @@"`
	Modifier   string          `parser:"| @( 'public' | 'protected' | 'private' | 'static' | 'final' | 'abstract' | 'transient' | 'volatile' | 'synchronized' | 'native' | 'strictfp' | 'default' )"`
}

type methodRest struct {
	Params   []*paramDecl `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
	Throws   []*typeNode  `parser:"( 'throws' @@ ( ',' @@ )* )?"`
	Body     *block       `parser:"( @@"`
	Abstract bool         `parser:"| @';' )"`
}

type fieldRest struct {
	Init *initializer `parser:"( '=' @@ )?"`
	End  string       `parser:"@';'"`
}

type paramDecl struct {
	Pos     lexer.Position
	Prefix  []*paramPrefix `parser:"@@*"`
	Type    *typeNode      `parser:"@@"`
	Varargs bool           `parser:"@( '.' '.' '.' )?"`
	Name    string         `parser:"@Ident"`
}

type paramPrefix struct {
	Annotation *annotationNode `parser:"  @@"`
	Final      bool            `parser:"| @'final'"`
}

type typeNode struct {
	Tokens []lexer.Token
	Name   []string  `parser:"@Ident ( '.' @Ident )*"`
	Args   *typeArgs `parser:"@@?"`
	Dims   []string  `parser:"( @'[' ']' )*"`
}

// typeArgs is a type parameter or argument list, angle brackets included
type typeArgs struct {
	Tokens []lexer.Token
	Open   string         `parser:"@'<'"`
	Items  []*typeArgItem `parser:"@@*"`
	Close  string         `parser:"@'>'"`
}

type typeArgItem struct {
	Nested *typeArgs `parser:"  @@"`
	Token  string    `parser:"| @( Ident | '?' | '&' | '.' | ',' | '[' | ']' | '@' )"`
}

type block struct {
	Tokens []lexer.Token
	Open   string       `parser:"@'{'"`
	Items  []*blockItem `parser:"@@*"`
	Close  string       `parser:"@'}'"`
}

type blockItem struct {
	Nested *block `parser:"  @@"`
	Token  string `parser:"| @( Ident | String | Char | Number | Operator | '(' | ')' | '[' | ']' | ';' | ',' | '.' | '@' )"`
}

type annotationNode struct {
	Pos  lexer.Position
	Name []string        `parser:"'@' @Ident ( '.' @Ident )*"`
	Args *annotationArgs `parser:"( '(' @@? ')' )?"`
}

type annotationArgs struct {
	Pairs  []*annotationPair `parser:"  @@ ( ',' @@ )*"`
	Single *literal          `parser:"| @@"`
}

type annotationPair struct {
	Name  string   `parser:"@Ident '='"`
	Value *literal `parser:"@@"`
}

// literal is an expression that ends at a top-level ',' or ')'
type literal struct {
	Tokens []lexer.Token
	Parts  []*literalPart `parser:"@@+"`
}

type literalPart struct {
	Open  string        `parser:"  @( '(' | '{' | '[' )"`
	Items []*nestedItem `parser:"    @@*"`
	Close string        `parser:"    @( ')' | '}' | ']' )"`
	Token string        `parser:"| @( Ident | String | Char | Number | Operator | '.' | '@' )"`
}

type nestedItem struct {
	Part  *literalPart `parser:"  @@"`
	Punct string       `parser:"| @( ',' | ';' )"`
}

// initializer is a field initializer; unlike an annotation literal it may
// contain top-level commas, as in generic type arguments. A top-level ';'
// ends it.
type initializer struct {
	Tokens []lexer.Token
	Items  []*initializerItem `parser:"@@+"`
}

type initializerItem struct {
	Part  *literalPart `parser:"  @@"`
	Comma string       `parser:"| @','"`
}

func splitPrefix(prefix []*declPrefix) (nodes []*annotationNode, modifiers []string) {
	for _, p := range prefix {
		if p.Annotation != nil {
			nodes = append(nodes, p.Annotation)
		} else {
			modifiers = append(modifiers, p.Modifier)
		}
	}
	return nodes, modifiers
}

func splitParamPrefix(prefix []*paramPrefix) (nodes []*annotationNode, final bool) {
	for _, p := range prefix {
		if p.Annotation != nil {
			nodes = append(nodes, p.Annotation)
		}
		final = final || p.Final
	}
	return nodes, final
}
