package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/srcmodel/internal/annotations"
	"github.com/toyz/srcmodel/internal/errors"
	"github.com/toyz/srcmodel/internal/source"
)

func parseFixture(t *testing.T, name string) *source.File {
	t.Helper()
	f, err := NewParser().ParseFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return f
}

func TestParseAnnotation_Fixture(t *testing.T) {
	f := parseFixture(t, "MockAnnotatedClass.java")
	c, ok := f.Class("MockAnnotatedClass")
	require.True(t, ok)

	ctor, ok := c.Method("MockAnnotatedClass")
	require.True(t, ok)
	foo, ok := ctor.Parameter("foo")
	require.True(t, ok)
	field, ok := c.Field("field")
	require.True(t, ok)

	targets := map[string]*annotations.Target{
		"class":       &c.Target,
		"field":       &field.Target,
		"constructor": &ctor.Target,
		"parameter":   &foo.Target,
	}
	for name, target := range targets {
		t.Run(name, func(t *testing.T) {
			list := target.Annotations()
			require.Len(t, list, 4)

			v, ok := list[1].StringValue()
			assert.True(t, ok)
			assert.Equal(t, "deprecation", v)
			v, _ = list[1].NamedString("value")
			assert.Equal(t, "deprecation", v)
			assert.Equal(t, "value", list[1].Values()[0].Name)
			assert.Equal(t, "deprecation", list[1].Values()[0].StringValue())

			v, _ = list[2].NamedString("value")
			assert.Equal(t, "unchecked", v)
			v, _ = list[2].StringValue()
			assert.Equal(t, "unchecked", v)
			assert.Equal(t, "value", list[2].Values()[0].Name)
			assert.Equal(t, "unchecked", list[2].Values()[0].StringValue())

			assert.True(t, list[0].IsMarker())
			assert.True(t, list[2].IsSingleValue())
			assert.Equal(t, "FOO", mustLiteral(t, list[3]))
		})
	}
	assert.True(t, foo.Final)
	assert.Equal(t, "String", foo.Type)
}

func mustLiteral(t *testing.T, a *annotations.Annotation) string {
	t.Helper()
	v, ok := a.Literal()
	require.True(t, ok)
	return v
}

func TestParseSource_Normalizes(t *testing.T) {
	f := parseFixture(t, "MockAnnotatedClass.java")

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "mock_annotated_class", []byte(f.String()))
}

func TestParseSource_CanonicalRoundTrip(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "Person.java"))
	require.NoError(t, err)

	f, err := NewParser().ParseSource("Person.java", string(data))
	require.NoError(t, err)
	assert.Equal(t, string(data), f.String())
}

func TestParseSource_Model(t *testing.T) {
	f := parseFixture(t, "Person.java")

	assert.Equal(t, "com.example.model", f.Package)
	assert.Equal(t, []source.Import{
		{Name: "java.io.Serializable"},
		{Name: "java.util.List"},
		{Name: "javax.persistence", Wildcard: true},
	}, f.Imports())

	c, ok := f.Class("Person")
	require.True(t, ok)
	assert.Equal(t, []string{"public", "abstract"}, c.Modifiers)
	assert.Equal(t, "<T extends Comparable<T>>", c.TypeParams)
	assert.Equal(t, []string{"Base"}, c.Extends)
	assert.Equal(t, []string{"Serializable", "Comparable<Person<T>>"}, c.Implements)

	tags, ok := c.Field("tags")
	require.True(t, ok)
	assert.Equal(t, "List<String>", tags.Type)
	assert.Equal(t, "new ArrayList<String>()", tags.Initializer)
	column, ok := tags.Annotation("Column")
	require.True(t, ok)
	assert.True(t, column.IsNormal())
	name, _ := column.NamedString("name")
	assert.Equal(t, "tags", name)
	nullable, _ := column.NamedLiteral("nullable")
	assert.Equal(t, "false", nullable)

	scores, _ := c.Field("scores")
	assert.Equal(t, "int[]", scores.Type)
	assert.Equal(t, "{1, 2, 3}", scores.Initializer)

	accept, ok := c.Method("accept")
	require.True(t, ok)
	assert.Equal(t, "<R>", accept.TypeParams)
	assert.Equal(t, "R", accept.ReturnType)
	assert.Equal(t, []string{"java.io.IOException", "IllegalStateException"}, accept.Throws)
	extra, ok := accept.Parameter("extra")
	require.True(t, ok)
	assert.True(t, extra.Varargs)
	assert.Equal(t, "Object", extra.Type)

	reset, _ := c.Method("reset")
	assert.Empty(t, reset.Body)

	ctor, _ := c.Method("Person")
	assert.True(t, ctor.IsConstructor())
	assert.Contains(t, ctor.Body, "// keeps the JPA contract")

	id, _ := c.Field("id")
	entityID := annotations.MustTypeRef("javax.persistence.Id")
	assert.True(t, id.HasAnnotationType(entityID), "wildcard imports are not resolved, so the simple names are compared")
	assert.True(t, id.HasAnnotation("javax.persistence.Id"), "the on-demand import makes the qualified name visible")
	assert.False(t, id.HasAnnotation("org.example.Id"))

	visitor, ok := f.Class("Visitor")
	require.True(t, ok)
	assert.Equal(t, source.KindInterface, visitor.Kind)
}

func TestParseSource_FieldInitializers(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want map[string]string
	}{
		{
			name: "followed by another member",
			src:  "class A { int x = 1; int y; }",
			want: map[string]string{"x": "1", "y": ""},
		},
		{
			name: "last member",
			src:  "class A { int x = 1; }",
			want: map[string]string{"x": "1"},
		},
		{
			name: "nested semicolons and commas",
			src:  "class A { Runnable r = () -> { run(); stop(); }; Map<String, Integer> m = Map.of(\"a\", 1); int z = 0; }",
			want: map[string]string{
				"r": "() -> { run(); stop(); }",
				"m": `Map.of("a", 1)`,
				"z": "0",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewParser().ParseSource("A.java", tt.src)
			require.NoError(t, err)
			c, ok := f.Class("A")
			require.True(t, ok)
			require.Len(t, c.Fields(), len(tt.want))
			for name, init := range tt.want {
				fd, ok := c.Field(name)
				require.True(t, ok, name)
				assert.Equal(t, init, fd.Initializer, name)
			}
		})
	}
}

func TestParseSource_InterleavedModifiers(t *testing.T) {
	src := "public @Deprecated final class A {\n" +
		"    private @Column(name = \"x\") static int x = 1;\n" +
		"    public @Deprecated void f(final @NotNull String s) {}\n" +
		"}\n"
	f, err := NewParser().ParseSource("A.java", src)
	require.NoError(t, err)

	c, ok := f.Class("A")
	require.True(t, ok)
	assert.Equal(t, []string{"public", "final"}, c.Modifiers)
	assert.True(t, c.HasAnnotation("Deprecated"))

	x, ok := c.Field("x")
	require.True(t, ok)
	assert.Equal(t, []string{"private", "static"}, x.Modifiers)
	assert.Equal(t, `@Column(name = "x")`, x.Render())

	m, ok := c.Method("f")
	require.True(t, ok)
	assert.Equal(t, []string{"public"}, m.Modifiers)
	assert.True(t, m.HasAnnotation("Deprecated"))

	s, ok := m.Parameter("s")
	require.True(t, ok)
	assert.True(t, s.Final)
	assert.Equal(t, "@NotNull final String s", s.String())

	// annotations are written ahead of the modifiers
	assert.Contains(t, f.String(), "@Deprecated\npublic final class A {")
}

func TestParseSource_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		line    int
		message string
	}{
		{
			name: "unclosed class",
			src:  "class A {\n  int x;\n",
		},
		{
			name:    "field without name",
			src:     "class A {\n  int;\n}\n",
			line:    2,
			message: "field of type int has no name",
		},
		{
			name:    "method without return type",
			src:     "class A {\n  foo() {}\n}\n",
			line:    2,
			message: "method foo has no return type",
		},
		{
			name: "unterminated annotation",
			src:  "@Foo(\nclass A {}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().ParseSource("A.java", tt.src)
			require.Error(t, err)
			assert.True(t, errors.IsSyntax(err))

			var srcErr errors.SrcError
			require.ErrorAs(t, err, &srcErr)
			assert.Equal(t, "A.java", srcErr.Location().File)
			if tt.line > 0 {
				assert.Equal(t, tt.line, srcErr.Location().Line)
			}
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := NewParser().ParseFile(filepath.Join(t.TempDir(), "Nope.java"))
	require.Error(t, err)

	var srcErr errors.SrcError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, errors.FileSystemErrorCode, srcErr.ErrorCode())
}

func TestParser_ParseAnnotation(t *testing.T) {
	tests := []struct {
		text   string
		shape  annotations.Shape
		render string
	}{
		{"@Override", annotations.Marker, "@Override"},
		{"@Override()", annotations.Marker, "@Override"},
		{`@SuppressWarnings({"a", "b"})`, annotations.SingleValue, `@SuppressWarnings({"a", "b"})`},
		{`@Column(name = "id", nullable = false)`, annotations.Normal, `@Column(name = "id", nullable = false)`},
		{`@Column(value = "id")`, annotations.SingleValue, `@Column("id")`},
		{"@javax.persistence.Id", annotations.Marker, "@javax.persistence.Id"},
		{"@Test(expected = RuntimeException.class, timeout = 1 + 2)", annotations.Normal, "@Test(expected = RuntimeException.class, timeout = 1 + 2)"},
		{"@Range(min = (1), max = Integer.MAX_VALUE)", annotations.Normal, "@Range(min = (1), max = Integer.MAX_VALUE)"},
	}
	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var target annotations.Target
			a, err := p.ParseAnnotation(&target, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, a.Shape())
			assert.Equal(t, tt.render, a.Render())
			assert.Len(t, target.Annotations(), 1)
		})
	}
}

func TestParser_ParseAnnotationErrors(t *testing.T) {
	p := NewParser()
	for _, text := range []string{"", "Override", "@", "@Foo(", "@Foo(a = 1,)", "@Foo @Bar"} {
		var target annotations.Target
		_, err := p.ParseAnnotation(&target, text)
		assert.Error(t, err, text)
		assert.True(t, errors.IsSyntax(err), text)
		assert.Empty(t, target.Annotations(), text)
	}
}
