package cli

import (
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	res := run(t, args...)
	require.Equal(t, 0, res.code, "srcmodel %v failed: %s", args, res.stderr)
	return res.stdout
}

func TestAdd_ByTypeImports(t *testing.T) {
	path := writeSource(t)

	out := mustRun(t, "add", path, "Person", "Entity")
	assert.Contains(t, out, "import javax.persistence.Entity;\n\n@Entity\npublic class Person {")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, personSource, string(data), "file is untouched without --write")
}

func TestAdd_AnnotationText(t *testing.T) {
	path := writeSource(t)

	out := mustRun(t, "add", path, "Person.id", `@Column(name = "id", nullable = false)`)
	assert.Contains(t, out, "import javax.persistence.Column;")
	assert.Contains(t, out, "    @Column(name = \"id\", nullable = false)\n    private Long id;")

	res := run(t, "add", path, "Person.id", "@Column(")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "syntax error")
}

func TestAdd_UnknownNameAndInvalidName(t *testing.T) {
	path := writeSource(t)

	out := mustRun(t, "add", path, "Person.setName", "Transactional")
	assert.Contains(t, out, "    @Transactional\n    public void setName")
	assert.NotContains(t, out, "import")

	res := run(t, "add", path, "Person", "Bad Name")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "invalid name")
	assert.Contains(t, res.stderr, "hint: Names cannot contain whitespace")
}

func TestEditSession(t *testing.T) {
	path := writeSource(t)

	mustRun(t, "-w", "add", path, "Person.id", "Id")
	mustRun(t, "-w", "add", path, "Person.id", "GeneratedValue")
	mustRun(t, "-w", "set", "-e", path, "Person.id", "GeneratedValue", "strategy=GenerationType.IDENTITY")
	mustRun(t, "-w", "add", path, "Person.setName.name", `@SuppressWarnings("unused")`)
	mustRun(t, "-w", "add", path, "Person", "Entity")
	mustRun(t, "-w", "set", "--string", path, "Person", "@Entity", "name=people")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	g := newGolden(t)
	g.Assert(t, "edit_session", data)

	assert.Equal(t, "javax.persistence.GenerationType.IDENTITY\n",
		mustRun(t, "get", "--enum", path, "Person.id", "GeneratedValue", "strategy"))
	assert.Equal(t, "people\n", mustRun(t, "get", "-s", path, "Person", "Entity", "name"))
	assert.Equal(t, "\"unused\"\n", mustRun(t, "get", path, "Person.setName.name", "SuppressWarnings"))

	g.Assert(t, "edit_session_list", []byte(mustRun(t, "list", path)))
}

func TestSet_DefaultAndNamedValues(t *testing.T) {
	path := writeSource(t)
	mustRun(t, "-w", "add", path, "Person", "SuppressWarnings")

	out := mustRun(t, "set", "-s", path, "Person", "SuppressWarnings", "unchecked")
	assert.Contains(t, out, "@SuppressWarnings(\"unchecked\")\npublic class Person")
	assert.NotContains(t, out, "import java.lang")

	out = mustRun(t, "set", path, "Person", "SuppressWarnings", `{"a", "b"}`, "since = 9")
	assert.Contains(t, out, `@SuppressWarnings(value = {"a", "b"}, since = 9)`)

	res := run(t, "set", "-e", path, "Person", "SuppressWarnings", "GenerationType.FAST")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "hint: Known constants: TABLE, SEQUENCE, IDENTITY, AUTO")
}

func TestRemoveClearUnset(t *testing.T) {
	path := writeSource(t)
	mustRun(t, "-w", "add", path, "Person.id", `@Column(name = "id", length = 20)`)
	mustRun(t, "-w", "add", path, "Person.id", "Id")

	out := mustRun(t, "unset", path, "Person.id", "Column", "length")
	assert.Contains(t, out, "    @Column(name = \"id\") @Id\n")

	out = mustRun(t, "clear", path, "Person.id", "Column")
	assert.Contains(t, out, "    @Column @Id\n")

	out = mustRun(t, "remove", path, "Person.id", "javax.persistence.Column")
	assert.Contains(t, out, "    @Id\n    private Long id;")

	res := run(t, "unset", path, "Person.id", "Column", "precision")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `annotation @Column has no value "precision"`)
}

func TestLookupErrors(t *testing.T) {
	path := writeSource(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown class", []string{"list", path, "Nobody"}, "no class named Nobody"},
		{"unknown member", []string{"get", path, "Person.age", "Id"}, "no member named age"},
		{"missing annotation", []string{"get", path, "Person.id", "Column"}, "annotation @Column is not present on field Person.id"},
		{"missing value", []string{"remove", path, "Person", "Entity"}, "annotation @Entity is not present"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			assert.Equal(t, 1, res.code)
			assert.Contains(t, res.stderr, "not found")
			assert.Contains(t, res.stderr, tt.want)
			assert.Contains(t, res.stderr, "hint:")
		})
	}
}

func TestGet_MissingValue(t *testing.T) {
	path := writeSource(t)
	mustRun(t, "-w", "add", path, "Person.id", "Id")

	res := run(t, "get", path, "Person.id", "Id")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `annotation @Id has no value "value"`)
}

func TestSyntaxErrorReport(t *testing.T) {
	path := writeFile(t, "Broken.java", "public class Broken {\n    int x\n}\n")

	res := run(t, "-v", "render", path)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "syntax error: "+path+":")
	assert.Contains(t, res.stderr, "hint:")

	res = run(t, "render", path+".missing")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "file error")
}

func TestListAll(t *testing.T) {
	path := writeSource(t)

	assert.Empty(t, mustRun(t, "list", path))
	assert.Equal(t,
		"class Person\nfield Person.id\nmethod Person.setName\nparameter Person.setName.name\n",
		mustRun(t, "list", "--all", path))
	assert.Equal(t, "field Person.id\n", mustRun(t, "list", path, "Person.id"))
}

func TestSplitAssignment(t *testing.T) {
	tests := []struct {
		arg, name, value string
	}{
		{"x", "", "x"},
		{"name=people", "name", "people"},
		{"name = people", "name", "people"},
		{`"a=b"`, "", `"a=b"`},
		{"a == b", "", "a == b"},
		{"=x", "", "=x"},
		{"strategy=GenerationType.AUTO", "strategy", "GenerationType.AUTO"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			name, value := splitAssignment(tt.arg)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.value, value)
		})
	}
}
