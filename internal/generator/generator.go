// Package generator creates new source files from the model: a
// persistent entity class with its identity and version fields mapped,
// plus one mapped column per requested property.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/toyz/srcmodel/internal/annotations"
	"github.com/toyz/srcmodel/internal/errors"
	"github.com/toyz/srcmodel/internal/registry"
	"github.com/toyz/srcmodel/internal/source"
	"github.com/toyz/srcmodel/internal/utils"
)

// Property is one persistent field of a generated entity
type Property struct {
	Name string
	Type string
}

// EntitySpec describes the entity to generate
type EntitySpec struct {
	// Name is the qualified class name, e.g. com.example.model.Customer
	Name       string
	Table      string
	Properties []Property
	// Strategy is the id generation strategy constant, AUTO when empty
	Strategy string
}

// GeneratedFile is a rendered compilation unit and where it belongs
type GeneratedFile struct {
	File     *source.File
	FilePath string
	Content  string
}

// Generator builds entity classes using the annotation types it knows
type Generator struct {
	registry registry.Registry
}

// NewGenerator creates a generator backed by r
func NewGenerator(r registry.Registry) *Generator {
	return &Generator{registry: r}
}

// ParseProperty reads "name:Type"; the type defaults to String
func ParseProperty(s string) (Property, error) {
	name, typ, found := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	typ = strings.TrimSpace(typ)
	if !found || typ == "" {
		typ = "String"
	}
	if !utils.IsIdentifier(name) {
		return Property{}, errors.NewInvalidIdentifierError("field", name, "must be a single identifier")
	}
	return Property{Name: name, Type: typ}, nil
}

// GenerateEntity builds the entity described by spec. The file path is
// derived from the package below dir.
func (g *Generator) GenerateEntity(dir string, spec EntitySpec) (*GeneratedFile, error) {
	ref, err := annotations.NewTypeRef(spec.Name)
	if err != nil {
		return nil, err
	}

	f := source.NewFile(ref.Package)
	c, err := f.AddClass(source.KindClass, ref.Name)
	if err != nil {
		return nil, err
	}
	c.Modifiers = []string{"public"}
	serializable := annotations.MustTypeRef("java.io.Serializable")
	c.Implements = []string{serializable.SimpleName()}
	f.AddImport(serializable)

	if _, err := g.annotate(&c.Target, "javax.persistence.Entity"); err != nil {
		return nil, err
	}
	if spec.Table != "" {
		table, err := g.annotate(&c.Target, "javax.persistence.Table")
		if err != nil {
			return nil, err
		}
		table.SetNamedString("name", spec.Table)
	}

	if err := g.identity(c, spec.Strategy); err != nil {
		return nil, err
	}
	for _, p := range spec.Properties {
		if err := g.property(c, p); err != nil {
			return nil, err
		}
	}

	path := filepath.Join(append([]string{dir}, strings.Split(ref.Package, ".")...)...)
	if ref.Package == "" {
		path = dir
	}
	return &GeneratedFile{
		File:     f,
		FilePath: filepath.Join(path, ref.Name+".java"),
		Content:  f.String(),
	}, nil
}

func (g *Generator) identity(c *source.Class, strategy string) error {
	if strategy == "" {
		strategy = "AUTO"
	}
	constant, err := g.registry.ResolveConstant("GenerationType." + strategy)
	if err != nil {
		return err
	}

	id, err := c.AddField("Long", "id")
	if err != nil {
		return err
	}
	id.Modifiers = []string{"private"}
	if _, err := g.annotate(&id.Target, "javax.persistence.Id"); err != nil {
		return err
	}
	generated, err := g.annotate(&id.Target, "javax.persistence.GeneratedValue")
	if err != nil {
		return err
	}
	generated.SetNamedEnum("strategy", constant)
	c.File().AddImport(constant.Type.TypeRef)

	version, err := c.AddField("int", "version")
	if err != nil {
		return err
	}
	version.Modifiers = []string{"private"}
	version.Initializer = "0"
	if _, err := g.annotate(&version.Target, "javax.persistence.Version"); err != nil {
		return err
	}
	column, err := g.annotate(&version.Target, "javax.persistence.Column")
	if err != nil {
		return err
	}
	column.SetNamedString("name", "version")
	return nil
}

func (g *Generator) property(c *source.Class, p Property) error {
	getterName, setterName := "get"+capitalizeFirst(p.Name), "set"+capitalizeFirst(p.Name)
	if _, exists := c.Field(p.Name); exists {
		return errors.NewInvalidIdentifierError("field", p.Name, "already declared in "+c.Name)
	}
	for _, accessor := range []string{getterName, setterName} {
		if _, exists := c.Method(accessor); exists {
			return errors.NewInvalidIdentifierError("method", accessor, "already declared in "+c.Name)
		}
	}

	fd, err := c.AddField(p.Type, p.Name)
	if err != nil {
		return err
	}
	fd.Modifiers = []string{"private"}
	column, err := g.annotate(&fd.Target, "javax.persistence.Column")
	if err != nil {
		return err
	}
	column.SetNamedString("name", p.Name)

	getter, err := c.AddMethod(p.Type, getterName)
	if err != nil {
		return err
	}
	getter.Modifiers = []string{"public"}
	getter.Body = fmt.Sprintf("{\n        return %s;\n    }", p.Name)

	setter, err := c.AddMethod("void", setterName)
	if err != nil {
		return err
	}
	setter.Modifiers = []string{"public"}
	if _, err := setter.AddParameter(p.Type, p.Name); err != nil {
		return err
	}
	setter.Body = fmt.Sprintf("{\n        this.%s = %s;\n    }", p.Name, p.Name)
	return nil
}

// annotate adds the registered type qualified, importing it
func (g *Generator) annotate(target *annotations.Target, qualified string) (*annotations.Annotation, error) {
	info, ok := g.registry.LookupType(qualified)
	if !ok {
		return nil, errors.NewLookupError(qualified, "annotation type "+qualified+" is not registered")
	}
	return target.AddTypeAnnotation(info.Type)
}

// capitalizeFirst upper-cases only the first rune, keeping camel case
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Write stores the file, creating directories as needed. An existing
// file is only replaced when overwrite is set.
func Write(gf *GeneratedFile, overwrite bool) error {
	if _, err := os.Stat(gf.FilePath); err == nil && !overwrite {
		return errors.New(errors.FileSystemErrorCode, "file "+gf.FilePath+" already exists").
			WithContext("path", gf.FilePath).
			WithSuggestion("Pass --force to replace it")
	}
	if err := os.MkdirAll(filepath.Dir(gf.FilePath), 0o755); err != nil {
		return errors.WrapFileSystemError("create directory for", gf.FilePath, err)
	}
	if err := os.WriteFile(gf.FilePath, []byte(gf.Content), 0o644); err != nil {
		return errors.WrapFileSystemError("write", gf.FilePath, err)
	}
	return nil
}
