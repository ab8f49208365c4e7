package annotations

import (
	"strings"

	"github.com/toyz/srcmodel/internal/errors"
	"github.com/toyz/srcmodel/internal/utils"
)

// DefaultValueName is the reserved element name used when none is given.
const DefaultValueName = "value"

// Value is one element of an annotation: an optional name and the raw
// literal source text, stored exactly as given and never evaluated.
type Value struct {
	Name    string
	Literal string
}

// StringValue returns the literal with one layer of quotes removed
func (v Value) StringValue() string {
	return utils.Unquote(v.Literal)
}

func (v Value) String() string {
	return v.Name + " = " + v.Literal
}

func normalizeName(name string) string {
	if name == "" {
		return DefaultValueName
	}
	return name
}

// valueList keeps values in insertion order, unique by name. Annotations
// rarely carry more than a handful of values, so lookups scan.
type valueList struct {
	entries []Value
}

func (l *valueList) index(name string) int {
	name = normalizeName(name)
	for i, v := range l.entries {
		if v.Name == name {
			return i
		}
	}
	return -1
}

// set overwrites in place or appends
func (l *valueList) set(name, literal string) {
	name = normalizeName(name)
	if i := l.index(name); i >= 0 {
		l.entries[i].Literal = literal
		return
	}
	l.entries = append(l.entries, Value{Name: name, Literal: literal})
}

func (l *valueList) get(name string) (string, bool) {
	if i := l.index(name); i >= 0 {
		return l.entries[i].Literal, true
	}
	return "", false
}

func (l *valueList) remove(name string) bool {
	i := l.index(name)
	if i < 0 {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return true
}

func (l *valueList) clear() {
	l.entries = nil
}

func (l *valueList) len() int {
	return len(l.entries)
}

func (l *valueList) values() []Value {
	out := make([]Value, len(l.entries))
	copy(out, l.entries)
	return out
}

// SetLiteral stores literal in the reserved "value" slot
func (a *Annotation) SetLiteral(literal string) *Annotation {
	return a.SetNamedLiteral(DefaultValueName, literal)
}

// SetNamedLiteral stores literal under name, keeping the position of an
// existing entry with the same name
func (a *Annotation) SetNamedLiteral(name, literal string) *Annotation {
	a.values.set(name, literal)
	return a
}

// Literal returns the reserved slot's literal
func (a *Annotation) Literal() (string, bool) {
	return a.values.get(DefaultValueName)
}

// NamedLiteral returns the literal stored under name
func (a *Annotation) NamedLiteral(name string) (string, bool) {
	return a.values.get(name)
}

// RequireLiteral is NamedLiteral for callers that need the value present
func (a *Annotation) RequireLiteral(name string) (string, error) {
	literal, ok := a.values.get(name)
	if !ok {
		return "", errors.NewMissingValueError(a.name, normalizeName(name))
	}
	return literal, nil
}

// SetString stores value as a quoted string literal in the reserved slot
func (a *Annotation) SetString(value string) *Annotation {
	return a.SetNamedLiteral(DefaultValueName, utils.Enquote(value))
}

// SetNamedString stores value as a quoted string literal under name
func (a *Annotation) SetNamedString(name, value string) *Annotation {
	return a.SetNamedLiteral(name, utils.Enquote(value))
}

// StringValue returns the reserved slot's literal with quotes removed
func (a *Annotation) StringValue() (string, bool) {
	return utils.UnquoteOK(a.values.get(DefaultValueName))
}

// NamedString returns the literal under name with quotes removed
func (a *Annotation) NamedString(name string) (string, bool) {
	return utils.UnquoteOK(a.values.get(name))
}

// RequireString is NamedString for callers that need the value present
func (a *Annotation) RequireString(name string) (string, error) {
	literal, err := a.RequireLiteral(name)
	if err != nil {
		return "", err
	}
	return utils.Unquote(literal), nil
}

// SetEnum stores a reference to constant in the reserved slot
func (a *Annotation) SetEnum(constant EnumConstant) *Annotation {
	return a.SetNamedLiteral(DefaultValueName, constant.Literal())
}

// SetNamedEnum stores a reference to constant under name
func (a *Annotation) SetNamedEnum(name string, constant EnumConstant) *Annotation {
	return a.SetNamedLiteral(name, constant.Literal())
}

// Enum decodes the reserved slot as a constant of enumType
func (a *Annotation) Enum(enumType *EnumType) (EnumConstant, error) {
	return a.NamedEnum(enumType, DefaultValueName)
}

// NamedEnum decodes the value under name as a constant of enumType. The
// literal is split on its last '.' and the trailing identifier must be
// one of enumType's constants.
func (a *Annotation) NamedEnum(enumType *EnumType, name string) (EnumConstant, error) {
	literal, err := a.RequireLiteral(name)
	if err != nil {
		return EnumConstant{}, err
	}
	key := normalizeName(name)
	typeName := enumType.QualifiedName()

	dot := strings.LastIndex(literal, ".")
	if dot < 0 {
		return EnumConstant{}, errors.NewEnumLookupError(key, literal, typeName, "expected Type.CONSTANT").
			WithSuggestion("Store enum values as " + enumType.SimpleName() + ".<CONSTANT>")
	}
	constant, ok := enumType.Constant(strings.TrimSpace(literal[dot+1:]))
	if !ok {
		return EnumConstant{}, errors.NewEnumLookupError(key, literal, typeName, "unknown constant").
			WithSuggestion("Known constants: " + strings.Join(enumType.Constants(), ", "))
	}
	return constant, nil
}

// Values returns a copy of the values in order
func (a *Annotation) Values() []Value {
	return a.values.values()
}

// RemoveValue deletes the value stored under name, reporting whether one existed
func (a *Annotation) RemoveValue(name string) bool {
	return a.values.remove(name)
}

// RemoveAll deletes every value, turning the annotation back into a marker
func (a *Annotation) RemoveAll() *Annotation {
	a.values.clear()
	return a
}
