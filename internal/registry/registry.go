// Package registry keeps the annotation and enum types the tooling knows
// by name, so that "Column" or "GenerationType.IDENTITY" typed on the
// command line can be turned into type references.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/toyz/srcmodel/internal/annotations"
	"github.com/toyz/srcmodel/internal/errors"
	"github.com/toyz/srcmodel/internal/utils"
)

// TypeInfo describes a known annotation type
type TypeInfo struct {
	Type        annotations.TypeRef
	Description string
}

// Registry defines the operations for managing known types
type Registry interface {
	// RegisterType adds an annotation type; qualified names must be unique
	RegisterType(info TypeInfo) error

	// RegisterEnum adds an enum type usable as an annotation value
	RegisterEnum(enum *annotations.EnumType) error

	// LookupType finds an annotation type by qualified or simple name
	LookupType(name string) (TypeInfo, bool)

	// LookupEnum finds an enum type by qualified or simple name
	LookupEnum(name string) (*annotations.EnumType, bool)

	// ResolveConstant turns "Type.CONSTANT" into an enum constant
	ResolveConstant(literal string) (annotations.EnumConstant, error)

	// ListTypes returns all annotation types sorted by qualified name
	ListTypes() []TypeInfo

	// ListEnums returns all enum types sorted by qualified name
	ListEnums() []*annotations.EnumType
}

// registry is the concrete implementation of Registry
type registry struct {
	mu    sync.RWMutex
	types map[string]TypeInfo
	enums map[string]*annotations.EnumType
}

// NewRegistry creates an empty registry
func NewRegistry() Registry {
	return &registry{
		types: make(map[string]TypeInfo),
		enums: make(map[string]*annotations.EnumType),
	}
}

var (
	defaultRegistry     Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the shared registry preloaded with the
// platform types
func DefaultRegistry() Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		if err := RegisterBuiltins(defaultRegistry); err != nil {
			panic(err)
		}
	})
	return defaultRegistry
}

func (r *registry) RegisterType(info TypeInfo) error {
	q := info.Type.QualifiedName()
	if !utils.IsQualifiedName(q) {
		return errors.NewInvalidIdentifierError("type", q, "must be a qualified type name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[q]; exists {
		return errors.Newf(errors.ConfigurationErrorCode, "annotation type %s is already registered", q).
			WithContext("type", q)
	}
	r.types[q] = info
	return nil
}

func (r *registry) RegisterEnum(enum *annotations.EnumType) error {
	if enum == nil {
		return errors.New(errors.ConfigurationErrorCode, "cannot register a nil enum type")
	}
	q := enum.QualifiedName()
	if !utils.IsQualifiedName(q) {
		return errors.NewInvalidIdentifierError("type", q, "must be a qualified type name")
	}
	for _, c := range enum.Constants() {
		if !utils.IsIdentifier(c) {
			return errors.NewInvalidIdentifierError("enum constant", c, "must be a single identifier")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.enums[q]; exists {
		return errors.Newf(errors.ConfigurationErrorCode, "enum type %s is already registered", q).
			WithContext("type", q)
	}
	r.enums[q] = enum
	return nil
}

func (r *registry) LookupType(name string) (TypeInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if info, exists := r.types[name]; exists {
		return info, true
	}
	var found []TypeInfo
	for _, info := range r.types {
		if info.Type.SimpleName() == name {
			found = append(found, info)
		}
	}
	// an ambiguous simple name resolves to nothing
	if len(found) != 1 {
		return TypeInfo{}, false
	}
	return found[0], true
}

func (r *registry) LookupEnum(name string) (*annotations.EnumType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if enum, exists := r.enums[name]; exists {
		return enum, true
	}
	var found []*annotations.EnumType
	for _, enum := range r.enums {
		if enum.SimpleName() == name {
			found = append(found, enum)
		}
	}
	if len(found) != 1 {
		return nil, false
	}
	return found[0], true
}

func (r *registry) ResolveConstant(literal string) (annotations.EnumConstant, error) {
	i := strings.LastIndex(literal, ".")
	if i <= 0 || i == len(literal)-1 {
		return annotations.EnumConstant{}, errors.NewLookupError(literal, "expected Type.CONSTANT, got "+literal).
			WithSuggestion("Write enum values as GenerationType.IDENTITY")
	}
	typeName, constant := literal[:i], literal[i+1:]

	enum, ok := r.LookupEnum(typeName)
	if !ok {
		return annotations.EnumConstant{}, errors.NewLookupError(literal, "unknown enum type "+typeName).
			WithSuggestion("Known enum types: " + strings.Join(r.enumNames(), ", "))
	}
	c, ok := enum.Constant(constant)
	if !ok {
		return annotations.EnumConstant{}, errors.NewEnumLookupError(constant, literal, enum.QualifiedName(), "unknown constant").
			WithSuggestion("Known constants: " + strings.Join(enum.Constants(), ", "))
	}
	return c, nil
}

func (r *registry) ListTypes() []TypeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]TypeInfo, 0, len(r.types))
	for _, info := range r.types {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Type.QualifiedName() < out[j].Type.QualifiedName()
	})
	return out
}

func (r *registry) ListEnums() []*annotations.EnumType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*annotations.EnumType, 0, len(r.enums))
	for _, enum := range r.enums {
		out = append(out, enum)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].QualifiedName() < out[j].QualifiedName()
	})
	return out
}

func (r *registry) enumNames() []string {
	var names []string
	for _, enum := range r.ListEnums() {
		names = append(names, enum.SimpleName())
	}
	return names
}
