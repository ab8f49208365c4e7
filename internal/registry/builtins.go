package registry

import (
	"sort"

	"github.com/toyz/srcmodel/internal/annotations"
	"github.com/toyz/srcmodel/internal/errors"
)

// BuiltinTypes are the annotation types every registry created by
// DefaultRegistry knows about
var BuiltinTypes = []TypeInfo{
	{annotations.MustTypeRef("java.lang.Override"), "method overrides a supertype declaration"},
	{annotations.MustTypeRef("java.lang.Deprecated"), "element should no longer be used"},
	{annotations.MustTypeRef("java.lang.SuppressWarnings"), "silence named compiler warnings"},
	{annotations.MustTypeRef("java.lang.FunctionalInterface"), "interface has exactly one abstract method"},
	{annotations.MustTypeRef("java.lang.annotation.Retention"), "how long annotations of the type are kept"},
	{annotations.MustTypeRef("java.lang.annotation.Target"), "declaration kinds the annotation applies to"},
	{annotations.MustTypeRef("javax.persistence.Entity"), "class is a persistent entity"},
	{annotations.MustTypeRef("javax.persistence.Table"), "table mapped by an entity"},
	{annotations.MustTypeRef("javax.persistence.Id"), "primary key field"},
	{annotations.MustTypeRef("javax.persistence.GeneratedValue"), "primary key generation strategy"},
	{annotations.MustTypeRef("javax.persistence.Column"), "column mapped by a field"},
	{annotations.MustTypeRef("javax.persistence.Version"), "optimistic locking version field"},
	{annotations.MustTypeRef("javax.persistence.Transient"), "field is not persisted"},
}

// BuiltinEnums are the enum types usable as annotation values out of the box
var BuiltinEnums = []*annotations.EnumType{
	annotations.NewEnumType("javax.persistence.GenerationType", "TABLE", "SEQUENCE", "IDENTITY", "AUTO"),
	annotations.NewEnumType("javax.persistence.FetchType", "LAZY", "EAGER"),
	annotations.NewEnumType("java.lang.annotation.RetentionPolicy", "SOURCE", "CLASS", "RUNTIME"),
	annotations.NewEnumType("java.lang.annotation.ElementType",
		"TYPE", "FIELD", "METHOD", "PARAMETER", "CONSTRUCTOR", "LOCAL_VARIABLE",
		"ANNOTATION_TYPE", "PACKAGE", "TYPE_PARAMETER", "TYPE_USE"),
}

// RegisterBuiltins adds the builtin types to r
func RegisterBuiltins(r Registry) error {
	var errs *errors.MultipleErrors
	for _, info := range BuiltinTypes {
		collect(&errs, r.RegisterType(info))
	}
	for _, enum := range BuiltinEnums {
		collect(&errs, r.RegisterEnum(enum))
	}
	return errs.ErrOrNil()
}

// Extra is a set of additional types, typically read from configuration
type Extra struct {
	Annotations []TypeInfo
	Enums       map[string][]string
}

// RegisterExtra validates and adds every entry of extra to r. All
// failures are reported together.
func RegisterExtra(r Registry, extra Extra) error {
	var errs *errors.MultipleErrors
	for _, info := range extra.Annotations {
		collect(&errs, r.RegisterType(info))
	}
	names := make([]string, 0, len(extra.Enums))
	for name := range extra.Enums {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		constants := extra.Enums[name]
		if _, err := annotations.NewTypeRef(name); err != nil {
			collect(&errs, err)
			continue
		}
		collect(&errs, r.RegisterEnum(annotations.NewEnumType(name, constants...)))
	}
	return errs.ErrOrNil()
}

func collect(errs **errors.MultipleErrors, err error) {
	if err == nil {
		return
	}
	if srcErr, ok := err.(errors.SrcError); ok {
		errors.AddToMultiple(errs, srcErr)
		return
	}
	errors.AddToMultiple(errs, errors.Wrap(errors.ConfigurationErrorCode, "registry", err))
}
