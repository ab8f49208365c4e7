package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/srcmodel/internal/annotations"
	"github.com/toyz/srcmodel/internal/errors"
)

func TestDefaultRegistry(t *testing.T) {
	registry1 := DefaultRegistry()
	registry2 := DefaultRegistry()
	assert.Same(t, registry1, registry2)

	info, ok := registry1.LookupType("Column")
	require.True(t, ok)
	assert.Equal(t, "javax.persistence.Column", info.Type.QualifiedName())

	_, ok = registry1.LookupEnum("java.lang.annotation.ElementType")
	assert.True(t, ok)
	assert.Len(t, registry1.ListTypes(), len(BuiltinTypes))
	assert.Len(t, registry1.ListEnums(), len(BuiltinEnums))
}

func TestRegistry_RegisterType(t *testing.T) {
	r := NewRegistry()

	err := r.RegisterType(TypeInfo{Type: annotations.MustTypeRef("com.example.Audited")})
	require.NoError(t, err)

	err = r.RegisterType(TypeInfo{Type: annotations.MustTypeRef("com.example.Audited")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	err = r.RegisterType(TypeInfo{Type: annotations.TypeRef{Package: "com.example", Name: "Bad Name"}})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidName(err))
}

func TestRegistry_LookupType(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterType(TypeInfo{Type: annotations.MustTypeRef("org.junit.Test")}))
	require.NoError(t, r.RegisterType(TypeInfo{Type: annotations.MustTypeRef("org.testng.annotations.Test")}))
	require.NoError(t, r.RegisterType(TypeInfo{Type: annotations.MustTypeRef("org.junit.Before")}))

	info, ok := r.LookupType("org.junit.Test")
	require.True(t, ok)
	assert.Equal(t, "org.junit", info.Type.Package)

	_, ok = r.LookupType("Test")
	assert.False(t, ok, "ambiguous simple name")

	info, ok = r.LookupType("Before")
	require.True(t, ok)
	assert.Equal(t, "org.junit.Before", info.Type.QualifiedName())

	_, ok = r.LookupType("After")
	assert.False(t, ok)
}

func TestRegistry_RegisterEnum(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterEnum(annotations.NewEnumType("com.example.Mode", "ON", "OFF")))

	err := r.RegisterEnum(annotations.NewEnumType("com.example.Mode", "ON"))
	assert.Error(t, err)

	err = r.RegisterEnum(annotations.NewEnumType("com.example.Broken", "OK", "NOT OK"))
	assert.True(t, errors.IsInvalidName(err))

	assert.Error(t, r.RegisterEnum(nil))
}

func TestRegistry_ResolveConstant(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterBuiltins(r))

	c, err := r.ResolveConstant("GenerationType.IDENTITY")
	require.NoError(t, err)
	assert.Equal(t, "IDENTITY", c.Name)
	assert.Equal(t, "javax.persistence.GenerationType", c.Type.QualifiedName())

	c, err = r.ResolveConstant("javax.persistence.FetchType.LAZY")
	require.NoError(t, err)
	assert.Equal(t, "FetchType.LAZY", c.Literal())

	tests := []struct {
		literal string
		message string
	}{
		{"IDENTITY", "expected Type.CONSTANT"},
		{"GenerationType.", "expected Type.CONSTANT"},
		{"Nope.IDENTITY", "unknown enum type Nope"},
		{"GenerationType.FAST", "is not a constant of javax.persistence.GenerationType"},
	}
	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			_, err := r.ResolveConstant(tt.literal)
			require.Error(t, err)
			assert.True(t, errors.IsLookup(err))
			assert.Contains(t, err.Error(), tt.message)

			var srcErr errors.SrcError
			require.ErrorAs(t, err, &srcErr)
			assert.NotEmpty(t, srcErr.Suggestions())
		})
	}
}

func TestRegisterExtra(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterBuiltins(r))

	err := RegisterExtra(r, Extra{
		Annotations: []TypeInfo{
			{Type: annotations.MustTypeRef("com.example.Audited"), Description: "audit trail"},
			{Type: annotations.MustTypeRef("javax.persistence.Column")},
		},
		Enums: map[string][]string{
			"com.example.Level": {"LOW", "HIGH"},
			"bad name":          {"X"},
		},
	})
	require.Error(t, err)

	var multiple *errors.MultipleErrors
	require.ErrorAs(t, err, &multiple)
	assert.Equal(t, 2, multiple.Count())
	assert.True(t, multiple.HasCode(errors.ConfigurationErrorCode))
	assert.True(t, multiple.HasCode(errors.InvalidNameErrorCode))

	info, ok := r.LookupType("Audited")
	require.True(t, ok)
	assert.Equal(t, "audit trail", info.Description)
	_, ok = r.LookupEnum("Level")
	assert.True(t, ok)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = r.RegisterType(TypeInfo{Type: annotations.TypeRef{Package: "com.example", Name: "T" + string(rune('A'+i))}})
		}(i)
		go func() {
			defer wg.Done()
			r.ListTypes()
			r.LookupType("TA")
		}()
	}
	wg.Wait()
	assert.Len(t, r.ListTypes(), 10)
}
