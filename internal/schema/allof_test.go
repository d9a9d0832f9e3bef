package schema

import (
	"testing"

	"github.com/go-openapi/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyDefault(t *testing.T) {
	t.Run("own property default", func(t *testing.T) {
		// Arrange
		schema := &spec.Schema{}
		schema.SetProperty("name", *spec.StringProperty().WithDefault("rex"))

		// Act
		value, ok := PropertyDefault(schema, "name")

		// Assert
		require.True(t, ok)
		assert.Equal(t, "rex", value)
	})

	t.Run("default from a flattened allOf member", func(t *testing.T) {
		// Arrange
		member := spec.Schema{SchemaProps: spec.SchemaProps{Type: []string{OBJECT}}}
		member.SetProperty("size", *spec.Int32Property().WithDefault(3))
		schema := spec.ComposedSchema(*RefSchema("Pet"), member)

		// Act
		value, ok := PropertyDefault(schema, "size")

		// Assert
		require.True(t, ok)
		assert.Equal(t, 3, value)
	})

	t.Run("own schema is nearer than the allOf member", func(t *testing.T) {
		member := spec.Schema{SchemaProps: spec.SchemaProps{Type: []string{OBJECT}}}
		member.SetProperty("size", *spec.Int32Property().WithDefault(3))
		schema := spec.ComposedSchema(member)
		schema.SetProperty("size", *spec.Int32Property().WithDefault(5))

		value, ok := PropertyDefault(schema, "size")

		require.True(t, ok)
		assert.Equal(t, 5, value)
	})

	t.Run("no default", func(t *testing.T) {
		schema := &spec.Schema{}
		schema.SetProperty("name", *spec.StringProperty())

		_, ok := PropertyDefault(schema, "name")
		_, missing := PropertyDefault(schema, "other")

		assert.False(t, ok)
		assert.False(t, missing)
	})
}

func TestFlattenedProperties(t *testing.T) {
	// Arrange
	member := spec.Schema{SchemaProps: spec.SchemaProps{Type: []string{OBJECT}}}
	member.SetProperty("b", *spec.StringProperty())
	member.SetProperty("name", *spec.BoolProperty())
	schema := spec.ComposedSchema(*RefSchema("Pet"), member)
	schema.SetProperty("name", *spec.StringProperty())
	schema.SetProperty("a", *spec.StringProperty())

	// Act
	items := FlattenedProperties(schema)

	// Assert
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "name", items[1].Name)
	assert.Equal(t, []string{STRING}, []string(items[1].Type))
	assert.Equal(t, "b", items[2].Name)
}

func TestObjectMembers(t *testing.T) {
	member := spec.Schema{SchemaProps: spec.SchemaProps{Type: []string{OBJECT}}}
	schema := spec.ComposedSchema(*RefSchema("Pet"), member)

	assert.Len(t, ObjectMembers(schema), 1)
	assert.Nil(t, ObjectMembers(nil))
}

func TestExpandAllOf(t *testing.T) {
	base := spec.Schema{SchemaProps: spec.SchemaProps{Type: []string{OBJECT}}}
	base.SetProperty("id", *spec.Int64Property().WithDefault(7))
	root := spec.Schema{SchemaProps: spec.SchemaProps{Type: []string{OBJECT}}}
	root.SetProperty("created", *spec.StringProperty())
	parent := spec.Schema{SchemaProps: spec.SchemaProps{Type: []string{OBJECT}}}
	parent.SetProperty("kind", *spec.StringProperty())

	definitions := spec.Definitions{
		"Base":   *spec.ComposedSchema(*RefSchema("Root"), base),
		"Root":   root,
		"Parent": parent,
		"Loop":   *spec.ComposedSchema(*RefSchema("Loop")),
	}
	keepParent := func(name string) bool { return name == "Parent" }

	t.Run("inlines referenced bases with their own bases", func(t *testing.T) {
		// Arrange
		own := spec.Schema{SchemaProps: spec.SchemaProps{Type: []string{OBJECT}}}
		own.SetProperty("name", *spec.StringProperty())
		schema := spec.ComposedSchema(*RefSchema("Base"), own)

		// Act
		expanded := ExpandAllOf(schema, definitions, keepParent)

		// Assert
		var got []string
		for _, item := range FlattenedProperties(expanded) {
			got = append(got, item.Name)
		}
		assert.Equal(t, []string{"created", "id", "name"}, got)

		value, ok := PropertyDefault(expanded, "id")
		require.True(t, ok)
		assert.Equal(t, 7, value)

		assert.True(t, IsRefSchema(&schema.AllOf[0]))
	})

	t.Run("kept references stay", func(t *testing.T) {
		schema := spec.ComposedSchema(*RefSchema("Parent"))

		expanded := ExpandAllOf(schema, definitions, keepParent)

		assert.Equal(t, []string{"Parent"}, RefNames(expanded.AllOf))
		assert.Empty(t, FlattenedProperties(expanded))
	})

	t.Run("cycles and unknown definitions stay", func(t *testing.T) {
		schema := spec.ComposedSchema(*RefSchema("Loop"), *RefSchema("Missing"))

		expanded := ExpandAllOf(schema, definitions, nil)

		assert.Equal(t, []string{"Missing"}, RefNames(expanded.AllOf))
		assert.Len(t, expanded.AllOf, 2)
	})

	t.Run("schemas without allOf are returned as is", func(t *testing.T) {
		schema := spec.StringProperty()

		assert.Same(t, schema, ExpandAllOf(schema, definitions, nil))
	})
}
