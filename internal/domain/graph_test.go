package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	t.Run("keeps insertion order", func(t *testing.T) {
		// Arrange
		pet := &Model{Name: "Pet", ClassName: "Pet"}
		order := &Model{Name: "store_order", ClassName: "store.Order"}

		// Act
		graph := NewGraph("model", pet, order)

		// Assert
		assert.Equal(t, []*Model{pet, order}, graph.Models())
		assert.Equal(t, 2, graph.Len())
		assert.Equal(t, "model", graph.ModelPackage)
	})

	t.Run("looks up by class name", func(t *testing.T) {
		// Arrange
		order := &Model{Name: "store_order", ClassName: "store.Order"}
		graph := NewGraph("", order)

		// Act
		found, ok := graph.Lookup("store.Order")
		_, missing := graph.Lookup("store_order")

		// Assert
		require.True(t, ok)
		assert.Same(t, order, found)
		assert.False(t, missing)
	})
}

func TestModel_AddImport(t *testing.T) {
	m := &Model{}

	m.AddImport("Cat")
	m.AddImport("Dog")
	m.AddImport("Cat")

	assert.Equal(t, []string{"Cat", "Dog"}, m.Imports)
}

func TestModel_Var(t *testing.T) {
	m := &Model{Vars: []*Property{{Name: "petType", BaseName: "pet_type"}}}

	property, ok := m.Var("pet_type")

	require.True(t, ok)
	assert.Equal(t, "petType", property.Name)
	_, ok = m.Var("petType")
	assert.False(t, ok)
}

func TestVendorExtensions(t *testing.T) {
	m := &Model{}
	m.AddExtension("x-ts-codegen", map[string]interface{}{"extends": "Pet"})

	assert.Contains(t, m.VendorExtensions(), "x-ts-codegen")
}
