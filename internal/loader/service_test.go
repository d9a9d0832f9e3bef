package loader

import (
	"testing"

	"github.com/griffnb/core-tsindex/internal/domain"
	"github.com/griffnb/core-tsindex/internal/names"
	"github.com/griffnb/core-tsindex/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstore = "../../testdata/petstore.yaml"

func loadPetstore(t *testing.T, options ...Option) *domain.Graph {
	t.Helper()

	table := names.LoadPrefixTable("../../testdata/generator_config.json", nil)
	require.NotEmpty(t, table)

	graph, err := NewService(append([]Option{WithPrefixTable(table), WithModelPackage("model")}, options...)...).Load(petstore)
	require.NoError(t, err)

	return graph
}

func mustLookup(t *testing.T, graph *domain.Graph, className string) *domain.Model {
	t.Helper()

	m, ok := graph.Lookup(className)
	require.True(t, ok, className)

	return m
}

func TestService_Load(t *testing.T) {
	t.Run("orders models by definition name", func(t *testing.T) {
		// Act
		graph := loadPetstore(t)

		// Assert
		var got []string
		for _, m := range graph.Models() {
			got = append(got, m.Name)
		}
		assert.Equal(t, []string{
			"AnyPet", "Cat", "Dog", "Level", "Pet", "PetBase", "PetResponse",
			"operation_pdf_password", "user_owner",
		}, got)
		assert.Equal(t, "model", graph.ModelPackage)
	})

	t.Run("applies prefix rules", func(t *testing.T) {
		graph := loadPetstore(t)

		pdf := mustLookup(t, graph, "operation.PdfPassword")
		assert.Equal(t, "operation_pdf_password", pdf.Name)
		assert.Equal(t, "operation/PdfPassword", pdf.ClassFilename)
		mustLookup(t, graph, "user.Owner")
	})

	t.Run("derives parents and discriminator mappings", func(t *testing.T) {
		graph := loadPetstore(t)

		pet := mustLookup(t, graph, "Pet")
		require.NotNil(t, pet.Discriminator)
		assert.Equal(t, "pet_type", pet.Discriminator.PropertyName)
		assert.Equal(t, map[string]string{
			"Cat": "#/definitions/Cat",
			"Dog": "#/definitions/Dog",
		}, pet.Discriminator.Mapping)
		assert.Equal(t, "A pet in the \"store\"", pet.Description)

		assert.Equal(t, "Pet", mustLookup(t, graph, "Cat").Parent)
		assert.Equal(t, "PetBase", mustLookup(t, graph, "PetResponse").Parent)
		assert.Empty(t, mustLookup(t, graph, "AnyPet").Parent)
	})

	t.Run("flattens inline allOf members", func(t *testing.T) {
		graph := loadPetstore(t)

		cat := mustLookup(t, graph, "Cat")
		require.Len(t, cat.Vars, 1)
		assert.Equal(t, "meow", cat.Vars[0].BaseName)
		assert.Equal(t, "boolean", cat.Vars[0].DataType)
		assert.Equal(t, "true", cat.Vars[0].DefaultValue)
	})

	t.Run("converts properties", func(t *testing.T) {
		// Arrange
		graph := loadPetstore(t)
		pet := mustLookup(t, graph, "Pet")

		// Act
		var baseNames []string
		for _, p := range pet.Vars {
			baseNames = append(baseNames, p.BaseName)
		}

		// Assert
		assert.Equal(t, []string{"labels", "name", "owner", "pet_type", "photo", "status", "tags"}, baseNames)

		petType, _ := pet.Var("pet_type")
		assert.Equal(t, "petType", petType.Name)
		assert.True(t, petType.IsPrimitiveType)

		name, _ := pet.Var("name")
		assert.Equal(t, `"rex"`, name.DefaultValue)

		owner, _ := pet.Var("owner")
		assert.Equal(t, "user.Owner", owner.BaseType)
		assert.Equal(t, "user.Owner", owner.ComplexType)
		assert.Equal(t, "Owner", owner.DataType)

		status, _ := pet.Var("status")
		assert.True(t, status.IsEnum)
		assert.Equal(t, []domain.EnumVar{
			{Name: "Available", Value: "'available'"},
			{Name: "Sold", Value: "'sold'"},
		}, status.AllowableValues)

		tags, _ := pet.Var("tags")
		assert.True(t, tags.IsListContainer)
		assert.Equal(t, "array", tags.BaseType)
		assert.Equal(t, "Array<string>", tags.DataType)
		require.NotNil(t, tags.Items)
		assert.Equal(t, "string", tags.Items.BaseType)

		photo, _ := pet.Var("photo")
		assert.True(t, photo.IsByteArray)

		labels, _ := pet.Var("labels")
		assert.True(t, labels.IsMapContainer)
		assert.Equal(t, "{ [key: string]: string; }", labels.DataType)
	})

	t.Run("top level enums", func(t *testing.T) {
		graph := loadPetstore(t)

		level := mustLookup(t, graph, "Level")
		assert.True(t, level.IsEnum)
		assert.Equal(t, "number", level.DataType)
		assert.Equal(t, []domain.EnumVar{
			{Name: "NUMBER_1", Value: "1"},
			{Name: "NUMBER_2", Value: "2"},
		}, level.AllowableValues)
	})

	t.Run("keeps vendor extensions", func(t *testing.T) {
		graph := loadPetstore(t)

		owner := mustLookup(t, graph, "user.Owner")
		assert.Contains(t, owner.VendorExtensions(), "x-ts-codegen")
	})

	t.Run("property naming option", func(t *testing.T) {
		graph := loadPetstore(t, WithPropertyNaming(names.SnakeCase))

		owner := mustLookup(t, graph, "user.Owner")
		require.Len(t, owner.Vars, 1)
		assert.Equal(t, "full_name", owner.Vars[0].Name)

		pascal := loadPetstore(t, WithPropertyNaming(names.PascalCase))
		owner = mustLookup(t, pascal, "user.Owner")
		assert.Equal(t, "FullName", owner.Vars[0].Name)
	})
}

func TestService_LoadBytes(t *testing.T) {
	t.Run("accepts json", func(t *testing.T) {
		doc := `{"swagger": "2.0", "info": {"title": "t", "version": "1"}, "paths": {},
			"definitions": {"Pet": {"type": "object", "properties": {"name": {"type": "string"}}}}}`

		graph, err := NewService().LoadBytes([]byte(doc))

		require.NoError(t, err)
		require.Equal(t, 1, graph.Len())
		assert.Equal(t, "Pet", graph.Models()[0].ClassName)
	})

	t.Run("rejects broken documents", func(t *testing.T) {
		_, err := NewService().LoadBytes([]byte("definitions: ["))

		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewService().Load("does-not-exist.yaml")

		assert.Error(t, err)
	})
}

func TestService_InheritedProperties(t *testing.T) {
	doc := `
swagger: "2.0"
info: {title: t, version: "1"}
paths: {}
definitions:
  Audit:
    type: object
    properties:
      created:
        type: string
  PetBase:
    allOf:
      - $ref: "#/definitions/Audit"
      - type: object
        properties:
          id:
            type: integer
            format: int64
          size:
            type: integer
            default: 3
  PetResponse:
    allOf:
      - $ref: "#/definitions/PetBase"
      - type: object
        properties:
          name:
            type: string
`

	t.Run("bases without a discriminator are flattened", func(t *testing.T) {
		// Act
		graph, err := NewService().LoadBytes([]byte(doc))

		// Assert
		require.NoError(t, err)
		response := mustLookup(t, graph, "PetResponse")
		assert.Empty(t, response.Parent)

		var baseNames []string
		for _, p := range response.Vars {
			baseNames = append(baseNames, p.BaseName)
		}
		assert.Equal(t, []string{"created", "id", "size", "name"}, baseNames)

		size, ok := response.Var("size")
		require.True(t, ok)
		assert.Equal(t, "3", size.DefaultValue)
	})

	t.Run("inherited defaults are found on the model schema", func(t *testing.T) {
		graph, err := NewService().LoadBytes([]byte(doc))
		require.NoError(t, err)

		response := mustLookup(t, graph, "PetResponse")
		value, ok := schema.PropertyDefault(response.Schema, "size")

		require.True(t, ok)
		assert.EqualValues(t, 3, value)
	})
}

func TestService_PropertyOrder(t *testing.T) {
	doc := `
swagger: "2.0"
info: {title: t, version: "1"}
paths: {}
definitions:
  Cat:
    type: object
    properties:
      meow:
        type: string
        x-order: 2
      age:
        type: integer
        x-order: 1
  Dog:
    type: object
    properties:
      name:
        type: string
      bark:
        type: string
`

	graph, err := NewService().LoadBytes([]byte(doc))
	require.NoError(t, err)

	t.Run("x-order wins", func(t *testing.T) {
		cat := mustLookup(t, graph, "Cat")
		require.Len(t, cat.Vars, 2)
		assert.Equal(t, "age", cat.Vars[0].BaseName)
	})

	t.Run("names order the rest", func(t *testing.T) {
		dog := mustLookup(t, graph, "Dog")
		require.Len(t, dog.Vars, 2)
		assert.Equal(t, "bark", dog.Vars[0].BaseName)
	})
}

func TestEnumVars(t *testing.T) {
	vars := enumVars([]interface{}{"in-progress", "", "1st", "it's", -1.5})

	assert.Equal(t, []domain.EnumVar{
		{Name: "InProgress", Value: "'in-progress'"},
		{Name: "Empty", Value: "''"},
		{Name: "_1St", Value: "'1st'"},
		{Name: "Its", Value: `'it\'s'`},
		{Name: "NUMBER_MINUS_1_DOT_5", Value: "-1.5"},
	}, vars)
}
