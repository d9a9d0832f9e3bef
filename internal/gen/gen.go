// Package gen runs the whole pipeline: it loads a Swagger document, resolves
// the model graph and writes the export index and per-model metadata.
package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"text/template"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-tsindex/internal/domain"
	"github.com/griffnb/core-tsindex/internal/loader"
	"github.com/griffnb/core-tsindex/internal/names"
	"github.com/griffnb/core-tsindex/internal/orchestrator"
	"github.com/griffnb/core-tsindex/internal/registry"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"
)

// Version of the generator.
const Version = "v0.1.0"

const (
	// IndexName is the base name of the index files.
	IndexName = "index"
	// ModelsDir holds one metadata file per declaration.
	ModelsDir = "models"
)

type genTypeWriter func(*Config, *orchestrator.Result) error

// Gen presents a generate tool for the export index.
type Gen struct {
	json          func(data interface{}) ([]byte, error)
	jsonIndent    func(data interface{}) ([]byte, error)
	jsonToYAML    func(data []byte) ([]byte, error)
	outputTypeMap map[string]genTypeWriter
	debug         Debugger
}

// Debugger is the interface that wraps the basic Printf method.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// New creates a new Gen.
func New() *Gen {
	gen := Gen{
		json: json.Marshal,
		jsonIndent: func(data interface{}) ([]byte, error) {
			return json.MarshalIndent(data, "", "    ")
		},
		jsonToYAML: yaml.JSONToYAML,
		debug:      log.New(os.Stdout, "", log.LstdFlags),
	}

	gen.outputTypeMap = map[string]genTypeWriter{
		"json": gen.writeJSONIndex,
		"yaml": gen.writeYAMLIndex,
		"yml":  gen.writeYAMLIndex,
		"ts":   gen.writeTSIndex,
	}

	return &gen
}

// Config presents Gen configurations.
type Config struct {
	Debugger Debugger

	// InputFile is the Swagger 2.0 document, JSON or YAML.
	InputFile string

	// ConfigFile holds the prefix rules. A missing file means no rules.
	ConfigFile string

	// ModelPackage is the base package of every declaration.
	ModelPackage string

	// PropertyNaming is one of original, camelCase, PascalCase, snake_case.
	PropertyNaming string

	// KeepInlineEnums exports unnamed inline enums from their owners instead
	// of extracting them.
	KeepInlineEnums bool

	// OutputDir represents the output directory for all the generated files
	OutputDir string

	// OutputTypes define types of files which should be generated
	OutputTypes []string
}

// Build loads, resolves and writes the index for config.
func (g *Gen) Build(config *Config) error {
	if config.Debugger != nil {
		g.debug = config.Debugger
	}

	naming, err := names.ParsePropertyNaming(config.PropertyNaming)
	if err != nil {
		return err
	}

	if _, err := os.Stat(config.InputFile); err != nil {
		return fmt.Errorf("input: %w", err)
	}

	prefixes := names.LoadPrefixTable(config.ConfigFile, g.debug)

	g.debug.Printf("Generate export index....")

	graph, err := loader.NewService(
		loader.WithModelPackage(config.ModelPackage),
		loader.WithPrefixTable(prefixes),
		loader.WithPropertyNaming(naming),
		loader.WithDebugger(g.debug),
	).Load(config.InputFile)
	if err != nil {
		return err
	}

	result, err := orchestrator.New(&orchestrator.Config{
		ModelPackage:    config.ModelPackage,
		Prefixes:        prefixes,
		KeepInlineEnums: config.KeepInlineEnums,
		Debug:           g.debug,
	}).Process(graph)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(config.OutputDir, os.ModePerm); err != nil {
		return err
	}

	for _, outputType := range config.OutputTypes {
		outputType = strings.ToLower(strings.TrimSpace(outputType))
		if typeWriter, ok := g.outputTypeMap[outputType]; ok {
			if err := typeWriter(config, result); err != nil {
				return err
			}
		} else {
			g.debug.Printf("output type '%s' not supported", outputType)
		}
	}

	return g.writeModels(config, result)
}

func (g *Gen) writeJSONIndex(config *Config, result *orchestrator.Result) error {
	fileName := filepath.Join(config.OutputDir, IndexName+".json")

	b, err := g.jsonIndent(newIndexDocument(result))
	if err != nil {
		return err
	}

	if err := g.writeFile(b, fileName); err != nil {
		return err
	}

	g.debug.Printf("create %s.json at %+v", IndexName, fileName)

	return nil
}

func (g *Gen) writeYAMLIndex(config *Config, result *orchestrator.Result) error {
	fileName := filepath.Join(config.OutputDir, IndexName+".yaml")

	b, err := g.json(newIndexDocument(result))
	if err != nil {
		return err
	}

	y, err := g.jsonToYAML(b)
	if err != nil {
		return fmt.Errorf("cannot covert json to yaml error: %s", err)
	}

	if err := g.writeFile(y, fileName); err != nil {
		return err
	}

	g.debug.Printf("create %s.yaml at %+v", IndexName, fileName)

	return nil
}

func (g *Gen) writeTSIndex(config *Config, result *orchestrator.Result) error {
	fileName := filepath.Join(config.OutputDir, IndexName+".ts")

	buffer := &bytes.Buffer{}
	if err := indexTemplate.Execute(buffer, result.Index.Entries()); err != nil {
		return err
	}

	if err := g.writeFile(buffer.Bytes(), fileName); err != nil {
		return err
	}

	g.debug.Printf("create %s.ts at %+v", IndexName, fileName)

	return nil
}

// writeModels writes the metadata of every declaration concurrently.
func (g *Gen) writeModels(config *Config, result *orchestrator.Result) error {
	root := filepath.Join(config.OutputDir, ModelsDir)

	group := errgroup.Group{}
	group.SetLimit(runtime.NumCPU())

	for _, entry := range result.Index.Entries() {
		entry := entry
		group.Go(func() error {
			fileName := filepath.Join(root, filepath.FromSlash(entry.FileLocation)+".json")
			if err := os.MkdirAll(filepath.Dir(fileName), os.ModePerm); err != nil {
				return err
			}

			b, err := g.jsonIndent(newModelDocument(entry.Model))
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", entry.Model.Name, err)
			}

			return g.writeFile(b, fileName)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	g.debug.Printf("create %d model files at %+v", result.Index.Len(), root)

	return nil
}

func (g *Gen) writeFile(b []byte, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	defer f.Close()

	_, err = f.Write(b)

	return err
}

var indexTemplate = template.Must(template.New("index").Parse(
	`{{ range . }}export { {{ .ExportedNameList }} } from "{{ .FileLocation }}";
{{ end }}`))

type indexDocument struct {
	ModelPackage string       `json:"modelPackage,omitempty"`
	Entries      []indexEntry `json:"entries"`
}

type indexEntry struct {
	File    string   `json:"file"`
	Package string   `json:"package"`
	Exports []string `json:"exports"`
	Model   string   `json:"model"`
}

func newIndexDocument(result *orchestrator.Result) indexDocument {
	doc := indexDocument{
		ModelPackage: result.Store.ModelPackage(),
		Entries:      make([]indexEntry, 0, result.Index.Len()),
	}
	for _, entry := range result.Index.Entries() {
		doc.Entries = append(doc.Entries, newIndexEntry(entry))
	}

	return doc
}

func newIndexEntry(entry *registry.Entry) indexEntry {
	return indexEntry{
		File:    entry.FileLocation,
		Package: entry.PackageLocation,
		Exports: entry.ExportedNames(),
		Model:   entry.Model.Name,
	}
}

// modelDocument is the written form of a model. domain.Model cannot be
// encoded directly: its embedded VendorExtensible marshals the bag only.
type modelDocument struct {
	Name            string                `json:"name"`
	ClassName       string                `json:"className"`
	ClassFilename   string                `json:"classFilename"`
	Parent          string                `json:"parent,omitempty"`
	Description     string                `json:"description,omitempty"`
	DataType        string                `json:"dataType,omitempty"`
	IsEnum          bool                  `json:"isEnum,omitempty"`
	IsAlias         bool                  `json:"isAlias,omitempty"`
	Discriminator   *domain.Discriminator `json:"discriminator,omitempty"`
	Imports         []string              `json:"imports,omitempty"`
	AllowableValues []domain.EnumVar      `json:"allowableValues,omitempty"`
	Vars            []propertyDocument    `json:"vars,omitempty"`
	Extensions      spec.Extensions       `json:"extensions,omitempty"`
}

type propertyDocument struct {
	Name             string           `json:"name"`
	BaseName         string           `json:"baseName"`
	BaseType         string           `json:"baseType,omitempty"`
	ComplexType      string           `json:"complexType,omitempty"`
	DataType         string           `json:"dataType,omitempty"`
	DatatypeWithEnum string           `json:"datatypeWithEnum,omitempty"`
	IsEnum           bool             `json:"isEnum,omitempty"`
	IsListContainer  bool             `json:"isListContainer,omitempty"`
	IsMapContainer   bool             `json:"isMapContainer,omitempty"`
	AllowableValues  []domain.EnumVar `json:"allowableValues,omitempty"`
	Extensions       spec.Extensions  `json:"extensions,omitempty"`
}

func newModelDocument(m *domain.Model) modelDocument {
	doc := modelDocument{
		Name:            m.Name,
		ClassName:       m.ClassName,
		ClassFilename:   m.ClassFilename,
		Parent:          m.Parent,
		Description:     m.Description,
		DataType:        m.DataType,
		IsEnum:          m.IsEnum,
		IsAlias:         m.IsAlias,
		Discriminator:   m.Discriminator,
		Imports:         m.Imports,
		AllowableValues: m.AllowableValues,
		Extensions:      m.Extensions,
	}
	for _, p := range m.Vars {
		doc.Vars = append(doc.Vars, propertyDocument{
			Name:             p.Name,
			BaseName:         p.BaseName,
			BaseType:         p.BaseType,
			ComplexType:      p.ComplexType,
			DataType:         p.DataType,
			DatatypeWithEnum: p.DatatypeWithEnum,
			IsEnum:           p.IsEnum,
			IsListContainer:  p.IsListContainer,
			IsMapContainer:   p.IsMapContainer,
			AllowableValues:  p.AllowableValues,
			Extensions:       p.Extensions,
		})
	}

	return doc
}
