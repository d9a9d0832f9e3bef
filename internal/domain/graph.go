package domain

// Graph is an ordered set of models addressable by class name.
type Graph struct {
	ModelPackage string

	models  []*Model
	byClass map[string]*Model
}

// NewGraph creates a graph holding models in the given order.
func NewGraph(modelPackage string, models ...*Model) *Graph {
	g := &Graph{
		ModelPackage: modelPackage,
		byClass:      make(map[string]*Model, len(models)),
	}
	for _, m := range models {
		g.Add(m)
	}

	return g
}

// Add appends a model. A model with an already known class name replaces the
// lookup but keeps both in iteration order.
func (g *Graph) Add(m *Model) {
	g.models = append(g.models, m)
	g.byClass[m.ClassName] = m
}

// Models returns the models in insertion order.
func (g *Graph) Models() []*Model {
	return g.models
}

// Lookup finds a model by class name.
func (g *Graph) Lookup(className string) (*Model, bool) {
	m, ok := g.byClass[className]
	return m, ok
}

// Len returns the number of models.
func (g *Graph) Len() int {
	return len(g.models)
}
