package extension

// EnumerationDefinition holds the members of an extracted enum.
type EnumerationDefinition struct {
	PackageName string            `json:"packageName"`
	Values      map[string]string `json:"values"`
}

// NewEnumerationDefinition creates an empty definition for the enum at
// packageName.
func NewEnumerationDefinition(packageName string) *EnumerationDefinition {
	return &EnumerationDefinition{
		PackageName: packageName,
		Values:      make(map[string]string),
	}
}

// Put adds a member.
func (d *EnumerationDefinition) Put(name, literal string) *EnumerationDefinition {
	d.Values[name] = literal
	return d
}

// Len returns the number of members.
func (d *EnumerationDefinition) Len() int {
	return len(d.Values)
}

func (d *EnumerationDefinition) clone() *EnumerationDefinition {
	c := NewEnumerationDefinition(d.PackageName)
	for name, literal := range d.Values {
		c.Values[name] = literal
	}

	return c
}

func decodeEnumeration(raw interface{}) *EnumerationDefinition {
	switch v := raw.(type) {
	case *EnumerationDefinition:
		return v.clone()
	case map[string]interface{}:
		packageName, ok := v["packageName"].(string)
		if !ok {
			return nil
		}
		d := NewEnumerationDefinition(packageName)
		for name, literal := range stringMap(v["values"]) {
			d.Put(name, literal)
		}
		return d
	default:
		return nil
	}
}
