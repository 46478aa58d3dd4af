package model

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// University is one entry of the input list. Fields other than name are
// carried through untouched in Extra.
type University struct {
	Name  string
	Extra map[string]any
}

// UnmarshalJSON decodes an object with a "name" key, keeping every other key.
func (u *University) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return eris.Wrap(err, "model: decode university")
	}
	return u.fromMap(raw)
}

// MarshalJSON writes the name and passthrough fields back as a flat object.
func (u University) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.toMap())
}

// UnmarshalYAML decodes a YAML mapping with a "name" key.
func (u *University) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return eris.Wrap(err, "model: decode university")
	}
	return u.fromMap(raw)
}

func (u *University) fromMap(raw map[string]any) error {
	name, ok := raw["name"].(string)
	if !ok {
		return eris.New("model: university has no string name")
	}
	delete(raw, "name")

	u.Name = name
	u.Extra = nil
	if len(raw) > 0 {
		u.Extra = raw
	}
	return nil
}

func (u University) toMap() map[string]any {
	m := make(map[string]any, len(u.Extra)+1)
	for k, v := range u.Extra {
		m[k] = v
	}
	m["name"] = u.Name
	return m
}
