package refgroup

import (
	"encoding/json"
	"fmt"

	"github.com/specialistvlad/paramgrid/internal/paramkey"
	"github.com/specialistvlad/paramgrid/internal/paramref"
	"gopkg.in/yaml.v3"
)

type groupWire struct {
	Name        string                `json:"name" yaml:"name"`
	Description string                `json:"description" yaml:"description"`
	Content     []*paramref.Reference `json:"content" yaml:"content"`
}

func (g *Group) toWire() groupWire {
	content := g.content
	if content == nil {
		content = []*paramref.Reference{}
	}
	return groupWire{Name: g.name, Description: g.description, Content: content}
}

// fromWire rejects content with a missing or malformed path before touching
// the group.
func (g *Group) fromWire(w groupWire) error {
	for _, ref := range w.Content {
		if ref == nil {
			return fmt.Errorf("group '%s': content entry is empty", w.Name)
		}
		if _, err := paramkey.Parse(ref.Path); err != nil {
			return fmt.Errorf("group '%s': invalid reference path: %w", w.Name, err)
		}
	}
	if g.params == nil {
		g.initParams()
	}
	g.name = w.Name
	g.description = w.Description
	g.content = nil
	for _, ref := range w.Content {
		g.add(ref)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (g *Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.toWire())
}

// UnmarshalJSON implements json.Unmarshaler. Duplicate paths are dropped.
func (g *Group) UnmarshalJSON(data []byte) error {
	var w groupWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return g.fromWire(w)
}

// MarshalYAML implements yaml.Marshaler.
func (g *Group) MarshalYAML() (any, error) {
	return g.toWire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *Group) UnmarshalYAML(value *yaml.Node) error {
	var w groupWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	return g.fromWire(w)
}

func (c *Collection) wireGroups() []*Group {
	if c.groups == nil {
		return []*Group{}
	}
	return c.groups
}

// MarshalJSON implements json.Marshaler.
func (c *Collection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.wireGroups())
}

// UnmarshalJSON replaces the groups with the decoded ones.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var groups []*Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return err
	}
	c.SetGroups(groups)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c *Collection) MarshalYAML() (any, error) {
	return c.wireGroups(), nil
}

// UnmarshalYAML replaces the groups with the decoded ones.
func (c *Collection) UnmarshalYAML(value *yaml.Node) error {
	var groups []*Group
	if err := value.Decode(&groups); err != nil {
		return err
	}
	c.SetGroups(groups)
	return nil
}
