package workflow

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrInvalid is wrapped by every validation failure returned from Parse.
var ErrInvalid = errors.New("invalid workflow")

// Parse decodes and validates a workflow definition. Payloads that are not
// JSON objects, or that lack the fields every page relies on, are rejected.
func Parse(data []byte) (*Definition, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalid)
	}
	if data[0] != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalid)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decoding workflow: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	def.Source = append(json.RawMessage(nil), data...)
	return &def, nil
}

// Validate checks the structural invariants of a definition: a name, named
// and typed nodes with unique names, and connections that only reference
// nodes that exist.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if d.Nodes == nil {
		return fmt.Errorf("%w: nodes is required", ErrInvalid)
	}

	names := make(map[string]bool, len(d.Nodes))
	for i, n := range d.Nodes {
		if n.Name == "" {
			return fmt.Errorf("%w: node %d has no name", ErrInvalid, i)
		}
		if n.Type == "" {
			return fmt.Errorf("%w: node %q has no type", ErrInvalid, n.Name)
		}
		if names[n.Name] {
			return fmt.Errorf("%w: duplicate node name %q", ErrInvalid, n.Name)
		}
		if n.Position != nil && len(n.Position) != 2 {
			return fmt.Errorf("%w: node %q position must have 2 coordinates", ErrInvalid, n.Name)
		}
		names[n.Name] = true
	}

	for src, outputs := range d.Connections {
		if !names[src] {
			return fmt.Errorf("%w: connection from unknown node %q", ErrInvalid, src)
		}
		for _, slots := range outputs {
			for _, links := range slots {
				for _, l := range links {
					if !names[l.Node] {
						return fmt.Errorf("%w: connection from %q to unknown node %q", ErrInvalid, src, l.Node)
					}
				}
			}
		}
	}
	return nil
}

// Marshal re-serializes the definition with 2-space indentation and a
// trailing newline. A parsed definition re-indents its Source, so every
// field and the original key order survive; one built in code is encoded
// from the typed fields.
func (d *Definition) Marshal() ([]byte, error) {
	if len(d.Source) > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, d.Source, "", "  "); err != nil {
			return nil, fmt.Errorf("encoding workflow: %w", err)
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding workflow: %w", err)
	}
	return append(data, '\n'), nil
}

// NodeTypes returns the distinct node types used by the workflow, sorted.
func (d *Definition) NodeTypes() []string {
	seen := make(map[string]bool)
	var types []string
	for _, n := range d.Nodes {
		if !seen[n.Type] {
			seen[n.Type] = true
			types = append(types, n.Type)
		}
	}
	sort.Strings(types)
	return types
}

// Edges flattens the connection map into a list sorted by source node,
// connection type and output index.
func (d *Definition) Edges() []Edge {
	var edges []Edge
	for src, outputs := range d.Connections {
		for typ, slots := range outputs {
			for out, links := range slots {
				for _, l := range links {
					edges = append(edges, Edge{From: src, To: l.Node, Type: typ, Output: out, Input: l.Index})
				}
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Output != b.Output {
			return a.Output < b.Output
		}
		return a.To < b.To
	})
	return edges
}
