package workflow

import "encoding/json"

// Definition is an N8N workflow export as shipped under the workflows
// content area. Only name, nodes and connections are required. The typed
// fields are the validated view; Source keeps the whole document, including
// fields this struct does not model (pinData, meta, webhookId, ...).
type Definition struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Nodes       []Node         `json:"nodes"`
	Connections Connections    `json:"connections"`
	Active      bool           `json:"active"`
	Settings    map[string]any `json:"settings"`
	Tags        []string       `json:"tags,omitempty"`

	// Source is the document Parse validated. It is nil for definitions
	// built in code.
	Source json.RawMessage `json:"-"`
}

// Node is a single step in a workflow.
type Node struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	TypeVersion float64        `json:"typeVersion,omitempty"`
	Position    []float64      `json:"position,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	Credentials map[string]any `json:"credentials,omitempty"`
	Disabled    bool           `json:"disabled,omitempty"`
	Notes       string         `json:"notes,omitempty"`
}

// Connections maps a source node name to its outputs keyed by connection
// type ("main", "ai_tool", ...). Each output index holds the list of
// downstream links.
type Connections map[string]map[string][][]Link

// Link points at an input of a downstream node.
type Link struct {
	Node  string `json:"node"`
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// Edge is a flattened connection between two named nodes.
type Edge struct {
	From   string
	To     string
	Type   string
	Output int
	Input  int
}
