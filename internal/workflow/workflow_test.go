package workflow

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const researchEngine = `{
  "name": "Research Engine",
  "nodes": [
    {"name": "Start", "type": "n8n-nodes-base.start", "typeVersion": 1, "position": [250, 300]},
    {"name": "Web Search", "type": "n8n-nodes-base.httpRequest", "parameters": {"url": "https://example.com/search", "options": {}}},
    {"name": "Extract", "type": "n8n-nodes-base.htmlExtract"}
  ],
  "connections": {
    "Start": {"main": [[{"node": "Web Search", "type": "main", "index": 0}]]},
    "Web Search": {"main": [[{"node": "Extract", "type": "main", "index": 0}]]}
  },
  "active": false,
  "settings": {"executionOrder": "v1"},
  "id": "2"
}`

func TestParse(t *testing.T) {
	def, err := Parse([]byte(researchEngine))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if def.Name != "Research Engine" {
		t.Errorf("name = %q, want %q", def.Name, "Research Engine")
	}
	if len(def.Nodes) != 3 {
		t.Fatalf("nodes = %d, want 3", len(def.Nodes))
	}
	if def.ID != "2" {
		t.Errorf("id = %q, want %q", def.ID, "2")
	}
	if def.Settings["executionOrder"] != "v1" {
		t.Errorf("settings.executionOrder = %v", def.Settings["executionOrder"])
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"array", `[1,2,3]`},
		{"not json", `<html>404</html>`},
		{"truncated", `{"name": "x", "nodes": [`},
		{"no name", `{"nodes": [], "connections": {}}`},
		{"no nodes", `{"name": "x", "connections": {}}`},
		{"untyped node", `{"name": "x", "nodes": [{"name": "a"}], "connections": {}}`},
		{"unnamed node", `{"name": "x", "nodes": [{"type": "t"}], "connections": {}}`},
		{"duplicate node", `{"name": "x", "nodes": [{"name": "a", "type": "t"}, {"name": "a", "type": "t"}]}`},
		{"dangling link", `{"name": "x", "nodes": [{"name": "a", "type": "t"}], "connections": {"a": {"main": [[{"node": "b", "type": "main", "index": 0}]]}}}`},
		{"unknown source", `{"name": "x", "nodes": [{"name": "a", "type": "t"}], "connections": {"z": {"main": [[]]}}}`},
		{"bad position", `{"name": "x", "nodes": [{"name": "a", "type": "t", "position": [1]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.data)
			}
		})
	}
}

func TestValidateWrapsErrInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"name": "", "nodes": []}`))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	def, err := Parse([]byte(researchEngine))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	data, err := def.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.HasPrefix(string(data), "{\n  \"name\": \"Research Engine\",\n  \"nodes\"") {
		t.Errorf("unexpected indentation:\n%s", data)
	}
	if !strings.HasSuffix(string(data), "}\n") {
		t.Error("expected trailing newline")
	}

	again, err := Parse(data)
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}
	if diff := cmp.Diff(def, again, cmpopts.IgnoreFields(Definition{}, "Source")); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// Same definition, same bytes.
	second, _ := again.Marshal()
	if string(second) != string(data) {
		t.Error("Marshal is not deterministic")
	}
}

// An n8n export carries editor state the typed view does not model.
const editorExport = `{"name":"W","nodes":[{"name":"Hook","type":"n8n-nodes-base.webhook","webhookId":"abc","onError":"continueRegularOutput","retryOnFail":true,"position":[0,0]}],` +
	`"connections":{},"settings":{},"pinData":{},"meta":{"instanceId":"x"},"versionId":"v1","staticData":null}`

func TestMarshalKeepsWholeDocument(t *testing.T) {
	def, err := Parse([]byte(editorExport))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := def.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var want, got map[string]any
	if err := json.Unmarshal([]byte(editorExport), &want); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("exported JSON is invalid: %v\n%s", err, data)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("exported document mismatch (-loaded +exported):\n%s", diff)
	}
	if !strings.Contains(string(data), "\n  \"settings\": {},\n") {
		t.Errorf("empty settings not kept with 2-space indent:\n%s", data)
	}
}

func TestMarshalBuiltInCode(t *testing.T) {
	def := &Definition{
		Name:        "Built",
		Nodes:       []Node{{Name: "Start", Type: "n8n-nodes-base.start"}},
		Connections: Connections{},
		Settings:    map[string]any{},
	}
	data, err := def.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	again, err := Parse(data)
	if err != nil {
		t.Fatalf("re-Parse: %v\n%s", err, data)
	}
	if diff := cmp.Diff(def, again, cmpopts.IgnoreFields(Definition{}, "Source")); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNodeTypesAndEdges(t *testing.T) {
	def, err := Parse([]byte(researchEngine))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantTypes := []string{"n8n-nodes-base.htmlExtract", "n8n-nodes-base.httpRequest", "n8n-nodes-base.start"}
	if diff := cmp.Diff(wantTypes, def.NodeTypes()); diff != "" {
		t.Errorf("NodeTypes mismatch (-want +got):\n%s", diff)
	}

	wantEdges := []Edge{
		{From: "Start", To: "Web Search", Type: "main"},
		{From: "Web Search", To: "Extract", Type: "main"},
	}
	if diff := cmp.Diff(wantEdges, def.Edges()); diff != "" {
		t.Errorf("Edges mismatch (-want +got):\n%s", diff)
	}
}
