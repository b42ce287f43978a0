package pages

// Catalog names used by the JSON API and the MCP tools.
const (
	Documentation  = "documentation"
	Workflows      = "workflows"
	Architecture   = "architecture"
	Implementation = "implementation"
	Analysis       = "analysis"
	Downloads      = "downloads"
)

// BulkDownloadID is the download item served by the "download all" action.
const BulkDownloadID = "complete-archive"

// Level is a Low/Medium/High rating.
type Level string

const (
	Low    Level = "Low"
	Medium Level = "Medium"
	High   Level = "High"
)

// Platform is one analysed AI platform.
type Platform struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
	Limitations []string `json:"limitations"`
	N8NMapping  string   `json:"n8nMapping"`
	Complexity  Level    `json:"complexity"`
	Feasibility Level    `json:"feasibility"`
	URL         string   `json:"url,omitempty"`
}

// View is one tab of the architecture viewer.
type View struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Component is a workflow component shown on the architecture viewer.
type Component struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Responsibilities []string `json:"responsibilities"`
	Connections      []string `json:"connections"`
}

type Principle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Stage is one step of the architecture data flow.
type Stage struct {
	Stage       string   `json:"stage"`
	Description string   `json:"description"`
	Components  []string `json:"components"`
	DataTypes   []string `json:"dataTypes"`
}

// Step is one implementation task. Completion is tracked per session.
type Step struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Level    `json:"priority"`
	Commands    []string `json:"commands,omitempty"`
	Notes       []string `json:"notes,omitempty"`
}

// Phase groups implementation steps.
type Phase struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Steps       []Step `json:"steps"`
}

// Kind is the type badge of a download item.
type Kind string

const (
	KindArchive  Kind = "archive"
	KindDocument Kind = "document"
	KindWorkflow Kind = "workflow"
	KindData     Kind = "data"
)

// Download is the display metadata of a download center item. The size is
// the declared one; the real size is only known after fetching.
type Download struct {
	ID   string `json:"id"`
	Kind Kind   `json:"type"`
	Size string `json:"size"`
}

// Feature is a highlight on the home page.
type Feature struct {
	Title       string
	Description string
}

// Link is a quick-access card on the home page.
type Link struct {
	Title       string
	Description string
	Href        string
}
