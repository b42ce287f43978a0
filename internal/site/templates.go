package site

// layoutTemplate wraps every page. Pages define "content".
const layoutTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | N8N AI Platform</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <header class="top-bar">
    <a class="brand" href="/">N8N AI Platform</a>
    <nav>
      {{range .Nav}}<a href="{{.Href}}"{{if eq .Href $.Active}} class="active"{{end}}>{{.Title}}</a>{{end}}
    </nav>
  </header>
  <div class="toasts" id="toasts">
    {{range .Flash}}<div class="toast toast-{{.Severity}}">{{.Message}}</div>{{end}}
  </div>
  <main class="content">
    {{if .Loading}}
      <div class="loading">Loading content…</div>
    {{else}}
      {{template "content" .Page}}
    {{end}}
  </main>
  <script src="/static/script.js"></script>
</body>
</html>`

const homeTemplate = `{{define "content"}}
<section class="hero">
  <h1>N8N AI Platform Replication</h1>
  <p>Documentation, workflows and implementation guides for rebuilding AI platform capabilities on N8N.</p>
  <div class="actions">
    <a class="button" href="/workflows">Explore Workflows</a>
    <a class="button secondary" href="/documentation">Read Documentation</a>
  </div>
  <p class="muted">{{.Docs}} documents ({{.DocsLoaded}} loaded) · {{.Workflows}} workflows ({{.WorkflowsLoaded}} loaded)</p>
</section>
<section class="grid">
  {{range .Features}}<div class="card"><h3>{{.Title}}</h3><p>{{.Description}}</p></div>{{end}}
</section>
<h2>Quick Access</h2>
<section class="grid">
  {{range .QuickAccess}}<a class="card link-card" href="{{.Href}}"><h3>{{.Title}}</h3><p>{{.Description}}</p></a>{{end}}
</section>
{{end}}`

// filterForm is shared by pages with a query and category filter.
const filterForm = `{{define "filter"}}
<form class="filters" method="get" action="{{.Path}}">
  {{if .Searchable}}<input type="text" name="q" value="{{.State.Query}}" placeholder="{{.Placeholder}}">{{end}}
  <select name="category">
    {{range .Categories}}<option value="{{.Name}}"{{if eq .Name $.State.Category}} selected{{end}}>{{.Name}}{{if $.ShowCounts}} ({{.Count}}){{end}}</option>{{end}}
  </select>
  {{if .State.Selected}}<input type="hidden" name="selected" value="{{.State.Selected}}">{{end}}
  <button type="submit">Filter</button>
</form>
{{end}}`

const documentationTemplate = `{{define "content"}}
<h1>Documentation Hub</h1>
{{template "filter" .Filter}}
<div class="split">
  <aside class="list">
    {{range .Visible}}
      <a class="item{{if eq .ID $.State.Selected}} selected{{end}}" href="{{link $.Filter.Path $.State .ID}}">
        <strong>{{.Title}}</strong>
        <span class="muted">{{.Category}} · {{.SizeLabel}}</span>
        <span>{{.Description}}</span>
      </a>
    {{else}}
      <p class="empty">No entries match.</p>
    {{end}}
  </aside>
  <article class="detail">
    {{with .Current}}
      <div class="detail-header">
        <h2>{{.Title}}</h2>
        {{if .Content.Available}}<a class="button" href="/documentation/{{.ID}}/download">Download</a>{{end}}
      </div>
      <p class="muted">{{.Filename}} · {{.SizeLabel}}</p>
      {{if .Content.Available}}<div class="markdown">{{$.HTML}}</div>{{else}}<p class="placeholder">{{.Content.Text}}</p>{{end}}
    {{else}}
      <p class="empty">Select a document to read it.</p>
    {{end}}
  </article>
</div>
{{end}}`

const workflowsTemplate = `{{define "content"}}
<h1>Workflow Explorer</h1>
{{template "filter" .Filter}}
<div class="split">
  <aside class="list">
    {{range .Visible}}
      <a class="item{{if eq .ID $.State.Selected}} selected{{end}}" href="{{link $.Filter.Path $.State .ID}}">
        <strong>{{.Title}}</strong>
        <span class="muted">{{.Category}} · {{if .Content.Workflow}}{{len .Content.Workflow.Nodes}} nodes{{else}}No data{{end}}</span>
        <span>{{.Description}}</span>
      </a>
    {{else}}
      <p class="empty">No entries match.</p>
    {{end}}
  </aside>
  <article class="detail">
    {{with .Current}}
      <div class="detail-header">
        <h2>{{.Title}}</h2>
        {{if .Content.Workflow}}
          <a class="button secondary" href="{{$.ToggleView}}">{{if $.JSONView}}Visual View{{else}}JSON View{{end}}</a>
          <a class="button" href="/workflows/{{.ID}}/download">Download</a>
        {{end}}
      </div>
      <p>{{.Description}}</p>
      {{with .Content.Workflow}}
        {{if $.JSONView}}
          <pre class="json">{{$.JSON}}</pre>
        {{else}}
          <div class="stats">
            <div><span class="stat">{{len .Nodes}}</span> nodes</div>
            <div><span class="stat">{{len $.Edges}}</span> connections</div>
            <div><span class="stat">{{if .Active}}Active{{else}}Inactive{{end}}</span></div>
          </div>
          <h3>Nodes</h3>
          <ul class="nodes">
            {{range .Nodes}}<li><strong>{{.Name}}</strong> <code>{{.Type}}</code>{{if .Disabled}} <em>(disabled)</em>{{end}}</li>{{else}}<li class="muted">No nodes available</li>{{end}}
          </ul>
          {{if $.Edges}}
          <h3>Connections</h3>
          <ul class="nodes">
            {{range $.Edges}}<li>{{.From}} → {{.To}}</li>{{end}}
          </ul>
          {{end}}
        {{end}}
      {{else}}
        <p class="placeholder">{{.Content.Text}}</p>
      {{end}}
    {{else}}
      <p class="empty">Choose a workflow from the list to view its details, nodes, and JSON structure.</p>
    {{end}}
  </article>
</div>
{{end}}`

const architectureTemplate = `{{define "content"}}
<h1>Architecture Viewer</h1>
<div class="tabs">
  {{range .Views}}<a class="tab{{if eq .ID $.Selected.ID}} active{{end}}" href="/architecture?view={{.ID}}">{{.Title}}</a>{{end}}
</div>
<p class="muted">{{.Selected.Description}}</p>
{{if eq .Selected.ID "overview"}}
  <div class="diagram">
    <div class="node">User Request</div>
    <div class="node core">Master Orchestrator</div>
    <div class="row">{{range $i, $c := .Components}}{{if $i}}<div class="node">{{$c.Name}}<small>{{$c.Type}}</small></div>{{end}}{{end}}</div>
  </div>
  <h2>Architecture Principles</h2>
  <div class="grid">{{range .Principles}}<div class="card"><h3>{{.Title}}</h3><p>{{.Description}}</p></div>{{end}}</div>
{{else if eq .Selected.ID "workflow"}}
  <h2>Workflow Architecture Pattern</h2>
  <p>The N8N AI Platform uses a master/sub-workflow architecture pattern for optimal modularity, scalability, and maintainability. This pattern separates concerns while enabling complex orchestration of AI operations.</p>
  <ol>
    <li>The Master Orchestrator receives and parses the request.</li>
    <li>It routes work to the specialised sub-workflows.</li>
    <li>Sub-workflows execute and return their results.</li>
    <li>Results are aggregated and returned to the caller.</li>
  </ol>
{{else if eq .Selected.ID "components"}}
  <h2>Workflow Component Breakdown</h2>
  <div class="grid">
    {{range .Components}}
      <div class="card">
        <h3>{{.Name}}</h3><p class="muted">{{.Type}}</p>
        <ul>{{range .Responsibilities}}<li>{{.}}</li>{{end}}</ul>
        <p class="muted">Connects to: {{join .Connections ", "}}</p>
      </div>
    {{end}}
  </div>
{{else if eq .Selected.ID "dataflow"}}
  <h2>Data Flow</h2>
  <ol class="stages">
    {{range .Stages}}
      <li class="card">
        <h3>{{.Stage}}</h3><p>{{.Description}}</p>
        <p class="muted">Components: {{join .Components ", "}}</p>
        <p class="muted">Data: {{join .DataTypes ", "}}</p>
      </li>
    {{end}}
  </ol>
{{end}}
{{end}}`

const implementationTemplate = `{{define "content"}}
<h1>Implementation Guide</h1>
<div class="progress">
  <div class="progress-label">Overall Progress: {{.Completed}} of {{.Total}} steps completed</div>
  <div class="bar"><div class="fill" style="width: {{pct .Completed .Total}}%"></div></div>
</div>
<div class="tabs">
  {{range .Phases}}<a class="tab{{if eq .ID $.Phase.ID}} active{{end}}" href="/implementation?phase={{.ID}}">{{.Title}}</a>{{end}}
</div>
<section>
  <h2>{{.Phase.Title}}</h2>
  <p>{{.Phase.Description}}</p>
  <p class="muted">{{.PhaseCompleted}} of {{len .Phase.Steps}} steps completed in this phase</p>
  {{range $i, $s := .Phase.Steps}}
    <div class="card step{{if index $.Done $s.ID}} done{{end}}">
      <form method="post" action="/implementation/steps/{{$s.ID}}">
        <button type="submit" class="check" aria-label="Toggle completion">{{if index $.Done $s.ID}}✓{{end}}</button>
      </form>
      <div>
        <h3>{{inc $i}}. {{$s.Title}} <span class="badge badge-{{$s.Priority}}">{{$s.Priority}}</span></h3>
        <p>{{$s.Description}}</p>
        {{if $s.Commands}}<pre>{{range $s.Commands}}{{.}}
{{end}}</pre>{{end}}
        {{if $s.Notes}}<ul>{{range $s.Notes}}<li>{{.}}</li>{{end}}</ul>{{end}}
      </div>
    </div>
  {{end}}
  <div class="pager">
    {{with .Prev}}<a class="button secondary" href="/implementation?phase={{.ID}}">← {{.Title}}</a>{{end}}
    {{with .Next}}<a class="button" href="/implementation?phase={{.ID}}">{{.Title}} →</a>{{end}}
  </div>
</section>
{{end}}`

const analysisTemplate = `{{define "content"}}
<h1>Platform Analysis</h1>
{{template "filter" .Filter}}
<div class="stats">
  <div><span class="stat">{{.Stats.Total}}</span> platforms analysed</div>
  <div><span class="stat">{{.Stats.HighFeasible}}</span> high feasibility</div>
  <div><span class="stat">{{.Stats.MediumComplex}}</span> medium complexity</div>
  <div><span class="stat">{{.Stats.Categories}}</span> categories</div>
</div>
<div class="split">
  <aside class="list">
    {{range .Items}}
      <a class="item{{if eq .Entry.ID $.State.Selected}} selected{{end}}" href="{{link $.Filter.Path $.State .Entry.ID}}">
        <strong>{{.Entry.Title}}</strong>
        <span class="muted">{{.Entry.Category}}</span>
        <span>{{.Entry.Description}}</span>
        <span><span class="badge badge-{{.Platform.Complexity}}">{{.Platform.Complexity}} complexity</span> <span class="badge badge-{{.Platform.Feasibility}}">{{.Platform.Feasibility}} feasibility</span></span>
      </a>
    {{else}}
      <p class="empty">No entries match.</p>
    {{end}}
  </aside>
  <article class="detail">
    {{with .Platform}}
      <div class="detail-header"><h2>{{.Name}}</h2>{{if .URL}}<a class="button secondary" href="{{.URL}}" rel="noopener" target="_blank">Visit</a>{{end}}</div>
      <p>{{.Description}}</p>
      <h3>Strengths</h3><ul>{{range .Strengths}}<li>{{.}}</li>{{end}}</ul>
      <h3>Limitations</h3><ul>{{range .Limitations}}<li>{{.}}</li>{{end}}</ul>
      <h3>N8N Implementation</h3><p>{{.N8NMapping}}</p>
    {{else}}
      <p class="empty">Select a platform to see its detailed analysis.</p>
    {{end}}
  </article>
</div>
{{end}}`

const downloadsTemplate = `{{define "content"}}
<h1>Download Center</h1>
<section class="hero">
  <h2>Complete Project Package</h2>
  <p>Download the entire N8N AI Platform Replication project including all workflows, documentation, and implementation guides.</p>
  <a class="button" href="/downloads/bulk">Download All{{with .Bulk}} ({{.Size}}){{end}}</a>
</section>
<div class="tabs">
  {{range .Categories}}<a class="tab{{if eq .Name $.State.Category}} active{{end}}" href="/downloads?category={{.Name}}">{{.Name}}{{if ne .Name "All"}} ({{.Count}}){{end}}</a>{{end}}
</div>
<div class="grid">
  {{range .Items}}
    <div class="card{{if .Downloaded}} done{{end}}">
      <h3>{{.Entry.Title}}</h3>
      <p>{{.Entry.Description}}</p>
      <p class="muted"><span class="badge">{{.Meta.Kind}}</span> {{.Entry.Filename}} · {{.Meta.Size}}</p>
      <a class="button" href="/downloads/{{.Entry.ID}}">{{if .Downloaded}}Downloaded ✓{{else}}Download{{end}}</a>
    </div>
  {{else}}
    <p class="empty">No entries match.</p>
  {{end}}
</div>
{{end}}`

const notFoundTemplate = `{{define "content"}}
<h1>Not found</h1>
<p>{{.}}</p>
<p><a href="/">Back to home</a></p>
{{end}}`

const cssContent = `:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --success: #2f9e44;
  --error: #e03131;
  --code-bg: #f1f3f5;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; color: var(--text); background: var(--bg-secondary); }
a { color: var(--accent); text-decoration: none; }
.top-bar { display: flex; align-items: center; gap: 2rem; padding: 0.75rem 2rem; background: var(--bg); border-bottom: 1px solid var(--border); }
.top-bar nav a { margin-right: 1rem; color: var(--text-muted); }
.top-bar nav a.active { color: var(--accent); font-weight: 600; }
.brand { font-weight: 700; color: var(--text); }
.content { max-width: 1200px; margin: 0 auto; padding: 2rem; }
.hero { background: linear-gradient(90deg, #228be6, #7950f2); color: #fff; padding: 2rem; border-radius: 12px; margin-bottom: 2rem; }
.hero .muted { color: #e7f5ff; }
.button { display: inline-block; padding: 0.5rem 1rem; border-radius: 8px; background: var(--accent); color: #fff; border: none; cursor: pointer; }
.button.secondary { background: var(--bg); color: var(--accent); border: 1px solid var(--border); }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1rem; margin-bottom: 2rem; }
.card { background: var(--bg); border: 1px solid var(--border); border-radius: 10px; padding: 1rem; }
.card.done { border-color: var(--success); }
.link-card { color: var(--text); }
.split { display: grid; grid-template-columns: 340px 1fr; gap: 1.5rem; }
.list { display: flex; flex-direction: column; gap: 0.5rem; }
.item { display: flex; flex-direction: column; gap: 0.25rem; padding: 0.75rem; background: var(--bg); border: 1px solid var(--border); border-radius: 8px; color: var(--text); }
.item.selected { border-color: var(--accent); background: var(--accent-light); }
.detail { background: var(--bg); border: 1px solid var(--border); border-radius: 10px; padding: 1.5rem; min-width: 0; }
.detail-header { display: flex; align-items: center; justify-content: space-between; gap: 1rem; }
.muted { color: var(--text-muted); font-size: 0.875rem; }
.empty, .placeholder, .loading { color: var(--text-muted); text-align: center; padding: 2rem; }
.filters { display: flex; gap: 0.5rem; margin-bottom: 1.5rem; }
.filters input { flex: 1; padding: 0.5rem; border: 1px solid var(--border); border-radius: 8px; }
.filters select, .filters button { padding: 0.5rem; border: 1px solid var(--border); border-radius: 8px; background: var(--bg); }
.tabs { display: flex; flex-wrap: wrap; gap: 0.5rem; margin-bottom: 1.5rem; }
.tab { padding: 0.5rem 1rem; border: 1px solid var(--border); border-radius: 8px; background: var(--bg); color: var(--text); }
.tab.active { background: var(--accent); color: #fff; border-color: var(--accent); }
.stats { display: flex; gap: 1.5rem; margin: 1rem 0; }
.stat { font-size: 1.5rem; font-weight: 700; }
.badge { display: inline-block; padding: 0.1rem 0.5rem; border-radius: 999px; font-size: 0.75rem; background: var(--code-bg); }
.badge-High { background: #ffe3e3; }
.badge-Medium { background: #fff3bf; }
.badge-Low { background: #d3f9d8; }
pre, code { background: var(--code-bg); border-radius: 6px; }
pre { padding: 1rem; overflow-x: auto; }
.json { max-height: 600px; }
.markdown table { border-collapse: collapse; }
.markdown th, .markdown td { border: 1px solid var(--border); padding: 0.4rem 0.75rem; }
.progress .bar { height: 10px; background: var(--code-bg); border-radius: 999px; overflow: hidden; }
.progress .fill { height: 100%; background: var(--success); }
.step { display: flex; gap: 1rem; margin-bottom: 1rem; }
.check { width: 28px; height: 28px; border: 2px solid var(--border); border-radius: 50%; background: var(--bg); cursor: pointer; }
.step.done .check { background: var(--success); border-color: var(--success); color: #fff; }
.pager { display: flex; justify-content: space-between; }
.diagram { display: flex; flex-direction: column; align-items: center; gap: 1rem; margin: 1.5rem 0; }
.diagram .row { display: flex; flex-wrap: wrap; gap: 1rem; justify-content: center; }
.node { padding: 0.75rem 1rem; background: var(--bg); border: 1px solid var(--border); border-radius: 8px; text-align: center; }
.node small { display: block; color: var(--text-muted); }
.node.core { border-color: var(--accent); background: var(--accent-light); }
.toasts { position: fixed; top: 1rem; right: 1rem; display: flex; flex-direction: column; gap: 0.5rem; z-index: 10; }
.toast { padding: 0.75rem 1rem; border-radius: 8px; color: #fff; background: var(--accent); box-shadow: 0 4px 12px rgba(0,0,0,0.1); }
.toast-success { background: var(--success); }
.toast-error { background: var(--error); }
@media (max-width: 900px) { .split { grid-template-columns: 1fr; } }
`

const jsContent = `(function () {
  var box = document.getElementById("toasts");
  function show(n) {
    var el = document.createElement("div");
    el.className = "toast toast-" + n.severity;
    el.textContent = n.message;
    box.appendChild(el);
    setTimeout(function () { el.remove(); }, 4000);
  }
  Array.prototype.forEach.call(box.children, function (el) {
    setTimeout(function () { el.remove(); }, 4000);
  });
  if (!window.WebSocket) return;
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws/notifications");
  ws.onmessage = function (ev) {
    try { show(JSON.parse(ev.data)); } catch (e) {}
  };
})();
`
