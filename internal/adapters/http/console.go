package web

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// renderMarkdown converts an assistant reply to HTML for the console.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// consoleData feeds the console template.
type consoleData struct {
	CSRFField template.HTML
	Email     string
	Action    string
	Text      string
	Rating    string
	Reply     template.HTML
	HasReply  bool
}

var consoleTemplate = template.Must(template.New("console").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Membuddy Console</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 640px; margin: 2rem auto; padding: 0 1rem; }
    label { display: block; margin-top: 0.75rem; font-weight: 600; }
    input, select, textarea { width: 100%; padding: 0.4rem; margin-top: 0.25rem; }
    button { margin-top: 1rem; padding: 0.5rem 1.5rem; }
    .reply { margin-top: 1.5rem; padding: 1rem; background: #f4f6f8; border-radius: 6px; }
  </style>
</head>
<body>
  <h1>Membuddy</h1>
  <p>Your membership assistant. Pick an action and ask in plain language.</p>
  <form method="POST" action="/console">
    {{.CSRFField}}
    <label for="action">Action</label>
    <select id="action" name="action">
      <option value="profile" {{if eq .Action "profile"}}selected{{end}}>View profile</option>
      <option value="renewal" {{if eq .Action "renewal"}}selected{{end}}>Renewal options</option>
      <option value="methods" {{if eq .Action "methods"}}selected{{end}}>Payment methods</option>
      <option value="update" {{if eq .Action "update"}}selected{{end}}>Update profile</option>
      <option value="pay" {{if eq .Action "pay"}}selected{{end}}>Make a payment</option>
      <option value="feedback" {{if eq .Action "feedback"}}selected{{end}}>Leave feedback</option>
      <option value="faq" {{if eq .Action "faq"}}selected{{end}}>Ask a question</option>
    </select>
    <label for="email">Email</label>
    <input id="email" name="email" type="text" value="{{.Email}}" placeholder="you@example.com">
    <label for="text">Message</label>
    <textarea id="text" name="text" rows="3" placeholder="e.g. update my address to 123 Main St">{{.Text}}</textarea>
    <label for="rating">Rating (feedback only)</label>
    <input id="rating" name="rating" type="number" min="1" max="5" value="{{.Rating}}">
    <button type="submit">Send</button>
  </form>
  {{if .HasReply}}<div class="reply">{{.Reply}}</div>{{end}}
</body>
</html>`))

func renderConsole(w http.ResponseWriter, r *http.Request, data consoleData) {
	data.CSRFField = csrf.TemplateField(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := consoleTemplate.Execute(w, data); err != nil {
		internalError(w, err)
	}
}

// handleConsoleIndex serves the empty console form at the root.
func handleConsoleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	renderConsole(w, r, consoleData{Action: "profile"})
}

// handleConsole runs one action and re-renders the form with the reply.
func handleConsole(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	action := r.FormValue("action")
	email := strings.TrimSpace(r.FormValue("email"))
	text := strings.TrimSpace(r.FormValue("text"))
	rating, _ := strconv.Atoi(r.FormValue("rating"))

	if !isKnownAction(action) {
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	reply, err := dispatchAction(r.Context(), action, email, text, rating)
	if err != nil {
		internalError(w, err)
		return
	}

	renderConsole(w, r, consoleData{
		Email:    email,
		Action:   action,
		Text:     text,
		Rating:   r.FormValue("rating"),
		Reply:    renderMarkdown(reply),
		HasReply: true,
	})
}
