package view

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var fragments = template.Must(template.New("view").ParseFS(templateFS, "templates/*.html"))

// Render writes the HTML fragment of the current view. Fragments are rebuilt
// from the state on every call.
func (c *Controller) Render(w io.Writer) error {
	return RenderState(w, c.Snapshot())
}

// RenderState writes the fragment for s.View.
func RenderState(w io.Writer, s State) error {
	return fragments.ExecuteTemplate(w, string(s.View), s)
}
