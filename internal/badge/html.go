package badge

import (
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("badge").Parse(
	`<div class="{{.Classes}}" style="{{.Style}}">{{.Text}}</div>`))

// RenderHTML writes the badge as a single div with inline styles
func RenderHTML(w io.Writer, b Badge) error {
	return htmlTemplate.Execute(w, struct {
		Classes string
		Style   template.CSS
		Text    string
	}{
		Classes: b.Classes(),
		// built from theme tokens only, never from caller text
		Style: template.CSS(b.Style.CSS()),
		Text:  b.Text(),
	})
}
