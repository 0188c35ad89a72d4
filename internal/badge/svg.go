package badge

import (
	"fmt"
	"html"
	"io"

	svg "github.com/ajstarks/svgo"
)

const svgFontFamily = "Helvetica Neue,Helvetica,Arial,sans-serif"

// RenderSVG writes the badge as a standalone SVG document sized to its diameter
func RenderSVG(w io.Writer, b Badge) error {
	d := b.Style.Diameter
	if d <= 0 {
		return fmt.Errorf("cannot render svg badge with diameter %d", d)
	}
	r := d / 2
	// integer halving: odd diameters get a circle 1px narrower than the canvas
	cx, cy := d/2, d/2

	textStyle := fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-family:%s;font-size:%dpx", svgFontFamily, b.Style.FontSize)

	canvas := svg.New(w)
	canvas.Start(d, d)
	canvas.Title(titleFor(b))
	canvas.Group(fmt.Sprintf(`class="%s"`, html.EscapeString(b.Classes())))
	canvas.Circle(cx, cy, r, "fill:"+b.Style.Background)
	if text := b.Text(); text != "" {
		// stroke underlay stands in for the css text-shadow
		canvas.Text(cx, cy, text, textStyle+";fill:none;stroke:rgba(0,0,0,0.35);stroke-width:1px")
		canvas.Text(cx, cy, text, textStyle+";fill:"+b.Style.Color)
	}
	canvas.Gend()
	canvas.End()
	return nil
}

func titleFor(b Badge) string {
	if b.Label == "" {
		return "size rating"
	}
	return "size rating " + b.Text()
}
