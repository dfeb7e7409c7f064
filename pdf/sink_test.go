package pdf

import "strings"

// recordSink captures draw operations so layout tests can assert on
// geometry without parsing PDF bytes. Text measurement is a fixed-width
// model: each rune is 0.2mm per point of font size, which keeps wrapping
// deterministic and easy to reason about in tests.

type op struct {
	kind       string // "text", "image", "fill", "stroke", "line"
	x, y, w, h float64
	text       string
	style      Style
}

type recordSink struct {
	ops []op
}

func (r *recordSink) PlaceText(x, y float64, text string, st Style) {
	r.ops = append(r.ops, op{kind: "text", x: x, y: y, text: text, style: st})
}

func (r *recordSink) PlaceImage(x, y, w, h float64, img *LogoPayload) {
	if img == nil {
		return
	}
	r.ops = append(r.ops, op{kind: "image", x: x, y: y, w: w, h: h})
}

func (r *recordSink) FillRect(x, y, w, h float64, c RGB) {
	r.ops = append(r.ops, op{kind: "fill", x: x, y: y, w: w, h: h})
}

func (r *recordSink) StrokeRect(x, y, w, h float64, c RGB, lw float64) {
	r.ops = append(r.ops, op{kind: "stroke", x: x, y: y, w: w, h: h})
}

func (r *recordSink) DrawLine(x1, y1, x2, y2 float64, c RGB, lw float64) {
	r.ops = append(r.ops, op{kind: "line", x: x1, y: y1, w: x2 - x1, h: y2 - y1})
}

func (r *recordSink) TextWidth(text string, st Style) float64 {
	return float64(len([]rune(text))) * st.Size * 0.2
}

func (r *recordSink) PageSize() (float64, float64) { return 210, 297 }

// find returns the first recorded text op whose content matches.
func (r *recordSink) findText(substr string) (op, bool) {
	for _, o := range r.ops {
		if o.kind == "text" && strings.Contains(o.text, substr) {
			return o, true
		}
	}
	return op{}, false
}

func (r *recordSink) texts() []string {
	var out []string
	for _, o := range r.ops {
		if o.kind == "text" {
			out = append(out, o.text)
		}
	}
	return out
}
