package pdf

import "strings"

// The drawing surface is a small capability set: place text, place an
// image, fill or stroke a rectangle, draw a line, measure text. Style is an
// explicit argument on every call, so there is no retained pen state to
// forget to reset. The production implementation wraps gofpdf; tests use a
// recording sink.

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B int
}

var (
	colorBlack      = RGB{0, 0, 0}
	colorDarkGrey   = RGB{60, 60, 60}
	colorMidGrey    = RGB{120, 120, 120}
	colorBorder     = RGB{180, 180, 180}
	colorHeaderFill = RGB{240, 240, 240}
	colorWhite      = RGB{255, 255, 255}
)

// Text anchor within PlaceText. Left anchors at x, center and right shift
// the string so that x is its midpoint or right edge.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Style describes one text placement. Zero value is 8pt regular black,
// left-anchored; callers always set Size explicitly.
type Style struct {
	Size   float64
	Bold   bool
	Italic bool
	Color  RGB
	Align  string
}

// Sink is the page-description surface the layout coordinator draws on.
// Coordinates are millimeters from the top-left corner; text y is the
// baseline, matching the source template's coordinate system.
type Sink interface {
	PlaceText(x, y float64, text string, st Style)
	PlaceImage(x, y, w, h float64, img *LogoPayload)
	FillRect(x, y, w, h float64, c RGB)
	StrokeRect(x, y, w, h float64, c RGB, lineWidth float64)
	DrawLine(x1, y1, x2, y2 float64, c RGB, lineWidth float64)
	TextWidth(text string, st Style) float64
	PageSize() (w, h float64)
}

// wrapText greedily wraps text to the given width using the sink's own
// measurement. Explicit newlines are respected. Words wider than the column
// are broken rune by rune rather than overflowing. Empty input yields no
// lines at all, so absent fields never produce blank gaps.
func wrapText(s Sink, text string, width float64, st Style) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		line := ""
		for _, w := range words {
			if line == "" {
				line = w
			} else if s.TextWidth(line+" "+w, st) <= width {
				line += " " + w
			} else {
				out = append(out, line)
				line = w
			}
			// hard-break an oversized word so it can never escape the box
			for s.TextWidth(line, st) > width && len([]rune(line)) > 1 {
				head, rest := breakToWidth(s, line, width, st)
				out = append(out, head)
				line = rest
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// clipToWidth truncates text to a single line that fits the given width.
// No ellipsis: overflowing content is silently cut, exactly like the
// template it reproduces.
func clipToWidth(s Sink, text string, width float64, st Style) string {
	if s.TextWidth(text, st) <= width {
		return text
	}
	head, _ := breakToWidth(s, text, width, st)
	return head
}

func breakToWidth(s Sink, text string, width float64, st Style) (head, rest string) {
	runes := []rune(text)
	n := len(runes)
	for n > 1 && s.TextWidth(string(runes[:n]), st) > width {
		n--
	}
	return string(runes[:n]), string(runes[n:])
}
