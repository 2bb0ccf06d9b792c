package export

import (
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/chenghui/supervision-go/internal/document"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// A4 page at 96dpi; the export is drawn at Scale times that for print quality.
const (
	pageWidth  = 794
	pageHeight = 1123
	Scale      = 2

	marginX    = 40
	lineHeight = 18
	fontSize   = 14
)

// WritePNG rasterises a rendered document onto an opaque white page and writes
// it as a single PNG. Text is drawn directly at the supersampled resolution,
// never upscaled.
func WritePNG(w io.Writer, doc document.Document) error {
	page := imaging.New(pageWidth*Scale, pageHeight*Scale, color.White)

	face := newFace(fontSize * Scale)
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  page,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	y := (marginX + lineHeight) * Scale
	drawLine := func(text string) {
		if y > (pageHeight-marginX)*Scale {
			return // single-page form; overflow is clipped
		}
		drawer.Dot = fixed.P(marginX*Scale, y)
		drawer.DrawString(text)
		y += lineHeight * Scale
	}

	title := doc.Title
	if doc.Code != "" {
		title += "  " + doc.Code
	}
	drawLine(title)
	y += lineHeight * Scale

	for _, f := range doc.Header {
		drawLine(f.Label + "：" + f.Value)
	}
	if len(doc.Header) > 0 {
		y += lineHeight * Scale
	}

	for _, tbl := range doc.Tables {
		for _, r := range tbl.Rows {
			parts := make([]string, 0, len(r.Cells))
			for _, c := range r.Cells {
				if c.Header {
					parts = append(parts, c.Text+"：")
				} else {
					parts = append(parts, c.Text)
				}
			}
			drawLine(strings.Join(parts, " "))
		}
		y += lineHeight * Scale
	}

	for _, line := range doc.Footer {
		drawLine(line)
	}

	return imaging.Encode(w, page, imaging.PNG)
}
