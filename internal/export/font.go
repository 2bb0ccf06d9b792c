package export

import (
	"os"

	"github.com/chenghui/supervision-go/internal/config"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const dpi = 96

// cjkFontPaths are the usual install locations of a Chinese-capable font,
// tried in order after the configured FONT_PATH.
var cjkFontPaths = []string{
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/opentype/noto/NotoSansCJKsc-Regular.otf",
	"/usr/share/fonts/truetype/wqy/wqy-zenhei.ttc",
	"/usr/share/fonts/wqy-zenhei/wqy-zenhei.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"C:\\Windows\\Fonts\\msyh.ttc",
}

// newFace builds the drawing face for the raster export. The configured
// FONT_PATH wins, then the known CJK locations. The Go font bundled with
// golang.org/x/image is the last resort so the exporter still produces a page
// on hosts without a Chinese font, at the cost of blank CJK glyphs there.
func newFace(size float64) font.Face {
	paths := cjkFontPaths
	if config.FontPath != "" {
		paths = append([]string{config.FontPath}, paths...)
	}
	for _, p := range paths {
		if face, err := loadFace(p, size); err == nil {
			return face
		}
	}

	face, err := faceFromData(goregular.TTF, size)
	if err != nil {
		// goregular ships with the module; it always parses
		panic(err)
	}
	return face
}

func loadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return faceFromData(data, size)
}

// faceFromData accepts both single fonts and TTC collections; a collection
// contributes its first font.
func faceFromData(data []byte, size float64) (font.Face, error) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// CJKFontAvailable reports whether a Chinese-capable font could be located.
func CJKFontAvailable() bool {
	paths := cjkFontPaths
	if config.FontPath != "" {
		paths = append([]string{config.FontPath}, paths...)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}
