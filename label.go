package mindmap

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultLabelSize is the label font size in pixels at zoom 1.
const DefaultLabelSize = 13.0

// LabelFace draws node labels and breadcrumbs. Icon glyphs come from an
// optional glyph font layered over the label font.
type LabelFace struct {
	face text.Face
	size float64
	lh   float64
}

// NewLabelFace loads the Go Regular font at size. iconTTF, if non-empty, is
// a glyph font (such as Font Awesome) consulted for runes the label font
// lacks.
func NewLabelFace(size float64, iconTTF []byte) (*LabelFace, error) {
	if size <= 0 {
		size = DefaultLabelSize
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("mindmap: parse label font: %w", err)
	}
	regular := &text.GoTextFace{Source: src, Size: size}
	m := regular.Metrics()
	f := &LabelFace{face: regular, size: size, lh: m.HAscent + m.HDescent + m.HLineGap}

	if len(iconTTF) > 0 {
		isrc, err := text.NewGoTextFaceSource(bytes.NewReader(iconTTF))
		if err != nil {
			return nil, fmt.Errorf("mindmap: parse icon font: %w", err)
		}
		multi, err := text.NewMultiFace(regular, &text.GoTextFace{Source: isrc, Size: size})
		if err != nil {
			return nil, fmt.Errorf("mindmap: combine fonts: %w", err)
		}
		f.face = multi
	}
	return f, nil
}

// Measure returns the unscaled size of s.
func (f *LabelFace) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the distance between baselines at zoom 1.
func (f *LabelFace) LineHeight() float64 {
	return f.lh
}

// draw renders s with its top-left corner at (x, y), scaled by zoom.
func (f *LabelFace) draw(dst *ebiten.Image, s string, x, y, zoom float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}
