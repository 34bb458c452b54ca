package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/willbeason/treegen/pkg/geometry"
	"github.com/willbeason/treegen/pkg/tree"
)

var ErrInvalidDimensions = errors.New("invalid canvas dimensions")

// A Canvas is a raster image that lines can be stroked onto.
type Canvas struct {
	dc *gg.Context
}

var _ tree.Surface = (*Canvas)(nil)

// New returns a width by height canvas filled with background.
func New(width, height int, background color.Color) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()

	// Butt caps so branches end exactly where the next one begins.
	dc.SetLineCap(gg.LineCapButt)

	return &Canvas{dc: dc}, nil
}

// DrawLine strokes a line of the given width. Widths below one are drawn one
// pixel wide.
func (c *Canvas) DrawLine(from, to geometry.XY, col color.Color, width int) {
	if width < 1 {
		width = 1
	}

	c.dc.SetColor(col)
	c.dc.SetLineWidth(float64(width))
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	c.dc.Stroke()
}

func (c *Canvas) Width() int {
	return c.dc.Width()
}

func (c *Canvas) Height() int {
	return c.dc.Height()
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Save writes the canvas to path, choosing the format from its extension. Any
// missing parent directories are created.
func (c *Canvas) Save(path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("saving %q: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		err := os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return err
		}
	}

	return imaging.Save(c.dc.Image(), path)
}

// Encode writes the canvas to w in the given format.
func (c *Canvas) Encode(w io.Writer, format imaging.Format) error {
	return imaging.Encode(w, c.dc.Image(), format)
}
