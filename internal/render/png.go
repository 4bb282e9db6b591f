package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/dfbb/hamcode/internal/hamcode"
)

// DefaultScale is the PNG cell size in pixels when the caller does not pick
// one.
const DefaultScale = 18

// WritePNG writes g to w as a PNG image: white background, a one-cell white
// border, and each black cell drawn as a scale×scale square.
func WritePNG(w io.Writer, g hamcode.Grid, scale int) error {
	if scale < 1 {
		return fmt.Errorf("render: scale %d, want at least 1", scale)
	}

	total := (hamcode.Size + 2*border) * scale
	img := image.NewRGBA(image.Rect(0, 0, total, total))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for row := 0; row < hamcode.Size; row++ {
		for col := 0; col < hamcode.Size; col++ {
			if !g[row][col] {
				continue
			}
			x0 := (col + border) * scale
			y0 := (row + border) * scale
			cell := image.Rect(x0, y0, x0+scale, y0+scale)
			draw.Draw(img, cell, image.Black, image.Point{}, draw.Src)
		}
	}

	return png.Encode(w, img)
}
