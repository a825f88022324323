package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/statesort"
)

const (
	cellW   = 12
	cellH   = 28
	labelW  = 56
	rowGap  = 6
	padding = 4
)

var palette = []color.RGBA{
	colornames.Tomato,
	colornames.Steelblue,
	colornames.Gold,
	colornames.Mediumseagreen,
	colornames.Orchid,
	colornames.Darkorange,
	colornames.Turquoise,
	colornames.Slategray,
}

// renderStrip draws one row per sequence, one cell per record, colored by
// the record's texture. Equal colors side by side are draws that shared a
// binding.
func renderStrip(before, after []*statesort.Record) *image.RGBA {
	n := max(len(before), len(after), 1)
	w := labelW + n*cellW + padding
	h := 2*cellH + rowGap + 2*padding
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.White), image.Point{}, draw.Src)

	colors := map[statesort.Key]color.RGBA{}
	colorOf := func(rec *statesort.Record) color.RGBA {
		k := statesort.KeyOf(rec, statesort.SlotTexture)
		if k == statesort.EmptyKey {
			return colornames.Black
		}
		c, ok := colors[k]
		if !ok {
			c = palette[len(colors)%len(palette)]
			colors[k] = c
		}
		return c
	}
	// Assign colors in sorted order so the after row reads left to right.
	for _, rec := range after {
		colorOf(rec)
	}

	for row, seq := range [][]*statesort.Record{before, after} {
		y := padding + row*(cellH+rowGap)
		for i, rec := range seq {
			x := labelW + i*cellW
			cell := image.Rect(x, y, x+cellW-1, y+cellH)
			draw.Draw(img, cell, image.NewUniform(colorOf(rec)), image.Point{}, draw.Src)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colornames.Black),
		Face: basicfont.Face7x13,
	}
	for row, label := range []string{"before", "after"} {
		y := padding + row*(cellH+rowGap) + cellH/2 + 5
		d.Dot = fixed.P(padding, y)
		d.DrawString(label)
	}
	return img
}

// writeStrip renders the before/after strip to a PNG file.
func writeStrip(path string, before, after []*statesort.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, renderStrip(before, after)); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
