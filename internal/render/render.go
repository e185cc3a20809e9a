// Package render rasterizes density grids into log-scaled PNG fields.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"bloomarc/internal/arc"
	"bloomarc/internal/density"
)

// markerHalf is the half-length of the constellation cross markers, px.
const markerHalf = 3

var markerColor = color.RGBA{R: 255, G: 255, B: 255, A: 160}

// Field rasterizes a density grid, one pixel per bin. Occupancy is
// log-scaled so the fractal's faint arms stay visible next to the dense
// core; empty bins render black. The constellation centers are overdrawn as
// crosses when they fall inside the grid's extent.
func Field(grid density.Grid, xEdges, yEdges []float64) *image.RGBA {
	rows := len(grid)
	if rows == 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	cols := len(grid[0])
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))

	var max float64
	for _, row := range grid {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	scale := math.Log1p(max)

	for y := 0; y < rows; y++ {
		// Row 0 of the grid is the lowest imaginary value; images grow
		// downward, so flip vertically.
		row := grid[rows-1-y]
		for x := 0; x < cols; x++ {
			if row[x] <= 0 || scale == 0 {
				img.SetRGBA(x, y, color.RGBA{A: 255})
				continue
			}
			img.SetRGBA(x, y, heat(math.Log1p(row[x])/scale))
		}
	}

	for _, c := range arc.Centers[:] {
		px, ok := toPixel(real(c), xEdges, false)
		if !ok {
			continue
		}
		py, ok := toPixel(imag(c), yEdges, true)
		if !ok {
			continue
		}
		cross(img, px, py)
	}
	return img
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Tile lays renders side by side on a black background for envelope
// comparison.
func Tile(imgs ...image.Image) *image.RGBA {
	const gap = 8
	var width, height int
	for _, im := range imgs {
		b := im.Bounds()
		width += b.Dx()
		if b.Dy() > height {
			height = b.Dy()
		}
	}
	width += gap * (len(imgs) - 1)

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), image.Black, image.Point{}, draw.Src)

	x := 0
	for _, im := range imgs {
		b := im.Bounds()
		dst := image.Rect(x, 0, x+b.Dx(), b.Dy())
		draw.Draw(out, dst, im, b.Min, draw.Src)
		x += b.Dx() + gap
	}
	return out
}

// toPixel maps a coordinate into its bin index, flipping when the axis runs
// opposite to image rows.
func toPixel(v float64, edges []float64, flip bool) (int, bool) {
	bins := len(edges) - 1
	lo, hi := edges[0], edges[bins]
	if v < lo || v > hi || hi <= lo {
		return 0, false
	}
	idx := int((v - lo) / (hi - lo) * float64(bins))
	if idx == bins {
		idx = bins - 1
	}
	if flip {
		idx = bins - 1 - idx
	}
	return idx, true
}

func cross(img *image.RGBA, cx, cy int) {
	b := img.Bounds()
	for d := -markerHalf; d <= markerHalf; d++ {
		if x := cx + d; x >= b.Min.X && x < b.Max.X {
			img.SetRGBA(x, cy, markerColor)
		}
		if y := cy + d; y >= b.Min.Y && y < b.Max.Y {
			img.SetRGBA(cx, y, markerColor)
		}
	}
}

// heat maps t in [0,1] through an inferno-style gradient.
func heat(t float64) color.RGBA {
	anchors := [...][3]float64{
		{0, 0, 4},
		{87, 16, 110},
		{188, 55, 84},
		{249, 142, 9},
		{252, 255, 164},
	}
	if t <= 0 {
		return color.RGBA{B: 4, A: 255}
	}
	if t >= 1 {
		return color.RGBA{R: 252, G: 255, B: 164, A: 255}
	}
	pos := t * float64(len(anchors)-1)
	i := int(pos)
	f := pos - float64(i)
	r := anchors[i][0] + f*(anchors[i+1][0]-anchors[i][0])
	g := anchors[i][1] + f*(anchors[i+1][1]-anchors[i][1])
	b := anchors[i][2] + f*(anchors[i+1][2]-anchors[i][2])
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
