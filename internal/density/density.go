// Package density bins a complex trajectory into a 2D occupation histogram.
package density

// Extent is a fixed binning window over the complex plane.
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// margin expands an auto-computed extent by 5% per axis so extreme points
// never clip at the grid boundary.
const margin = 0.05

// Grid is a bins x bins histogram in image orientation: the row index runs
// along the imaginary (vertical) axis.
type Grid [][]float64

// Histogram bins the real/imaginary parts of points into a bins x bins grid.
//
// If extent is nil it is computed from the data's bounding box plus the
// margin. The last bin is closed on the right so boundary points are
// counted; points outside a supplied extent are dropped. Edge slices have
// bins+1 entries each. Counts are returned raw, unnormalized.
func Histogram(points []complex128, bins int, extent *Extent) (Grid, []float64, []float64) {
	if bins <= 0 {
		bins = 1
	}
	ext := Extent{XMax: 1, YMax: 1}
	if extent != nil {
		ext = *extent
	} else if len(points) > 0 {
		ext = autoExtent(points)
	}

	xEdges := edges(ext.XMin, ext.XMax, bins)
	yEdges := edges(ext.YMin, ext.YMax, bins)

	grid := make(Grid, bins)
	for i := range grid {
		grid[i] = make([]float64, bins)
	}

	xSpan := ext.XMax - ext.XMin
	ySpan := ext.YMax - ext.YMin
	if xSpan <= 0 || ySpan <= 0 {
		return grid, xEdges, yEdges
	}

	for _, p := range points {
		x, y := real(p), imag(p)
		if x < ext.XMin || x > ext.XMax || y < ext.YMin || y > ext.YMax {
			continue
		}
		ix := int((x - ext.XMin) / xSpan * float64(bins))
		iy := int((y - ext.YMin) / ySpan * float64(bins))
		if ix == bins {
			ix = bins - 1
		}
		if iy == bins {
			iy = bins - 1
		}
		// Row = imaginary axis: the transpose of a (x, y)-indexed count.
		grid[iy][ix]++
	}
	return grid, xEdges, yEdges
}

func autoExtent(points []complex128) Extent {
	xMin, xMax := real(points[0]), real(points[0])
	yMin, yMax := imag(points[0]), imag(points[0])
	for _, p := range points[1:] {
		x, y := real(p), imag(p)
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}
	dx, dy := xMax-xMin, yMax-yMin
	return Extent{
		XMin: xMin - margin*dx,
		XMax: xMax + margin*dx,
		YMin: yMin - margin*dy,
		YMax: yMax + margin*dy,
	}
}

func edges(min, max float64, bins int) []float64 {
	es := make([]float64, bins+1)
	step := (max - min) / float64(bins)
	for i := range es {
		es[i] = min + float64(i)*step
	}
	es[bins] = max
	return es
}
