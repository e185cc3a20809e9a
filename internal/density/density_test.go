package density_test

import (
	"testing"

	"bloomarc/internal/arc"
	"bloomarc/internal/density"
)

func sum(g density.Grid) float64 {
	var total float64
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

func TestHistogram_AutoExtentCountsEveryPoint(t *testing.T) {
	points := arc.Trajectory(0.123456789, 20000, 1000)
	grid, xEdges, yEdges := density.Histogram(points, 64, nil)

	if len(grid) != 64 || len(grid[0]) != 64 {
		t.Fatalf("grid is %dx%d, want 64x64", len(grid), len(grid[0]))
	}
	if len(xEdges) != 65 || len(yEdges) != 65 {
		t.Fatalf("edges have %d/%d entries, want 65", len(xEdges), len(yEdges))
	}
	// The 5% margin puts every point strictly inside the window.
	if got := sum(grid); got != float64(len(points)) {
		t.Fatalf("counted %v points, want %d", got, len(points))
	}
}

func TestHistogram_ImageOrientation(t *testing.T) {
	// One point high on the imaginary axis, binned over a fixed window:
	// it must land at a large row index and a middle column.
	ext := &density.Extent{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	grid, _, _ := density.Histogram([]complex128{complex(0, 0.9)}, 10, ext)

	if grid[9][5] != 1 {
		t.Fatalf("point (0, 0.9i) not at row 9 col 5: %v", grid)
	}
}

func TestHistogram_RightEdgeInclusive(t *testing.T) {
	ext := &density.Extent{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	grid, _, _ := density.Histogram([]complex128{complex(1, 1)}, 4, ext)
	if grid[3][3] != 1 {
		t.Fatal("boundary point fell off the last bin")
	}
}

func TestHistogram_DropsPointsOutsideSuppliedExtent(t *testing.T) {
	ext := &density.Extent{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	grid, _, _ := density.Histogram([]complex128{
		complex(0.5, 0.5),
		complex(2, 0.5),
		complex(0.5, -3),
	}, 8, ext)
	if got := sum(grid); got != 1 {
		t.Fatalf("counted %v points, want 1 (outsiders dropped)", got)
	}
}

func TestHistogram_EmptyInput(t *testing.T) {
	grid, xEdges, yEdges := density.Histogram(nil, 16, nil)
	if len(grid) != 16 || sum(grid) != 0 {
		t.Fatalf("empty input produced counts: %v", sum(grid))
	}
	if len(xEdges) != 17 || len(yEdges) != 17 {
		t.Fatal("edge slices missing for empty input")
	}
}
