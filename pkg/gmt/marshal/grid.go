package marshal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/genericmappingtools/gmt-go/pkg/gmt"
)

// Tolerances for the uniform spacing check: two coordinate steps are equal
// when they are within SpacingAbsTol of each other or within SpacingRelTol
// relative to the larger magnitude.
const (
	SpacingAbsTol = 1e-8
	SpacingRelTol = 1e-5
)

// Coord is a named coordinate axis.
type Coord struct {
	Name   string
	Values []float64
}

// DataArray is a labeled grid: values plus one named coordinate axis per
// dimension. For geographic grids Dims is (north-south, east-west), i.e. rows
// are latitudes and columns are longitudes.
type DataArray struct {
	Name   string
	Dims   []string
	Coords map[string][]float64
	Values *mat.Dense
}

// NewDataArray builds a 2-D grid and checks that the axes match the shape of
// values.
func NewDataArray(values *mat.Dense, rows, cols Coord) (*DataArray, error) {
	if values == nil || values.IsEmpty() {
		return nil, fmt.Errorf("%w: grid has no values", gmt.ErrInvalidInput)
	}
	if rows.Name == cols.Name {
		return nil, fmt.Errorf("%w: duplicate dimension name %q", gmt.ErrInvalidInput, rows.Name)
	}
	r, c := values.Dims()
	if len(rows.Values) != r || len(cols.Values) != c {
		return nil, fmt.Errorf("%w: coordinates %dx%d do not match grid shape %dx%d",
			gmt.ErrInvalidInput, len(rows.Values), len(cols.Values), r, c)
	}
	return &DataArray{
		Dims: []string{rows.Name, cols.Name},
		Coords: map[string][]float64{
			rows.Name: rows.Values,
			cols.Name: cols.Values,
		},
		Values: values,
	}, nil
}

// Shape returns the number of rows and columns.
func (g *DataArray) Shape() (rows, cols int) {
	return g.Values.Dims()
}

// Slice returns rows [i, k) and columns [j, l) as a view sharing memory with
// g. The view's values are generally not contiguous.
func (g *DataArray) Slice(i, k, j, l int) *DataArray {
	return &DataArray{
		Name: g.Name,
		Dims: []string{g.Dims[0], g.Dims[1]},
		Coords: map[string][]float64{
			g.Dims[0]: g.Coords[g.Dims[0]][i:k],
			g.Dims[1]: g.Coords[g.Dims[1]][j:l],
		},
		Values: g.Values.Slice(i, k, j, l).(*mat.Dense),
	}
}

// Step keeps every di-th row and every dj-th column, starting with the first.
// The result is a copy. Step panics if di or dj is less than one.
func (g *DataArray) Step(di, dj int) *DataArray {
	if di < 1 || dj < 1 {
		panic("marshal: non-positive step")
	}
	r, c := g.Shape()
	nr, nc := (r+di-1)/di, (c+dj-1)/dj
	values := mat.NewDense(nr, nc, nil)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			values.Set(i, j, g.Values.At(i*di, j*dj))
		}
	}
	return &DataArray{
		Name: g.Name,
		Dims: []string{g.Dims[0], g.Dims[1]},
		Coords: map[string][]float64{
			g.Dims[0]: every(g.Coords[g.Dims[0]], di),
			g.Dims[1]: every(g.Coords[g.Dims[1]], dj),
		},
		Values: values,
	}
}

func every(values []float64, step int) []float64 {
	out := make([]float64, 0, (len(values)+step-1)/step)
	for i := 0; i < len(values); i += step {
		out = append(out, values[i])
	}
	return out
}

// DataArrayToMatrix extracts the values of a 2-D grid as a contiguous matrix
// together with its region and increment.
//
// Grid dimensions are ordered (rows, columns), which for geographic data is
// (north-south, east-west). GMT wants west, east, south, north and east-west,
// north-south, so the dimensions are walked in reverse. Only grids with exactly
// two dimensions and uniform spacing along each axis are accepted; anything
// else fails with gmt.ErrInvalidInput.
func DataArrayToMatrix(grid *DataArray) (*mat.Dense, Region, Increment, error) {
	if grid == nil {
		return nil, Region{}, Increment{}, fmt.Errorf("%w: nil grid", gmt.ErrInvalidInput)
	}
	if len(grid.Dims) != 2 {
		return nil, Region{}, Increment{}, fmt.Errorf("%w: invalid number of grid dimensions '%d', must be 2",
			gmt.ErrInvalidInput, len(grid.Dims))
	}
	if grid.Values == nil || grid.Values.IsEmpty() {
		return nil, Region{}, Increment{}, fmt.Errorf("%w: grid has no values", gmt.ErrInvalidInput)
	}

	var coords [2][]float64
	for k, dim := range grid.Dims {
		coord, ok := grid.Coords[dim]
		if !ok {
			return nil, Region{}, Increment{}, fmt.Errorf("%w: no coordinates for the '%s' dimension",
				gmt.ErrInvalidInput, dim)
		}
		coords[k] = coord
	}
	r, c := grid.Values.Dims()
	if len(coords[0]) != r || len(coords[1]) != c {
		return nil, Region{}, Increment{}, fmt.Errorf("%w: coordinates do not match grid shape %dx%d",
			gmt.ErrInvalidInput, r, c)
	}

	var (
		region Region
		inc    Increment
	)
	for k := range 2 {
		dim, coord := grid.Dims[1-k], coords[1-k]
		spacing, err := uniformSpacing(dim, coord)
		if err != nil {
			return nil, Region{}, Increment{}, err
		}
		region[2*k], region[2*k+1] = floats.Min(coord), floats.Max(coord)
		inc[k] = spacing
	}
	return AsContiguousMatrix(grid.Values), region, inc, nil
}

// uniformSpacing returns the step between consecutive coordinates, failing
// if the steps differ beyond SpacingAbsTol/SpacingRelTol.
func uniformSpacing(dim string, coord []float64) (float64, error) {
	if len(coord) < 2 {
		return 0, fmt.Errorf("%w: the '%s' dimension needs at least two coordinates, got %d",
			gmt.ErrInvalidInput, dim, len(coord))
	}
	first := coord[1] - coord[0]
	if math.IsNaN(first) || math.IsInf(first, 0) {
		return 0, fmt.Errorf("%w: grid appears to have irregular spacing in the '%s' dimension",
			gmt.ErrInvalidInput, dim)
	}
	for i := 1; i < len(coord); i++ {
		if !scalar.EqualWithinAbsOrRel(coord[i]-coord[i-1], first, SpacingAbsTol, SpacingRelTol) {
			return 0, fmt.Errorf("%w: grid appears to have irregular spacing in the '%s' dimension",
				gmt.ErrInvalidInput, dim)
		}
	}
	return first, nil
}
