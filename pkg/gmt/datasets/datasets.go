// Package datasets reads labeled grids from netCDF files into the form the
// marshal package converts for GMT.
//
// Grids follow the CF convention: a two-dimensional data variable whose
// dimensions each have a one-dimensional coordinate variable of the same
// name, e.g. z(lat, lon) with lat(lat) and lon(lon).
package datasets

import (
	"fmt"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"gonum.org/v1/gonum/mat"

	"github.com/genericmappingtools/gmt-go/pkg/gmt"
	"github.com/genericmappingtools/gmt-go/pkg/gmt/marshal"
)

// OpenDataArray reads the 2-D variable name and its coordinate variables from
// the netCDF file at path.
func OpenDataArray(path, name string) (*marshal.DataArray, error) {
	nc, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer nc.Close()

	v, err := nc.GetVariable(name)
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, err)
	}
	if len(v.Dimensions) != 2 {
		return nil, fmt.Errorf("%w: invalid number of grid dimensions '%d', must be 2",
			gmt.ErrInvalidInput, len(v.Dimensions))
	}

	values, err := toDense(v.Values)
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, err)
	}

	var axes [2]marshal.Coord
	for i, dim := range v.Dimensions {
		cv, err := nc.GetVariable(dim)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", dim, err)
		}
		coord, err := toFloats(cv.Values)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", dim, err)
		}
		axes[i] = marshal.Coord{Name: dim, Values: coord}
	}

	grid, err := marshal.NewDataArray(values, axes[0], axes[1])
	if err != nil {
		return nil, err
	}
	grid.Name = name
	return grid, nil
}

// toFloats converts a decoded 1-D netCDF variable to float64.
func toFloats(values any) ([]float64, error) {
	switch vs := values.(type) {
	case []float64:
		return append([]float64(nil), vs...), nil
	case []float32:
		return widen(vs), nil
	case []int32:
		return widen(vs), nil
	case []int16:
		return widen(vs), nil
	case []int8:
		return widen(vs), nil
	case []int64:
		return widen(vs), nil
	default:
		return nil, fmt.Errorf("%w: unsupported 1-D type %T", gmt.ErrInvalidInput, values)
	}
}

// toDense converts a decoded 2-D netCDF variable to a row-major matrix.
func toDense(values any) (*mat.Dense, error) {
	switch vs := values.(type) {
	case [][]float64:
		return denseFromRows(vs)
	case [][]float32:
		return denseFromRows(vs)
	case [][]int32:
		return denseFromRows(vs)
	case [][]int16:
		return denseFromRows(vs)
	default:
		return nil, fmt.Errorf("%w: unsupported 2-D type %T", gmt.ErrInvalidInput, values)
	}
}

type number interface {
	~float64 | ~float32 | ~int64 | ~int32 | ~int16 | ~int8
}

func widen[T number](vs []T) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = float64(v)
	}
	return out
}

func denseFromRows[T number](rows [][]T) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", gmt.ErrInvalidInput)
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", gmt.ErrInvalidInput, i, len(row), c)
		}
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	return mat.NewDense(r, c, data), nil
}
