package marshal_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/genericmappingtools/gmt-go/pkg/gmt/marshal"
)

func ExampleDataArrayToMatrix() {
	lat := []float64{-1, 0, 1}
	lon := []float64{10, 12, 14, 16}
	grid, err := marshal.NewDataArray(mat.NewDense(len(lat), len(lon), nil),
		marshal.Coord{Name: "lat", Values: lat},
		marshal.Coord{Name: "lon", Values: lon})
	if err != nil {
		panic(err)
	}

	matrix, region, inc, err := marshal.DataArrayToMatrix(grid)
	if err != nil {
		panic(err)
	}
	r, c := matrix.Dims()
	fmt.Printf("-R%s -I%s shape=%dx%d\n", region, inc, r, c)
	// Output: -R10/16/-1/1 -I2/1 shape=3x4
}

func ExampleVectorsToArrays() {
	table := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	arrays, err := marshal.VectorsToArrays([]marshal.Vector{
		marshal.Buffer{Data: table.ColView(0).(*mat.VecDense)},
		marshal.Range(0, 3, 1),
	})
	if err != nil {
		panic(err)
	}
	for _, a := range arrays {
		fmt.Println(a.RawVector().Data, marshal.IsContiguous(a))
	}
	// Output:
	// [1 3 5] true
	// [0 1 2] true
}
