package marshal

import (
	"strconv"
	"strings"
)

// Region is a rectangular extent in GMT order: west, east, south, north.
type Region [4]float64

func (r Region) West() float64  { return r[0] }
func (r Region) East() float64  { return r[1] }
func (r Region) South() float64 { return r[2] }
func (r Region) North() float64 { return r[3] }

// String formats the region as a GMT -R argument value, e.g. "-180/180/-90/90".
func (r Region) String() string {
	return joinFloats(r[:])
}

// Increment is a grid spacing in GMT order: east-west, north-south.
type Increment [2]float64

func (i Increment) EastWest() float64   { return i[0] }
func (i Increment) NorthSouth() float64 { return i[1] }

// String formats the spacing as a GMT -I argument value, e.g. "1/1".
func (i Increment) String() string {
	return joinFloats(i[:])
}

func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, "/")
}
