// Package model defines the data structures shared by the sensor coverage engine.
package model

import "fmt"

// Point is a cell on the integer grid.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Taxicab returns the sum of the absolute coordinate differences between p and q.
func (p Point) Taxicab(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Less orders points by row first, then by column.
func (p Point) Less(q Point) bool {
	return p.Y < q.Y || (p.Y == q.Y && p.X < q.X)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
