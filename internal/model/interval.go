package model

import "fmt"

// Interval is a closed range of x-coordinates [Lo, Hi] on a single row.
type Interval struct {
	Lo int `yaml:"lo"`
	Hi int `yaml:"hi"`
}

// Len returns the number of cells in the interval.
func (i Interval) Len() int {
	return i.Hi - i.Lo + 1
}

// Contains reports whether x lies within the interval.
func (i Interval) Contains(x int) bool {
	return i.Lo <= x && x <= i.Hi
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d]", i.Lo, i.Hi)
}
