package model

// Sensor is a fixed detector together with the closest beacon it reported.
// Its detection radius is the taxicab distance to that beacon.
type Sensor struct {
	Position Point `yaml:"position"`
	Beacon   Point `yaml:"beacon"`
}

// Radius returns the taxicab distance between the sensor and its beacon.
func (s Sensor) Radius() int {
	return s.Position.Taxicab(s.Beacon)
}

// Covers reports whether p lies inside the sensor's detection diamond.
func (s Sensor) Covers(p Point) bool {
	return s.Position.Taxicab(p) <= s.Radius()
}

// ReachesRow reports whether the detection diamond intersects the given row.
func (s Sensor) ReachesRow(row int) bool {
	return abs(row-s.Position.Y) <= s.Radius()
}

// RowSpan returns the first and last rows the detection diamond intersects.
func (s Sensor) RowSpan() (int, int) {
	r := s.Radius()

	return s.Position.Y - r, s.Position.Y + r
}
