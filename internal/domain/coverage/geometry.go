// Package coverage projects sensor detection diamonds onto grid rows and
// maintains the sorted, disjoint interval sets built from those projections.
package coverage

import (
	m "github.com/mouse-blink/sensorgrid/internal/model"
)

// RowCoverage returns the x-range of row covered by the sensor's diamond.
// The second result is false when the diamond does not reach the row.
func RowCoverage(sensor m.Sensor, row int) (m.Interval, bool) {
	if !sensor.ReachesRow(row) {
		return m.Interval{}, false
	}

	spare := sensor.Radius() - sensor.Position.Taxicab(m.Point{X: sensor.Position.X, Y: row})

	return m.Interval{Lo: sensor.Position.X - spare, Hi: sensor.Position.X + spare}, true
}

// RowIntervals projects every sensor that reaches row, in sensor order.
func RowIntervals(sensors []m.Sensor, row int) []m.Interval {
	intervals := make([]m.Interval, 0, len(sensors))

	for _, sensor := range sensors {
		if iv, ok := RowCoverage(sensor, row); ok {
			intervals = append(intervals, iv)
		}
	}

	return intervals
}
