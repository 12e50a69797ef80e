package domain

import (
	"slices"

	m "github.com/mouse-blink/sensorgrid/internal/model"
)

// SensorRepository holds the sensors loaded for a single run.
type SensorRepository interface {
	Sensors() []m.Sensor
	Beacons() []m.Point
	Len() int
}

type sensorRepository struct {
	sensors []m.Sensor
	beacons []m.Point
}

// NewSensorRepository constructs an in-memory SensorRepository. The slice is
// copied so later changes by the caller do not leak into the repository.
func NewSensorRepository(sensors []m.Sensor) SensorRepository {
	seen := make(map[m.Point]struct{}, len(sensors))
	beacons := make([]m.Point, 0, len(sensors))

	for _, sensor := range sensors {
		if _, ok := seen[sensor.Beacon]; ok {
			continue
		}

		seen[sensor.Beacon] = struct{}{}
		beacons = append(beacons, sensor.Beacon)
	}

	slices.SortFunc(beacons, func(a, b m.Point) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})

	return &sensorRepository{
		sensors: slices.Clone(sensors),
		beacons: beacons,
	}
}

// Sensors returns a copy of the stored sensors in load order.
func (r *sensorRepository) Sensors() []m.Sensor {
	return slices.Clone(r.sensors)
}

// Beacons returns the distinct beacons ordered by row, then column.
func (r *sensorRepository) Beacons() []m.Point {
	return slices.Clone(r.beacons)
}

func (r *sensorRepository) Len() int {
	return len(r.sensors)
}
