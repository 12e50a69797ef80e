// Package adapter contains the input and storage adapters for the sensorgrid CLI.
package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	m "github.com/mouse-blink/sensorgrid/internal/model"
)

// ErrInvalidSensor is returned for a record that does not describe a sensor
// and its closest beacon.
var ErrInvalidSensor = errors.New("invalid sensor record")

const sensorFormat = "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d"

// SensorSourceAdapter loads sensor records so the domain layer never touches
// files or standard input directly.
type SensorSourceAdapter interface {
	// Load reads the records at path. An empty path or "-" reads standard input.
	Load(path m.Path) (m.Source, error)

	// Parse reads one record per line from r.
	Parse(r io.Reader) ([]m.Sensor, error)
}

// LocalSensorSourceAdapter reads records from the local filesystem.
type LocalSensorSourceAdapter struct {
	stdin io.Reader
}

// NewLocalSensorSourceAdapter constructs a LocalSensorSourceAdapter reading
// standard input from stdin.
func NewLocalSensorSourceAdapter(stdin io.Reader) *LocalSensorSourceAdapter {
	if stdin == nil {
		stdin = os.Stdin
	}

	return &LocalSensorSourceAdapter{stdin: stdin}
}

// Load reads and parses the records at path.
func (a *LocalSensorSourceAdapter) Load(path m.Path) (m.Source, error) {
	source := m.Source{Origin: path}
	if source.IsStdin() {
		source.Origin = m.Stdin

		sensors, err := a.Parse(a.stdin)
		if err != nil {
			return m.Source{}, fmt.Errorf("stdin: %w", err)
		}

		source.Sensors = sensors

		return source, nil
	}

	f, err := os.Open(string(path))
	if err != nil {
		return m.Source{}, fmt.Errorf("open input: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	sensors, err := a.Parse(f)
	if err != nil {
		return m.Source{}, fmt.Errorf("%s: %w", path, err)
	}

	source.Sensors = sensors

	return source, nil
}

// Parse reads one record per line, skipping blank lines.
func (a *LocalSensorSourceAdapter) Parse(r io.Reader) ([]m.Sensor, error) {
	var sensors []m.Sensor

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		sensor, err := ParseSensor(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		sensors = append(sensors, sensor)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return sensors, nil
}

// ParseSensor decodes a single "Sensor at x=A, y=B: closest beacon is at x=C, y=D" record.
func ParseSensor(text string) (m.Sensor, error) {
	var sensor m.Sensor

	n, err := fmt.Sscanf(text, sensorFormat,
		&sensor.Position.X, &sensor.Position.Y,
		&sensor.Beacon.X, &sensor.Beacon.Y,
	)
	if err != nil || n != 4 {
		return m.Sensor{}, fmt.Errorf("%w: %q", ErrInvalidSensor, text)
	}

	return sensor, nil
}
