package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/sensorgrid/internal/model"
)

const sampleInput = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16

Sensor at x=13, y=2: closest beacon is at x=15, y=3
`

func TestParseSensor(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    m.Sensor
		wantErr bool
	}{
		{
			name: "positive coordinates",
			text: "Sensor at x=9, y=16: closest beacon is at x=10, y=16",
			want: m.Sensor{Position: m.Point{X: 9, Y: 16}, Beacon: m.Point{X: 10, Y: 16}},
		},
		{
			name: "negative coordinates",
			text: "Sensor at x=-3, y=-7: closest beacon is at x=-2, y=15",
			want: m.Sensor{Position: m.Point{X: -3, Y: -7}, Beacon: m.Point{X: -2, Y: 15}},
		},
		{
			name: "sensor on its beacon",
			text: "Sensor at x=4, y=4: closest beacon is at x=4, y=4",
			want: m.Sensor{Position: m.Point{X: 4, Y: 4}, Beacon: m.Point{X: 4, Y: 4}},
		},
		{name: "missing beacon", text: "Sensor at x=1, y=2", wantErr: true},
		{name: "garbage", text: "hello", wantErr: true},
		{name: "non numeric", text: "Sensor at x=a, y=2: closest beacon is at x=1, y=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSensor(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSensor)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalSensorSourceAdapter_Parse(t *testing.T) {
	t.Run("skips blank lines", func(t *testing.T) {
		adapter := NewLocalSensorSourceAdapter(nil)

		sensors, err := adapter.Parse(strings.NewReader(sampleInput))
		require.NoError(t, err)
		require.Len(t, sensors, 3)
		assert.Equal(t, m.Point{X: 13, Y: 2}, sensors[2].Position)
	})

	t.Run("reports the failing line", func(t *testing.T) {
		adapter := NewLocalSensorSourceAdapter(nil)

		_, err := adapter.Parse(strings.NewReader(sampleInput + "not a sensor\n"))
		require.ErrorIs(t, err, ErrInvalidSensor)
		assert.Contains(t, err.Error(), "line 5")
	})

	t.Run("empty input", func(t *testing.T) {
		adapter := NewLocalSensorSourceAdapter(nil)

		sensors, err := adapter.Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, sensors)
	})
}

func TestLocalSensorSourceAdapter_Load(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "input.txt")
		require.NoError(t, os.WriteFile(path, []byte(sampleInput), 0o600))

		source, err := NewLocalSensorSourceAdapter(nil).Load(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, m.Path(path), source.Origin)
		assert.Len(t, source.Sensors, 3)
		assert.False(t, source.IsStdin())
	})

	t.Run("reads stdin for dash and empty path", func(t *testing.T) {
		for _, path := range []m.Path{"", m.Stdin} {
			adapter := NewLocalSensorSourceAdapter(strings.NewReader(sampleInput))

			source, err := adapter.Load(path)
			require.NoError(t, err)
			assert.Equal(t, m.Stdin, source.Origin)
			assert.Len(t, source.Sensors, 3)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLocalSensorSourceAdapter(nil).Load(m.Path(filepath.Join(t.TempDir(), "nope.txt")))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid record names the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.txt")
		require.NoError(t, os.WriteFile(path, []byte("Sensor at x=1\n"), 0o600))

		_, err := NewLocalSensorSourceAdapter(nil).Load(m.Path(path))
		require.ErrorIs(t, err, ErrInvalidSensor)
		assert.Contains(t, err.Error(), path)
	})
}
