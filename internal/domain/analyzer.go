package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/sensorgrid/internal/domain/coverage"
	m "github.com/mouse-blink/sensorgrid/internal/model"
)

// ErrNotFound is returned when no uncovered cell exists inside the search bound.
var ErrNotFound = errors.New("uncovered cell not found")

// cancelCheckEvery is how many rows are scanned between context checks.
const cancelCheckEvery = 1024

// Analyzer answers coverage questions over a fixed set of sensors.
// Implementations never log or print; every failure is returned.
type Analyzer interface {
	// ExcludedCount returns how many cells on row cannot hold an undiscovered beacon.
	ExcludedCount(sensors []m.Sensor, row int) int
	// RowCoverage returns the merged coverage set on row with known beacons carved out.
	RowCoverage(sensors []m.Sensor, row int) []m.Interval
	// FindUncoveredCell locates the only cell of [0,bound]x[0,bound] no sensor covers.
	FindUncoveredCell(ctx context.Context, sensors []m.Sensor, bound int, opts ...SearchOption) (m.Point, error)
}

// SearchOption is a functional option for FindUncoveredCell.
type SearchOption func(*searchConfig)

type searchConfig struct {
	parallelism int
}

// WithParallelism splits the row search across n workers. Values below 2 keep
// the search sequential. The result is identical either way.
func WithParallelism(n int) SearchOption {
	return func(c *searchConfig) {
		c.parallelism = n
	}
}

type analyzer struct{}

// NewAnalyzer constructs the default Analyzer.
func NewAnalyzer() Analyzer {
	return &analyzer{}
}

func (a *analyzer) ExcludedCount(sensors []m.Sensor, row int) int {
	return coverage.Total(a.RowCoverage(sensors, row))
}

func (a *analyzer) RowCoverage(sensors []m.Sensor, row int) []m.Interval {
	beacons := beaconColumns(sensors, row)

	pieces := make([]m.Interval, 0, len(sensors))
	for _, iv := range coverage.RowIntervals(sensors, row) {
		pieces = append(pieces, coverage.ExcludeAll(iv, beacons...)...)
	}

	return coverage.Merge(pieces)
}

func (a *analyzer) FindUncoveredCell(ctx context.Context, sensors []m.Sensor, bound int, opts ...SearchOption) (m.Point, error) {
	if bound < 0 {
		return m.Point{}, fmt.Errorf("%w: negative bound %d", ErrNotFound, bound)
	}

	cfg := searchConfig{parallelism: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &search{
		sensors: sensors,
		beacons: beaconSet(sensors),
		bound:   bound,
	}

	first, last := candidateRows(sensors, bound)
	rows := last - first + 1

	var (
		p     m.Point
		found bool
		err   error
	)

	if cfg.parallelism < 2 || rows < cfg.parallelism {
		p, found, err = s.scan(ctx, first, last, nil)
	} else {
		p, found, err = s.scanParallel(ctx, first, last, cfg.parallelism)
	}

	if err != nil {
		return m.Point{}, err
	}

	if !found {
		return m.Point{}, fmt.Errorf("%w: bound %d, rows %d..%d", ErrNotFound, bound, first, last)
	}

	return p, nil
}

// TuningFrequency encodes a cell as x*multiplier + y.
func TuningFrequency(p m.Point, multiplier int64) int64 {
	return int64(p.X)*multiplier + int64(p.Y)
}

// candidateRows bounds the rows any sensor or beacon can influence, clipped to
// [0,bound]. When nothing reaches the square the whole square is returned.
func candidateRows(sensors []m.Sensor, bound int) (int, int) {
	if len(sensors) == 0 {
		return 0, bound
	}

	minRow, maxRow := 0, 0

	for i, sensor := range sensors {
		r := sensor.Radius()
		lo := min(sensor.Position.Y, sensor.Beacon.Y) - r
		hi := max(sensor.Position.Y, sensor.Beacon.Y) + r

		if i == 0 || lo < minRow {
			minRow = lo
		}

		if i == 0 || hi > maxRow {
			maxRow = hi
		}
	}

	first, last := max(minRow, 0), min(maxRow, bound)
	if first > last {
		return 0, bound
	}

	return first, last
}

func beaconColumns(sensors []m.Sensor, row int) []int {
	var columns []int

	for _, sensor := range sensors {
		if sensor.Beacon.Y == row && !slices.Contains(columns, sensor.Beacon.X) {
			columns = append(columns, sensor.Beacon.X)
		}
	}

	slices.Sort(columns)

	return columns
}

func beaconSet(sensors []m.Sensor) map[m.Point]struct{} {
	set := make(map[m.Point]struct{}, len(sensors))
	for _, sensor := range sensors {
		set[sensor.Beacon] = struct{}{}
	}

	return set
}

// search holds the read-only state shared by every row scan.
type search struct {
	sensors []m.Sensor
	beacons map[m.Point]struct{}
	bound   int
}

// scan walks rows first..last in order and returns the first uncovered cell.
// When stop is non-nil the scan gives up once it passes the row stored there.
func (s *search) scan(ctx context.Context, first, last int, stop *atomic.Int64) (m.Point, bool, error) {
	for row := first; row <= last; row++ {
		if (row-first)%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return m.Point{}, false, err
			}
		}

		if stop != nil && int64(row) > stop.Load() {
			return m.Point{}, false, nil
		}

		if p, ok := s.scanRow(row); ok {
			return p, true, nil
		}
	}

	return m.Point{}, false, nil
}

// scanParallel splits the rows into contiguous stripes, one per worker, and
// keeps the hit from the lowest stripe so the answer matches a sequential scan.
func (s *search) scanParallel(ctx context.Context, first, last, workers int) (m.Point, bool, error) {
	rows := last - first + 1
	stripe := (rows + workers - 1) / workers

	hits := make([]*m.Point, workers)

	var lowest atomic.Int64
	lowest.Store(int64(last))

	g, gctx := errgroup.WithContext(ctx)

	for i := range workers {
		lo := first + i*stripe
		hi := min(lo+stripe-1, last)

		if lo > hi {
			break
		}

		g.Go(func() error {
			p, ok, err := s.scan(gctx, lo, hi, &lowest)
			if err != nil {
				return err
			}

			if ok {
				hits[i] = &p

				for {
					current := lowest.Load()
					if int64(p.Y) >= current || lowest.CompareAndSwap(current, int64(p.Y)) {
						break
					}
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return m.Point{}, false, err
	}

	for _, hit := range hits {
		if hit != nil {
			return *hit, true, nil
		}
	}

	return m.Point{}, false, nil
}

// scanRow merges the clipped coverage of row and checks every gap cell
// against the beacons and every sensor reaching the row.
func (s *search) scanRow(row int) (m.Point, bool) {
	reaching := make([]m.Sensor, 0, len(s.sensors))
	clipped := make([]m.Interval, 0, len(s.sensors))

	for _, sensor := range s.sensors {
		iv, ok := coverage.RowCoverage(sensor, row)
		if !ok {
			continue
		}

		reaching = append(reaching, sensor)

		if iv, ok = coverage.Clip(iv, 0, s.bound); ok {
			clipped = append(clipped, iv)
		}
	}

	for _, gap := range coverage.Gaps(coverage.Merge(clipped), 0, s.bound) {
		for x := gap.Lo; x <= gap.Hi; x++ {
			p := m.Point{X: x, Y: row}
			if s.uncovered(p, reaching) {
				return p, true
			}
		}
	}

	return m.Point{}, false
}

func (s *search) uncovered(p m.Point, reaching []m.Sensor) bool {
	if _, ok := s.beacons[p]; ok {
		return false
	}

	for _, sensor := range reaching {
		if sensor.Covers(p) {
			return false
		}
	}

	return true
}
