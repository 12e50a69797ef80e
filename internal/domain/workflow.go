package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mouse-blink/sensorgrid/internal/adapter"
	"github.com/mouse-blink/sensorgrid/internal/controller"
	m "github.com/mouse-blink/sensorgrid/internal/model"
)

// ErrUnexpectedAnswer is returned when an answer differs from the expected one.
var ErrUnexpectedAnswer = errors.New("unexpected answer")

// InputArgs selects the sensor records and where reports are saved.
type InputArgs struct {
	Input   m.Path
	Reports m.Path // empty disables saving
	Expect  *int64 // checked against the answer when set
}

// CountArgs holds the arguments for Count.
type CountArgs struct {
	InputArgs
	Row int
}

// LocateArgs holds the arguments for Locate.
type LocateArgs struct {
	InputArgs
	Bound      int
	Multiplier int64
	Parallel   int
}

// ListArgs holds the arguments for List.
type ListArgs struct {
	Input m.Path
}

// ViewArgs holds the arguments for View.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Count(args CountArgs) error
	Locate(ctx context.Context, args LocateArgs) error
	List(args ListArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	source   adapter.SensorSourceAdapter
	store    adapter.ReportStore
	ui       controller.UI
	analyzer Analyzer
	log      zerolog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	source adapter.SensorSourceAdapter,
	store adapter.ReportStore,
	ui controller.UI,
	analyzer Analyzer,
	logger zerolog.Logger,
) Workflow {
	return &workflow{
		source:   source,
		store:    store,
		ui:       ui,
		analyzer: analyzer,
		log:      logger,
	}
}

// Count answers how many cells of a row cannot contain an undiscovered beacon.
func (w *workflow) Count(args CountArgs) error {
	repo, source, err := w.load(args.Input)
	if err != nil {
		return err
	}

	start := time.Now()
	excluded := w.analyzer.ExcludedCount(repo.Sensors(), args.Row)
	set := w.analyzer.RowCoverage(repo.Sensors(), args.Row)
	elapsed := time.Since(start)

	w.log.Debug().
		Int("row", args.Row).
		Int("intervals", len(set)).
		Int("excluded", excluded).
		Dur("elapsed", elapsed).
		Msg("row coverage computed")

	report, err := w.save(args.Reports, m.Report{
		Kind:    m.ReportRow,
		Input:   source.Origin,
		Elapsed: elapsed,
		Row: &m.RowReport{
			Row:      args.Row,
			Sensors:  repo.Len(),
			Excluded: excluded,
			Coverage: set,
		},
	})
	if err != nil {
		return err
	}

	if err := w.ui.DisplayRowReport(report); err != nil {
		return err
	}

	return checkExpected(int64(excluded), args.Expect)
}

// Locate finds the single uncovered cell and its tuning frequency.
func (w *workflow) Locate(ctx context.Context, args LocateArgs) error {
	if args.Multiplier <= 0 {
		return fmt.Errorf("multiplier must be positive, got %d", args.Multiplier)
	}

	repo, source, err := w.load(args.Input)
	if err != nil {
		return err
	}

	start := time.Now()

	cell, err := w.analyzer.FindUncoveredCell(ctx, repo.Sensors(), args.Bound, WithParallelism(args.Parallel))
	if err != nil {
		return fmt.Errorf("locate beacon in %s: %w", source.Origin, err)
	}

	elapsed := time.Since(start)
	frequency := TuningFrequency(cell, args.Multiplier)

	w.log.Debug().
		Int("bound", args.Bound).
		Int("parallel", args.Parallel).
		Stringer("cell", cell).
		Int64("frequency", frequency).
		Dur("elapsed", elapsed).
		Msg("uncovered cell located")

	report, err := w.save(args.Reports, m.Report{
		Kind:    m.ReportBeacon,
		Input:   source.Origin,
		Elapsed: elapsed,
		Beacon: &m.BeaconReport{
			Bound:      args.Bound,
			Multiplier: args.Multiplier,
			Sensors:    repo.Len(),
			Beacon:     cell,
			Frequency:  frequency,
		},
	})
	if err != nil {
		return err
	}

	if err := w.ui.DisplayBeaconReport(report); err != nil {
		return err
	}

	return checkExpected(frequency, args.Expect)
}

// List displays the loaded sensors.
func (w *workflow) List(args ListArgs) error {
	_, source, err := w.load(args.Input)
	if err != nil {
		return err
	}

	return w.ui.DisplaySensors(source)
}

// View displays previously saved reports.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.store.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	w.log.Debug().Int("reports", len(reports)).Str("dir", string(args.Reports)).Msg("reports loaded")

	return w.ui.DisplayReports(reports)
}

func (w *workflow) load(input m.Path) (SensorRepository, m.Source, error) {
	start := time.Now()

	source, err := w.source.Load(input)
	if err != nil {
		return nil, m.Source{}, fmt.Errorf("load sensors: %w", err)
	}

	repo := NewSensorRepository(source.Sensors)

	w.log.Debug().
		Str("input", string(source.Origin)).
		Int("sensors", repo.Len()).
		Int("beacons", len(repo.Beacons())).
		Dur("elapsed", time.Since(start)).
		Msg("sensors loaded")

	return repo, source, nil
}

func (w *workflow) save(dir m.Path, report m.Report) (m.Report, error) {
	if dir == "" {
		return report, nil
	}

	saved, err := w.store.SaveReport(dir, report)
	if err != nil {
		return m.Report{}, fmt.Errorf("save report: %w", err)
	}

	w.log.Debug().Str("id", saved.ID).Str("dir", string(dir)).Msg("report saved")

	return saved, nil
}

func checkExpected(got int64, want *int64) error {
	if want == nil || *want == got {
		return nil
	}

	return fmt.Errorf("%w: got %d, want %d", ErrUnexpectedAnswer, got, *want)
}
