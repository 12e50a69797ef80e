package model

import "time"

// ReportKind identifies which question a report answers.
type ReportKind string

const (
	// ReportRow is the excluded cell count on a single row.
	ReportRow ReportKind = "row"
	// ReportBeacon is the location of the single uncovered cell in a bounded square.
	ReportBeacon ReportKind = "beacon"
)

// RowReport holds the result of counting excluded cells on one row.
type RowReport struct {
	Row      int        `yaml:"row"`
	Sensors  int        `yaml:"sensors"`
	Excluded int        `yaml:"excluded"`
	Coverage []Interval `yaml:"coverage"`
}

// BeaconReport holds the location of the uncovered cell and its tuning frequency.
type BeaconReport struct {
	Bound      int   `yaml:"bound"`
	Multiplier int64 `yaml:"multiplier"`
	Sensors    int   `yaml:"sensors"`
	Beacon     Point `yaml:"beacon"`
	Frequency  int64 `yaml:"frequency"`
}

// Report is a single persisted answer.
type Report struct {
	ID        string        `yaml:"id"`
	Kind      ReportKind    `yaml:"kind"`
	Input     Path          `yaml:"input"`
	CreatedAt time.Time     `yaml:"created_at"`
	Elapsed   time.Duration `yaml:"elapsed"`
	Row       *RowReport    `yaml:"row,omitempty"`
	Beacon    *BeaconReport `yaml:"beacon,omitempty"`
}
