// Package stats turns the record history into totals, pace and a projected
// completion date for the cumulative target.
package stats

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/faizmokh/pushups/internal/workout"
)

const (
	// DefaultTarget is the cumulative repeat goal.
	DefaultTarget = 10_000
	// DefaultHoursInDay is used to turn a span of hours into days.
	DefaultHoursInDay = 24
)

var (
	// ErrNoProjection is returned when the pace is zero, so the target can't be projected.
	ErrNoProjection = errors.New("pace is zero; cannot project a completion date")
	// ErrTargetReached is returned when a projection is requested for a reached target.
	ErrTargetReached = errors.New("target already reached")
	// ErrNoRecords is returned when summarizing an empty history.
	ErrNoRecords = errors.New("no workout records")
)

// Rounding selects how the remaining days until the target are rounded.
type Rounding uint8

const (
	// RoundDown truncates the remaining days, matching the historical behaviour.
	RoundDown Rounding = iota
	// RoundUp never reports a date earlier than the pace allows.
	RoundUp
)

// Options configures an Engine. Zero Target or HoursInDay fall back to the
// package defaults.
type Options struct {
	Target     uint
	HoursInDay uint
	Rounding   Rounding
}

// Engine computes progress statistics against a fixed target.
type Engine struct {
	target     uint
	hoursInDay uint
	rounding   Rounding
}

// NewEngine builds an Engine, filling zero options with the defaults.
func NewEngine(opts Options) *Engine {
	if opts.Target == 0 {
		opts.Target = DefaultTarget
	}
	if opts.HoursInDay == 0 {
		opts.HoursInDay = DefaultHoursInDay
	}
	return &Engine{
		target:     opts.Target,
		hoursInDay: opts.HoursInDay,
		rounding:   opts.Rounding,
	}
}

// Target returns the cumulative repeat goal.
func (e *Engine) Target() uint {
	return e.target
}

// TotalRepeats sums the repeats of every record.
func (e *Engine) TotalRepeats(records []workout.Record) uint {
	var total uint
	for _, record := range records {
		total += record.Repeats
	}
	return total
}

// DaySpan returns the number of days between first and last, rounded up and
// never less than one. Only whole hours count.
func (e *Engine) DaySpan(first, last time.Time) uint {
	hours := int64(last.Sub(first) / time.Hour)
	days := math.Ceil(float64(hours) / float64(e.hoursInDay))
	if days < 1 {
		return 1
	}
	return uint(days)
}

// PacePerDay is the average number of repeats per day, truncated.
func (e *Engine) PacePerDay(total, days uint) uint {
	if days == 0 {
		days = 1
	}
	return total / days
}

// ProgressPercentage reports how much of the target total covers.
func (e *Engine) ProgressPercentage(total uint) float64 {
	return float64(total) / float64(e.target) * 100
}

// EstimateTargetDate projects when the target is reached if the current pace
// holds, counting from last. The result keeps last's location.
func (e *Engine) EstimateTargetDate(last time.Time, total, days uint) (time.Time, error) {
	if total >= e.target {
		return time.Time{}, ErrTargetReached
	}

	pace := e.PacePerDay(total, days)
	if pace == 0 {
		return time.Time{}, ErrNoProjection
	}

	remaining := e.target - total
	daysAhead := remaining / pace
	if e.rounding == RoundUp && remaining%pace != 0 {
		daysAhead++
	}
	return last.AddDate(0, 0, int(daysAhead)), nil
}

// Summary is the full progress picture for a sorted record history.
type Summary struct {
	Total      uint
	Days       uint
	Pace       uint
	Percentage float64
	Reached    bool
	// Last is the date of the most recent record.
	Last time.Time
	// Projected is nil when the target is reached or the pace is zero.
	Projected *time.Time
}

// Summarize computes a Summary from records, which must already be sorted
// ascending by date.
func (e *Engine) Summarize(codec workout.DateCodec, records []workout.Record) (Summary, error) {
	firstRecord, ok := workout.First(records)
	if !ok {
		return Summary{}, ErrNoRecords
	}
	lastRecord, _ := workout.Last(records)

	first, err := firstRecord.Time(codec)
	if err != nil {
		return Summary{}, err
	}
	last, err := lastRecord.Time(codec)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Total: e.TotalRepeats(records),
		Days:  e.DaySpan(first, last),
		Last:  last,
	}
	summary.Pace = e.PacePerDay(summary.Total, summary.Days)
	summary.Percentage = e.ProgressPercentage(summary.Total)
	summary.Reached = summary.Total >= e.target

	if summary.Reached {
		return summary, nil
	}

	projected, err := e.EstimateTargetDate(last, summary.Total, summary.Days)
	switch {
	case errors.Is(err, ErrNoProjection):
	case err != nil:
		return Summary{}, fmt.Errorf("estimate target date: %w", err)
	default:
		summary.Projected = &projected
	}
	return summary, nil
}
