// Package filter implements the transaction filter engine: a pure function
// narrowing a transaction list by preset period, custom date range, type and
// status.
package filter

import (
	"time"

	"mainstack/revenue/internal/dateutils"
	"mainstack/revenue/internal/models"
	"mainstack/revenue/internal/parsererror"
)

const source = "filter"

// Engine applies criteria relative to a clock in a fixed location.
type Engine struct {
	Location *time.Location
	Clock    func() time.Time
}

// NewEngine creates an engine reading the wall clock in loc. A nil loc means
// time.Local.
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{Location: loc, Clock: time.Now}
}

// Filter applies c to transactions using the engine clock.
func (e *Engine) Filter(transactions []models.Transaction, c Criteria) ([]models.Transaction, error) {
	loc := e.Location
	if loc == nil {
		loc = time.Local
	}
	clock := e.Clock
	if clock == nil {
		clock = time.Now
	}
	return Apply(transactions, c, clock().In(loc))
}

// Apply narrows transactions by c. Stages run in order preset period, custom
// range, type, status, each only when its criteria are set. Calendar
// arithmetic happens in now's location and transaction dates without an
// offset are read in it too.
//
// The input is never modified. The result is always a fresh slice, even when
// no stage is active. A transaction date or bound that cannot be parsed
// aborts with a *parsererror.ParseError.
func Apply(transactions []models.Transaction, c Criteria, now time.Time) ([]models.Transaction, error) {
	loc := now.Location()

	out := make([]models.Transaction, 0, len(transactions))
	out = append(out, transactions...)

	var err error
	if c.HasPreset() {
		if out, err = byPreset(out, models.NormalizePeriod(c.Period), now); err != nil {
			return nil, err
		}
	}
	if c.HasCustomRange() {
		if out, err = byRange(out, c.StartDate, c.EndDate, loc); err != nil {
			return nil, err
		}
	}
	if len(c.Types) > 0 {
		out = byType(out, c.Types)
	}
	if len(c.Statuses) > 0 {
		out = byStatus(out, c.Statuses)
	}
	return out, nil
}

// keep filters in place; in is always a slice owned by Apply.
func keep(in []models.Transaction, pred func(models.Transaction) (bool, error)) ([]models.Transaction, error) {
	n := 0
	for _, tx := range in {
		ok, err := pred(tx)
		if err != nil {
			return nil, err
		}
		if ok {
			in[n] = tx
			n++
		}
	}
	clear(in[n:])
	return in[:n], nil
}

func txTime(tx models.Transaction, loc *time.Location) (time.Time, error) {
	t, err := tx.Time(loc)
	if err != nil {
		return time.Time{}, &parsererror.ParseError{Source: source, Field: "date", Value: tx.Date, Err: err}
	}
	return t, nil
}

func byPreset(in []models.Transaction, period string, now time.Time) ([]models.Transaction, error) {
	loc := now.Location()
	midnight := dateutils.StartOfDay(now, loc)

	var match func(time.Time) bool
	switch period {
	case models.PeriodToday:
		match = func(t time.Time) bool { return dateutils.SameDay(t, now, loc) }
	case models.PeriodLast7Days:
		from := midnight.AddDate(0, 0, -7)
		match = func(t time.Time) bool { return !t.Before(from) }
	case models.PeriodThisMonth:
		match = func(t time.Time) bool { return dateutils.SameMonth(t, now, loc) }
	case models.PeriodLast3Months:
		from := midnight.AddDate(0, -3, 0)
		match = func(t time.Time) bool { return !t.Before(from) }
	default:
		return in, nil
	}

	return keep(in, func(tx models.Transaction) (bool, error) {
		t, err := txTime(tx, loc)
		if err != nil {
			return false, err
		}
		return match(t), nil
	})
}

// rangeBounds parses a custom range. Both bounds are used as parsed, so a bare
// end date stops at midnight of that day.
func rangeBounds(start, end string, loc *time.Location) (time.Time, time.Time, error) {
	from, err := dateutils.ParseTimestamp(start, loc)
	if err != nil {
		return time.Time{}, time.Time{}, &parsererror.ParseError{Source: source, Field: "start_date", Value: start, Err: err}
	}
	to, err := dateutils.ParseTimestamp(end, loc)
	if err != nil {
		return time.Time{}, time.Time{}, &parsererror.ParseError{Source: source, Field: "end_date", Value: end, Err: err}
	}
	return from, to, nil
}

func byRange(in []models.Transaction, start, end string, loc *time.Location) ([]models.Transaction, error) {
	from, to, err := rangeBounds(start, end, loc)
	if err != nil {
		return nil, err
	}
	return keep(in, func(tx models.Transaction) (bool, error) {
		t, err := txTime(tx, loc)
		if err != nil {
			return false, err
		}
		return !t.Before(from) && !t.After(to), nil
	})
}

func byType(in []models.Transaction, labels []string) []models.Transaction {
	want := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		want[models.NormalizeTypeLabel(l)] = struct{}{}
	}
	out, _ := keep(in, func(tx models.Transaction) (bool, error) {
		_, ok := want[tx.Type]
		return ok, nil
	})
	return out
}

func byStatus(in []models.Transaction, labels []string) []models.Transaction {
	want := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		want[models.NormalizeStatusLabel(l)] = struct{}{}
	}
	out, _ := keep(in, func(tx models.Transaction) (bool, error) {
		_, ok := want[models.NormalizeStatusLabel(tx.Status)]
		return ok, nil
	})
	return out
}
