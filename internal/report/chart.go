package report

import (
	"sort"
	"time"

	"mainstack/revenue/internal/dateutils"
	"mainstack/revenue/internal/models"
	"mainstack/revenue/internal/parsererror"

	"github.com/shopspring/decimal"
)

// ChartPoint is one transaction plotted on the revenue chart.
type ChartPoint struct {
	Date          string          `json:"date" yaml:"date"`
	Time          time.Time       `json:"-" yaml:"-"`
	Amount        decimal.Decimal `json:"amount" yaml:"amount"`
	FormattedDate string          `json:"formatted_date" yaml:"formatted_date"`
}

// ChartSeries keeps transactions with a positive amount and orders them by
// date, oldest first. Equal dates keep their input order.
func ChartSeries(transactions []models.Transaction, loc *time.Location) ([]ChartPoint, error) {
	points := make([]ChartPoint, 0, len(transactions))
	for _, tx := range transactions {
		if !tx.Amount.IsPositive() {
			continue
		}
		t, err := tx.Time(loc)
		if err != nil {
			return nil, &parsererror.ParseError{Source: "chart", Field: "date", Value: tx.Date, Err: err}
		}
		points = append(points, ChartPoint{
			Date:          tx.Date,
			Time:          t,
			Amount:        tx.Amount,
			FormattedDate: dateutils.FormatChart(t),
		})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	return points, nil
}

// Ticks returns the x-axis ticks: the first and last point, the only point,
// or nothing.
func Ticks(points []ChartPoint) []ChartPoint {
	switch len(points) {
	case 0:
		return nil
	case 1:
		return []ChartPoint{points[0]}
	default:
		return []ChartPoint{points[0], points[len(points)-1]}
	}
}
