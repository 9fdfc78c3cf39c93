package filter

import (
	"testing"
	"time"

	"mainstack/revenue/internal/models"
	"mainstack/revenue/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testLoc = time.FixedZone("WAT", 3600)
	// Wednesday afternoon, mid-month.
	testNow = time.Date(2024, time.June, 12, 15, 30, 0, 0, testLoc)
)

func tx(ref, typ, status, date string) models.Transaction {
	return models.NewTransactionBuilder().
		WithReference(ref).
		WithType(typ).
		WithStatus(status).
		WithAmount(decimal.NewFromInt(100)).
		WithDate(date).
		MustBuild()
}

func refs(txs []models.Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.PaymentReference
	}
	return out
}

func fixture() []models.Transaction {
	return []models.Transaction{
		tx("today", models.TypeDeposit, "successful", "2024-06-12T09:00:00"),
		tx("yesterday", models.TypeWithdrawal, "pending", "2024-06-11"),
		tx("8-days", models.TypeDeposit, "SUCCESSFUL", "2024-06-04T10:00:00"),
		tx("month-ago", models.TypeWithdrawal, "failed", "2024-05-12"),
		tx("4-months", models.TypeStoreTransactions, "successful", "2024-02-10"),
	}
}

func TestApply_PresetPeriods(t *testing.T) {
	tests := []struct {
		period string
		want   []string
	}{
		{"all time", []string{"today", "yesterday", "8-days", "month-ago", "4-months"}},
		{"", []string{"today", "yesterday", "8-days", "month-ago", "4-months"}},
		{"today", []string{"today"}},
		{"TODAY", []string{"today"}},
		{"last 7 days", []string{"today", "yesterday"}},
		{"this month", []string{"today", "yesterday", "8-days"}},
		{"last 3 months", []string{"today", "yesterday", "8-days", "month-ago"}},
		{"next fortnight", []string{"today", "yesterday", "8-days", "month-ago", "4-months"}},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			got, err := Apply(fixture(), Criteria{Period: tt.period}, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, refs(got))
		})
	}
}

func TestApply_PresetBoundaries(t *testing.T) {
	data := []models.Transaction{
		tx("on-boundary", models.TypeDeposit, "successful", "2024-06-05T00:00:00"),
		tx("before-boundary", models.TypeDeposit, "successful", "2024-06-04T23:59:59"),
		tx("three-months", models.TypeDeposit, "successful", "2024-03-12"),
		tx("too-old", models.TypeDeposit, "successful", "2024-03-11T23:59:59"),
		tx("late-today-utc", models.TypeDeposit, "successful", "2024-06-12T22:30:00Z"),
	}

	got, err := Apply(data, Criteria{Period: models.PeriodLast7Days}, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"on-boundary", "late-today-utc"}, refs(got))

	got, err = Apply(data, Criteria{Period: models.PeriodLast3Months}, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"on-boundary", "before-boundary", "three-months", "late-today-utc"}, refs(got))

	// 22:30Z is 23:30 in WAT, still the same calendar day.
	got, err = Apply(data, Criteria{Period: models.PeriodToday}, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"late-today-utc"}, refs(got))
}

func TestApply_LastSevenDaysScenario(t *testing.T) {
	midnight := time.Date(2024, time.June, 12, 0, 0, 0, 0, testLoc)
	data := []models.Transaction{
		models.NewTransactionBuilder().WithReference("today").WithDateFromTime(testNow).MustBuild(),
		models.NewTransactionBuilder().WithReference("yesterday").WithDateFromTime(midnight.AddDate(0, 0, -1)).MustBuild(),
		models.NewTransactionBuilder().WithReference("8-days").WithDateFromTime(midnight.AddDate(0, 0, -8)).MustBuild(),
		models.NewTransactionBuilder().WithReference("month").WithDateFromTime(midnight.AddDate(0, -1, 0)).MustBuild(),
	}

	got, err := Apply(data, Criteria{Period: "last 7 days"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"today", "yesterday"}, refs(got))
}

func TestApply_CustomRange(t *testing.T) {
	tests := []struct {
		name string
		crit Criteria
		want []string
	}{
		{
			name: "bare end date is midnight",
			crit: Criteria{Period: "all time", StartDate: "2024-06-04", EndDate: "2024-06-11"},
			want: []string{"yesterday", "8-days"},
		},
		{
			name: "same start and end keeps only midnight",
			crit: Criteria{StartDate: "2024-06-11", EndDate: "2024-06-11"},
			want: []string{"yesterday"},
		},
		{
			name: "start only is inactive",
			crit: Criteria{Period: "all time", StartDate: "2024-06-12"},
			want: []string{"today", "yesterday", "8-days", "month-ago", "4-months"},
		},
		{
			name: "end only is inactive",
			crit: Criteria{Period: "all time", EndDate: "2024-01-01"},
			want: []string{"today", "yesterday", "8-days", "month-ago", "4-months"},
		},
		{
			name: "composes with preset",
			crit: Criteria{Period: "last 7 days", StartDate: "2024-06-01", EndDate: "2024-06-11"},
			want: []string{"yesterday"},
		},
		{
			name: "timestamp end bound is literal",
			crit: Criteria{StartDate: "2024-06-12", EndDate: "2024-06-12T08:00:00"},
			want: []string{},
		},
		{
			name: "start after end matches nothing",
			crit: Criteria{StartDate: "2024-06-12", EndDate: "2024-06-01"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(fixture(), tt.crit, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, refs(got))
		})
	}
}

func TestApply_CustomRangeExcludesLaterSameDay(t *testing.T) {
	data := append(fixture(), tx("end-day-afternoon", models.TypeDeposit, "successful", "2024-06-11T14:00:00"))

	got, err := Apply(data, Criteria{StartDate: "2024-06-04", EndDate: "2024-06-11"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"yesterday", "8-days"}, refs(got))

	got, err = Apply(data, Criteria{StartDate: "2024-06-04", EndDate: "2024-06-11T14:00:00"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"yesterday", "8-days", "end-day-afternoon"}, refs(got))
}

func TestApply_TypeNormalization(t *testing.T) {
	data := fixture()

	byLabel, err := Apply(data, Criteria{Period: "all time", Types: []string{"Withdrawals"}}, testNow)
	require.NoError(t, err)
	byTag, err := Apply(data, Criteria{Period: "all time", Types: []string{"withdrawal"}}, testNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"yesterday", "month-ago"}, refs(byLabel))
	assert.Equal(t, refs(byTag), refs(byLabel))
	for _, got := range byLabel {
		assert.Equal(t, models.TypeWithdrawal, got.Type)
	}

	store, err := Apply(data, Criteria{Types: []string{"Store Transactions", "deposit"}}, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"today", "8-days", "4-months"}, refs(store))
}

func TestApply_StatusCaseInsensitive(t *testing.T) {
	upper, err := Apply(fixture(), Criteria{Statuses: []string{"SUCCESSFUL"}}, testNow)
	require.NoError(t, err)
	lower, err := Apply(fixture(), Criteria{Statuses: []string{"successful"}}, testNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"today", "8-days", "4-months"}, refs(upper))
	assert.Equal(t, refs(lower), refs(upper))
}

func TestApply_Composability(t *testing.T) {
	data := fixture()

	both, err := Apply(data, Criteria{Period: "today", Types: []string{"deposit"}}, testNow)
	require.NoError(t, err)
	period, err := Apply(data, Criteria{Period: "today"}, testNow)
	require.NoError(t, err)
	typ, err := Apply(data, Criteria{Types: []string{"deposit"}}, testNow)
	require.NoError(t, err)

	for _, r := range refs(both) {
		assert.Contains(t, refs(period), r)
		assert.Contains(t, refs(typ), r)
	}
	for _, r := range refs(period) {
		if contains(refs(typ), r) {
			assert.Contains(t, refs(both), r)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestApply_NonMutationAndIdentity(t *testing.T) {
	data := fixture()
	before := models.CloneTransactions(data)

	got, err := Apply(data, Criteria{Period: "all time"}, testNow)
	require.NoError(t, err)
	assert.True(t, models.TransactionsEqual(before, got))
	require.NotEmpty(t, got)
	assert.NotSame(t, &data[0], &got[0])

	_, err = Apply(data, Criteria{Period: "today", Types: []string{"deposit"}, Statuses: []string{"failed"}}, testNow)
	require.NoError(t, err)
	assert.True(t, models.TransactionsEqual(before, data))

	empty, err := Apply(nil, Criteria{}, testNow)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestApply_ParseErrors(t *testing.T) {
	bad := []models.Transaction{{PaymentReference: "bad", Type: "deposit", Status: "successful", Date: "yesterday-ish"}}

	_, err := Apply(bad, Criteria{Period: "today"}, testNow)
	require.Error(t, err)
	var pe *parsererror.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "date", pe.Field)
	assert.Equal(t, "yesterday-ish", pe.Value)

	_, err = Apply(fixture(), Criteria{StartDate: "06/01/2024", EndDate: "2024-06-30"}, testNow)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "start_date", pe.Field)

	_, err = Apply(fixture(), Criteria{StartDate: "2024-06-01", EndDate: "soon"}, testNow)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "end_date", pe.Field)

	// Date stages inactive: bad dates are never parsed.
	got, err := Apply(bad, Criteria{Types: []string{"deposit"}}, testNow)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestEngine_Filter(t *testing.T) {
	e := NewEngine(testLoc)
	e.Clock = func() time.Time { return testNow.UTC() }

	got, err := e.Filter(fixture(), Criteria{Period: models.PeriodToday})
	require.NoError(t, err)
	assert.Equal(t, []string{"today"}, refs(got))

	zero := &Engine{}
	_, err = zero.Filter(nil, DefaultCriteria())
	assert.NoError(t, err)
}
