package common_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"mainstack/revenue/cmd/common"
	"mainstack/revenue/internal/config"
	"mainstack/revenue/internal/container"
	"mainstack/revenue/internal/filter"
	"mainstack/revenue/internal/filterstate"
	"mainstack/revenue/internal/logging"
	"mainstack/revenue/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"first_name": "Olivier", "last_name": "Jones", "email": "olivier@example.com"}`))
	})
	mux.HandleFunc("/wallet", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"balance": 750.56, "total_payout": 55080, "total_revenue": 175580, "pending_payout": 0, "ledger_balance": 0}`))
	})
	mux.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"amount": 500, "metadata": {"name": "John Doe", "product_name": "Rich Dad Poor Dad", "quantity": 1}, "payment_reference": "ref-1", "status": "successful", "type": "deposit", "date": "2022-03-03"},
			{"amount": 400, "metadata": {"name": "Fibi Brown", "product_name": "Support my outreach"}, "payment_reference": "ref-2", "status": "pending", "type": "deposit", "date": "2022-03-02"},
			{"amount": 350.56, "status": "successful", "type": "withdrawal", "date": "2022-03-01"}
		]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newContainer(t *testing.T, baseURL string) *container.Container {
	t.Helper()
	cfg := &config.Config{
		Log:     config.LogConfig{Level: "info", Format: "text"},
		API:     config.APIConfig{BaseURL: baseURL, TimeoutSeconds: 5, StaleSeconds: 60},
		CSV:     config.CSVConfig{Delimiter: ","},
		State:   config.StateConfig{File: filepath.Join(t.TempDir(), "state.yaml")},
		Display: config.DisplayConfig{Timezone: "UTC", PageSize: 10, Currency: "USD"},
	}
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	return c
}

func TestLoadDashboard_RestoresSavedFilter(t *testing.T) {
	c := newContainer(t, newServer(t).URL)
	require.NoError(t, c.GetStore().Save(filterstate.PersistedCriteria{
		Criteria:         filter.Criteria{Period: models.PeriodAllTime, Statuses: []string{"Pending"}},
		HasAppliedFilter: true,
	}))

	dash, err := common.LoadDashboard(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "Olivier", dash.User.FirstName)
	assert.Len(t, dash.Transactions, 3)

	state := c.GetState()
	assert.True(t, state.HasAppliedFilter())
	require.Len(t, state.FilteredData(), 1)
	assert.Equal(t, "ref-2", state.FilteredData()[0].PaymentReference)
	assert.Equal(t, 1, state.FilterCount())
}

func TestRestoreCriteria_IgnoresInvalid(t *testing.T) {
	c := newContainer(t, "http://127.0.0.1:1")
	require.NoError(t, c.GetStore().Save(filterstate.PersistedCriteria{
		Criteria:         filter.Criteria{Period: "fortnight"},
		HasAppliedFilter: true,
	}))

	require.NoError(t, common.RestoreCriteria(c))
	assert.False(t, c.GetState().HasAppliedFilter())
	assert.True(t, c.GetLogger().(*logging.MockLogger).HasEntry("WARN", "Ignoring invalid saved filter criteria"))
}

func TestSummarize(t *testing.T) {
	c := newContainer(t, newServer(t).URL)
	dash, err := common.LoadDashboard(context.Background(), c)
	require.NoError(t, err)

	s, err := common.Summarize(c, dash, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, "750.56", s.Balance.String())
	require.Len(t, s.Stats, 4)
	assert.Equal(t, "Total Payout", s.Stats[0].Label)
	assert.Len(t, s.Chart, 3)
	assert.Equal(t, "Mar 01, 2022", s.Chart[0].FormattedDate)
	assert.Equal(t, models.PeriodAllTime, s.Period)
	assert.Zero(t, s.FilterCount)
	assert.Equal(t, 3, s.Transactions.Total)
	assert.Len(t, s.Transactions.Items, 2)

	page := common.RenderPage(c, dash, s)
	assert.Equal(t, "USD", page.Currency)
	assert.Equal(t, "UTC", page.Location.String())
}

func TestSaveCriteria(t *testing.T) {
	c := newContainer(t, "http://127.0.0.1:1")
	c.GetState().SetTransactionPeriod(models.PeriodToday)

	require.NoError(t, common.SaveCriteria(c))
	saved, err := c.GetStore().Load()
	require.NoError(t, err)
	assert.Equal(t, models.PeriodToday, saved.Criteria.Period)
	assert.False(t, saved.HasAppliedFilter)
}
