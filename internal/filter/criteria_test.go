package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriteria_ActiveCategories(t *testing.T) {
	tests := []struct {
		name       string
		crit       Criteria
		dateActive bool
		want       int
	}{
		{"default", DefaultCriteria(), false, 0},
		{"zero value", Criteria{}, true, 1},
		{"preset", Criteria{Period: "today"}, true, 1},
		{"all time in another case counts", Criteria{Period: "ALL TIME"}, true, 1},
		{"custom range", Criteria{Period: "all time", StartDate: "2024-01-01", EndDate: "2024-01-31"}, true, 1},
		{"half range", Criteria{Period: "all time", StartDate: "2024-01-01"}, false, 0},
		{"preset and range count once", Criteria{Period: "today", StartDate: "2024-01-01", EndDate: "2024-01-31"}, true, 1},
		{"all three", Criteria{Period: "today", Types: []string{"deposit"}, Statuses: []string{"failed"}}, true, 3},
		{"selections only", Criteria{Period: "all time", Types: []string{"deposit"}, Statuses: []string{"failed"}}, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dateActive, tt.crit.DateActive())
			assert.Equal(t, tt.want, tt.crit.ActiveCategories())
			assert.Equal(t, tt.want == 0, tt.crit.IsZero())
		})
	}
}

func TestCriteria_HasPreset(t *testing.T) {
	assert.False(t, DefaultCriteria().HasPreset())
	assert.False(t, Criteria{}.HasPreset())
	assert.False(t, Criteria{Period: "All Time"}.HasPreset())
	assert.True(t, Criteria{Period: "today"}.HasPreset())
}

func TestToggle(t *testing.T) {
	sel := Toggle(nil, "deposit")
	assert.Equal(t, []string{"deposit"}, sel)

	sel = Toggle(sel, "withdrawal")
	assert.Equal(t, []string{"deposit", "withdrawal"}, sel)

	orig := sel
	sel = Toggle(sel, "deposit")
	assert.Equal(t, []string{"withdrawal"}, sel)
	assert.Equal(t, []string{"deposit", "withdrawal"}, orig)

	sel = Toggle(sel, "withdrawal")
	assert.Empty(t, sel)
}

func TestCriteria_Clone(t *testing.T) {
	c := Criteria{Types: []string{"deposit"}, Statuses: []string{"failed"}}
	cp := c.Clone()
	cp.Types[0] = "withdrawal"
	assert.Equal(t, "deposit", c.Types[0])
}
