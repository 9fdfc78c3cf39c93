package filter

import (
	"slices"

	"mainstack/revenue/internal/models"
)

// Category names a multi-select criteria group.
type Category string

// Selection categories accepted by ToggleSelection.
const (
	CategoryTypes    Category = "types"
	CategoryStatuses Category = "statuses"
)

// Criteria is the set of user-selected constraints. The zero value differs
// from DefaultCriteria only in Period; an empty Period means no date
// restriction, the same as "all time".
type Criteria struct {
	Period    string   `json:"transaction_period" yaml:"transaction_period"`
	StartDate string   `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Types     []string `json:"selected_types,omitempty" yaml:"selected_types,omitempty"`
	Statuses  []string `json:"selected_statuses,omitempty" yaml:"selected_statuses,omitempty"`
}

// DefaultCriteria returns criteria that match every transaction.
func DefaultCriteria() Criteria {
	return Criteria{Period: models.PeriodAllTime}
}

// HasCustomRange reports whether both custom bounds are set.
func (c Criteria) HasCustomRange() bool {
	return c.StartDate != "" && c.EndDate != ""
}

// HasPreset reports whether the period restricts dates. Case is ignored and
// an empty period is the same as "all time".
func (c Criteria) HasPreset() bool {
	p := models.NormalizePeriod(c.Period)
	return p != "" && p != models.PeriodAllTime
}

// DateActive reports whether the date category counts toward the badge: a
// period that is not exactly "all time", or a complete custom range.
func (c Criteria) DateActive() bool {
	return c.Period != models.PeriodAllTime || c.HasCustomRange()
}

// ActiveCategories counts the active categories among date, type and status.
func (c Criteria) ActiveCategories() int {
	n := 0
	if c.DateActive() {
		n++
	}
	if len(c.Types) > 0 {
		n++
	}
	if len(c.Statuses) > 0 {
		n++
	}
	return n
}

// IsZero reports whether the criteria restrict nothing.
func (c Criteria) IsZero() bool {
	return c.ActiveCategories() == 0
}

// Clone returns a copy that shares no slices with c.
func (c Criteria) Clone() Criteria {
	c.Types = slices.Clone(c.Types)
	c.Statuses = slices.Clone(c.Statuses)
	return c
}

// Toggle removes label from the selection if present, otherwise appends it.
func Toggle(selection []string, label string) []string {
	if i := slices.Index(selection, label); i >= 0 {
		return slices.Delete(slices.Clone(selection), i, i+1)
	}
	return append(slices.Clone(selection), label)
}
