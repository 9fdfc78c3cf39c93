// Package validation checks user-supplied filter criteria and command options
// before they reach the filter state.
package validation

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"mainstack/revenue/internal/dateutils"
	"mainstack/revenue/internal/filter"
	"mainstack/revenue/internal/models"
	"mainstack/revenue/internal/parsererror"
)

// KnownPeriods lists the accepted period values, lowercased.
var KnownPeriods = []string{
	models.PeriodAllTime,
	models.PeriodToday,
	models.PeriodLast7Days,
	models.PeriodThisMonth,
	models.PeriodLast3Months,
}

// IsValidPeriod checks period against KnownPeriods, ignoring case.
func IsValidPeriod(period string) error {
	if slices.Contains(KnownPeriods, models.NormalizePeriod(period)) {
		return nil
	}
	return &parsererror.ValidationError{
		Field:  "period",
		Reason: fmt.Sprintf("%q is not one of %s", period, strings.Join(KnownPeriods, ", ")),
	}
}

// IsValidDay checks that value is a YYYY-MM-DD date. Empty is allowed.
func IsValidDay(field, value string) error {
	if value == "" || dateutils.IsDateOnly(value) {
		return nil
	}
	return &parsererror.ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", value)}
}

// ValidateCriteria reports every problem with c: an unknown period,
// malformed custom dates, a range that ends before it starts or a half-set
// range.
func ValidateCriteria(c filter.Criteria) error {
	var errs []error
	if c.Period != "" {
		if err := IsValidPeriod(c.Period); err != nil {
			errs = append(errs, err)
		}
	}

	startErr := IsValidDay("start_date", c.StartDate)
	endErr := IsValidDay("end_date", c.EndDate)
	errs = append(errs, startErr, endErr)

	switch {
	case startErr != nil || endErr != nil:
	case (c.StartDate == "") != (c.EndDate == ""):
		errs = append(errs, &parsererror.ValidationError{Field: "date range", Reason: "both start and end dates are required"})
	case c.StartDate != "" && c.StartDate > c.EndDate:
		errs = append(errs, &parsererror.ValidationError{
			Field:  "date range",
			Reason: fmt.Sprintf("start %s is after end %s", c.StartDate, c.EndDate),
		})
	}
	return errors.Join(errs...)
}

// IsValidCategory checks a selection category name.
func IsValidCategory(category string) (filter.Category, error) {
	switch c := filter.Category(strings.ToLower(category)); c {
	case filter.CategoryTypes, filter.CategoryStatuses:
		return c, nil
	default:
		return "", &parsererror.ValidationError{
			Field:  "category",
			Reason: fmt.Sprintf("%q must be %q or %q", category, filter.CategoryTypes, filter.CategoryStatuses),
		}
	}
}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'text', 'json', 'yaml'", format)
	}
}

// IsValidFilePermissions checks that a state file is not readable by others.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600", mode.String())
	}
	return nil
}
