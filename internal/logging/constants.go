package logging

// Field names used across the dashboard's structured log output.
const (
	FieldComponent   = "component"
	FieldEndpoint    = "endpoint"
	FieldStatusCode  = "status_code"
	FieldAttempt     = "attempt"
	FieldError       = "error"
	FieldDuration    = "duration_ms"
	FieldCount       = "count"
	FieldFiltered    = "filtered_count"
	FieldFilterCount = "filter_count"
	FieldPeriod      = "period"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldCategory    = "category"
	FieldLabel       = "label"
	FieldStateFile   = "state_file"
	FieldOutputFile  = "output_file"
	FieldCacheHit    = "cache_hit"
)
