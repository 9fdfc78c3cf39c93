// Package models provides the data structures exchanged with the revenue API
// and consumed by the filter engine.
package models
