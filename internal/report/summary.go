package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"mainstack/revenue/internal/logging"
	"mainstack/revenue/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Supported summary formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Summary is a snapshot of the revenue page.
type Summary struct {
	User         models.User              `json:"user" yaml:"user"`
	Balance      decimal.Decimal          `json:"balance" yaml:"balance"`
	Stats        []StatItem               `json:"stats" yaml:"stats"`
	Chart        []ChartPoint             `json:"chart" yaml:"chart"`
	Period       string                   `json:"period" yaml:"period"`
	FilterCount  int                      `json:"filter_count" yaml:"filter_count"`
	Transactions Page[models.Transaction] `json:"transactions" yaml:"transactions"`
}

// CountText is the transaction list heading, e.g. "24 Transactions".
func CountText(n int) string {
	return fmt.Sprintf("%d Transactions", n)
}

// PeriodText is the line under the heading, e.g. "Your transactions for
// last 7 days". An empty period reads as "all time".
func PeriodText(period string) string {
	p := strings.TrimSpace(period)
	if p == "" {
		p = models.PeriodAllTime
	}
	return "Your transactions for " + p
}

// Generator renders summaries as JSON or YAML.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a summary generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Generator{logger: logger.WithField(logging.FieldComponent, "report")}
}

// Generate renders s in the given format.
func (g *Generator) Generate(s *Summary, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal JSON summary")
			return nil, fmt.Errorf("failed to marshal JSON summary: %w", err)
		}
		return out, nil
	case FormatYAML:
		out, err := yaml.Marshal(s)
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal YAML summary")
			return nil, fmt.Errorf("failed to marshal YAML summary: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported summary format: %s", format)
	}
}
