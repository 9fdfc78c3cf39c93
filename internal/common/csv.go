// Package common provides the CSV export shared by the CLI and the TUI.
package common

import (
	"encoding/csv"
	"fmt"
	"io"

	"mainstack/revenue/internal/fileutils"
	"mainstack/revenue/internal/logging"
	"mainstack/revenue/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter separates CSV fields unless configured otherwise.
const DefaultDelimiter = ','

// ExportRow is the CSV layout of one exported transaction.
type ExportRow struct {
	Date      string `csv:"Date"`
	Reference string `csv:"Reference"`
	Type      string `csv:"Type"`
	Status    string `csv:"Status"`
	Amount    string `csv:"Amount"`
	Customer  string `csv:"Customer"`
	Email     string `csv:"Email"`
	Product   string `csv:"Product"`
	Quantity  string `csv:"Quantity"`
	Country   string `csv:"Country"`
}

// NewExportRow flattens a transaction into an export row. Amounts always
// carry two decimals.
func NewExportRow(tx models.Transaction) ExportRow {
	row := ExportRow{
		Date:      tx.Date,
		Reference: tx.PaymentReference,
		Type:      models.TypeLabel(tx.Type),
		Status:    models.StatusLabel(tx.Status),
		Amount:    tx.Amount.StringFixed(2),
	}
	if md := tx.Metadata; md != nil {
		row.Customer = md.Name
		row.Email = md.Email
		row.Product = md.ProductName
		row.Quantity = string(md.Quantity)
		row.Country = md.Country
	}
	return row
}

// CSVExporter writes transactions as CSV.
type CSVExporter struct {
	Delimiter rune
	logger    logging.Logger
}

// NewCSVExporter creates an exporter. A zero delimiter means a comma.
func NewCSVExporter(delimiter rune, logger logging.Logger) *CSVExporter {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &CSVExporter{Delimiter: delimiter, logger: logger}
}

// Write marshals transactions to w, header first.
func (e *CSVExporter) Write(w io.Writer, transactions []models.Transaction) error {
	rows := make([]ExportRow, len(transactions))
	for i, tx := range transactions {
		rows[i] = NewExportRow(tx)
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// ExportTransactionsToCSV writes transactions to csvFile, creating parent
// directories as needed.
func (e *CSVExporter) ExportTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	e.logger.Info("Exporting transactions to CSV file",
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(transactions)))

	file, err := fileutils.CreateFile(csvFile, models.PermissionExport)
	if err != nil {
		e.logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := e.Write(file, transactions); err != nil {
		e.logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return err
	}

	e.logger.Info("Successfully wrote transactions to CSV file",
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(transactions)))
	return nil
}
