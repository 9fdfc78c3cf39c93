// Package export writes the filtered transactions to CSV
package export

import (
	"context"
	"io"

	"mainstack/revenue/cmd/common"
	"mainstack/revenue/cmd/root"
	"mainstack/revenue/internal/container"
	"mainstack/revenue/internal/logging"

	"github.com/spf13/cobra"
)

var output string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered transactions to CSV",
	Long: `Export the transactions matching the applied filter to CSV. Without
--output the CSV is written to standard output.`,
	Args: cobra.NoArgs,
	Run:  exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file")
}

func exportFunc(cmd *cobra.Command, args []string) {
	if err := Run(cmd.Context(), root.AppContainer, output, cmd.OutOrStdout()); err != nil {
		root.Log.Fatalf("Error exporting transactions: %v", err)
	}
}

// Run loads the dashboard and exports the filtered transactions to file, or
// to w when file is empty.
func Run(ctx context.Context, c *container.Container, file string, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := common.LoadDashboard(ctx, c); err != nil {
		return err
	}
	txs := c.GetState().FilteredData()
	exporter := c.GetExporter()

	if file == "" {
		return exporter.Write(w, txs)
	}
	if err := exporter.ExportTransactionsToCSV(txs, file); err != nil {
		return err
	}
	c.GetLogger().Info("Transactions exported",
		logging.F(logging.FieldOutputFile, file),
		logging.F(logging.FieldCount, len(txs)))
	return nil
}
