package cmd

import (
	"context"
	"fmt"
	"io"
	"it-inventory/database"
	"it-inventory/interchange"
	"os"

	"github.com/spf13/cobra"
)

const (
	formatCsv  = "csv"
	formatXlsx = "xlsx"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every asset to a CSV or XLSX file",
	RunE: func(cmd *cobra.Command, args []string) error {
		var write func(p *interchange.Processor, w io.Writer) error
		switch exportFormat {
		case formatCsv:
			write = (*interchange.Processor).Export
		case formatXlsx:
			write = (*interchange.Processor).ExportWorkbook
		default:
			return fmt.Errorf("unsupported export format [%s]", exportFormat)
		}

		db, err := connect()
		if err != nil {
			return err
		}
		defer database.Close(l, db)()

		out := cmd.OutOrStdout()
		if exportOutput != "" && exportOutput != "-" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			defer f.Close()
			out = f
		}

		if err = write(interchange.NewProcessor(l, context.Background(), db), out); err != nil {
			return fmt.Errorf("failed to export assets: %w", err)
		}
		l.Infof("Exported assets as [%s].", exportFormat)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", formatCsv, "export format (csv or xlsx)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file, stdout when empty")
}
