package cmd

import (
	"bytes"
	"fmt"
	"it-inventory/database"
	"it-inventory/kafka/producer"
	"it-inventory/seed"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	seedCount  int
	seedOutput string
	seedValue  int64
	seedImport bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a CSV file of dummy assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedCount <= 0 {
			return fmt.Errorf("count must be positive, got %d", seedCount)
		}
		if seedValue == 0 {
			seedValue = time.Now().UnixNano()
		}

		buf := &bytes.Buffer{}
		if err := seed.NewGenerator(seedValue, time.Now()).Write(buf, seedCount); err != nil {
			return fmt.Errorf("failed to generate assets: %w", err)
		}
		if err := os.WriteFile(seedOutput, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write seed file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %d assets in %s\n", seedCount, seedOutput)

		if !seedImport {
			return nil
		}

		db, err := connect()
		if err != nil {
			return err
		}
		defer database.Close(l, db)()

		configureProducer()
		defer producer.Teardown(l)()

		res, err := importFrom(db, buf)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully imported %d assets, %d failed\n", len(res.Imported()), len(res.Failed()))
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 1000, "number of assets to generate")
	seedCmd.Flags().StringVarP(&seedOutput, "output", "o", "dummy_data_1000_assets.csv", "file the generated CSV is written to")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed, derived from the clock when zero")
	seedCmd.Flags().BoolVar(&seedImport, "import", false, "import the generated assets into the configured database")
}
