package cmd

import (
	"context"
	"fmt"
	"io"
	"it-inventory/asset"
	"it-inventory/audit"
	"it-inventory/database"
	"it-inventory/interchange"
	"it-inventory/kafka/producer"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import assets from an interchange CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()

		db, err := connect()
		if err != nil {
			return err
		}
		defer database.Close(l, db)()

		configureProducer()
		defer producer.Teardown(l)()

		res, err := importFrom(db, f)
		if err != nil {
			return err
		}
		for _, re := range res.Failed() {
			fmt.Fprintf(cmd.ErrOrStderr(), "row %d: %s\n", re.Row, re.Error)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully imported %d assets\n", len(res.Imported()))
		return nil
	},
}

func importFrom(db *gorm.DB, r io.Reader) (interchange.Result, error) {
	ctx := audit.WithActor(context.Background(), cfg.Audit.Actor)
	ap := asset.NewProcessor(l, ctx, db)
	res, err := interchange.NewProcessor(l, ctx, db).WithAssetProcessor(ap).Import(r)
	if err != nil {
		return res, fmt.Errorf("failed to import assets: %w", err)
	}
	return res, nil
}
