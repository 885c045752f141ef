package cmd

import (
	"it-inventory/asset"
	"it-inventory/audit"
	"it-inventory/database"
	"it-inventory/interchange"
	"it-inventory/inventory"
	"it-inventory/kafka/producer"
	"it-inventory/label"
	"it-inventory/server"
	"it-inventory/service"
	"it-inventory/statistics"
	"it-inventory/vocabulary"

	"github.com/spf13/cobra"
)

const basePath = "/api/"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		l.Infoln("Starting main service.")

		tdm := service.GetTeardownManager()

		configureProducer()
		tdm.TeardownFunc(producer.Teardown(l))

		db, err := connect()
		if err != nil {
			l.WithError(err).Errorf("Unable to connect to database.")
			return err
		}
		tdm.TeardownFunc(database.Close(l, db))

		v := vocabulary.FromConfig(cfg.Vocabulary)
		alertDays := cfg.Warranty.AlertDays

		server.New(l).
			WithContext(tdm.Context()).
			WithWaitGroup(tdm.WaitGroup()).
			SetBasePath(basePath).
			SetPort(cfg.Server.Port).
			AddMiddleware(audit.ActorMiddleware(cfg.Audit.Actor)).
			AddRouteInitializer(asset.InitResource(db)).
			AddRouteInitializer(statistics.InitResource(db, v, alertDays)).
			AddRouteInitializer(audit.InitResource(db, cfg.Audit.HistoryLimit)).
			AddRouteInitializer(label.InitResource(db, cfg.Label.Size)).
			AddRouteInitializer(interchange.InitResource(db)).
			AddRootRouteInitializer(statistics.InitDashboard(db, v, alertDays)).
			AddRootRouteInitializer(inventory.InitResource(db, v, alertDays)).
			Run()

		tdm.Wait()
		l.Infoln("Service shutdown.")
		return nil
	},
}
