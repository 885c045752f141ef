package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
)

type Migrator func(db *gorm.DB) error

type Configuration struct {
	driver     string
	dsn        string
	migrations []Migrator
}

type Configurator func(c *Configuration)

func SetDriver(driver string) Configurator {
	return func(c *Configuration) {
		c.driver = driver
	}
}

func SetDsn(dsn string) Configurator {
	return func(c *Configuration) {
		c.dsn = dsn
	}
}

func SetMigrations(migrations ...Migrator) Configurator {
	return func(c *Configuration) {
		c.migrations = append(c.migrations, migrations...)
	}
}

func Connect(l logrus.FieldLogger, configurators ...Configurator) (*gorm.DB, error) {
	c := &Configuration{driver: DriverSqlite, dsn: "inventory.db"}
	for _, configurator := range configurators {
		configurator(c)
	}

	var dialector gorm.Dialector
	switch c.driver {
	case DriverSqlite:
		dialector = sqlite.Open(c.dsn)
	case DriverPostgres:
		dialector = postgres.Open(c.dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver [%s]", c.driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to connect to %s database: %w", c.driver, err)
	}
	l.Infof("Connected to [%s] database.", c.driver)

	for _, m := range c.migrations {
		if err = m(db); err != nil {
			return nil, fmt.Errorf("unable to migrate database: %w", err)
		}
	}
	return db, nil
}

func Close(l logrus.FieldLogger, db *gorm.DB) func() {
	return func() {
		sqlDB, err := db.DB()
		if err != nil {
			l.WithError(err).Errorf("Unable to access database handle.")
			return
		}
		if err = sqlDB.Close(); err != nil {
			l.WithError(err).Errorf("Unable to close database.")
			return
		}
		l.Infof("Database connection closed.")
	}
}
