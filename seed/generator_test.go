package seed_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"it-inventory/asset"
	"it-inventory/audit"
	"it-inventory/interchange"
	"it-inventory/seed"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGeneratedRowsAreWellFormed(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := seed.NewGenerator(42, now).Write(&buf, 50); err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Generated output is not valid CSV: %v", err)
	}
	if len(rows) != 51 {
		t.Fatalf("Expected 51 rows, got %d.", len(rows))
	}
	for i, row := range rows[1:] {
		if row[0] != asset.FormatCode(uint32(i+1)) {
			t.Errorf("Unexpected code [%s] at %d.", row[0], i)
		}
		pd, err := asset.ParseDate(row[10])
		if err != nil {
			t.Fatalf("Invalid purchase date [%s].", row[10])
		}
		we, err := asset.ParseDate(row[11])
		if err != nil || we.Before(pd) {
			t.Errorf("Warranty [%s] precedes purchase [%s].", row[11], row[10])
		}
		if pd.After(now) {
			t.Errorf("Purchase date [%s] is in the future.", row[10])
		}
		if (row[6] == "Rusak" || row[6] == "Retired") && row[8] != "" {
			t.Errorf("Unassigned status must not carry an assignee.")
		}
	}
}

func TestGeneratorIsDeterministic(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var a, b bytes.Buffer
	_ = seed.NewGenerator(7, now).Write(&a, 20)
	_ = seed.NewGenerator(7, now).Write(&b, 20)
	if a.String() != b.String() {
		t.Errorf("Same seed must generate the same data.")
	}
}

func TestGeneratedDataImports(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true, Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()
	if err = asset.Migration(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	if err = audit.Migration(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	var buf bytes.Buffer
	if err = seed.NewGenerator(1, time.Now()).Write(&buf, 25); err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}
	l, _ := test.NewNullLogger()
	res, err := interchange.NewProcessor(l, context.Background(), db).Import(&buf)
	if err != nil {
		t.Fatalf("Failed to import: %v", err)
	}
	if len(res.Imported()) != 25 || len(res.Failed()) != 0 {
		t.Errorf("Expected 25 imported, got %d with failures %v.", len(res.Imported()), res.Failed())
	}
}
