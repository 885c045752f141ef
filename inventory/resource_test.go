package inventory_test

import (
	"context"
	"fmt"
	"it-inventory/asset"
	"it-inventory/audit"
	"it-inventory/inventory"
	"it-inventory/kafka/message"
	"it-inventory/server"
	"it-inventory/vocabulary"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDatabase(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true, Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	for _, migrator := range []func(db *gorm.DB) error{asset.Migration, audit.Migration} {
		if err = migrator(db); err != nil {
			t.Fatalf("Failed to migrate database: %v", err)
		}
	}
	return db
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func TestOverview(t *testing.T) {
	db := testDatabase(t)
	name, category, status := "Aruba AP", "Network", "Aktif"
	if _, err := asset.NewProcessor(testLogger(), context.Background(), db).Create(message.NewBuffer())(uuid.New(), asset.Fields{Name: &name, Category: &category, Status: &status}); err != nil {
		t.Fatalf("Failed to create asset: %v", err)
	}

	o, err := inventory.NewProcessor(testLogger(), context.Background(), db).GetOverview()
	if err != nil {
		t.Fatalf("Failed to build overview: %v", err)
	}
	if o.Stats().Total() != 1 || len(o.Recent()) != 1 || o.Recent()[0].AssetCode() != "IT-0001" {
		t.Errorf("Unexpected overview.")
	}
}

func TestLandingPage(t *testing.T) {
	db := testDatabase(t)
	name, category, status := "Aruba <AP>", "Network", "Aktif"
	if _, err := asset.NewProcessor(testLogger(), context.Background(), db).Create(message.NewBuffer())(uuid.New(), asset.Fields{Name: &name, Category: &category, Status: &status}); err != nil {
		t.Fatalf("Failed to create asset: %v", err)
	}

	h := server.New(testLogger()).AddRootRouteInitializer(inventory.InitResource(db, vocabulary.Default(), 30)).Router()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d.", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "IT Inventory") || !strings.Contains(body, "Created new asset: Aruba &lt;AP&gt;") {
		t.Errorf("Unexpected landing page: %s", body)
	}
}
