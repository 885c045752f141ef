package label_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"it-inventory/asset"
	"it-inventory/audit"
	"it-inventory/kafka/message"
	"it-inventory/label"
	"it-inventory/server"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

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

func testAsset(t *testing.T, db *gorm.DB) asset.Model {
	t.Helper()
	name, category, status, serial := "ThinkPad X1", "Laptop", "Aktif", "PF-12345"
	m, err := asset.NewProcessor(testLogger(), context.Background(), db).Create(message.NewBuffer())(uuid.New(), asset.Fields{Name: &name, Category: &category, Status: &status, SerialNumber: &serial})
	if err != nil {
		t.Fatalf("Failed to create asset: %v", err)
	}
	return m
}

func TestPayload(t *testing.T) {
	db := testDatabase(t)
	m := testAsset(t, db)
	expected := "Asset: IT-0001\nName: ThinkPad X1\nSerial: PF-12345"
	if p := label.Payload(m); p != expected {
		t.Errorf("Expected payload [%q], got [%q].", expected, p)
	}
}

func TestGenerateProducesPng(t *testing.T) {
	db := testDatabase(t)
	m := testAsset(t, db)

	b, err := label.NewProcessor(testLogger(), context.Background(), db).Generate(m.Id())
	if err != nil {
		t.Fatalf("Failed to generate label: %v", err)
	}
	if !bytes.HasPrefix(b, pngMagic) {
		t.Errorf("Expected PNG output.")
	}
}

func TestGenerateUsesEncoder(t *testing.T) {
	db := testDatabase(t)
	m := testAsset(t, db)

	var payload string
	var size int
	enc := func(p string, s int) ([]byte, error) {
		payload, size = p, s
		return []byte("img"), nil
	}
	b, err := label.NewProcessor(testLogger(), context.Background(), db).WithEncoder(enc).WithSize(128).Generate(m.Id())
	if err != nil {
		t.Fatalf("Failed to generate label: %v", err)
	}
	if string(b) != "img" || payload != label.Payload(m) || size != 128 {
		t.Errorf("Encoder not invoked as expected: %q %d", payload, size)
	}
}

func TestGenerateErrors(t *testing.T) {
	db := testDatabase(t)
	m := testAsset(t, db)
	p := label.NewProcessor(testLogger(), context.Background(), db)

	if _, err := p.Generate(m.Id() + 10); !errors.Is(err, asset.ErrNotFound) {
		t.Errorf("Expected not found, got [%v].", err)
	}

	failing := p.WithEncoder(func(string, int) ([]byte, error) {
		return nil, errors.New("raster failure")
	})
	if _, err := failing.Generate(m.Id()); !errors.Is(err, label.ErrEncoding) {
		t.Errorf("Expected encoding error, got [%v].", err)
	}
}

func TestLabelOverHttp(t *testing.T) {
	db := testDatabase(t)
	m := testAsset(t, db)
	h := server.New(testLogger()).SetBasePath("/api").AddRouteInitializer(label.InitResource(db, 256)).Router()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/qrcode/%d", m.Id()), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d.", w.Code)
	}
	if w.Header().Get("Content-Type") != "image/png" || !bytes.HasPrefix(w.Body.Bytes(), pngMagic) {
		t.Errorf("Expected PNG response.")
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/qrcode/404", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d.", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/qrcode/0", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for id 0, got %d.", w.Code)
	}
}
