package interchange_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"it-inventory/asset"
	"it-inventory/audit"
	"it-inventory/interchange"
	"it-inventory/kafka/message"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/xuri/excelize/v2"
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

func str(s string) *string {
	return &s
}

func seed(t *testing.T, db *gorm.DB) []asset.Model {
	t.Helper()
	p := asset.NewProcessor(testLogger(), context.Background(), db)
	fs := []asset.Fields{
		{
			AssetCode: str("IT-0101"), Name: str("Latitude 5440"), Category: str("Laptop"), Brand: str("Dell"), Model: str("5440"),
			SerialNumber: str("DL-5440-01"), Status: str("Aktif"), Location: str("Jakarta"), AssignedTo: str("Budi, S.Kom"),
			UserEmail: str("budi@example.com"), PurchaseDate: str("2023-07-01"), WarrantyEnd: str("2026-07-01"),
			Price: str("17250000.75"), Notes: str("Line one\nline \"two\""),
		},
		{Name: str("Core Switch"), Category: str("Network"), Status: str("Maintenance")},
	}
	var ms []asset.Model
	for _, f := range fs {
		m, err := p.Create(message.NewBuffer())(uuid.New(), f)
		if err != nil {
			t.Fatalf("Failed to create asset: %v", err)
		}
		ms = append(ms, m)
	}
	return ms
}

func history(t *testing.T, db *gorm.DB) []audit.Model {
	t.Helper()
	hs, err := audit.NewProcessor(testLogger(), context.Background(), db).GetLatest(audit.DefaultHistoryLimit)
	if err != nil {
		t.Fatalf("Failed to read history: %v", err)
	}
	return hs
}

func TestExportFormat(t *testing.T) {
	db := testDatabase(t)
	seed(t, db)

	var buf bytes.Buffer
	if err := interchange.NewProcessor(testLogger(), context.Background(), db).Export(&buf); err != nil {
		t.Fatalf("Failed to export: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Export is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected header and 2 rows, got %d.", len(rows))
	}
	if strings.Join(rows[0], "|") != strings.Join(interchange.Header, "|") || len(rows[0]) != 14 {
		t.Errorf("Unexpected header: %v", rows[0])
	}
	if rows[1][10] != "2023-07-01" || rows[1][12] != "17250000.75" {
		t.Errorf("Unexpected date or price cells: %v", rows[1])
	}
	if rows[2][0] != "IT-0002" || rows[2][10] != "" || rows[2][11] != "" || rows[2][12] != "" {
		t.Errorf("Expected empty optional cells: %v", rows[2])
	}
}

func TestRoundTrip(t *testing.T) {
	source := testDatabase(t)
	originals := seed(t, source)

	var buf bytes.Buffer
	if err := interchange.NewProcessor(testLogger(), context.Background(), source).Export(&buf); err != nil {
		t.Fatalf("Failed to export: %v", err)
	}

	target := testDatabase(t)
	res, err := interchange.NewProcessor(testLogger(), context.Background(), target).Import(&buf)
	if err != nil {
		t.Fatalf("Failed to import: %v", err)
	}
	if len(res.Imported()) != len(originals) || len(res.Failed()) != 0 {
		t.Fatalf("Expected %d imported and none failed, got %d / %v.", len(originals), len(res.Imported()), res.Failed())
	}

	copies, err := asset.NewProcessor(testLogger(), context.Background(), target).GetAll()
	if err != nil {
		t.Fatalf("Failed to list assets: %v", err)
	}
	for i, o := range originals {
		if strings.Join(interchange.Row(o), "|") != strings.Join(interchange.Row(copies[i]), "|") {
			t.Errorf("Round trip mismatch:\n%v\n%v", interchange.Row(o), interchange.Row(copies[i]))
		}
	}
	for _, h := range history(t, target) {
		if h.Action() != audit.ActionImport || !strings.HasPrefix(h.Details(), "Imported from CSV: ") {
			t.Errorf("Unexpected import audit entry: %s %s", h.Action(), h.Details())
		}
	}
}

func TestImportSkipsMalformedRows(t *testing.T) {
	db := testDatabase(t)
	data := "Kode Aset,Nama,Kategori,Status,Tanggal Beli,Harga\n" +
		",Monitor,Desktop,Aktif,2024-01-10,3000000\n" +
		",Projector,Lainnya,Aktif,10-01-2024,\n" +
		",Phone,Mobile,Aktif,,0\n"

	res, err := interchange.NewProcessor(testLogger(), context.Background(), db).Import(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to import: %v", err)
	}
	if len(res.Imported()) != 2 {
		t.Fatalf("Expected 2 imported, got %d.", len(res.Imported()))
	}
	if len(res.Failed()) != 1 || res.Failed()[0].Row != 3 {
		t.Fatalf("Expected row 3 to fail, got %v.", res.Failed())
	}

	ms, _ := asset.NewProcessor(testLogger(), context.Background(), db).GetAll()
	for _, m := range ms {
		if m.Name() == "Projector" {
			t.Errorf("Malformed row must not be stored.")
		}
	}
	hs := history(t, db)
	if len(hs) != 2 {
		t.Errorf("Expected 2 audit entries, got %d.", len(hs))
	}
	for _, h := range hs {
		if h.Details() == "Imported from CSV: Projector" {
			t.Errorf("Malformed row must not be audited.")
		}
	}
	if ms[1].Price().Valid {
		t.Errorf("Zero price must be stored as absent.")
	}
}

func TestImportDefaultsAndGeneratedCodes(t *testing.T) {
	db := testDatabase(t)
	seed(t, db)
	data := "\ufeffNama,Kategori,Status,Kode Aset\n" +
		",,,\n" +
		"Scanner,,,\n" +
		"Tablet,Mobile,Retired,\n" +
		"Dup,Laptop,Aktif,IT-0101\n"

	res, err := interchange.NewProcessor(testLogger(), context.Background(), db).Import(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to import: %v", err)
	}
	if len(res.Imported()) != 3 || len(res.Failed()) != 1 {
		t.Fatalf("Expected 3 imported and 1 failed, got %d / %d.", len(res.Imported()), len(res.Failed()))
	}
	if res.Failed()[0].Row != 5 {
		t.Errorf("Expected duplicate row 5 to fail, got %d.", res.Failed()[0].Row)
	}

	empty := res.Imported()[0]
	if empty.Name() != interchange.DefaultName || empty.Category() != interchange.DefaultCategory || empty.Status() != interchange.DefaultStatus {
		t.Errorf("Empty row should import with defaults, got %s %s %s", empty.Name(), empty.Category(), empty.Status())
	}
	scanner := res.Imported()[1]
	if scanner.Category() != interchange.DefaultCategory || scanner.Status() != interchange.DefaultStatus {
		t.Errorf("Defaults not applied: %s %s", scanner.Category(), scanner.Status())
	}
	codes := map[string]bool{}
	for _, m := range res.Imported() {
		if codes[m.AssetCode()] {
			t.Errorf("Duplicate generated code [%s].", m.AssetCode())
		}
		codes[m.AssetCode()] = true
	}
	if empty.AssetCode() != "IT-0003" || scanner.AssetCode() != "IT-0004" || res.Imported()[2].AssetCode() != "IT-0005" {
		t.Errorf("Unexpected generated codes: %v", codes)
	}
}

func TestImportUnknownNameDefault(t *testing.T) {
	db := testDatabase(t)
	res, err := interchange.NewProcessor(testLogger(), context.Background(), db).Import(strings.NewReader("Nama,Brand\n,HP\n"))
	if err != nil {
		t.Fatalf("Failed to import: %v", err)
	}
	if len(res.Imported()) != 1 || res.Imported()[0].Name() != interchange.DefaultName || res.Imported()[0].Brand() != "HP" {
		t.Fatalf("Unexpected import result: %v", res.Imported())
	}
}

func TestImportEmptyDocument(t *testing.T) {
	db := testDatabase(t)
	res, err := interchange.NewProcessor(testLogger(), context.Background(), db).Import(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(res.Imported()) != 0 {
		t.Errorf("Expected nothing imported.")
	}
}

func TestExportWorkbook(t *testing.T) {
	db := testDatabase(t)
	seed(t, db)

	var buf bytes.Buffer
	if err := interchange.NewProcessor(testLogger(), context.Background(), db).ExportWorkbook(&buf); err != nil {
		t.Fatalf("Failed to export workbook: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(interchange.SheetName)
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}
	if len(rows) != 3 || rows[0][0] != interchange.ColumnAssetCode || rows[1][1] != "Latitude 5440" {
		t.Errorf("Unexpected workbook rows: %v", rows)
	}
}
