package interchange

import (
	"it-inventory/asset"
	"strings"
	"time"
)

const bom = "\ufeff"

const (
	ColumnAssetCode    = "Kode Aset"
	ColumnName         = "Nama"
	ColumnCategory     = "Kategori"
	ColumnBrand        = "Brand"
	ColumnModel        = "Model"
	ColumnSerialNumber = "Serial Number"
	ColumnStatus       = "Status"
	ColumnLocation     = "Lokasi"
	ColumnAssignedTo   = "Assigned To"
	ColumnUserEmail    = "Email"
	ColumnPurchaseDate = "Tanggal Beli"
	ColumnWarrantyEnd  = "Warranty End"
	ColumnPrice        = "Harga"
	ColumnNotes        = "Notes"

	DefaultName     = "Unknown"
	DefaultCategory = "Lainnya"
	DefaultStatus   = "Aktif"
)

// Header lists the interchange columns in file order.
var Header = []string{
	ColumnAssetCode,
	ColumnName,
	ColumnCategory,
	ColumnBrand,
	ColumnModel,
	ColumnSerialNumber,
	ColumnStatus,
	ColumnLocation,
	ColumnAssignedTo,
	ColumnUserEmail,
	ColumnPurchaseDate,
	ColumnWarrantyEnd,
	ColumnPrice,
	ColumnNotes,
}

func Row(m asset.Model) []string {
	price := ""
	if m.Price().Valid {
		price = m.Price().Decimal.String()
	}
	return []string{
		m.AssetCode(),
		m.Name(),
		m.Category(),
		m.Brand(),
		m.Model(),
		m.SerialNumber(),
		m.Status(),
		m.Location(),
		m.AssignedTo(),
		m.UserEmail(),
		date(m.PurchaseDate()),
		date(m.WarrantyEnd()),
		price,
		m.Notes(),
	}
}

func date(t *time.Time) string {
	if s := asset.FormatDate(t); s != nil {
		return *s
	}
	return ""
}

// record maps header names to cell values for one data row. Missing cells read as empty.
type record struct {
	index map[string]int
	cells []string
}

func (r record) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

func (r record) field(column string) *string {
	v := r.get(column)
	return &v
}

func (r record) withDefault(column string, fallback string) *string {
	v := r.get(column)
	if strings.TrimSpace(v) == "" {
		v = fallback
	}
	return &v
}

// Fields converts one data row into an asset description, applying the import defaults for
// name, category and status.
func (r record) Fields() asset.Fields {
	return asset.Fields{
		AssetCode:    r.field(ColumnAssetCode),
		Name:         r.withDefault(ColumnName, DefaultName),
		Category:     r.withDefault(ColumnCategory, DefaultCategory),
		Brand:        r.field(ColumnBrand),
		Model:        r.field(ColumnModel),
		SerialNumber: r.field(ColumnSerialNumber),
		Status:       r.withDefault(ColumnStatus, DefaultStatus),
		Location:     r.field(ColumnLocation),
		AssignedTo:   r.field(ColumnAssignedTo),
		UserEmail:    r.field(ColumnUserEmail),
		PurchaseDate: r.field(ColumnPurchaseDate),
		WarrantyEnd:  r.field(ColumnWarrantyEnd),
		Price:        r.field(ColumnPrice),
		Notes:        r.field(ColumnNotes),
	}
}

func indexHeader(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, bom))
		if _, ok := index[h]; !ok {
			index[h] = i
		}
	}
	return index
}
