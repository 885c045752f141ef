package asset

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const codePrefix = "IT-"

// Fields is a partial asset description. A nil or empty value means "not provided".
type Fields struct {
	AssetCode    *string
	Name         *string
	Category     *string
	Brand        *string
	Model        *string
	SerialNumber *string
	Status       *string
	Location     *string
	AssignedTo   *string
	UserEmail    *string
	PurchaseDate *string
	WarrantyEnd  *string
	Price        *string
	Notes        *string
}

func FormatCode(sequence uint32) string {
	return fmt.Sprintf("%s%04d", codePrefix, sequence)
}

func provided(s *string) bool {
	return s != nil && *s != ""
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

// ParseDate accepts an ISO calendar date, optionally with a time component which is discarded.
func ParseDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not an ISO date", value)
}

// ParsePrice parses a monetary amount. Zero is treated as "no price".
func ParsePrice(value string) (decimal.NullDecimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%q is not a number", value)
	}
	if d.IsNegative() {
		return decimal.NullDecimal{}, fmt.Errorf("%q is negative", value)
	}
	if d.IsZero() {
		return decimal.NullDecimal{}, nil
	}
	return decimal.NewNullDecimal(d), nil
}

func parseDateField(field string, value *string) (*time.Time, error) {
	if !provided(value) {
		return nil, nil
	}
	t, err := ParseDate(*value)
	if err != nil {
		return nil, &ValidationError{Field: field, Reason: err.Error()}
	}
	return &t, nil
}

func parsePriceField(value *string) (decimal.NullDecimal, error) {
	if !provided(value) {
		return decimal.NullDecimal{}, nil
	}
	p, err := ParsePrice(*value)
	if err != nil {
		return decimal.NullDecimal{}, &ValidationError{Field: "price", Reason: err.Error()}
	}
	return p, nil
}

// builderFromFields validates a full asset description. The asset code may be absent.
func builderFromFields(f Fields) (*ModelBuilder, error) {
	required := []struct {
		field string
		v     *string
	}{{"name", f.Name}, {"category", f.Category}, {"status", f.Status}}
	for _, r := range required {
		if !provided(r.v) {
			return nil, &ValidationError{Field: r.field, Reason: "is required"}
		}
	}
	pd, err := parseDateField("purchaseDate", f.PurchaseDate)
	if err != nil {
		return nil, err
	}
	we, err := parseDateField("warrantyEnd", f.WarrantyEnd)
	if err != nil {
		return nil, err
	}
	price, err := parsePriceField(f.Price)
	if err != nil {
		return nil, err
	}
	return NewBuilder(valueOf(f.AssetCode), *f.Name, *f.Category, *f.Status).
		SetBrand(valueOf(f.Brand)).
		SetModel(valueOf(f.Model)).
		SetSerialNumber(valueOf(f.SerialNumber)).
		SetLocation(valueOf(f.Location)).
		SetAssignedTo(valueOf(f.AssignedTo)).
		SetUserEmail(valueOf(f.UserEmail)).
		SetPurchaseDate(pd).
		SetWarrantyEnd(we).
		SetPrice(price).
		SetNotes(valueOf(f.Notes)), nil
}

// merge overlays every provided field of f onto m.
func merge(m Model, f Fields) (Model, error) {
	b := Clone(m)
	strs := []struct {
		v   *string
		set func(string) *ModelBuilder
	}{
		{f.AssetCode, b.SetAssetCode},
		{f.Name, b.SetName},
		{f.Category, b.SetCategory},
		{f.Brand, b.SetBrand},
		{f.Model, b.SetModel},
		{f.SerialNumber, b.SetSerialNumber},
		{f.Status, b.SetStatus},
		{f.Location, b.SetLocation},
		{f.AssignedTo, b.SetAssignedTo},
		{f.UserEmail, b.SetUserEmail},
		{f.Notes, b.SetNotes},
	}
	for _, s := range strs {
		if provided(s.v) {
			s.set(*s.v)
		}
	}

	pd, err := parseDateField("purchaseDate", f.PurchaseDate)
	if err != nil {
		return Model{}, err
	}
	if pd != nil {
		b.SetPurchaseDate(pd)
	}
	we, err := parseDateField("warrantyEnd", f.WarrantyEnd)
	if err != nil {
		return Model{}, err
	}
	if we != nil {
		b.SetWarrantyEnd(we)
	}
	price, err := parsePriceField(f.Price)
	if err != nil {
		return Model{}, err
	}
	if price.Valid {
		b.SetPrice(price)
	}
	return b.Build(), nil
}
