package asset

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

type Entity struct {
	Id           uint32              `gorm:"primaryKey;autoIncrement;not null"`
	AssetCode    string              `gorm:"size:50;uniqueIndex;not null"`
	Name         string              `gorm:"size:200;not null"`
	Category     string              `gorm:"size:50;not null;index"`
	Brand        string              `gorm:"size:100;not null"`
	Model        string              `gorm:"size:100;not null"`
	SerialNumber string              `gorm:"size:100;not null"`
	Status       string              `gorm:"size:50;not null;index"`
	Location     string              `gorm:"size:100;not null"`
	AssignedTo   string              `gorm:"size:200;not null"`
	UserEmail    string              `gorm:"size:200;not null"`
	PurchaseDate *datatypes.Date
	WarrantyEnd  *datatypes.Date
	Price        decimal.NullDecimal `gorm:"type:decimal(20,2)"`
	Notes        string              `gorm:"type:text;not null"`
	CreatedAt    time.Time           `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time           `gorm:"not null;autoUpdateTime:false"`
}

func (e Entity) TableName() string {
	return "assets"
}

func Make(e Entity) (Model, error) {
	return Model{
		id:           e.Id,
		assetCode:    e.AssetCode,
		name:         e.Name,
		category:     e.Category,
		brand:        e.Brand,
		model:        e.Model,
		serialNumber: e.SerialNumber,
		status:       e.Status,
		location:     e.Location,
		assignedTo:   e.AssignedTo,
		userEmail:    e.UserEmail,
		purchaseDate: fromDate(e.PurchaseDate),
		warrantyEnd:  fromDate(e.WarrantyEnd),
		price:        e.Price,
		notes:        e.Notes,
		createdAt:    e.CreatedAt,
		updatedAt:    e.UpdatedAt,
	}, nil
}

func fromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	r := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &r
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	return &d
}
