package asset

import (
	"time"

	"github.com/shopspring/decimal"
)

type Model struct {
	id           uint32
	assetCode    string
	name         string
	category     string
	brand        string
	model        string
	serialNumber string
	status       string
	location     string
	assignedTo   string
	userEmail    string
	purchaseDate *time.Time
	warrantyEnd  *time.Time
	price        decimal.NullDecimal
	notes        string
	createdAt    time.Time
	updatedAt    time.Time
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) AssetCode() string {
	return m.assetCode
}

func (m Model) Name() string {
	return m.name
}

func (m Model) Category() string {
	return m.category
}

func (m Model) Brand() string {
	return m.brand
}

func (m Model) Model() string {
	return m.model
}

func (m Model) SerialNumber() string {
	return m.serialNumber
}

func (m Model) Status() string {
	return m.status
}

func (m Model) Location() string {
	return m.location
}

func (m Model) AssignedTo() string {
	return m.assignedTo
}

func (m Model) UserEmail() string {
	return m.userEmail
}

// PurchaseDate is nil when the purchase date is unknown.
func (m Model) PurchaseDate() *time.Time {
	return m.purchaseDate
}

// WarrantyEnd is nil when no warranty is recorded.
func (m Model) WarrantyEnd() *time.Time {
	return m.warrantyEnd
}

// Price is invalid when the asset has no recorded price.
func (m Model) Price() decimal.NullDecimal {
	return m.price
}

func (m Model) Notes() string {
	return m.notes
}

func (m Model) CreatedAt() time.Time {
	return m.createdAt
}

func (m Model) UpdatedAt() time.Time {
	return m.updatedAt
}

func Clone(m Model) *ModelBuilder {
	return &ModelBuilder{
		id:           m.id,
		assetCode:    m.assetCode,
		name:         m.name,
		category:     m.category,
		brand:        m.brand,
		model:        m.model,
		serialNumber: m.serialNumber,
		status:       m.status,
		location:     m.location,
		assignedTo:   m.assignedTo,
		userEmail:    m.userEmail,
		purchaseDate: m.purchaseDate,
		warrantyEnd:  m.warrantyEnd,
		price:        m.price,
		notes:        m.notes,
		createdAt:    m.createdAt,
		updatedAt:    m.updatedAt,
	}
}

type ModelBuilder struct {
	id           uint32
	assetCode    string
	name         string
	category     string
	brand        string
	model        string
	serialNumber string
	status       string
	location     string
	assignedTo   string
	userEmail    string
	purchaseDate *time.Time
	warrantyEnd  *time.Time
	price        decimal.NullDecimal
	notes        string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBuilder(assetCode string, name string, category string, status string) *ModelBuilder {
	return &ModelBuilder{
		assetCode: assetCode,
		name:      name,
		category:  category,
		status:    status,
	}
}

func (b *ModelBuilder) SetId(id uint32) *ModelBuilder {
	b.id = id
	return b
}

func (b *ModelBuilder) SetAssetCode(assetCode string) *ModelBuilder {
	b.assetCode = assetCode
	return b
}

func (b *ModelBuilder) SetName(name string) *ModelBuilder {
	b.name = name
	return b
}

func (b *ModelBuilder) SetCategory(category string) *ModelBuilder {
	b.category = category
	return b
}

func (b *ModelBuilder) SetBrand(brand string) *ModelBuilder {
	b.brand = brand
	return b
}

func (b *ModelBuilder) SetModel(model string) *ModelBuilder {
	b.model = model
	return b
}

func (b *ModelBuilder) SetSerialNumber(serialNumber string) *ModelBuilder {
	b.serialNumber = serialNumber
	return b
}

func (b *ModelBuilder) SetStatus(status string) *ModelBuilder {
	b.status = status
	return b
}

func (b *ModelBuilder) SetLocation(location string) *ModelBuilder {
	b.location = location
	return b
}

func (b *ModelBuilder) SetAssignedTo(assignedTo string) *ModelBuilder {
	b.assignedTo = assignedTo
	return b
}

func (b *ModelBuilder) SetUserEmail(userEmail string) *ModelBuilder {
	b.userEmail = userEmail
	return b
}

func (b *ModelBuilder) SetPurchaseDate(purchaseDate *time.Time) *ModelBuilder {
	b.purchaseDate = purchaseDate
	return b
}

func (b *ModelBuilder) SetWarrantyEnd(warrantyEnd *time.Time) *ModelBuilder {
	b.warrantyEnd = warrantyEnd
	return b
}

func (b *ModelBuilder) SetPrice(price decimal.NullDecimal) *ModelBuilder {
	b.price = price
	return b
}

func (b *ModelBuilder) SetNotes(notes string) *ModelBuilder {
	b.notes = notes
	return b
}

func (b *ModelBuilder) SetCreatedAt(createdAt time.Time) *ModelBuilder {
	b.createdAt = createdAt
	return b
}

func (b *ModelBuilder) SetUpdatedAt(updatedAt time.Time) *ModelBuilder {
	b.updatedAt = updatedAt
	return b
}

func (b *ModelBuilder) Build() Model {
	return Model{
		id:           b.id,
		assetCode:    b.assetCode,
		name:         b.name,
		category:     b.category,
		brand:        b.brand,
		model:        b.model,
		serialNumber: b.serialNumber,
		status:       b.status,
		location:     b.location,
		assignedTo:   b.assignedTo,
		userEmail:    b.userEmail,
		purchaseDate: b.purchaseDate,
		warrantyEnd:  b.warrantyEnd,
		price:        b.price,
		notes:        b.notes,
		createdAt:    b.createdAt,
		updatedAt:    b.updatedAt,
	}
}
