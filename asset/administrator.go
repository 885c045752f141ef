package asset

import (
	"time"

	"gorm.io/gorm"
)

func toEntity(m Model) Entity {
	return Entity{
		Id:           m.Id(),
		AssetCode:    m.AssetCode(),
		Name:         m.Name(),
		Category:     m.Category(),
		Brand:        m.Brand(),
		Model:        m.Model(),
		SerialNumber: m.SerialNumber(),
		Status:       m.Status(),
		Location:     m.Location(),
		AssignedTo:   m.AssignedTo(),
		UserEmail:    m.UserEmail(),
		PurchaseDate: toDate(m.PurchaseDate()),
		WarrantyEnd:  toDate(m.WarrantyEnd()),
		Price:        m.Price(),
		Notes:        m.Notes(),
		CreatedAt:    m.CreatedAt(),
		UpdatedAt:    m.UpdatedAt(),
	}
}

func create(db *gorm.DB, m Model, now time.Time) (Model, error) {
	e := toEntity(m)
	e.Id = 0
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := db.Create(&e).Error; err != nil {
		return Model{}, err
	}
	return Make(e)
}

func update(db *gorm.DB, m Model, now time.Time) (Model, error) {
	e := toEntity(m)
	e.UpdatedAt = now
	if err := db.Save(&e).Error; err != nil {
		return Model{}, err
	}
	return Make(e)
}

func deleteById(db *gorm.DB, id uint32) error {
	res := db.Where("id = ?", id).Delete(&Entity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
