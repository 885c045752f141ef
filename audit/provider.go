package audit

import (
	"it-inventory/database"
	"it-inventory/model"

	"gorm.io/gorm"
)

func getLatest(limit int) database.EntityProvider[[]Entity] {
	return func(db *gorm.DB) model.Provider[[]Entity] {
		return database.SliceQuery[Entity](db.Order("timestamp desc").Order("id desc").Limit(limit), &Entity{})
	}
}

func getByAssetCode(assetCode string, limit int) database.EntityProvider[[]Entity] {
	return func(db *gorm.DB) model.Provider[[]Entity] {
		return database.SliceQuery[Entity](db.Order("timestamp desc").Order("id desc").Limit(limit), "asset_code = ?", assetCode)
	}
}
