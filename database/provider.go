package database

import (
	"it-inventory/model"

	"gorm.io/gorm"
)

type EntityProvider[E any] func(db *gorm.DB) model.Provider[E]

func Query[E any](db *gorm.DB, query interface{}, args ...interface{}) model.Provider[E] {
	var result E
	err := db.Where(query, args...).First(&result).Error
	if err != nil {
		return model.ErrorProvider[E](err)
	}
	return model.FixedProvider[E](result)
}

func SliceQuery[E any](db *gorm.DB, query interface{}, args ...interface{}) model.Provider[[]E] {
	var results []E
	err := db.Where(query, args...).Find(&results).Error
	if err != nil {
		return model.ErrorProvider[[]E](err)
	}
	return model.FixedProvider(results)
}
