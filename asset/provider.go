package asset

import (
	"fmt"
	"it-inventory/database"
	"it-inventory/model"

	"gorm.io/gorm"
)

const FilterAll = "all"

// Filter narrows an asset listing. Search is a case-sensitive substring matched against the asset
// code, name, serial number and assignee. Category and Status match exactly unless set to FilterAll.
type Filter struct {
	Search   string
	Category string
	Status   string
}

func AllFilter() Filter {
	return Filter{Category: FilterAll, Status: FilterAll}
}

func getById(id uint32) database.EntityProvider[Entity] {
	return func(db *gorm.DB) model.Provider[Entity] {
		return database.Query[Entity](db, "id = ?", id)
	}
}

func getAll() database.EntityProvider[[]Entity] {
	return func(db *gorm.DB) model.Provider[[]Entity] {
		return database.SliceQuery[Entity](db.Order("id"), &Entity{})
	}
}

func search(f Filter) database.EntityProvider[[]Entity] {
	return func(db *gorm.DB) model.Provider[[]Entity] {
		q := db.Order("id")
		if f.Search != "" {
			fn := containsFunction(db)
			clause := fmt.Sprintf("(%[1]s(asset_code, ?) > 0 OR %[1]s(name, ?) > 0 OR %[1]s(serial_number, ?) > 0 OR %[1]s(assigned_to, ?) > 0)", fn)
			q = q.Where(clause, f.Search, f.Search, f.Search, f.Search)
		}
		if f.Category != FilterAll {
			q = q.Where("category = ?", f.Category)
		}
		if f.Status != FilterAll {
			q = q.Where("status = ?", f.Status)
		}
		var results []Entity
		if err := q.Find(&results).Error; err != nil {
			return model.ErrorProvider[[]Entity](err)
		}
		return model.FixedProvider(results)
	}
}

// containsFunction names the dialect's case-sensitive substring position function.
func containsFunction(db *gorm.DB) string {
	if db.Dialector.Name() == database.DriverPostgres {
		return "strpos"
	}
	return "instr"
}

func getMaxId(db *gorm.DB) (uint32, error) {
	var max uint32
	err := db.Model(&Entity{}).Select("COALESCE(MAX(id), 0)").Scan(&max).Error
	return max, err
}
