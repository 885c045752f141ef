package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func create(db *gorm.DB, transactionId uuid.UUID, timestamp time.Time, action Action, assetCode string, details string, user string) (Model, error) {
	e := &Entity{
		Timestamp:     timestamp,
		Action:        string(action),
		AssetCode:     assetCode,
		Details:       details,
		User:          user,
		TransactionId: transactionId,
	}
	if err := db.Create(e).Error; err != nil {
		return Model{}, err
	}
	return Make(*e)
}
