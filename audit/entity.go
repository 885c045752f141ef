package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

type Entity struct {
	Id            uint32    `gorm:"primaryKey;autoIncrement;not null"`
	Timestamp     time.Time `gorm:"not null;index"`
	Action        string    `gorm:"size:50;not null"`
	AssetCode     string    `gorm:"size:50;not null;index"`
	Details       string    `gorm:"type:text"`
	User          string    `gorm:"size:100;not null;default:Admin"`
	TransactionId uuid.UUID `gorm:"type:uuid"`
}

func (e Entity) TableName() string {
	return "audit_logs"
}

func Make(e Entity) (Model, error) {
	return Model{
		id:            e.Id,
		timestamp:     e.Timestamp,
		action:        Action(e.Action),
		assetCode:     e.AssetCode,
		details:       e.Details,
		user:          e.User,
		transactionId: e.TransactionId,
	}, nil
}
