package audit

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionImport Action = "IMPORT"
)

type Model struct {
	id            uint32
	timestamp     time.Time
	action        Action
	assetCode     string
	details       string
	user          string
	transactionId uuid.UUID
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) Timestamp() time.Time {
	return m.timestamp
}

func (m Model) Action() Action {
	return m.action
}

func (m Model) AssetCode() string {
	return m.assetCode
}

func (m Model) Details() string {
	return m.details
}

func (m Model) User() string {
	return m.user
}

func (m Model) TransactionId() uuid.UUID {
	return m.transactionId
}
