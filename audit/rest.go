package audit

import (
	"time"

	"github.com/google/uuid"
)

type RestModel struct {
	Id            uint32 `json:"id"`
	Timestamp     string `json:"timestamp"`
	Action        string `json:"action"`
	AssetCode     string `json:"assetCode"`
	Details       string `json:"details"`
	User          string `json:"user"`
	TransactionId string `json:"transactionId,omitempty"`
}

func Transform(m Model) (RestModel, error) {
	rm := RestModel{
		Id:        m.id,
		Timestamp: m.timestamp.UTC().Format(time.RFC3339Nano),
		Action:    string(m.action),
		AssetCode: m.assetCode,
		Details:   m.details,
		User:      m.user,
	}
	if m.transactionId != uuid.Nil {
		rm.TransactionId = m.transactionId.String()
	}
	return rm, nil
}
