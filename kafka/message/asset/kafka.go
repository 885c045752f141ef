package asset

import "github.com/google/uuid"

const (
	EnvEventTopicStatus     = "EVENT_TOPIC_ASSET_STATUS"
	StatusEventTypeCreated  = "CREATED"
	StatusEventTypeUpdated  = "UPDATED"
	StatusEventTypeDeleted  = "DELETED"
	StatusEventTypeImported = "IMPORTED"
)

type StatusEvent[E any] struct {
	TransactionId uuid.UUID `json:"transactionId"`
	AssetId       uint32    `json:"assetId"`
	AssetCode     string    `json:"assetCode"`
	Actor         string    `json:"actor"`
	Type          string    `json:"type"`
	Body          E         `json:"body"`
}

type CreatedStatusEventBody struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

type UpdatedStatusEventBody struct {
	OldName   string `json:"oldName"`
	Name      string `json:"name"`
	OldStatus string `json:"oldStatus"`
	Status    string `json:"status"`
}

type DeletedStatusEventBody struct {
	Name string `json:"name"`
}
