package asset

import (
	"it-inventory/kafka/message/asset"
	"it-inventory/kafka/producer"
	"it-inventory/model"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

func CreatedEventStatusProvider(transactionId uuid.UUID, actor string, eventType string, m Model) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(m.Id()))
	value := &asset.StatusEvent[asset.CreatedStatusEventBody]{
		TransactionId: transactionId,
		AssetId:       m.Id(),
		AssetCode:     m.AssetCode(),
		Actor:         actor,
		Type:          eventType,
		Body: asset.CreatedStatusEventBody{
			Name:     m.Name(),
			Category: m.Category(),
			Status:   m.Status(),
			Location: m.Location(),
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func UpdatedEventStatusProvider(transactionId uuid.UUID, actor string, old Model, m Model) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(m.Id()))
	value := &asset.StatusEvent[asset.UpdatedStatusEventBody]{
		TransactionId: transactionId,
		AssetId:       m.Id(),
		AssetCode:     m.AssetCode(),
		Actor:         actor,
		Type:          asset.StatusEventTypeUpdated,
		Body: asset.UpdatedStatusEventBody{
			OldName:   old.Name(),
			Name:      m.Name(),
			OldStatus: old.Status(),
			Status:    m.Status(),
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func DeletedEventStatusProvider(transactionId uuid.UUID, actor string, m Model) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(m.Id()))
	value := &asset.StatusEvent[asset.DeletedStatusEventBody]{
		TransactionId: transactionId,
		AssetId:       m.Id(),
		AssetCode:     m.AssetCode(),
		Actor:         actor,
		Type:          asset.StatusEventTypeDeleted,
		Body: asset.DeletedStatusEventBody{
			Name: m.Name(),
		},
	}
	return producer.SingleMessageProvider(key, value)
}
