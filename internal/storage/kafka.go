package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"menubyte/internal/domain"
)

// KafkaCatalogPublisher emits catalog-change events keyed by business so
// downstream consumers see one business's changes in order.
type KafkaCatalogPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaCatalogPublisher(writer *kafka.Writer) *KafkaCatalogPublisher {
	return &KafkaCatalogPublisher{Writer: writer}
}

func (p *KafkaCatalogPublisher) PublishCatalogEvent(ctx context.Context, event domain.CatalogEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.BusinessID, 10)),
		Value: payload,
	})
}
