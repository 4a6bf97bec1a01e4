package alertsink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/alert"
	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/history"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

type redisSink struct {
	client  *redis.Client
	channel string
	listKey string
	logger  *logrus.Logger
}

// NewRedisSink appends every finding to listKey and publishes it on channel,
// so both late readers and live subscribers receive it.
func NewRedisSink(client *redis.Client, channel, listKey string, logger *logrus.Logger) alert.Sink {
	return &redisSink{
		client:  client,
		channel: channel,
		listKey: listKey,
		logger:  logger,
	}
}

func (s *redisSink) AlertFound(ctx context.Context, a *alert.Alert, ref history.Reference) error {
	data, err := json.Marshal(Message{
		Type:      MessageTypeAlertFound,
		Alert:     a,
		Reference: ref,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}
	payload := string(data)

	if s.listKey != "" {
		if err := s.client.LPush(ctx, s.listKey, payload).Err(); err != nil {
			return fmt.Errorf("failed to store alert: %w", err)
		}
	}
	if s.channel != "" {
		if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
			return fmt.Errorf("failed to publish alert: %w", err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"name":                 a.Name,
		"history_reference_id": a.HistoryReferenceID,
	}).Debug("alert sent to redis")
	return nil
}
