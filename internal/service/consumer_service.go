package service

import (
	"context"
	"encoding/json"

	"compliance-audit-be/internal/dto"
	"compliance-audit-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService subscribes to regulation-ingested events and runs the
// keyword auto-linker over the new regulation's clauses.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	seeder    IRuleSeederService
	mappings  []RuleMapping
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	seeder IRuleSeederService,
	mappings []RuleMapping,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		seeder:    seeder,
		mappings:  mappings,
		logger:    sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RegulationIngestedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("autolink", "failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payloads must not be retried forever
		return
	}

	created, err := cs.seeder.LinkRegulation(ctx, payload.RegulationId, cs.mappings, AutoLinkOptions())
	if err != nil {
		cs.logger.Error("autolink", "failed to link regulation clauses", map[string]interface{}{
			"regulation_id": payload.RegulationId.String(),
			"error":         err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("autolink", "regulation processed", map[string]interface{}{
		"regulation_id": payload.RegulationId.String(),
		"rules_created": created,
	})
	msg.Ack()
}
