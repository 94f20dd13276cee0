// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-travelmate-be/internal/dto"
	"ai-travelmate-be/internal/repository/unitofwork"
	"ai-travelmate-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains SEARCH_PERFORMED messages and bumps the corridor
// popularity counters. Runs in-process over the watermill channel so a chat
// request never waits on the stats write.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
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
	var payload dto.SearchPerformedMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal search message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.Origin == "" || payload.Destination == "" {
		log.Printf("[WARN] Search message missing corridor, skipping (session %s)", payload.SessionId)
		msg.Ack()
		return
	}

	mode := payload.Mode
	if mode == "" {
		mode = store.ModeAny
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CorridorStatRepository().IncrementSearch(ctx, payload.Origin, payload.Destination, mode, payload.At); err != nil {
		log.Printf("[ERROR] Failed to increment corridor stat %s-%s: %v", payload.Origin, payload.Destination, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
