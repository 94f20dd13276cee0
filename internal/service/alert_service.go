package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-travelmate-be/internal/constant"
	"ai-travelmate-be/internal/dto"
	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/pkg/logger"
	"ai-travelmate-be/internal/repository/unitofwork"
	"ai-travelmate-be/pkg/events"
	pktNats "ai-travelmate-be/pkg/nats"
	"ai-travelmate-be/pkg/store"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// AlertDelivery defines how matched alerts reach live sessions.
// Typically implemented by the WebSocket Hub.
type AlertDelivery interface {
	Send(sessionID uuid.UUID, push dto.AlertPushMessage)
	Broadcast(push dto.AlertPushMessage)
}

// corridorInterest is one corridor a session has searched. Alerts are only
// pushed to sessions whose interests they touch.
type corridorInterest struct {
	Origin      string
	Destination string
	Mode        string
}

// AlertService consumes the event stream: ROUTE_SEARCHED builds the
// session-to-corridor interest map, SERVICE_ALERT rows are persisted and
// fanned out to interested sessions.
type AlertService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   AlertDelivery
	interests  *cache.Cache
	logger     logger.ILogger
}

func NewAlertService(uowFactory unitofwork.RepositoryFactory, sub *pktNats.Subscriber, delivery AlertDelivery, interestTTL time.Duration, log logger.ILogger) *AlertService {
	return &AlertService{
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		interests:  cache.New(interestTTL, 10*time.Minute),
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *AlertService) Start() {
	err := s.subscriber.Subscribe("events.>", "alert-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("AlertService", "Failed to start alert subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("AlertService", "Alert service started, listening to events.>", nil)
}

func (s *AlertService) handleEvent(ctx context.Context, event events.Event) error {
	switch event.EventType() {
	case events.TypeRouteSearched:
		s.recordInterest(event)
		return nil
	case events.TypeSessionClosed:
		if sid, ok := event.Payload()["session_id"].(string); ok {
			s.interests.Delete(sid)
		}
		return nil
	case events.TypeServiceAlert:
		return s.handleServiceAlert(ctx, event)
	default:
		// TURN_RECORDED and anything newer is someone else's concern.
		return nil
	}
}

func (s *AlertService) recordInterest(event events.Event) {
	payload := event.Payload()
	sessionID, _ := payload["session_id"].(string)
	if sessionID == "" {
		return
	}
	in := corridorInterest{
		Origin:      stringField(payload, "origin"),
		Destination: stringField(payload, "destination"),
		Mode:        stringField(payload, "mode"),
	}
	if in.Origin == "" || in.Destination == "" {
		return
	}

	var list []corridorInterest
	if x, found := s.interests.Get(sessionID); found {
		list = x.([]corridorInterest)
	}
	for _, existing := range list {
		if existing == in {
			s.interests.Set(sessionID, list, cache.DefaultExpiration)
			return
		}
	}
	list = append(list, in)
	s.interests.Set(sessionID, list, cache.DefaultExpiration)
}

func (s *AlertService) handleServiceAlert(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	alert := entity.ServiceAlert{
		Id:              uuid.New(),
		OriginCity:      stringField(payload, "origin_city"),
		DestinationCity: stringField(payload, "destination_city"),
		Mode:            stringField(payload, "mode"),
		Severity:        severityOrInfo(stringField(payload, "severity")),
		Title:           stringField(payload, "title"),
		Message:         stringField(payload, "message"),
		EffectiveFrom:   event.Timestamp(),
		CreatedAt:       time.Now(),
	}
	// The publish stamp is the default window start; an explicit
	// effective_from wins (alerts can be announced ahead of time).
	if raw := stringField(payload, "effective_from"); raw != "" {
		if from, err := time.Parse(time.RFC3339, raw); err == nil {
			alert.EffectiveFrom = from
		}
	}
	if raw := stringField(payload, "effective_to"); raw != "" {
		if to, err := time.Parse(time.RFC3339, raw); err == nil {
			alert.EffectiveTo = &to
		}
	}

	if alert.Title == "" && alert.Message == "" {
		// Nothing to show anyone; redelivery won't improve it.
		s.logger.Warn("AlertService", "Dropping empty service alert", map[string]interface{}{"payload": payload})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ServiceAlertRepository().Create(ctx, &alert); err != nil {
		s.logger.Error("AlertService", "Failed to persist service alert", map[string]interface{}{"error": err})
		return err // NATS will redeliver
	}

	s.logger.Info("AlertService", fmt.Sprintf("Service alert stored: %s", alert.Title), map[string]interface{}{
		"severity": alert.Severity,
		"corridor": alert.OriginCity + "-" + alert.DestinationCity,
	})

	s.deliver(&alert)
	return nil
}

// deliver pushes the alert to every interested session, or to everyone when
// the alert has no corridor at all.
func (s *AlertService) deliver(alert *entity.ServiceAlert) {
	if s.delivery == nil {
		return
	}

	push := dto.AlertPushMessage{
		Type: constant.WsMessageTypeServiceAlert,
		Alert: &dto.AlertResponse{
			Id:              alert.Id,
			OriginCity:      alert.OriginCity,
			DestinationCity: alert.DestinationCity,
			Mode:            alert.Mode,
			Severity:        alert.Severity,
			Title:           alert.Title,
			Message:         alert.Message,
			EffectiveFrom:   alert.EffectiveFrom,
			EffectiveTo:     alert.EffectiveTo,
		},
	}

	if alert.OriginCity == "" && alert.DestinationCity == "" {
		s.delivery.Broadcast(push)
		return
	}

	for sessionID, item := range s.interests.Items() {
		list, ok := item.Object.([]corridorInterest)
		if !ok {
			continue
		}
		for _, in := range list {
			if !corridorMatches(alert, in) {
				continue
			}
			if sid, err := uuid.Parse(sessionID); err == nil {
				s.delivery.Send(sid, push)
			}
			break
		}
	}
}

func corridorMatches(alert *entity.ServiceAlert, in corridorInterest) bool {
	if alert.OriginCity != "" && !strings.EqualFold(alert.OriginCity, in.Origin) {
		return false
	}
	if alert.DestinationCity != "" && !strings.EqualFold(alert.DestinationCity, in.Destination) {
		return false
	}
	if alert.Mode != "" && in.Mode != "" && in.Mode != store.ModeAny && alert.Mode != in.Mode {
		return false
	}
	return true
}

func severityOrInfo(severity string) string {
	for _, s := range constant.AlertSeverities {
		if s == severity {
			return severity
		}
	}
	return constant.AlertSeverityInfo
}

func stringField(payload map[string]interface{}, key string) string {
	v, _ := payload[key].(string)
	return v
}
