package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"ai-travelmate-be/internal/config"
	"ai-travelmate-be/internal/dto"
	"ai-travelmate-be/internal/pkg/logger"
	"ai-travelmate-be/internal/repository/memory"
	"ai-travelmate-be/internal/repository/unitofwork"
	"ai-travelmate-be/pkg/assistant/dialog"
	"ai-travelmate-be/pkg/assistant/extractor"
	"ai-travelmate-be/pkg/assistant/history"
	"ai-travelmate-be/pkg/assistant/session"
	"ai-travelmate-be/pkg/events"
	pktNats "ai-travelmate-be/pkg/nats"
	"ai-travelmate-be/pkg/render"
	"ai-travelmate-be/pkg/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IAssistantService is the conversation API behind the assistant endpoints.
type IAssistantService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	Chat(ctx context.Context, sessionId uuid.UUID, request *dto.ChatRequest) (*dto.ChatResponse, error)
	GetSessionState(ctx context.Context, sessionId uuid.UUID) (*dto.SessionStateResponse, error)
	GetHistory(ctx context.Context, sessionId uuid.UUID, limit int) ([]*dto.HistoryTurnResponse, error)
	ClearSession(ctx context.Context, sessionId uuid.UUID) error
}

// assistantService coordinates the dialogue components around one turn:
// orchestrate, render, persist, publish.
type assistantService struct {
	cfg        *config.Config
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger

	orchestrator   *dialog.Orchestrator
	renderer       *render.Renderer
	sessionManager *session.Manager
	turnFactory    *history.Factory
	historyLoader  *history.Loader

	eventPublisher   *pktNats.Publisher // nil when NATS is down; turns still work
	publisherService IPublisherService

	// One mutex per session id. Turns for a session must run one at a
	// time; entries are tiny and session churn is TTL-bounded, so the map
	// is never pruned.
	locks sync.Map
}

func NewAssistantService(
	cfg *config.Config,
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo *memory.SessionRepository,
	lookup dialog.RouteLookup,
	eventPublisher *pktNats.Publisher,
	publisherService IPublisherService,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		cfg:              cfg,
		uowFactory:       uowFactory,
		logger:           log,
		orchestrator:     dialog.NewOrchestrator(extractor.New(), lookup),
		renderer:         render.New(),
		sessionManager:   session.NewManager(sessionRepo),
		turnFactory:      history.NewFactory(),
		historyLoader:    history.NewLoader(uowFactory),
		eventPublisher:   eventPublisher,
		publisherService: publisherService,
	}
}

func (s *assistantService) lockFor(sessionID string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// CreateSession starts an empty conversation and signs the token that
// scopes every later call to it.
func (s *assistantService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	id := uuid.New()
	s.sessionManager.Save(store.NewSession(id.String()))

	expiresAt := time.Now().Add(time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour)
	claims := jwt.MapClaims{
		"session_id": id.String(),
		"exp":        expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return nil, err
	}

	s.logger.Info("AssistantService", "Session created", map[string]interface{}{"session_id": id.String()})

	return &dto.CreateSessionResponse{
		Id:        id,
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// Chat runs one turn. The orchestrator works on a clone; the stored session
// advances only when the turn fully succeeds, so a lookup failure leaves no
// half-written state. The durable log and events are best effort and never
// fail the turn.
func (s *assistantService) Chat(ctx context.Context, sessionId uuid.UUID, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	mu := s.lockFor(sessionId.String())
	mu.Lock()
	defer mu.Unlock()

	now := time.Now()
	work := s.sessionManager.LoadOrCreate(sessionId).Clone()

	decision, err := s.orchestrator.HandleTurn(ctx, work, request.Message)
	if err != nil {
		s.logger.Error("AssistantService", "Turn failed", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err,
		})
		return nil, err
	}

	reply := s.renderer.Render(decision)
	work.AppendTurn(store.RoleAssistant, reply)

	if decision.Kind == dialog.KindGoodbye {
		// Goodbye drops the live state; the durable log stays readable
		// until the traveller clears the session.
		s.sessionManager.Destroy(work.ID)
	} else {
		s.sessionManager.Save(work)
	}

	s.recordTurns(ctx, sessionId, request.Message, reply, decision, now)
	s.publishTurnEvents(ctx, sessionId, decision, work.TurnCount, now)

	return &dto.ChatResponse{
		SessionId:    sessionId,
		Reply:        reply,
		Kind:         string(decision.Kind),
		Intent:       string(decision.Intent),
		Confidence:   decision.Confidence,
		Phase:        work.Phase,
		TurnCount:    work.TurnCount,
		Entities:     entitiesDTO(work.Entities),
		MissingSlots: decision.MissingSlots,
		Routes:       routesDTO(decision.Routes),
	}, nil
}

func (s *assistantService) GetSessionState(ctx context.Context, sessionId uuid.UUID) (*dto.SessionStateResponse, error) {
	sess := s.sessionManager.LoadOrCreate(sessionId)

	return &dto.SessionStateResponse{
		Id:           sessionId,
		Phase:        sess.Phase,
		TurnCount:    sess.TurnCount,
		LastIntent:   sess.LastIntent,
		Entities:     entitiesDTO(sess.Entities),
		MissingSlots: dialog.MissingSlots(sess.Entities),
		CreatedAt:    sess.CreatedAt,
	}, nil
}

func (s *assistantService) GetHistory(ctx context.Context, sessionId uuid.UUID, limit int) ([]*dto.HistoryTurnResponse, error) {
	turns, err := s.historyLoader.LoadRecent(ctx, sessionId, limit)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.HistoryTurnResponse, 0, len(turns))
	for _, t := range turns {
		response = append(response, &dto.HistoryTurnResponse{
			Id:         t.Id,
			Role:       t.Role,
			Content:    t.Content,
			Intent:     t.Intent,
			Confidence: t.Confidence,
			Metadata:   t.Metadata,
			CreatedAt:  t.CreatedAt,
		})
	}
	return response, nil
}

// ClearSession wipes both the live state and the durable log.
func (s *assistantService) ClearSession(ctx context.Context, sessionId uuid.UUID) error {
	mu := s.lockFor(sessionId.String())
	mu.Lock()
	defer mu.Unlock()

	s.sessionManager.Destroy(sessionId.String())

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConversationTurnRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type:       events.TypeSessionClosed,
			Data:       map[string]interface{}{"session_id": sessionId.String()},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AssistantService", "Failed to publish SESSION_CLOSED event", map[string]interface{}{"error": err})
		}
	}

	s.logger.Info("AssistantService", "Session cleared", map[string]interface{}{"session_id": sessionId.String()})
	return nil
}

// recordTurns appends the turn pair to the durable log. Failures are warned
// and swallowed; losing a log row must not lose the reply.
func (s *assistantService) recordTurns(ctx context.Context, sessionId uuid.UUID, message, reply string, d *dialog.Decision, now time.Time) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	userTurn := s.turnFactory.CreateUserTurn(sessionId, message, string(d.Intent), d.Confidence, now)
	if err := s.turnFactory.SaveTurn(ctx, uow, userTurn); err != nil {
		s.logger.Warn("AssistantService", "Failed to log user turn", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err,
		})
	}

	meta := map[string]interface{}{"kind": string(d.Kind)}
	if len(d.Routes) > 0 {
		meta["route_count"] = len(d.Routes)
	}
	assistantTurn := s.turnFactory.CreateAssistantTurn(sessionId, reply, meta, now)
	if err := s.turnFactory.SaveTurn(ctx, uow, assistantTurn); err != nil {
		s.logger.Warn("AssistantService", "Failed to log assistant turn", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err,
		})
	}
}

// publishTurnEvents emits the side-channel events for a handled turn: a
// TURN_RECORDED for every turn, plus ROUTE_SEARCHED and the analytics
// payload when this turn ran a lookup.
func (s *assistantService) publishTurnEvents(ctx context.Context, sessionId uuid.UUID, d *dialog.Decision, turnCount int, now time.Time) {
	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeTurnRecorded,
			Data: map[string]interface{}{
				"session_id": sessionId.String(),
				"intent":     string(d.Intent),
				"kind":       string(d.Kind),
				"turn_count": turnCount,
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AssistantService", "Failed to publish TURN_RECORDED event", map[string]interface{}{"error": err})
		}
	}

	if d.Kind != dialog.KindRouteResults {
		return
	}

	mode := d.Entities.Mode
	if mode == "" {
		mode = store.ModeAny
	}

	if s.publisherService != nil {
		msg := dto.SearchPerformedMessage{
			SessionId:   sessionId,
			Origin:      d.Entities.Origin,
			Destination: d.Entities.Destination,
			Mode:        mode,
			ResultCount: len(d.Routes),
			At:          now,
		}
		if payload, err := json.Marshal(msg); err == nil {
			if err := s.publisherService.Publish(ctx, payload); err != nil {
				s.logger.Warn("AssistantService", "Failed to publish search analytics", map[string]interface{}{"error": err})
			}
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeRouteSearched,
			Data: map[string]interface{}{
				"session_id":   sessionId.String(),
				"origin":       d.Entities.Origin,
				"destination":  d.Entities.Destination,
				"mode":         mode,
				"result_count": len(d.Routes),
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AssistantService", "Failed to publish ROUTE_SEARCHED event", map[string]interface{}{"error": err})
		}
	}
}

func entitiesDTO(e store.Entities) dto.EntitiesDTO {
	out := dto.EntitiesDTO{
		Origin:           e.Origin,
		Destination:      e.Destination,
		Mode:             e.Mode,
		SeatClass:        e.SeatClass,
		BudgetPreference: e.BudgetPreference,
	}
	if e.Date != nil {
		out.Date = e.Date.Date.Format("2006-01-02")
		out.DatePhrase = e.Date.Phrase
	}
	if e.TimePreference != nil {
		out.TimePreference = e.TimePreference.Label
	}
	return out
}

func routesDTO(routes []store.Route) []dto.RouteDTO {
	if len(routes) == 0 {
		return nil
	}
	out := make([]dto.RouteDTO, 0, len(routes))
	for _, r := range routes {
		item := dto.RouteDTO{
			Id:          r.ID,
			Name:        r.Name,
			Mode:        r.Mode,
			Operator:    r.Operator,
			Price:       r.Price,
			DurationMin: r.Duration,
			DistanceKm:  r.Distance,
			Score:       r.Score,
			Tags:        r.Tags,
			Departures:  departuresDTO(r.Departures),
		}
		out = append(out, item)
	}
	return out
}

func departuresDTO(deps []store.Departure) []dto.DepartureDTO {
	out := make([]dto.DepartureDTO, 0, len(deps))
	for _, d := range deps {
		out = append(out, dto.DepartureDTO{
			Time:     d.Time,
			Arrival:  d.Arrival,
			Platform: d.Platform,
		})
	}
	return out
}
