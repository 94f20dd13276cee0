package handler

import (
	"os"
	"time"

	"ai-travelmate-be/internal/constant"
	"ai-travelmate-be/internal/dto"
	"ai-travelmate-be/internal/pkg/logger"
	internalWS "ai-travelmate-be/internal/websocket"
	"ai-travelmate-be/pkg/events"
	pktNats "ai-travelmate-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AlertHandler struct {
	publisher *pktNats.Publisher
	hub       *internalWS.Hub
	logger    logger.ILogger
}

func NewAlertHandler(pub *pktNats.Publisher, hub *internalWS.Hub, log logger.ILogger) *AlertHandler {
	return &AlertHandler{
		publisher: pub,
		hub:       hub,
		logger:    log,
	}
}

// ServeWs upgrades the connection and ties it to the session in the token.
func (h *AlertHandler) ServeWs(c *fiber.Ctx) error {
	// Priority 1: Query Param (Browser standard)
	tokenStr := c.Query("token")

	// Priority 2: Authorization Header (Tooling/Non-browser standard)
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		h.logger.Warn("AlertHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	sessionIDStr, ok := claims["session_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing session_id"})
	}

	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session ID format in token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("AlertHandler", "Starting alert stream", map[string]interface{}{"session_id": sessionID})
			// Ack the subscription before the pumps take over the socket.
			_ = conn.WriteJSON(dto.AlertPushMessage{
				Type:      constant.WsMessageTypeConnected,
				SessionId: sessionID.String(),
			})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("AlertHandler", "Alert stream ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// DebugTriggerAlert publishes a SERVICE_ALERT event to exercise the full
// ingest-persist-push path without an external publisher.
func (h *AlertHandler) DebugTriggerAlert(c *fiber.Ctx) error {
	type Request struct {
		OriginCity      string `json:"origin_city"`
		DestinationCity string `json:"destination_city"`
		Mode            string `json:"mode"`
		Severity        string `json:"severity"`
		Title           string `json:"title"`
		Message         string `json:"message"`
		EffectiveTo     string `json:"effective_to"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Title == "" && req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title or Message is required"})
	}

	evt := events.BaseEvent{
		Type: events.TypeServiceAlert,
		Data: map[string]interface{}{
			"origin_city":      req.OriginCity,
			"destination_city": req.DestinationCity,
			"mode":             req.Mode,
			"severity":         req.Severity,
			"title":            req.Title,
			"message":          req.Message,
			"effective_to":     req.EffectiveTo,
		},
		OccurredAt: time.Now(),
	}

	if h.publisher == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Event publisher not configured"})
	}

	if err := h.publisher.Publish(c.UserContext(), evt); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "Alert Published", "event": evt})
}

// RegisterRoutes registers the alert stream routes.
func (h *AlertHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/assistant/v1/alerts/ws", h.ServeWs)

	debug := router.Group("/debug")
	debug.Post("/trigger-alert", h.DebugTriggerAlert)
}
