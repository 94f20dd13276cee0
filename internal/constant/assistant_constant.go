package constant

const (
	// Alert severities, ordered from informational to service-breaking.
	AlertSeverityInfo       = "info"
	AlertSeverityWarning    = "warning"
	AlertSeverityDisruption = "disruption"

	// Station kinds.
	StationKindBusTerminal    = "bus_terminal"
	StationKindRailwayStation = "railway_station"

	// WebSocket frame types pushed to connected sessions.
	WsMessageTypeServiceAlert = "service_alert"
	WsMessageTypeConnected    = "connected"
)

// AlertSeverities lists every valid severity for request validation.
var AlertSeverities = []string{
	AlertSeverityInfo,
	AlertSeverityWarning,
	AlertSeverityDisruption,
}
