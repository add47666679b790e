package service

// Event types pushed over the websocket.
const (
	EventPointsUpdated = "points_updated"
	EventSortingTick   = "sorting_tick"
	EventSortingOver   = "sorting_over"
)

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	SendToUser(userID string, msgType string, payload interface{})
}

type noopBroadcaster struct{}

func (noopBroadcaster) SendToUser(string, string, interface{}) {}
