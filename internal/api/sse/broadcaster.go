package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/numbergamble-go/internal/model"
)

// Broadcaster fans game lifecycle events out to the SSE clients
// watching each game. Events are rendered as JSON and named by their
// event type, so clients can subscribe to specific types.
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Publish broadcasts an event to the clients watching its game.
// Games with no watchers have no hub and the event is dropped;
// the game record itself is the durable history.
func (b *Broadcaster) Publish(event model.Event) {
	hub := b.hubManager.GetHub(event.GameID)
	if hub == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("sse failed to marshal event",
			slog.Uint64("game_id", uint64(event.GameID)),
			slog.String("type", string(event.Type)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(string(event.Type), string(data))
}
