package events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/models"
)

const keepAliveInterval = 30 * time.Second

// StreamHandler serves the observer event stream over Server-Sent Events.
// Observers join a broadcast group and receive every event published to it
// while connected; there is no replay.
type StreamHandler struct {
	hub    *Hub
	logger *logger.Logger
}

// NewStreamHandler creates a stream handler backed by hub.
func NewStreamHandler(hub *Hub, log *logger.Logger) *StreamHandler {
	return &StreamHandler{hub: hub, logger: log}
}

// Register registers the stream endpoint on mux.
func (h *StreamHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/events", h.Stream)
}

// Stream handles GET /api/events?group=admin requests.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	group := r.URL.Query().Get("group")
	if group == "" {
		group = models.AdminGroup
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := h.hub.Subscribe(group)
	defer h.hub.Unsubscribe(sub)

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepAlive.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case event, ok := <-sub.Events():
			if !ok {
				return
			}
			data, err := json.Marshal(event.Payload)
			if err != nil {
				h.logger.Error("event_encoding_failed", "Failed to encode event payload", "", err,
					map[string]interface{}{"type": event.Type})
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data)
			flusher.Flush()
		}
	}
}
