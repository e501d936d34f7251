package events

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trinh-cafe/internal/logger"
)

func TestStreamDeliversEvents(t *testing.T) {
	hub := NewHub(logger.New("test"))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	mux := http.NewServeMux()
	NewStreamHandler(hub, logger.New("test")).Register(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/events", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /api/events failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Content-Type = %q, want text/event-stream", ct)
	}

	// Give the handler a moment to register its subscription.
	deadline := time.Now().Add(2 * time.Second)
	for hubSubscriberCount(hub, "admin") == 0 {
		if time.Now().After(deadline) {
			t.Fatal("stream handler never subscribed")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.Publish("admin", Event{Type: "new-order", Payload: map[string]int{"id": 7}})

	reader := bufio.NewReader(resp.Body)
	var eventLine, dataLine string
	for eventLine == "" || dataLine == "" {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("failed to read stream: %v", err)
		}
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "event: "):
			eventLine = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			dataLine = strings.TrimPrefix(line, "data: ")
		}
	}

	if eventLine != "new-order" {
		t.Errorf("event = %q, want new-order", eventLine)
	}
	if dataLine != `{"id":7}` {
		t.Errorf("data = %q, want {\"id\":7}", dataLine)
	}
}

func hubSubscriberCount(hub *Hub, group string) int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	return len(hub.groups[group])
}
