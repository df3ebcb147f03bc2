package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubBroadcastReachesAllCounsellors(t *testing.T) {
	hub := NewHub()

	a := &Connection{CounsellorID: "c1", Send: make(chan []byte, 4), Hub: hub}
	b := &Connection{CounsellorID: "c2", Send: make(chan []byte, 4), Hub: hub}
	hub.Register(a)
	hub.Register(b)

	hub.BroadcastAlert("escalation_raised", map[string]string{"user_id": "user_1"})

	for _, conn := range []*Connection{a, b} {
		select {
		case data := <-conn.Send:
			var msg Message
			if err := json.Unmarshal(data, &msg); err != nil {
				t.Fatalf("invalid message: %v", err)
			}
			if msg.Type != MsgEscalationRaised {
				t.Errorf("type = %q, want %q", msg.Type, MsgEscalationRaised)
			}
			var payload map[string]string
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				t.Fatal(err)
			}
			if payload["user_id"] != "user_1" {
				t.Errorf("payload = %v", payload)
			}
		case <-time.After(time.Second):
			t.Fatalf("counsellor %s received no alert", conn.CounsellorID)
		}
	}
}

func TestHubUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()

	conn := &Connection{CounsellorID: "c1", Send: make(chan []byte, 4), Hub: hub}
	hub.Register(conn)
	hub.Unregister(conn)

	// Unregister closes the send channel
	select {
	case _, ok := <-conn.Send:
		if ok {
			t.Fatal("expected closed channel, got a message")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestHubReconnectReplacesOldConnection(t *testing.T) {
	hub := NewHub()

	old := &Connection{CounsellorID: "c1", Send: make(chan []byte, 4), Hub: hub}
	hub.Register(old)

	fresh := &Connection{CounsellorID: "c1", Send: make(chan []byte, 4), Hub: hub}
	hub.Register(fresh)

	// The superseded connection is told to shut down
	select {
	case _, ok := <-old.Send:
		if ok {
			t.Fatal("expected closed channel on the replaced connection")
		}
	case <-time.After(time.Second):
		t.Fatal("replaced connection was not closed")
	}

	// Alerts flow to the fresh connection only
	hub.BroadcastAlert("escalation_raised", map[string]string{"user_id": "user_1"})
	select {
	case <-fresh.Send:
	case <-time.After(time.Second):
		t.Fatal("fresh connection received no alert")
	}

	// The old socket's teardown must not evict the fresh one
	hub.Unregister(old)
	hub.BroadcastAlert("escalation_raised", map[string]string{"user_id": "user_2"})
	select {
	case data, ok := <-fresh.Send:
		if !ok {
			t.Fatal("fresh connection was closed by the stale unregister")
		}
		_ = data
	case <-time.After(time.Second):
		t.Fatal("fresh connection stopped receiving after stale unregister")
	}
}

func TestHubDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()

	conn := &Connection{CounsellorID: "c1", Send: make(chan []byte, 1), Hub: hub}
	hub.Register(conn)

	// Second alert must be dropped, not block the hub
	hub.BroadcastAlert("chat_escalation", map[string]string{"n": "1"})
	hub.BroadcastAlert("chat_escalation", map[string]string{"n": "2"})

	done := make(chan struct{})
	go func() {
		hub.BroadcastAlert("chat_escalation", map[string]string{"n": "3"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hub blocked on a full connection buffer")
	}
}
