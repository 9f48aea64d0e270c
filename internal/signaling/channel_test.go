package signaling

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// startEchoServer runs a WebSocket server that echoes every JSON message
// back to its sender. Returns the ws:// URL.
func startEchoServer(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			var msg Message
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if err := conn.WriteJSON(&msg); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

// waitFor polls cond until it holds or the timeout elapses.
func waitFor(t *testing.T, timeout time.Duration, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

// TestMessageJSONShape pins the wire field names and omitempty
// behavior of the signaling JSON.
func TestMessageJSONShape(t *testing.T) {
	to := uint8('D')
	id := 4
	data, err := json.Marshal(&Message{To: &to, ChannelID: &id, Echo: "Hello"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if fields["to"] != float64('D') || fields["channelId"] != float64(4) || fields["echo"] != "Hello" {
		t.Errorf("unexpected fields: %v", fields)
	}
	for _, absent := range []string{"from", "description", "candidate"} {
		if _, ok := fields[absent]; ok {
			t.Errorf("empty field %q serialized", absent)
		}
	}
}

// TestOpenSendEchoClose drives the full lifecycle against a local echo
// server: CONNECTING → OPEN, echo round trip, then CLOSING → CLOSED.
func TestOpenSendEchoClose(t *testing.T) {
	url := startEchoServer(t)

	ch := NewChannel()
	if ch.State() != Connecting {
		t.Fatalf("initial state = %s", ch.State())
	}

	var mu sync.Mutex
	var opened, closed bool
	var echoes []string
	ch.OnOpen(func() { mu.Lock(); opened = true; mu.Unlock() })
	ch.OnClose(func() { mu.Lock(); closed = true; mu.Unlock() })
	ch.OnMessage(func(msg *Message) {
		mu.Lock()
		echoes = append(echoes, msg.Echo)
		mu.Unlock()
	})

	ch.Open(context.Background(), url)
	waitFor(t, time.Second, "OPEN", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return opened
	})
	if ch.State() != Open {
		t.Fatalf("state after open = %s", ch.State())
	}

	if err := ch.Send(&Message{Echo: "Hello"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	waitFor(t, time.Second, "echo", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(echoes) == 1 && echoes[0] == "Hello"
	})

	ch.Close()
	waitFor(t, time.Second, "CLOSED", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return closed
	})
	if ch.State() != Closed {
		t.Errorf("state after close = %s", ch.State())
	}

	// Idempotent.
	ch.Close()

	if err := ch.Send(&Message{Echo: "late"}); err == nil {
		t.Errorf("send after close succeeded")
	}
}

// TestOpenInvalidAddress verifies a failed dial surfaces as an error
// event and a CLOSED state, without a panic or hang.
func TestOpenInvalidAddress(t *testing.T) {
	ch := NewChannel()

	var mu sync.Mutex
	var gotError, closed bool
	ch.OnError(func(error) { mu.Lock(); gotError = true; mu.Unlock() })
	ch.OnClose(func() { mu.Lock(); closed = true; mu.Unlock() })

	ch.Open(context.Background(), "ws://0.0.0.0:0")

	waitFor(t, 2*time.Second, "error and CLOSED", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return gotError && closed
	})
	if ch.State() != Closed {
		t.Errorf("state = %s, want CLOSED", ch.State())
	}
}

// TestTwoIndependentChannels verifies two channels to the same server do
// not share buffers or echo traffic.
func TestTwoIndependentChannels(t *testing.T) {
	url := startEchoServer(t)

	open := func() (*Channel, *[]string, *sync.Mutex) {
		ch := NewChannel()
		var mu sync.Mutex
		var echoes []string
		opened := make(chan struct{})
		var once sync.Once
		ch.OnOpen(func() { once.Do(func() { close(opened) }) })
		ch.OnMessage(func(msg *Message) {
			mu.Lock()
			echoes = append(echoes, msg.Echo)
			mu.Unlock()
		})
		ch.Open(context.Background(), url)
		select {
		case <-opened:
		case <-time.After(time.Second):
			t.Fatal("channel never opened")
		}
		return ch, &echoes, &mu
	}

	a, aEchoes, aMu := open()
	defer a.Close()
	b, bEchoes, bMu := open()
	defer b.Close()

	if err := a.Send(&Message{Echo: "Hello"}); err != nil {
		t.Fatalf("send on a failed: %v", err)
	}
	if err := b.Send(&Message{Echo: "Goodbye"}); err != nil {
		t.Fatalf("send on b failed: %v", err)
	}

	waitFor(t, time.Second, "both echoes", func() bool {
		aMu.Lock()
		na := len(*aEchoes)
		aMu.Unlock()
		bMu.Lock()
		nb := len(*bEchoes)
		bMu.Unlock()
		return na == 1 && nb == 1
	})

	aMu.Lock()
	if (*aEchoes)[0] != "Hello" {
		t.Errorf("channel a received %q", (*aEchoes)[0])
	}
	aMu.Unlock()
	bMu.Lock()
	if (*bEchoes)[0] != "Goodbye" {
		t.Errorf("channel b received %q", (*bEchoes)[0])
	}
	bMu.Unlock()
}
