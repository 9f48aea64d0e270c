package signaling

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vistaverse/vista/internal/util"
)

// ReadyState is the observable state of a signaling channel.
type ReadyState int

const (
	Connecting ReadyState = iota
	Open
	Closing
	Closed
)

// String returns the ready-state name for logs.
func (s ReadyState) String() string {
	switch s {
	case Connecting:
		return "CONNECTING"
	case Open:
		return "OPEN"
	case Closing:
		return "CLOSING"
	case Closed:
		return "CLOSED"
	default:
		return "Unknown"
	}
}

// Channel is a WebSocket-backed duplex of JSON signaling messages.
// Callbacks fire on the channel's internal goroutines; they must not block.
type Channel struct {
	mu    sync.Mutex
	conn  *websocket.Conn
	state ReadyState

	onOpen    func()
	onMessage func(*Message)
	onError   func(error)
	onClose   func()

	closeOnce sync.Once
}

// NewChannel creates a channel in CONNECTING; call Open to start dialing.
func NewChannel() *Channel {
	return &Channel{state: Connecting}
}

// OnOpen registers the open callback.
func (c *Channel) OnOpen(fn func()) { c.mu.Lock(); c.onOpen = fn; c.mu.Unlock() }

// OnMessage registers the inbound-message callback.
func (c *Channel) OnMessage(fn func(*Message)) { c.mu.Lock(); c.onMessage = fn; c.mu.Unlock() }

// OnError registers the error callback.
func (c *Channel) OnError(fn func(error)) { c.mu.Lock(); c.onError = fn; c.mu.Unlock() }

// OnClose registers the close callback.
func (c *Channel) OnClose(fn func()) { c.mu.Lock(); c.onClose = fn; c.mu.Unlock() }

// State returns the current ready state.
func (c *Channel) State() ReadyState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Open dials the signaling WebSocket and starts the read pump. It returns
// immediately; the outcome is reported through the open/error/close
// callbacks. A dial failure leaves the channel CLOSED.
func (c *Channel) Open(ctx context.Context, url string) {
	go func() {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		if err != nil {
			c.fail(fmt.Errorf("failed to connect to signaling server: %w", err))
			return
		}

		c.mu.Lock()
		if c.state != Connecting {
			// Closed while dialing.
			c.mu.Unlock()
			conn.Close()
			return
		}
		c.conn = conn
		c.state = Open
		onOpen := c.onOpen
		c.mu.Unlock()

		if onOpen != nil {
			onOpen()
		}
		c.readPump(conn)
	}()
}

// readPump delivers inbound messages until the connection drops.
func (c *Channel) readPump(conn *websocket.Conn) {
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			c.mu.Lock()
			closing := c.state == Closing || c.state == Closed
			c.mu.Unlock()
			if closing {
				c.finishClose(nil)
			} else {
				c.fail(fmt.Errorf("signaling read: %w", err))
			}
			return
		}

		c.mu.Lock()
		onMessage := c.onMessage
		c.mu.Unlock()
		if onMessage != nil {
			onMessage(&msg)
		}
	}
}

// Send writes a signaling message, guarded by a mutex.
// It fails when the channel is not OPEN.
func (c *Channel) Send(msg *Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Open || c.conn == nil {
		return fmt.Errorf("signaling channel not open (state %s)", c.state)
	}
	return c.conn.WriteJSON(msg)
}

// Close shuts the channel down. Idempotent: the close callback fires once.
func (c *Channel) Close() {
	c.mu.Lock()
	if c.state == Closed {
		c.mu.Unlock()
		return
	}
	c.state = Closing
	conn := c.conn
	if conn != nil {
		// Under the same mutex as Send: gorilla allows one writer.
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}
	c.mu.Unlock()

	if conn != nil {
		conn.Close()
		// The read pump observes the closed connection and finishes.
		return
	}
	c.finishClose(nil)
}

// fail transitions to CLOSED with an error event.
func (c *Channel) fail(err error) {
	util.LogWarning("signaling: %v", err)
	c.finishClose(err)
}

// finishClose performs the single CLOSED transition and fires callbacks.
func (c *Channel) finishClose(err error) {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.state = Closed
		if c.conn != nil {
			c.conn.Close()
		}
		onError := c.onError
		onClose := c.onClose
		c.mu.Unlock()

		if err != nil && onError != nil {
			onError(err)
		}
		if onClose != nil {
			onClose()
		}
	})
}
