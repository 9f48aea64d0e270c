package webrtc

import (
	"fmt"
	"sync"

	"github.com/pion/webrtc/v4"

	"github.com/vistaverse/vista/internal/protocol"
	"github.com/vistaverse/vista/internal/signaling"
	"github.com/vistaverse/vista/internal/util"
)

const (
	highWaterMark = 256 * 1024 // pause sending when bufferedAmount exceeds this
	lowWaterMark  = 64 * 1024  // resume sending when bufferedAmount drops below this
)

// ReadyState is the observable state of a data channel.
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

// DataChannel is one WebRTC data channel to one remote node. It is
// created in CONNECTING and drives its own SDP offer through the shared
// signaling channel; the server's answer and ICE candidates arrive via
// HandleSignal (routed by the Socket).
type DataChannel struct {
	nodeType  protocol.NodeType
	channelID int
	signal    *signaling.Channel

	pc *webrtc.PeerConnection
	dc *webrtc.DataChannel

	mu    sync.Mutex
	state ReadyState

	drainSignal chan struct{}
	done        chan struct{}
	closeOnce   sync.Once

	onOpen    func()
	onMessage func([]byte)
	onError   func(error)
	onClose   func()
}

// NewDataChannel creates a channel to the given remote node type and
// starts negotiation over signal. channelID is the signaling correlation
// ID assigned by the owner (the Socket) and mirrored by the server.
func NewDataChannel(nodeType protocol.NodeType, channelID int, signal *signaling.Channel) (*DataChannel, error) {
	pc, err := newPeerConnection()
	if err != nil {
		return nil, err
	}

	dc, err := newDataChannel(pc, nodeType.String())
	if err != nil {
		pc.Close()
		return nil, err
	}

	c := &DataChannel{
		nodeType:    nodeType,
		channelID:   channelID,
		signal:      signal,
		pc:          pc,
		dc:          dc,
		state:       Connecting,
		drainSignal: make(chan struct{}, 1),
		done:        make(chan struct{}),
	}

	dc.SetBufferedAmountLowThreshold(uint64(lowWaterMark))
	dc.OnBufferedAmountLow(func() {
		select {
		case c.drainSignal <- struct{}{}:
		default:
		}
	})

	dc.OnOpen(func() {
		c.mu.Lock()
		if c.state != Connecting {
			c.mu.Unlock()
			return
		}
		c.state = Open
		onOpen := c.onOpen
		c.mu.Unlock()
		if onOpen != nil {
			onOpen()
		}
	})

	dc.OnClose(func() {
		c.shutdown(nil)
	})

	dc.OnError(func(err error) {
		c.shutdown(err)
	})

	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		c.mu.Lock()
		onMessage := c.onMessage
		c.mu.Unlock()
		if onMessage != nil {
			onMessage(msg.Data)
		}
	})

	// Trickle ICE candidates to the remote node.
	to := uint8(nodeType)
	pc.OnICECandidate(func(cand *webrtc.ICECandidate) {
		if cand == nil {
			return
		}
		candInit := cand.ToJSON()
		c.sendSignal(&signaling.Message{To: &to, ChannelID: &c.channelID, Candidate: &candInit})
	})

	if err := c.sendOffer(); err != nil {
		c.shutdown(err)
		return c, nil
	}

	return c, nil
}

// NodeType returns the remote node type this channel was created for.
func (c *DataChannel) NodeType() protocol.NodeType { return c.nodeType }

// ChannelID returns the signaling correlation ID bound to this channel.
func (c *DataChannel) ChannelID() int { return c.channelID }

// ReadyState returns the current channel state.
func (c *DataChannel) ReadyState() ReadyState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnOpen registers the open callback.
func (c *DataChannel) OnOpen(fn func()) { c.mu.Lock(); c.onOpen = fn; c.mu.Unlock() }

// OnMessage registers the inbound payload callback.
func (c *DataChannel) OnMessage(fn func([]byte)) { c.mu.Lock(); c.onMessage = fn; c.mu.Unlock() }

// OnError registers the error callback.
func (c *DataChannel) OnError(fn func(error)) { c.mu.Lock(); c.onError = fn; c.mu.Unlock() }

// OnClose registers the close callback.
func (c *DataChannel) OnClose(fn func()) { c.mu.Lock(); c.onClose = fn; c.mu.Unlock() }

// sendOffer creates the SDP offer, applies it locally and ships it to the
// remote node through the signaling channel.
func (c *DataChannel) sendOffer() error {
	offer, err := c.pc.CreateOffer(nil)
	if err != nil {
		return fmt.Errorf("CreateOffer: %w", err)
	}
	if err := c.pc.SetLocalDescription(offer); err != nil {
		return fmt.Errorf("SetLocalDescription: %w", err)
	}
	to := uint8(c.nodeType)
	desc := offer
	return c.signal.Send(&signaling.Message{To: &to, ChannelID: &c.channelID, Description: &desc})
}

// sendSignal forwards a signaling message, best effort.
func (c *DataChannel) sendSignal(msg *signaling.Message) {
	if err := c.signal.Send(msg); err != nil {
		util.LogDebug("data channel %s: signaling send failed: %v", c.nodeType, err)
	}
}

// HandleSignal processes an answer or ICE candidate routed to this
// channel by the Socket.
func (c *DataChannel) HandleSignal(msg *signaling.Message) {
	switch {
	case msg.Description != nil:
		if err := c.pc.SetRemoteDescription(*msg.Description); err != nil {
			c.shutdown(fmt.Errorf("SetRemoteDescription: %w", err))
		}
	case msg.Candidate != nil:
		if err := c.pc.AddICECandidate(*msg.Candidate); err != nil {
			util.LogWarning("data channel %s: AddICECandidate: %v", c.nodeType, err)
		}
	}
}

// SignalingClosed is invoked by the Socket when the signaling channel
// drops while this channel is still negotiating.
func (c *DataChannel) SignalingClosed() {
	c.mu.Lock()
	negotiating := c.state == Connecting
	c.mu.Unlock()
	if negotiating {
		c.shutdown(fmt.Errorf("signaling channel closed during negotiation"))
	}
}

// Send transmits one binary payload. It succeeds only in OPEN; a send on
// a closed channel reports false and emits an error event instead of
// panicking. When the SCTP buffer is above the high watermark the call
// waits for it to drain (or for the channel to die).
func (c *DataChannel) Send(payload []byte) bool {
	c.mu.Lock()
	if c.state != Open {
		onError := c.onError
		state := c.state
		c.mu.Unlock()
		if onError != nil {
			onError(fmt.Errorf("send on %s data channel (state %s)", c.nodeType, state))
		}
		return false
	}
	c.mu.Unlock()

	if c.dc.BufferedAmount() > uint64(highWaterMark) {
		select {
		case <-c.drainSignal:
		case <-c.done:
			return false
		}
	}

	if err := c.dc.Send(payload); err != nil {
		util.LogWarning("data channel %s: send failed: %v", c.nodeType, err)
		return false
	}
	util.Stats.AddSent(len(payload))
	return true
}

// Close tears the channel down. Idempotent; transitions through CLOSING
// to CLOSED.
func (c *DataChannel) Close() {
	c.mu.Lock()
	if c.state == Closed {
		c.mu.Unlock()
		return
	}
	c.state = Closing
	c.mu.Unlock()

	c.shutdown(nil)
}

// shutdown performs the single transition to CLOSED, closing the
// underlying pion objects and firing error/close callbacks.
func (c *DataChannel) shutdown(err error) {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.state = Closed
		onError := c.onError
		onClose := c.onClose
		c.mu.Unlock()

		close(c.done)
		c.dc.Close()
		c.pc.Close()

		if err != nil {
			util.LogWarning("data channel %s: %v", c.nodeType, err)
			if onError != nil {
				onError(err)
			}
		}
		if onClose != nil {
			onClose()
		}
	})
}
