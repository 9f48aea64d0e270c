// Package signaling implements the WebSocket control channel that carries
// SDP/ICE negotiation for every per-node data channel. One signaling
// channel serves a whole domain session; messages are demultiplexed by
// the node-type byte in their to/from fields.
package signaling

import (
	"github.com/pion/webrtc/v4"
)

// Message is the JSON structure exchanged over the WebSocket. Exactly one
// payload field (Echo, Description or Candidate) is set per message.
type Message struct {
	To   *uint8 `json:"to,omitempty"`   // target node type
	From *uint8 `json:"from,omitempty"` // sending node type, set by the server

	// ChannelID is the locally-assigned data-channel ID; the server
	// mirrors it so replies can be demultiplexed.
	ChannelID *int `json:"channelId,omitempty"`

	Echo        string                     `json:"echo,omitempty"`
	Description *webrtc.SessionDescription `json:"description,omitempty"`
	Candidate   *webrtc.ICECandidateInit   `json:"candidate,omitempty"`
}
