// Package webrtc wraps pion PeerConnections and DataChannels into the
// per-node channel abstraction used by the Socket: one channel per remote
// node, negotiated through the shared signaling channel, with a
// CONNECTING → OPEN → CLOSING → CLOSED ready-state machine and
// backpressure-aware sends.
package webrtc

import (
	"github.com/pion/webrtc/v4"
)

// STUN servers for ICE candidate gathering. No TURN — domain deployments
// terminate WebRTC at the domain server and its assignment clients, which
// are directly reachable.
var stunServers = []string{
	"stun:stun.l.google.com:19302",
	"stun:stun1.l.google.com:19302",
}

// newPeerConnection creates a PeerConnection configured with Google STUN servers.
func newPeerConnection() (*webrtc.PeerConnection, error) {
	config := webrtc.Configuration{
		ICEServers: []webrtc.ICEServer{
			{URLs: stunServers},
		},
	}
	return webrtc.NewPeerConnection(config)
}

// newDataChannel creates an ordered DataChannel on the given
// PeerConnection. Ordered mode backs the protocol's guarantee that
// packets on one channel are observed in send order.
func newDataChannel(pc *webrtc.PeerConnection, label string) (*webrtc.DataChannel, error) {
	ordered := true
	return pc.CreateDataChannel(label, &webrtc.DataChannelInit{
		Ordered: &ordered,
	})
}
