package protocol

// PacketType identifies the kind of packet carried after the header.
type PacketType uint8

// Packet type constants for the domain-join and entity protocols.
const (
	PacketTypeUnknown                 PacketType = 0x00
	PacketTypePing                    PacketType = 0x01
	PacketTypePingReply               PacketType = 0x02
	PacketTypeDomainList              PacketType = 0x03
	PacketTypeDomainConnectRequest    PacketType = 0x04
	PacketTypeDomainListRequest       PacketType = 0x05
	PacketTypeDomainConnectionDenied  PacketType = 0x06
	PacketTypeDomainServerRemovedNode PacketType = 0x07
	PacketTypeDomainDisconnectRequest PacketType = 0x08
	PacketTypeEntityEdit              PacketType = 0x09
	PacketTypeEntityData              PacketType = 0x0A
	PacketTypeEntityErase             PacketType = 0x0B
)

// packetVersions maps each packet type to the version byte written into
// its header. Bump a type's entry when its body layout changes.
var packetVersions = map[PacketType]uint8{
	PacketTypePing:                    1,
	PacketTypePingReply:               1,
	PacketTypeDomainList:              1,
	PacketTypeDomainConnectRequest:    1,
	PacketTypeDomainListRequest:       1,
	PacketTypeDomainConnectionDenied:  1,
	PacketTypeDomainServerRemovedNode: 1,
	PacketTypeDomainDisconnectRequest: 1,
	PacketTypeEntityEdit:              1,
	PacketTypeEntityData:              1,
	PacketTypeEntityErase:             1,
}

// VersionForPacketType returns the current version byte for a packet type.
func VersionForPacketType(t PacketType) uint8 {
	return packetVersions[t]
}

// NodeType is the single-byte discriminant identifying a remote node's role.
type NodeType uint8

// Node type bytes. The domain server delegates specialized work to the
// assignment-client types.
const (
	NodeTypeDomainServer  NodeType = 'D'
	NodeTypeEntityServer  NodeType = 'o'
	NodeTypeAgent         NodeType = 'I'
	NodeTypeAudioMixer    NodeType = 'M'
	NodeTypeAvatarMixer   NodeType = 'W'
	NodeTypeAssetServer   NodeType = 'A'
	NodeTypeMessagesMixer NodeType = 'm'
	NodeTypeUnassigned    NodeType = 1
)

// String returns a human-readable node type name for logs.
func (t NodeType) String() string {
	switch t {
	case NodeTypeDomainServer:
		return "DomainServer"
	case NodeTypeEntityServer:
		return "EntityServer"
	case NodeTypeAgent:
		return "Agent"
	case NodeTypeAudioMixer:
		return "AudioMixer"
	case NodeTypeAvatarMixer:
		return "AvatarMixer"
	case NodeTypeAssetServer:
		return "AssetServer"
	case NodeTypeMessagesMixer:
		return "MessagesMixer"
	case NodeTypeUnassigned:
		return "Unassigned"
	default:
		return "Unknown"
	}
}
