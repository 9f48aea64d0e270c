package protocol

import "sync/atomic"

// SequenceNumber is an atomic 14-bit packet sequence counter. It is shared
// between the check-in loop and ad-hoc senders, so all operations are atomic.
type SequenceNumber struct {
	val atomic.Uint32
}

// Next returns the next sequence number, wrapping past MaxSequenceNumber.
func (s *SequenceNumber) Next() uint16 {
	return uint16(s.val.Add(1)-1) & MaxSequenceNumber
}
