package itch

// Framing is the per-row metadata every feed shares: the capture position,
// the MoldUDP64 session identity, and per-message sequencing.
type Framing struct {
	PcapIndex       uint64
	PcapTimestamp   int64 // microseconds since the Unix epoch
	Session         string
	MessageSequence uint64
	MessageIndex    uint16
	MessageType     byte
}
