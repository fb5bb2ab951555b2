package protocol

// Accumulator reassembles complete candidate frames from a transport byte
// stream of arbitrary read granularity: single bytes, bursts, or fragments
// split anywhere. It performs no I/O and never blocks; a partial frame
// simply waits in the buffer until later Feed calls complete it.
type Accumulator struct {
	buf [MaxFrameLen]byte
	n   int
}

// Feed consumes one byte from the transport.
//
// A carriage return terminates the current frame: Feed returns the
// accumulated bytes (terminator excluded, possibly empty) and resets the
// buffer unconditionally, so the next frame starts clean regardless of how
// the caller's decode turns out. The returned slice aliases the internal
// buffer and is only valid until the next Feed or Reset.
//
// Line feeds are swallowed. Any other byte is appended; if that fills the
// buffer before a terminator arrives, the whole partial frame is discarded,
// a CodeCommandOverflow error is reported once, and accumulation resumes
// from empty. There is no byte-by-byte resynchronization on the discarded
// data.
func (a *Accumulator) Feed(b byte) ([]byte, error) {
	switch b {
	case FrameTerminator:
		frame := a.buf[:a.n]
		a.n = 0
		return frame, nil
	case LineFeed:
		return nil, nil
	}

	a.buf[a.n] = b
	a.n++
	if a.n >= len(a.buf) {
		a.n = 0
		return nil, &ProtocolError{Op: "accumulate", Code: CodeCommandOverflow}
	}
	return nil, nil
}

// Len returns the number of bytes currently buffered.
func (a *Accumulator) Len() int {
	return a.n
}

// Reset discards any partially accumulated frame.
func (a *Accumulator) Reset() {
	a.n = 0
}
