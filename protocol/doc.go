// Package protocol implements the ASCII command/response protocol spoken by
// the LED strip controller over its serial link.
//
// # Wire Format
//
// Commands and responses share one frame layout:
//
//	[NAME:param1:param2:param3:param4]CCCC\r
//
// Where:
//   - '[' and ']' delimit the frame body
//   - ':' separates the command name and each parameter
//   - CCCC is an optional CRC-16 rendered as uppercase hex (no padding)
//   - '\r' terminates the frame on the wire
//
// Parameters are optional and command dependent; a response carries its
// status code as a decimal string in parameter 0. Names are capped at
// MaxCommandLen bytes, parameters at MaxParamCount entries of MaxParamLen
// bytes each, and a whole frame at MaxFrameLen bytes.
//
// # Receiving
//
// Feed transport bytes into an Accumulator and decode each completed frame:
//
//	var acc protocol.Accumulator
//	var pkt protocol.Packet
//	codec := protocol.NewCodec()
//
//	for _, b := range chunk {
//	    frame, err := acc.Feed(b)
//	    if err != nil {
//	        // input buffer overflow, accumulator already reset
//	    }
//	    if frame == nil {
//	        continue
//	    }
//	    if n, err := codec.Decode(frame, &pkt); err != nil {
//	        // build an error response from protocol.CodeOf(err)
//	    } else if n > 0 {
//	        // dispatch pkt
//	    }
//	}
//
// # Responding
//
// Build a response in place and serialize it:
//
//	var rsp protocol.Packet
//	rsp.InitResponse(&pkt)            // name copied, status = success
//	rsp.AppendParam("LEDSC_GO_001")
//	out := codec.Encode(&rsp)
//
// # Integrity Checking
//
// The checksum is CRC-16 (polynomial 0x1021, initial value 0, table-driven)
// computed over the frame body from '[' through ']' inclusive. The encoder
// folds the same per-byte step as the decoder, so decode(encode(p))
// reproduces p exactly. Links without the checksum suffix use
// NewCodec(WithoutChecksum()).
//
// # Error Handling
//
// Failures are *ProtocolError values carrying a negative Code from the
// device's error taxonomy; nothing panics on malformed input. Decode errors
// leave the recovered command name in the packet so the caller can address
// an error response, and the accumulator self-heals after an overflow, so
// no unrecoverable state exists in this layer.
package protocol
