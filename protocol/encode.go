package protocol

const hexUpper = "0123456789ABCDEF"

// AppendEncode appends the wire encoding of pkt to dst and returns the
// extended slice: start marker, name, a separator before each parameter,
// end marker, the checksum as uppercase hex without padding (when the codec
// has checksums enabled), and the frame terminator.
//
// The checksum is recomputed from scratch over every body byte written,
// start marker through end marker inclusive, and recorded on pkt.
func (c *Codec) AppendEncode(dst []byte, pkt *Packet) []byte {
	start := len(dst)

	dst = append(dst, StartOfFrame)
	dst = append(dst, pkt.name[:pkt.nameLen]...)
	for i := 0; i < pkt.count; i++ {
		dst = append(dst, ParamSeparator)
		dst = append(dst, pkt.params[i][:pkt.paramLen[i]]...)
	}
	dst = append(dst, EndOfFrame)

	pkt.crc = updateChecksum(0, dst[start:])
	if c.withChecksum {
		dst = appendHexUpper(dst, pkt.crc)
	}

	return append(dst, FrameTerminator)
}

// Encode serializes pkt into a freshly allocated wire frame.
//
// Example:
//
//	frame := codec.Encode(pkt) // "[CSB:0]F1F5\r"
func (c *Codec) Encode(pkt *Packet) []byte {
	return c.AppendEncode(make([]byte, 0, MaxFrameLen), pkt)
}

// appendHexUpper appends v as uppercase hex with no leading zeros. A zero
// value is rendered as a single '0' so the field is never empty.
func appendHexUpper(dst []byte, v uint16) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var tmp [ChecksumHexLen]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = hexUpper[v&0xF]
		v >>= 4
	}
	return append(dst, tmp[i:]...)
}
