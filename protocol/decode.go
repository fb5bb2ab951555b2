package protocol

// Decode parses one candidate frame from buf into pkt and returns the
// number of bytes consumed. An empty buf is a still-accumulating stream
// segment: Decode returns (0, nil) without touching pkt.
//
// pkt is cleared before parsing. On error the returned count is 0, but pkt
// keeps whatever command name was recovered before the failure so the
// caller can address an error response with it.
//
// Bytes ahead of the start marker are skipped as line noise. When checksum
// validation is enabled, up to ChecksumHexLen bytes after the end marker
// are read as a hexadecimal checksum and compared against the checksum
// recomputed over the frame body, start marker through end marker
// inclusive. A frame whose computed checksum is exactly zero and whose
// checksum field is absent still decodes: absence is detected by counting
// parsed hex digits, never by a zero field value.
func (c *Codec) Decode(buf []byte, pkt *Packet) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	pkt.Clear()

	// Scan for the start marker.
	pos := 0
	for pos < len(buf) && buf[pos] != StartOfFrame {
		pos++
	}
	if pos >= len(buf) {
		return 0, &ProtocolError{Op: "decode", Code: CodeMissingStart}
	}
	start := pos
	pos++

	// Command name, up to a separator, the end marker, or the cap.
	n := 0
	for pos < len(buf) && n < MaxCommandLen &&
		buf[pos] != ParamSeparator && buf[pos] != EndOfFrame {
		pkt.name[n] = buf[pos]
		n++
		pos++
	}
	pkt.nameLen = n

	if pos >= len(buf) {
		return 0, &ProtocolError{Op: "decode", Code: CodeMissingTerminator}
	}
	if n >= MaxCommandLen {
		return 0, &ProtocolError{Op: "decode", Code: CodeCommandOverflow}
	}

	if buf[pos] == ParamSeparator {
		for {
			pos++
			n := 0
			for pos < len(buf) && n < MaxParamLen &&
				buf[pos] != ParamSeparator && buf[pos] != EndOfFrame {
				pkt.params[pkt.count][n] = buf[pos]
				n++
				pos++
			}
			pkt.paramLen[pkt.count] = n
			pkt.count++

			if pos >= len(buf) || buf[pos] == EndOfFrame || pkt.count >= MaxParamCount {
				break
			}
		}
	}

	// Consume the end marker if present; the checksummed range includes it.
	if pos < len(buf) && buf[pos] == EndOfFrame {
		pos++
	}

	if c.withChecksum {
		pkt.crc = updateChecksum(0, buf[start:pos])

		var field [ChecksumHexLen]byte
		fieldLen := 0
		for fieldLen < ChecksumHexLen && pos < len(buf) {
			field[fieldLen] = buf[pos]
			fieldLen++
			pos++
		}

		got, digits := parseHexPrefix(field[:fieldLen])
		if digits == 0 && pkt.crc != 0 {
			return 0, &ProtocolError{Op: "decode", Code: CodeMissingChecksum}
		}
		if got != pkt.crc {
			return 0, &ProtocolError{Op: "decode", Code: CodeChecksumMismatch}
		}
	}

	return pos, nil
}

// parseHexPrefix parses the leading hexadecimal digits of field and returns
// the value along with how many digits were actually consumed. The digit
// count is the side channel distinguishing an absent checksum field from a
// checksum that is legitimately zero.
func parseHexPrefix(field []byte) (uint16, int) {
	var v uint16
	digits := 0
	for _, b := range field {
		var d uint16
		switch {
		case b >= '0' && b <= '9':
			d = uint16(b - '0')
		case b >= 'A' && b <= 'F':
			d = uint16(b-'A') + 10
		case b >= 'a' && b <= 'f':
			d = uint16(b-'a') + 10
		default:
			return v, digits
		}
		v = v<<4 | d
		digits++
	}
	return v, digits
}
