package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Packet is one command or response unit: a short command name plus an
// ordered list of parameters. In a response, parameter 0 carries the status
// code as a decimal string.
//
// All storage is fixed-capacity and embedded in the struct, so a Packet can
// be reused across frames with Clear and never allocates while decoding or
// building responses. A Packet is owned by exactly one component at a time;
// do not use the same instance as both the in-flight request and the
// in-flight response.
type Packet struct {
	name     [MaxCommandLen]byte
	nameLen  int
	params   [MaxParamCount][MaxParamLen]byte
	paramLen [MaxParamCount]int
	count    int
	crc      uint16
}

// NewRequest builds a request packet with the given command name and
// parameters, validating every field against the protocol limits.
//
// Example:
//
//	req, err := protocol.NewRequest("CSB", "FF")
func NewRequest(name string, params ...string) (*Packet, error) {
	p := &Packet{}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	for _, v := range params {
		if _, err := p.AppendParam(v); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Name returns the command name.
func (p *Packet) Name() string {
	return string(p.name[:p.nameLen])
}

// SetName sets the command name. The name must be non-empty, shorter than
// MaxCommandLen, and free of framing bytes.
func (p *Packet) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if len(name) >= MaxCommandLen {
		return &ProtocolError{Op: "set name", Code: CodeCommandOverflow}
	}
	if strings.ContainsAny(name, "[]:\r\n") {
		return fmt.Errorf("command name %q contains framing bytes", name)
	}
	p.nameLen = copy(p.name[:], name)
	return nil
}

// ParamCount returns the number of parameters in the packet.
func (p *Packet) ParamCount() int {
	return p.count
}

// Param returns parameter i, or the empty string if i is out of range.
func (p *Packet) Param(i int) string {
	if i < 0 || i >= p.count {
		return ""
	}
	return string(p.params[i][:p.paramLen[i]])
}

// Checksum returns the 16-bit checksum recorded by the most recent encode
// or checksum-validating decode of this packet.
func (p *Packet) Checksum() uint16 {
	return p.crc
}

// Clear resets the packet to its zero state for reuse. Clearing an already
// clear packet is a no-op.
func (p *Packet) Clear() {
	p.name = [MaxCommandLen]byte{}
	p.nameLen = 0
	for i := range p.params {
		p.params[i] = [MaxParamLen]byte{}
		p.paramLen[i] = 0
	}
	p.count = 0
	p.crc = 0
}

// AppendParam appends a parameter and returns the new parameter count.
// Fails with CodeTooManyParams when the packet already holds MaxParamCount
// parameters and with CodeParamOverflow when value exceeds MaxParamLen.
func (p *Packet) AppendParam(value string) (int, error) {
	if p.count+1 > MaxParamCount {
		return 0, &ProtocolError{Op: "append parameter", Code: CodeTooManyParams}
	}
	if len(value) > MaxParamLen {
		return 0, &ProtocolError{Op: "append parameter", Code: CodeParamOverflow}
	}
	p.paramLen[p.count] = copy(p.params[p.count][:], value)
	p.count++
	return p.count, nil
}

// SetErrorCode overwrites parameter 0 with the decimal form of code,
// forcing the parameter count to at least 1. This is how a response packet
// signals success (code 0) or a specific failure.
func (p *Packet) SetErrorCode(code Code) {
	if p.count <= 0 {
		p.count = 1
	}
	s := strconv.FormatInt(int64(code), 10)
	p.params[0] = [MaxParamLen]byte{}
	p.paramLen[0] = copy(p.params[0][:], s)
}

// InitResponse prepares p as the response to req: clears p, copies the
// request's command name, and sets the status parameter to success. Failure
// paths overwrite the status with SetErrorCode afterwards.
func (p *Packet) InitResponse(req *Packet) {
	p.Clear()
	p.nameLen = copy(p.name[:], req.name[:req.nameLen])
	p.SetErrorCode(CodeSuccess)
}
