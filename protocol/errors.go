package protocol

import "fmt"

// Code is a protocol status code. Zero is success; every failure is a
// distinct negative value. The same codes travel on the wire as the first
// parameter of a response packet.
type Code int16

// Status codes.
const (
	// CodeSuccess indicates the command was received and executed
	CodeSuccess Code = 0

	// CodeParsing is the generic command parsing failure
	CodeParsing Code = -100

	// CodeMissingStart indicates no start-of-frame marker was found
	CodeMissingStart Code = -101

	// CodeMissingEnd indicates the expected end-of-frame marker was absent
	CodeMissingEnd Code = -102

	// CodeMissingSeparator indicates an expected parameter separator was absent
	CodeMissingSeparator Code = -103

	// CodeMissingTerminator indicates the frame ended before any framing
	// byte closed the current field
	CodeMissingTerminator Code = -104

	// CodeCommandOverflow indicates the command name or input buffer
	// exceeded its capacity
	CodeCommandOverflow Code = -105

	// CodeNotImplemented indicates a recognized but unimplemented command
	CodeNotImplemented Code = -106

	// CodeUnknownCommand indicates an unrecognized command name
	CodeUnknownCommand Code = -107

	// CodeMissingParams indicates a required parameter was absent
	CodeMissingParams Code = -108

	// CodeParamOutOfRange indicates a parameter value outside its valid range
	CodeParamOutOfRange Code = -109

	// CodeChecksumMismatch indicates the trailing checksum did not match
	// the recomputed frame checksum
	CodeChecksumMismatch Code = -110

	// CodeMissingChecksum indicates no checksum field was present on a
	// frame that required one
	CodeMissingChecksum Code = -111

	// CodeTooManyParams indicates an append past the parameter-count cap
	CodeTooManyParams Code = -201

	// CodeParamOverflow indicates a parameter longer than the per-parameter cap
	CodeParamOverflow Code = -202
)

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodeParsing:
		return "command parsing failed"
	case CodeMissingStart:
		return "missing start marker"
	case CodeMissingEnd:
		return "missing end marker"
	case CodeMissingSeparator:
		return "missing parameter separator"
	case CodeMissingTerminator:
		return "missing frame terminator"
	case CodeCommandOverflow:
		return "command buffer overflow"
	case CodeNotImplemented:
		return "command not implemented"
	case CodeUnknownCommand:
		return "unknown command"
	case CodeMissingParams:
		return "missing parameters"
	case CodeParamOutOfRange:
		return "parameter out of range"
	case CodeChecksumMismatch:
		return "checksum mismatch"
	case CodeMissingChecksum:
		return "missing checksum"
	case CodeTooManyParams:
		return "too many parameters"
	case CodeParamOverflow:
		return "parameter overflow"
	default:
		return fmt.Sprintf("unknown code %d", int16(c))
	}
}

// ProtocolError is a protocol-layer failure carrying the operation that
// failed and its status code. Decode and encode errors are ordinary values
// of this type; nothing in this package panics on malformed input.
type ProtocolError struct {
	// Op is the operation that failed ("decode", "accumulate", ...)
	Op string

	// Code is the status code for the failure
	Code Code
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %s (%d)", e.Op, e.Code, int16(e.Code))
}

// IsProtocolError returns true if the error is a ProtocolError.
func IsProtocolError(err error) bool {
	_, ok := err.(*ProtocolError)
	return ok
}

// CodeOf extracts the status code carried by err. A nil error maps to
// CodeSuccess, a non-protocol error to the generic CodeParsing.
func CodeOf(err error) Code {
	if err == nil {
		return CodeSuccess
	}
	if pe, ok := err.(*ProtocolError); ok {
		return pe.Code
	}
	return CodeParsing
}
