package protocol

// Framing bytes for the wire format:
//
//	[NAME:param1:param2:param3:param4]CCCC\r
const (
	// StartOfFrame marks the beginning of a frame body ('[')
	StartOfFrame byte = '['

	// EndOfFrame marks the end of a frame body (']')
	EndOfFrame byte = ']'

	// ParamSeparator separates the command name and parameters (':')
	ParamSeparator byte = ':'

	// FrameTerminator ends a frame on the wire ('\r')
	FrameTerminator byte = '\r'

	// LineFeed is tolerated on the wire and never stored ('\n')
	LineFeed byte = '\n'
)

// Capacity limits. The packet and accumulator buffers are pre-allocated to
// these sizes and never grow.
const (
	// MaxFrameLen is the maximum length of one accumulated frame in bytes
	MaxFrameLen = 256

	// MaxCommandLen is the command name buffer size. Usable names must be
	// shorter than this; a name that fills the buffer is a command overflow.
	MaxCommandLen = 10

	// MaxParamCount is the maximum number of parameters per packet
	MaxParamCount = 4

	// MaxParamLen is the maximum length of a single parameter in bytes
	MaxParamLen = 50

	// ChecksumHexLen is the maximum number of hex digits in the trailing
	// checksum field
	ChecksumHexLen = 4
)
