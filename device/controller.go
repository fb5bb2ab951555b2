package device

import (
	"strconv"

	"github.com/ledsc/go-ledsc/protocol"
)

// Command names understood by the controller.
const (
	// CmdPrintVersion reports the firmware version code
	CmdPrintVersion = "CPV"

	// CmdFullReset resets the board (not implemented)
	CmdFullReset = "CFR"

	// CmdEnterBootloader drops into the bootloader (not implemented)
	CmdEnterBootloader = "CEB"

	// CmdSetDebugging enables or disables debug output (hex 0/1)
	CmdSetDebugging = "CSD"

	// CmdSetEffect selects the active strip effect (hex effect code)
	CmdSetEffect = "CSE"

	// CmdSetColor sets the base color (24-bit RGB in hex)
	CmdSetColor = "CSC"

	// CmdSetBrightness sets the strip brightness (hex 0-FF)
	CmdSetBrightness = "CSB"
)

// DefaultVersionCode is the version string reported by CPV unless
// overridden with WithVersionCode.
const DefaultVersionCode = "LEDSC_GO_001"

// maxColor is the largest valid 24-bit RGB color value.
const maxColor = 0xFFFFFF

// State is the mutable device state driven by the command protocol. The
// rendering loop is an external collaborator that consumes it via the
// state callback.
type State struct {
	// Color is the 24-bit RGB base color for effects that take one
	Color uint32

	// Brightness is the 0-255 strip brightness
	Brightness uint8

	// Effect is the active strip effect
	Effect Effect

	// Debugging enables debug output
	Debugging bool
}

// DefaultState returns the state the controller boots with when no
// persisted settings are supplied.
func DefaultState() State {
	return State{
		Color:      0xAF5B07,
		Brightness: 0x44,
		Effect:     EffectOff,
	}
}

// Controller owns the device state and dispatches decoded request packets
// to command handlers, populating the caller's response packet. It holds no
// protocol logic: framing, checksums, and serialization stay in the
// protocol package.
//
// Controller is not safe for concurrent use; the protocol layer processes
// exactly one frame at a time.
type Controller struct {
	state  State
	config Config
}

// NewController creates a Controller with the given options.
//
// Example:
//
//	ctrl := device.NewController(
//	    device.WithInitialState(persisted),
//	    device.WithStateCallback(renderer.Apply),
//	)
func NewController(opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Controller{
		state:  cfg.InitialState,
		config: cfg,
	}
}

// State returns a copy of the current device state.
func (c *Controller) State() State {
	return c.state
}

// Handle dispatches one decoded request and populates rsp with the
// response. req and rsp must be distinct packets; Handle assumes exclusive
// ownership of both for the duration of the call.
func (c *Controller) Handle(req, rsp *protocol.Packet) {
	switch req.Name() {
	case CmdPrintVersion:
		c.handlePrintVersion(req, rsp)
	case CmdFullReset, CmdEnterBootloader:
		c.respondError(req, rsp, protocol.CodeNotImplemented)
	case CmdSetDebugging:
		c.handleSetDebugging(req, rsp)
	case CmdSetEffect:
		c.handleSetEffect(req, rsp)
	case CmdSetColor:
		c.handleSetColor(req, rsp)
	case CmdSetBrightness:
		c.handleSetBrightness(req, rsp)
	default:
		c.respondError(req, rsp, protocol.CodeUnknownCommand)
	}
}

// respondError initializes rsp for req with the given failure code.
func (c *Controller) respondError(req, rsp *protocol.Packet, code protocol.Code) {
	rsp.InitResponse(req)
	rsp.SetErrorCode(code)
	c.logDebug("command rejected", "command", req.Name(), "code", int16(code))
}

func (c *Controller) handlePrintVersion(req, rsp *protocol.Packet) {
	rsp.InitResponse(req)
	_, _ = rsp.AppendParam(c.config.VersionCode)
}

func (c *Controller) handleSetDebugging(req, rsp *protocol.Packet) {
	rsp.InitResponse(req)

	// The flag is simply left alone when no parameter is supplied.
	if req.ParamCount() > 0 {
		v, _ := strconv.ParseInt(req.Param(0), 10, 32)
		c.state.Debugging = v != 0
		c.stateChanged()
	}
}

func (c *Controller) handleSetEffect(req, rsp *protocol.Packet) {
	rsp.InitResponse(req)

	if req.ParamCount() <= 0 {
		c.respondError(req, rsp, protocol.CodeMissingParams)
		return
	}

	v, err := strconv.ParseUint(req.Param(0), 16, 32)
	if err != nil || !Effect(v).Valid() || v > 0xFF {
		c.respondError(req, rsp, protocol.CodeParamOutOfRange)
		return
	}

	c.state.Effect = Effect(v)
	c.stateChanged()
	c.logDebug("effect set", "effect", c.state.Effect.String())
}

func (c *Controller) handleSetColor(req, rsp *protocol.Packet) {
	rsp.InitResponse(req)

	if req.ParamCount() <= 0 {
		c.respondError(req, rsp, protocol.CodeMissingParams)
		return
	}

	v, err := strconv.ParseUint(req.Param(0), 16, 32)
	if err != nil || v > maxColor {
		c.respondError(req, rsp, protocol.CodeParamOutOfRange)
		return
	}

	c.state.Color = uint32(v)
	c.stateChanged()
	c.logDebug("color set", "color", req.Param(0))
}

func (c *Controller) handleSetBrightness(req, rsp *protocol.Packet) {
	rsp.InitResponse(req)

	if req.ParamCount() <= 0 {
		c.respondError(req, rsp, protocol.CodeMissingParams)
		return
	}

	v, err := strconv.ParseUint(req.Param(0), 16, 16)
	if err != nil || v > 0xFF {
		c.respondError(req, rsp, protocol.CodeParamOutOfRange)
		return
	}

	c.state.Brightness = uint8(v)
	c.stateChanged()
	c.logDebug("brightness set", "brightness", v)
}

// stateChanged notifies the state callback, if configured.
func (c *Controller) stateChanged() {
	if c.config.StateCallback != nil {
		c.config.StateCallback(c.state)
	}
}

func (c *Controller) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, keysAndValues...)
	}
}
