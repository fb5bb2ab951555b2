package device

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ledsc/go-ledsc/protocol"
)

// DefaultReadBufferSize is the default transport read chunk size.
const DefaultReadBufferSize = 64

// Session pumps bytes between a transport and a Controller: it feeds
// transport reads into the frame accumulator, decodes completed frames,
// dispatches them, and writes encoded responses back. Decode failures and
// accumulator overflows become error response packets addressed with
// whatever command name was recovered; nothing in the session gives up on
// malformed input.
//
// The request and response packets are distinct pre-allocated storage
// reused across frames, so steady-state processing does not allocate.
// A Session is single-threaded; run exactly one Serve per session.
type Session struct {
	device io.ReadWriter
	ctrl   *Controller
	codec  *protocol.Codec
	acc    protocol.Accumulator
	req    protocol.Packet
	rsp    protocol.Packet
	out    []byte
	config sessionConfig
}

type sessionConfig struct {
	readBufferSize int
	logger         Logger
	codecOpts      []protocol.Option
}

// SessionOption is a functional option for configuring a Session.
type SessionOption func(*sessionConfig)

// WithReadBufferSize sets the transport read chunk size.
func WithReadBufferSize(size int) SessionOption {
	return func(c *sessionConfig) {
		if size > 0 {
			c.readBufferSize = size
		}
	}
}

// WithSessionLogger sets a logger for transport and framing events.
func WithSessionLogger(logger Logger) SessionOption {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// WithChecksumDisabled turns off frame integrity checking for links that
// do not carry the checksum suffix.
func WithChecksumDisabled() SessionOption {
	return func(c *sessionConfig) {
		c.codecOpts = append(c.codecOpts, protocol.WithoutChecksum())
	}
}

// NewSession creates a Session over the given transport. The transport must
// implement io.ReadWriter; serial ports, network connections, and in-memory
// pipes all work.
func NewSession(device io.ReadWriter, ctrl *Controller, opts ...SessionOption) *Session {
	if device == nil {
		panic("device cannot be nil")
	}
	if ctrl == nil {
		panic("controller cannot be nil")
	}

	cfg := sessionConfig{readBufferSize: DefaultReadBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session{
		device: device,
		ctrl:   ctrl,
		codec:  protocol.NewCodec(cfg.codecOpts...),
		out:    make([]byte, 0, protocol.MaxFrameLen),
		config: cfg,
	}
}

// Serve reads from the transport until ctx is cancelled, the transport
// reports an error, or it cleanly reaches end of stream. Cancellation is
// observed between reads; the protocol core itself never blocks.
func (s *Session) Serve(ctx context.Context) error {
	buf := make([]byte, s.config.readBufferSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := s.device.Read(buf)
		if n > 0 {
			if werr := s.Pump(buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read transport: %w", err)
		}
	}
}

// Pump feeds one chunk of transport bytes through the accumulator and
// handles every frame completed by it. The chunk may split frames at any
// boundary; partial frames wait in the accumulator for the next call.
// The returned error is a transport write failure; protocol-level failures
// are answered on the wire instead.
func (s *Session) Pump(data []byte) error {
	for _, b := range data {
		frame, err := s.acc.Feed(b)
		if err != nil {
			s.logError("input buffer overflow, discarding partial frame")
			if werr := s.respondError(protocol.CodeOf(err)); werr != nil {
				return werr
			}
			continue
		}
		if frame == nil {
			continue
		}

		consumed, err := s.codec.Decode(frame, &s.req)
		if err != nil {
			s.logDebug("frame rejected", "error", err.Error())
			if werr := s.respondError(protocol.CodeOf(err)); werr != nil {
				return werr
			}
			s.req.Clear()
			continue
		}
		if consumed == 0 {
			continue
		}

		s.ctrl.Handle(&s.req, &s.rsp)
		if werr := s.writeResponse(); werr != nil {
			return werr
		}
		s.req.Clear()
	}
	return nil
}

// respondError answers the current request slot with a failure code. The
// request packet holds whatever name the decoder recovered, possibly none.
func (s *Session) respondError(code protocol.Code) error {
	s.rsp.InitResponse(&s.req)
	s.rsp.SetErrorCode(code)
	return s.writeResponse()
}

func (s *Session) writeResponse() error {
	s.out = s.codec.AppendEncode(s.out[:0], &s.rsp)
	if _, err := s.device.Write(s.out); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

func (s *Session) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.logger != nil {
		s.config.logger.Debug(msg, keysAndValues...)
	}
}

func (s *Session) logError(msg string, keysAndValues ...interface{}) {
	if s.config.logger != nil {
		s.config.logger.Error(msg, keysAndValues...)
	}
}
