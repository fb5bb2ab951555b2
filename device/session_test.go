package device

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledsc/go-ledsc/protocol"
)

// scriptedPort replays canned input and captures everything written back.
type scriptedPort struct {
	in  *bytes.Reader
	out bytes.Buffer
}

func newScriptedPort(input string) *scriptedPort {
	return &scriptedPort{in: bytes.NewReader([]byte(input))}
}

func (p *scriptedPort) Read(b []byte) (int, error)  { return p.in.Read(b) }
func (p *scriptedPort) Write(b []byte) (int, error) { return p.out.Write(b) }

func TestSessionHandlesCommand(t *testing.T) {
	port := newScriptedPort("[CSB:FF]\r")
	ctrl := NewController()
	sess := NewSession(port, ctrl, WithChecksumDisabled())

	require.NoError(t, sess.Serve(context.Background()))
	assert.Equal(t, "[CSB:0]\r", port.out.String())
	assert.Equal(t, uint8(0xFF), ctrl.State().Brightness)
}

func TestSessionFragmentationInvariance(t *testing.T) {
	run := func(pump func(*Session)) (string, State) {
		port := newScriptedPort("")
		ctrl := NewController()
		sess := NewSession(port, ctrl, WithChecksumDisabled())
		pump(sess)
		return port.out.String(), ctrl.State()
	}

	input := "[CSE:9]\r"

	wholeOut, wholeState := run(func(s *Session) {
		require.NoError(t, s.Pump([]byte(input)))
	})
	byteOut, byteState := run(func(s *Session) {
		for i := 0; i < len(input); i++ {
			require.NoError(t, s.Pump([]byte{input[i]}))
		}
	})

	assert.Equal(t, wholeOut, byteOut)
	assert.Equal(t, wholeState, byteState)
	assert.Equal(t, EffectTwinkle, wholeState.Effect)
}

func TestSessionAnswersDecodeErrors(t *testing.T) {
	// A frame with a corrupted checksum is answered, not dropped, and the
	// session keeps serving afterwards.
	port := newScriptedPort("[CPV]FFFF\r[CSB:FF]3447\r")
	ctrl := NewController()
	sess := NewSession(port, ctrl)

	require.NoError(t, sess.Serve(context.Background()))
	assert.Equal(t, uint8(0xFF), ctrl.State().Brightness)

	codec := protocol.NewCodec()
	responses := strings.SplitAfter(port.out.String(), "\r")

	var first protocol.Packet
	_, err := codec.Decode([]byte(strings.TrimSuffix(responses[0], "\r")), &first)
	require.NoError(t, err)
	assert.Equal(t, "CPV", first.Name())
	assert.Equal(t, "-110", first.Param(0))

	var second protocol.Packet
	_, err = codec.Decode([]byte(strings.TrimSuffix(responses[1], "\r")), &second)
	require.NoError(t, err)
	assert.Equal(t, "CSB", second.Name())
	assert.Equal(t, "0", second.Param(0))
}

func TestSessionAnswersOverflow(t *testing.T) {
	input := strings.Repeat("A", protocol.MaxFrameLen) + "[CSE:1]\r"
	port := newScriptedPort(input)
	ctrl := NewController()
	sess := NewSession(port, ctrl, WithChecksumDisabled())

	require.NoError(t, sess.Serve(context.Background()))

	responses := strings.SplitAfter(port.out.String(), "\r")
	assert.Equal(t, "[:-105]\r", responses[0])
	assert.Equal(t, "[CSE:0]\r", responses[1])
	assert.Equal(t, EffectSolidColor, ctrl.State().Effect)
}

func TestSessionIgnoresBlankLines(t *testing.T) {
	port := newScriptedPort("\r\n\r\n[CPV]\r\n")
	ctrl := NewController()
	sess := NewSession(port, ctrl, WithChecksumDisabled())

	require.NoError(t, sess.Serve(context.Background()))
	assert.Equal(t, "[CPV:0:LEDSC_GO_001]\r", port.out.String())
}

func TestSessionCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	port := newScriptedPort("[CPV]\r")
	sess := NewSession(port, NewController(), WithChecksumDisabled())

	err := sess.Serve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
