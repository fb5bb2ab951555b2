package device

// Effect identifies an LED strip animation. The numeric values are the hex
// codes carried by the set-effect command.
type Effect uint8

const (
	// EffectOff blanks the strip
	EffectOff Effect = iota

	// EffectSolidColor fills the strip with the base color
	EffectSolidColor

	// EffectRainbowCycle cycles the whole strip through the hue wheel
	EffectRainbowCycle

	// EffectComet draws a comet with a static hue
	EffectComet

	// EffectCometRainbow draws a comet that walks the hue wheel
	EffectCometRainbow

	// EffectFire draws the classic fire animation
	EffectFire

	// EffectFireColor draws fire with a configurable palette
	EffectFireColor

	// EffectSolidPulse pulses the base color between brightness bounds
	EffectSolidPulse

	// EffectBouncingBall draws bouncing balls
	EffectBouncingBall

	// EffectTwinkle draws random twinkling pixels
	EffectTwinkle

	effectCount
)

// Valid reports whether e names a known effect.
func (e Effect) Valid() bool {
	return e < effectCount
}

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectOff:
		return "off"
	case EffectSolidColor:
		return "solid color"
	case EffectRainbowCycle:
		return "rainbow cycle"
	case EffectComet:
		return "comet"
	case EffectCometRainbow:
		return "comet rainbow"
	case EffectFire:
		return "fire"
	case EffectFireColor:
		return "fire with color"
	case EffectSolidPulse:
		return "solid pulse"
	case EffectBouncingBall:
		return "bouncing ball"
	case EffectTwinkle:
		return "twinkle"
	default:
		return "unknown"
	}
}
