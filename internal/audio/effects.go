package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Effect identifies one of the game's sound cues.
type Effect int

const (
	EffectFire Effect = iota
	EffectRockBreak
	EffectCraftLost
	effectCount
)

// fireSound is a short bright square blip for a projectile launch.
func fireSound(volume float64) beep.Streamer {
	osc := newOscillator(880, 70*time.Millisecond, waveSquare)
	shaped := newEnvelope(osc, 70*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond)
	return withVolume(shaped, 0.5*volume)
}

// rockBreakSound is a noise crunch for a rock shattering.
func rockBreakSound(volume float64) beep.Streamer {
	noise := newOscillator(0, 160*time.Millisecond, waveNoise)
	shaped := newEnvelope(noise, 160*time.Millisecond, 2*time.Millisecond, 120*time.Millisecond)
	return withVolume(shaped, 0.6*volume)
}

// craftLostSound is a long low rumble layered with noise for the craft
// explosion.
func craftLostSound(volume float64) beep.Streamer {
	rumble := newOscillator(70, 600*time.Millisecond, waveSaw)
	rumbleShaped := newEnvelope(rumble, 600*time.Millisecond, 5*time.Millisecond, 400*time.Millisecond)

	noise := newOscillator(0, 450*time.Millisecond, waveNoise)
	noiseShaped := newEnvelope(noise, 450*time.Millisecond, 5*time.Millisecond, 350*time.Millisecond)

	mixed := beep.Mix(
		withVolume(rumbleShaped, 0.7),
		withVolume(noiseShaped, 0.4),
	)
	return withVolume(mixed, volume)
}

// renderPCM drains a streamer into interleaved signed 16-bit
// little-endian stereo bytes.
func renderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := buf[i][ch]
				if v > 1 {
					v = 1
				} else if v < -1 {
					v = -1
				}
				sample := int16(v * 32767)
				out = append(out, byte(sample), byte(sample>>8))
			}
		}
		if !ok {
			return out
		}
	}
}
