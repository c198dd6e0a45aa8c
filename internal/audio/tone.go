package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// PCM layout shared by every buffer: signed 16-bit little endian, stereo.
const (
	channels       = 2
	bytesPerSample = 2
	frameSize      = channels * bytesPerSample
)

// fadeTime ramps the tone in and out so it does not click.
const fadeTime = 3 * time.Millisecond

// Tone renders a sine wave of freq Hz lasting d at the given volume (0..1).
func Tone(freq float64, d time.Duration, sampleRate int, volume float64) []byte {
	const maxInt16 = 1<<15 - 1

	frames := int(float64(sampleRate) * d.Seconds())
	fade := int(float64(sampleRate) * fadeTime.Seconds())
	volume = clampVolume(volume)

	buf := make([]byte, frames*frameSize)
	for i := range frames {
		env := 1.0
		if fade > 0 {
			if i < fade {
				env = float64(i) / float64(fade)
			} else if i > frames-fade {
				env = float64(frames-i) / float64(fade)
			}
		}
		sample := math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
		v := uint16(int16(sample * volume * env * maxInt16))
		binary.LittleEndian.PutUint16(buf[i*frameSize:], v)
		binary.LittleEndian.PutUint16(buf[i*frameSize+bytesPerSample:], v)
	}
	return buf
}

// scalePCM multiplies every sample in buf by volume, in place.
func scalePCM(buf []byte, volume float64) {
	volume = clampVolume(volume)
	if volume >= 0.999 {
		return
	}
	for i := 0; i+1 < len(buf); i += bytesPerSample {
		s := int16(binary.LittleEndian.Uint16(buf[i:]))
		binary.LittleEndian.PutUint16(buf[i:], uint16(int16(float64(s)*volume)))
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
