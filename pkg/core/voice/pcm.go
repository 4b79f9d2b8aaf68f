package voice

import (
	"fmt"
	"math"
)

// Wire format for the live audio stream: 16-bit little-endian mono PCM,
// 16 kHz on the capture side and 24 kHz on the playback side.
const (
	InputSampleRate  = 16000
	OutputSampleRate = 24000

	InputMIMEType = "audio/pcm;rate=16000"
)

// EncodePCM16 converts float32 samples in [-1, 1] to 16-bit little-endian PCM.
// Out-of-range samples are clipped rather than wrapped.
func EncodePCM16(samples []float32) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		v := int32(s * 32768)
		if v > math.MaxInt16 {
			v = math.MaxInt16
		} else if v < math.MinInt16 {
			v = math.MinInt16
		}
		out[i*2] = byte(uint16(v))
		out[i*2+1] = byte(uint16(v) >> 8)
	}
	return out
}

// DecodePCM16 converts 16-bit little-endian PCM back to float32 samples.
// An odd byte count means a torn frame and is rejected so the caller can skip it.
func DecodePCM16(data []byte) ([]float32, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("pcm frame has odd length %d", len(data))
	}
	samples := make([]float32, len(data)/2)
	for i := range samples {
		v := int16(uint16(data[i*2]) | uint16(data[i*2+1])<<8)
		samples[i] = float32(v) / 32768.0
	}
	return samples, nil
}
