package aiclient

import (
	"bytes"
	"encoding/binary"
	"math"
)

const (
	wavChannels      = 1
	wavBitsPerSample = 16
)

// encodeWAV renders mono float samples in [-1, 1] as a 16-bit PCM WAV file.
// Out-of-range samples are clipped.
func encodeWAV(samples []float32, sampleRate int) []byte {
	blockAlign := wavChannels * wavBitsPerSample / 8
	dataSize := len(samples) * blockAlign

	buf := bytes.NewBuffer(make([]byte, 0, 44+dataSize))
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(wavChannels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(wavBitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, pcm16(s))
	}
	return buf.Bytes()
}

func pcm16(s float32) int16 {
	v := float64(s)
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(math.Round(v * math.MaxInt16))
}
