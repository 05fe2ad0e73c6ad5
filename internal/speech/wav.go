package speech

import (
	"bytes"
	"encoding/binary"
)

// PCM format returned by the Gemini speech models.
const (
	SampleRate    = 24000
	Channels      = 1
	BitsPerSample = 16
)

// EncodeWAV wraps raw little-endian PCM samples in a RIFF/WAVE header.
func EncodeWAV(pcm []byte, sampleRate, channels, bitsPerSample int) []byte {
	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))

	buf.WriteString("RIFF")
	writeLE(&buf, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	writeLE(&buf, uint32(16)) // PCM chunk size
	writeLE(&buf, uint16(1))  // PCM format
	writeLE(&buf, uint16(channels))
	writeLE(&buf, uint32(sampleRate))
	writeLE(&buf, uint32(byteRate))
	writeLE(&buf, uint16(blockAlign))
	writeLE(&buf, uint16(bitsPerSample))

	buf.WriteString("data")
	writeLE(&buf, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}

func writeLE(buf *bytes.Buffer, v any) {
	// Writes to a bytes.Buffer cannot fail.
	_ = binary.Write(buf, binary.LittleEndian, v)
}
