package stimulus

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/core"
)

// EncodeWAV writes s as a 16-bit stereo PCM RIFF/WAVE stream.
func EncodeWAV(w io.Writer, s Stereo, sampleRate int) error {
	if len(s.Left) != len(s.Right) {
		return fmt.Errorf("encode wav: channel length mismatch %d != %d", len(s.Left), len(s.Right))
	}
	const (
		channels      = 2
		bitsPerSample = 16
	)
	blockAlign := channels * bitsPerSample / 8
	dataSize := s.Len() * blockAlign

	hdr := struct {
		ChunkID       [4]byte
		ChunkSize     uint32
		Format        [4]byte
		Subchunk1ID   [4]byte
		Subchunk1Size uint32
		AudioFormat   uint16
		NumChannels   uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
		Subchunk2ID   [4]byte
		Subchunk2Size uint32
	}{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     uint32(36 + dataSize),
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   channels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * blockAlign),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: bitsPerSample,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: uint32(dataSize),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("encode wav header: %w", err)
	}

	buf := make([]byte, dataSize)
	for i := 0; i < s.Len(); i++ {
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(toPCM16(s.Left[i])))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(toPCM16(s.Right[i])))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("encode wav data: %w", err)
	}
	return nil
}

func toPCM16(v float64) int16 {
	return int16(math.Round(core.Clamp(v, -1, 1) * math.MaxInt16))
}
