// Package pngdpi tags encoded PNG data with a physical resolution hint.
// Go's png encoder emits no ancillary chunks, so the pHYs chunk is
// spliced in directly after IHDR.
package pngdpi

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"
)

const metersPerInch = 0.0254

var signature = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

// Tag returns a copy of the PNG with a pHYs chunk announcing the given
// dots-per-inch in both dimensions, inserted after the IHDR chunk.
func Tag(data []byte, dpi int) ([]byte, error) {
	insert, err := ihdrEnd(data)
	if err != nil {
		return nil, err
	}
	if dpi <= 0 {
		return nil, fmt.Errorf("dpi must be positive, got %d", dpi)
	}

	pixelsPerMeter := uint32(math.Round(float64(dpi) / metersPerInch))

	// length (4) + type (4) + data (9) + crc (4)
	chunk := make([]byte, 21)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], pixelsPerMeter)
	binary.BigEndian.PutUint32(chunk[12:16], pixelsPerMeter)
	chunk[16] = 1 // unit: meter
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:insert]...)
	out = append(out, chunk...)
	out = append(out, data[insert:]...)
	return out, nil
}

// Resolution reads the pHYs chunk back and returns the horizontal DPI,
// or an error when the PNG carries no resolution hint.
func Resolution(data []byte) (int, error) {
	offset, err := ihdrEnd(data)
	if err != nil {
		return 0, err
	}

	for offset+12 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[offset : offset+4]))
		chunkType := string(data[offset+4 : offset+8])
		if chunkType == "pHYs" && length == 9 && offset+8+length <= len(data) {
			if data[offset+16] != 1 {
				return 0, fmt.Errorf("pHYs unit is not meters")
			}
			ppm := binary.BigEndian.Uint32(data[offset+8 : offset+12])
			return int(math.Round(float64(ppm) * metersPerInch)), nil
		}
		if chunkType == "IDAT" || chunkType == "IEND" {
			break
		}
		offset += 12 + length
	}
	return 0, fmt.Errorf("no pHYs chunk found")
}

// ihdrEnd validates the PNG signature and returns the byte offset just
// past the IHDR chunk
func ihdrEnd(data []byte) (int, error) {
	if len(data) < 33 || !bytes.Equal(data[:8], signature) {
		return 0, fmt.Errorf("data is not a PNG")
	}
	length := int(binary.BigEndian.Uint32(data[8:12]))
	if string(data[12:16]) != "IHDR" {
		return 0, fmt.Errorf("first chunk is not IHDR")
	}
	return 8 + 12 + length, nil
}
