// Package frame implements the 4-byte little-endian length-prefixed wire framing.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// HeaderSize is the length prefix size in bytes.
const HeaderSize = 4

// DefaultMaxPayload bounds a declared frame length when no explicit limit is set.
const DefaultMaxPayload = 32 << 20

// ErrFrameTooLarge reports a declared length above the configured maximum.
var ErrFrameTooLarge = errors.New("frame too large")

// Encode prefixes payload with its little-endian u32 length.
func Encode(payload []byte) []byte {
	out := make([]byte, HeaderSize+len(payload))
	binary.LittleEndian.PutUint32(out, uint32(len(payload)))
	copy(out[HeaderSize:], payload)
	return out
}

// TryDecode extracts one complete frame from the head of buffer.
//
// It returns ok=false and consumed=0 while the buffer holds less than a full
// frame. The returned payload aliases buffer.
func TryDecode(buffer []byte) (payload []byte, consumed int, ok bool) {
	if len(buffer) < HeaderSize {
		return nil, 0, false
	}
	declared := uint64(binary.LittleEndian.Uint32(buffer))
	total := uint64(HeaderSize) + declared
	if uint64(len(buffer)) < total {
		return nil, 0, false
	}
	return buffer[HeaderSize:total], int(total), true
}

// Decoder applies TryDecode with a bound on the declared length.
type Decoder struct {
	MaxPayload int
}

// Next decodes one frame, failing with ErrFrameTooLarge as soon as the
// length prefix is readable and exceeds MaxPayload.
func (d Decoder) Next(buffer []byte) (payload []byte, consumed int, ok bool, err error) {
	if len(buffer) >= HeaderSize {
		declared := binary.LittleEndian.Uint32(buffer)
		if limit := d.limit(); uint64(declared) > uint64(limit) {
			return nil, 0, false, fmt.Errorf("%w: declared %d bytes, limit %d", ErrFrameTooLarge, declared, limit)
		}
	}
	payload, consumed, ok = TryDecode(buffer)
	return payload, consumed, ok, nil
}

func (d Decoder) limit() int {
	if d.MaxPayload <= 0 {
		return DefaultMaxPayload
	}
	return d.MaxPayload
}

// ReadFrom reads exactly one frame from r, rejecting a declared length above
// maxPayload (DefaultMaxPayload when <= 0) before allocating. A stream that
// ends mid-frame returns io.ErrUnexpectedEOF.
func ReadFrom(r io.Reader, maxPayload int) ([]byte, error) {
	var header [HeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}
	declared := binary.LittleEndian.Uint32(header[:])
	if limit := (Decoder{MaxPayload: maxPayload}).limit(); uint64(declared) > uint64(limit) {
		return nil, fmt.Errorf("%w: declared %d bytes, limit %d", ErrFrameTooLarge, declared, limit)
	}
	payload := make([]byte, declared)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return payload, nil
}
