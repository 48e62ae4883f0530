package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
)

// DefaultMaxPixels bounds decoded frames when no limit is configured.
const DefaultMaxPixels = 4096 * 4096

var (
	// ErrShortFrame reports raw pixel data smaller than width*height*3.
	ErrShortFrame = errors.New("frame data shorter than width*height*3")
	// ErrFrameTooLarge reports frame dimensions over the pixel limit.
	ErrFrameTooLarge = errors.New("frame dimensions exceed pixel limit")
)

// DecodeFrame interprets a frame payload. Zero width and height mean data is
// an encoded PNG, JPEG or GIF; otherwise data is packed row-major RGB24.
// Frames over maxPixels are rejected before any pixel buffer is allocated;
// maxPixels <= 0 means DefaultMaxPixels.
func DecodeFrame(data []byte, width, height uint32, maxPixels int) (image.Image, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	if width == 0 && height == 0 {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode image header: %w", err)
		}
		if err := checkPixels(cfg.Width, cfg.Height, maxPixels); err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		return img, nil
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if err := checkPixels(int(width), int(height), maxPixels); err != nil {
		return nil, err
	}

	need := uint64(width) * uint64(height) * 3
	if uint64(len(data)) < need {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d", ErrShortFrame, len(data), width, height)
	}

	w, h := int(width), int(height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, p := 0, 0; i < w*h; i++ {
		src := data[i*3 : i*3+3]
		img.Pix[p] = src[0]
		img.Pix[p+1] = src[1]
		img.Pix[p+2] = src[2]
		img.Pix[p+3] = 0xff
		p += 4
	}
	return img, nil
}

func checkPixels(width, height, maxPixels int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if uint64(width)*uint64(height) > uint64(maxPixels) {
		return fmt.Errorf("%w: %dx%d over %d pixels", ErrFrameTooLarge, width, height, maxPixels)
	}
	return nil
}
