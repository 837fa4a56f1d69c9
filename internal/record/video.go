// Package record turns a running session into files: an MJPEG AVI of the
// grid and a PNG chart of its population.
package record

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// FrameSink receives rendered frames in order.
type FrameSink interface {
	AddFrame(img image.Image) error
}

// Video writes frames to a Motion JPEG AVI file.
type Video struct {
	aw     mjpeg.AviWriter
	w, h   int
	buf    bytes.Buffer
	opts   jpeg.Options
	frames int
}

// NewVideo creates path and prepares it for frames of exactly w*h pixels.
func NewVideo(path string, w, h, fps, quality int) (*Video, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("record: bad frame size %dx%d", w, h)
	}
	if fps <= 0 {
		fps = 10
	}
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	aw, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("record: create %s: %w", path, err)
	}
	return &Video{aw: aw, w: w, h: h, opts: jpeg.Options{Quality: quality}}, nil
}

// AddFrame encodes img as JPEG and appends it.
func (v *Video) AddFrame(img image.Image) error {
	if b := img.Bounds(); b.Dx() != v.w || b.Dy() != v.h {
		return fmt.Errorf("record: frame is %dx%d, video is %dx%d", b.Dx(), b.Dy(), v.w, v.h)
	}
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, &v.opts); err != nil {
		return fmt.Errorf("record: encode frame %d: %w", v.frames, err)
	}
	if err := v.aw.AddFrame(v.buf.Bytes()); err != nil {
		return fmt.Errorf("record: write frame %d: %w", v.frames, err)
	}
	v.frames++
	return nil
}

// Frames reports how many frames were written.
func (v *Video) Frames() int { return v.frames }

// Close finalises the AVI index and closes the file.
func (v *Video) Close() error {
	if err := v.aw.Close(); err != nil {
		return fmt.Errorf("record: close: %w", err)
	}
	return nil
}
