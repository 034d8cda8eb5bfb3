// Package record exports simulation runs as MJPEG video and census charts.
package record

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"elements-ca/internal/render"
)

// DefaultQuality is the JPEG quality used for video frames.
const DefaultQuality = 90

// VideoRecorder appends rendered frames to an MJPEG AVI file.
type VideoRecorder struct {
	aw      mjpeg.AviWriter
	w, h    int
	quality int
	buf     bytes.Buffer
	frames  int
}

// NewVideoRecorder creates path and prepares it for w×h frames played back
// at fps.
func NewVideoRecorder(path string, w, h, fps int) (*VideoRecorder, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("record: invalid frame size %dx%d", w, h)
	}
	if fps <= 0 {
		fps = 30
	}
	aw, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("record: create %s: %w", path, err)
	}
	return &VideoRecorder{aw: aw, w: w, h: h, quality: DefaultQuality}, nil
}

// SetQuality changes the JPEG quality for subsequent frames (1-100).
func (r *VideoRecorder) SetQuality(q int) {
	r.quality = min(max(q, 1), 100)
}

// AddFrame encodes the surface and appends it to the video.
func (r *VideoRecorder) AddFrame(s *render.Surface) error {
	if s.W != r.w || s.H != r.h {
		return fmt.Errorf("record: frame %dx%d does not match video %dx%d", s.W, s.H, r.w, r.h)
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, s.Image(), &jpeg.Options{Quality: r.quality}); err != nil {
		return fmt.Errorf("record: encode frame %d: %w", r.frames, err)
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("record: add frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames reports how many frames were written.
func (r *VideoRecorder) Frames() int { return r.frames }

// Close finalizes the AVI index and closes the file.
func (r *VideoRecorder) Close() error {
	return r.aw.Close()
}
