// Package videometa reads the playback duration of uploaded video files.
package videometa

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/abema/go-mp4"
	"github.com/remko/go-mkvparse"
)

// ErrNoDuration is returned when a container carries no usable duration.
var ErrNoDuration = errors.New("video duration not found")

// Duration returns the playback length declared by the container header.
// contentType selects the parser: video/mp4 or video/webm.
func Duration(contentType string, data []byte) (time.Duration, error) {
	switch contentType {
	case "video/mp4":
		return mp4Duration(data)
	case "video/webm":
		return webmDuration(data)
	default:
		return 0, fmt.Errorf("no duration reader for %s", contentType)
	}
}

// mp4Duration reads the movie header (mvhd). Fragmented files that leave the
// header duration at zero are reported as ErrNoDuration.
func mp4Duration(data []byte) (time.Duration, error) {
	boxes, err := mp4.ExtractBoxWithPayload(bytes.NewReader(data), nil,
		mp4.BoxPath{mp4.BoxTypeMoov(), mp4.BoxTypeMvhd()})
	if err != nil {
		return 0, fmt.Errorf("failed to read mp4 header: %w", err)
	}
	if len(boxes) == 0 {
		return 0, ErrNoDuration
	}
	mvhd, ok := boxes[0].Payload.(*mp4.Mvhd)
	if !ok {
		return 0, ErrNoDuration
	}
	duration := uint64(mvhd.DurationV0)
	if mvhd.GetVersion() == 1 {
		duration = mvhd.DurationV1
	}
	if mvhd.Timescale == 0 || duration == 0 {
		return 0, ErrNoDuration
	}
	return toDuration(float64(duration) / float64(mvhd.Timescale))
}

// defaultTimecodeScale is the Matroska default: one tick is 1ms.
const defaultTimecodeScale = 1_000_000

// errInfoDone stops the parser once the segment info has been read.
var errInfoDone = errors.New("segment info read")

// webmInfo collects the Duration and TimecodeScale elements of the Info section.
type webmInfo struct {
	mkvparse.DefaultHandler

	duration      float64
	hasDuration   bool
	timecodeScale int64
}

func (h *webmInfo) HandleMasterBegin(id mkvparse.ElementID, _ mkvparse.ElementInfo) (bool, error) {
	// Clusters hold the media payload; nothing in them is needed.
	return id != mkvparse.ClusterElement, nil
}

func (h *webmInfo) HandleMasterEnd(id mkvparse.ElementID, _ mkvparse.ElementInfo) error {
	if id == mkvparse.InfoElement {
		return errInfoDone
	}
	return nil
}

func (h *webmInfo) HandleInteger(id mkvparse.ElementID, value int64, _ mkvparse.ElementInfo) error {
	if id == mkvparse.TimecodeScaleElement {
		h.timecodeScale = value
	}
	return nil
}

func (h *webmInfo) HandleFloat(id mkvparse.ElementID, value float64, _ mkvparse.ElementInfo) error {
	if id == mkvparse.DurationElement {
		h.duration = value
		h.hasDuration = true
	}
	return nil
}

func webmDuration(data []byte) (time.Duration, error) {
	h := &webmInfo{timecodeScale: defaultTimecodeScale}
	if err := mkvparse.Parse(bytes.NewReader(data), h); err != nil && !errors.Is(err, errInfoDone) {
		return 0, fmt.Errorf("failed to read webm header: %w", err)
	}
	if !h.hasDuration || h.timecodeScale <= 0 {
		return 0, ErrNoDuration
	}
	// Duration is in ticks of TimecodeScale nanoseconds.
	return toDuration(h.duration * float64(h.timecodeScale) / float64(time.Second))
}

// toDuration converts seconds, rejecting values a time.Duration cannot hold.
func toDuration(seconds float64) (time.Duration, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 || seconds > math.MaxInt64/float64(time.Second) {
		return 0, ErrNoDuration
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
