package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/gatefall/internal/application/replay"
	"github.com/younwookim/gatefall/internal/application/system"
)

// Recorder captures the per-tick input snapshots for replay. The
// simulation is input-deterministic, so the stream alone reproduces a
// session.
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder starting at the given level
func NewRecorder(level int) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   "1.0",
			Level:     level,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input snapshot
func (r *Recorder) RecordFrame(in system.InputSnapshot) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F:     r.frame,
		Fw:    in.Forward,
		Bk:    in.Back,
		L:     in.Left,
		R:     in.Right,
		Rn:    in.Run,
		J:     in.Jump,
		Fi:    in.Fire,
		In:    in.Interact,
		Yaw:   in.Yaw,
		Pitch: in.Pitch,
	})
	r.frame++
}

// Stop ends recording
func (r *Recorder) Stop() {
	r.recording = false
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return r.frame
}

// Save writes the recording to a JSON file
func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}
