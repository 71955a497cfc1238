package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/gatefall/internal/application/system"
)

// Replayer plays back a recorded input stream
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input snapshot for the current frame and
// advances. Returns false past the end of the recording.
func (r *Replayer) GetInput() (system.InputSnapshot, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputSnapshot{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputSnapshot{
		Forward:  fi.Fw,
		Back:     fi.Bk,
		Left:     fi.L,
		Right:    fi.R,
		Run:      fi.Rn,
		Jump:     fi.J,
		Fire:     fi.Fi,
		Interact: fi.In,
		Yaw:      fi.Yaw,
		Pitch:    fi.Pitch,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Level returns the starting level of the recording
func (r *Replayer) Level() int {
	return r.data.Level
}

// Reset rewinds the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
