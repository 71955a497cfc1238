package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gatefall/internal/application/replay"
	"github.com/younwookim/gatefall/internal/application/system"
)

func TestRecorderRoundTrip(t *testing.T) {
	rec := NewRecorder(1)

	rec.RecordFrame(system.InputSnapshot{Forward: true, Yaw: 0.3})
	rec.RecordFrame(system.InputSnapshot{Jump: true, Fire: true})
	rec.RecordFrame(system.InputSnapshot{})
	require.Equal(t, 3, rec.FrameCount())

	path := filepath.Join(t.TempDir(), "session.replay")
	require.NoError(t, rec.Save(path))

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, 1, data.Level)
	require.Len(t, data.Frames, 3)
	assert.Equal(t, 0, data.Frames[0].F)
	assert.Equal(t, 2, data.Frames[2].F)

	// Replaying the stream yields the recorded snapshots
	r := replay.NewReplayer(*data)
	in, ok := r.GetInput()
	require.True(t, ok)
	assert.True(t, in.Forward)
	assert.Equal(t, 0.3, in.Yaw)

	in, ok = r.GetInput()
	require.True(t, ok)
	assert.True(t, in.Jump)
	assert.True(t, in.Fire)
}

func TestRecorderStop(t *testing.T) {
	rec := NewRecorder(1)

	rec.RecordFrame(system.InputSnapshot{Forward: true})
	rec.Stop()
	rec.RecordFrame(system.InputSnapshot{Forward: true})

	assert.Equal(t, 1, rec.FrameCount())
}
