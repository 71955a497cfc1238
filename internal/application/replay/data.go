package replay

// FrameInput records the input snapshot for a single frame
type FrameInput struct {
	F int `json:"f"` // Frame number

	Fw bool `json:"fw,omitempty"` // Forward
	Bk bool `json:"bk,omitempty"` // Back
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	Rn bool `json:"rn,omitempty"` // Run
	J  bool `json:"j,omitempty"`  // Jump
	Fi bool `json:"fi,omitempty"` // Fire
	In bool `json:"in,omitempty"` // Interact

	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
}

// ReplayData contains all data needed to replay a session.
// The simulation is deterministic given the input stream, so no seed
// is recorded.
type ReplayData struct {
	Version   string       `json:"version"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
