package flourish

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Seconds float64 `json:"seconds,omitempty"`
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Sample is emitted by a "sample" step.
type Sample struct {
	Label string
	Time  float64
	State State
}

// Script sequences direction changes and samples across frames to drive a
// Group without user input. Actions: "flourish", "wither", "toggle",
// "wait" (frames or seconds) and "sample" (calls OnSample).
type Script struct {
	// OnSample receives each "sample" step.
	OnSample func(Sample)

	steps     []scriptStep
	cursor    int
	waitCount int
	waitTime  float64
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "flourish", "wither", "toggle", "wait", "sample":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *Script) Done() bool {
	return r.done
}

// Step advances the script by one frame of dt seconds against g. now is
// the scene time reported in samples.
func (r *Script) Step(g *Group, now, dt float64) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.waitTime > 1e-9 {
		r.waitTime -= dt
		return
	}
	r.waitTime = 0

	// Run every non-waiting step due this frame.
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++

		switch st.Action {
		case "flourish":
			g.SetFlourishing(true)
		case "wither":
			g.SetFlourishing(false)
		case "toggle":
			g.Toggle()
		case "sample":
			if r.OnSample != nil {
				r.OnSample(Sample{Label: st.Label, Time: now, State: g.State()})
			}
		case "wait":
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
				return
			}
			if st.Seconds > 0 {
				r.waitTime = st.Seconds - dt
				return
			}
		}
	}
	r.done = true
}

// Run drives scene and script together at a fixed frame rate until the
// script finishes and the scene is idle, or maxFrames have elapsed. It
// returns the number of frames run.
func (r *Script) Run(s *Scene, g *Group, fps, maxFrames int) int {
	dt := 1.0 / float64(fps)
	frames := 0
	for frames < maxFrames {
		r.Step(g, s.clock.Now(), dt)
		s.Update(dt)
		frames++
		if r.done && s.Idle() {
			break
		}
	}
	return frames
}
