package screendown

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected taps, waits and screenshots across frames
// for automated visual checks. Attach to a Game via SetTestRunner or
// RunConfig.Script.
//
// Script format:
//
//	{"steps": [
//		{"action": "tap"},
//		{"action": "wait", "frames": 30},
//		{"action": "screenshot", "label": "mid-wipe"}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "tap", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the game. Its step method is called
// from Update before input is read each frame.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.runner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// stepTarget is what a script step acts on.
type stepTarget interface {
	injectTap()
	pendingTaps() int
	Screenshot(label string)
}

func (g *Game) injectTap() {
	g.view.InjectTap()
	g.dirty.Store(true)
}

func (g *Game) pendingTaps() int { return g.view.PendingTaps() }

// step advances the runner by one frame.
func (r *TestRunner) step(t stepTarget) {
	if r.done {
		return
	}
	// Let injected taps reach the view before moving on.
	if t.pendingTaps() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		t.injectTap()
	case "screenshot":
		t.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && t.pendingTaps() == 0 {
		r.done = true
	}
}
