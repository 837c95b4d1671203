package sanctuary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ScriptFormat selects the encoding of a session script.
type ScriptFormat uint8

const (
	ScriptJSON ScriptFormat = iota
	ScriptTOML
)

// scriptStep represents a single action in a session script.
type scriptStep struct {
	Action string  `json:"action"           toml:"action"`
	Label  string  `json:"label,omitempty"  toml:"label"`
	Mode   string  `json:"mode,omitempty"   toml:"mode"`
	Text   string  `json:"text,omitempty"   toml:"text"`
	X      float64 `json:"x,omitempty"      toml:"x"`
	Y      float64 `json:"y,omitempty"      toml:"y"`
	FromX  float64 `json:"fromX,omitempty"  toml:"fromX"`
	FromY  float64 `json:"fromY,omitempty"  toml:"fromY"`
	ToX    float64 `json:"toX,omitempty"    toml:"toX"`
	ToY    float64 `json:"toY,omitempty"    toml:"toY"`
	Frames int     `json:"frames,omitempty" toml:"frames"`
	Count  int     `json:"count,omitempty"  toml:"count"`
}

// sessionScript is the top-level structure of a session script.
type sessionScript struct {
	Steps []scriptStep `json:"steps" toml:"steps"`
}

// ScriptRunner sequences injected input, garden actions and screenshots
// across ticks. Attach it to a Controller via SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// ParseScript parses a session script and returns a runner ready to be
// attached to a Controller.
func ParseScript(data []byte, format ScriptFormat) (*ScriptRunner, error) {
	var script sessionScript
	var err error
	switch format {
	case ScriptTOML:
		err = toml.Unmarshal(data, &script)
	default:
		err = json.Unmarshal(data, &script)
	}
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range script.Steps {
		if err := validateStep(st); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// LoadScriptFile reads a script from path. Files ending in .toml are parsed
// as TOML, everything else as JSON.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	format := ScriptJSON
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = ScriptTOML
	}
	return ParseScript(data, format)
}

func validateStep(st scriptStep) error {
	switch st.Action {
	case "mode":
		if _, ok := ParseMode(st.Mode); !ok {
			return fmt.Errorf("unknown mode %q", st.Mode)
		}
	case "leaf":
		if strings.TrimSpace(st.Text) == "" {
			return ErrEmptyLeaf
		}
	case "click", "drag", "leave", "screenshot", "wait",
		"clear-sand", "clear-stars", "clear-stones", "clear-all",
		"auto-star", "auto-stone":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// SetScript attaches a runner to the controller. Its step is taken at the
// start of every Update.
func (c *Controller) SetScript(runner *ScriptRunner) {
	c.runner = runner
}

// Done reports whether every step of the script has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick.
func (r *ScriptRunner) step(c *Controller) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
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
	case "mode":
		m, _ := ParseMode(st.Mode)
		c.SetMode(m)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "leave":
		c.InjectLeave()
	case "leaf":
		_ = c.AddLeaf(st.Text)
	case "clear-sand":
		c.ClearSand()
	case "clear-stars":
		c.ClearStars()
	case "clear-stones":
		c.ClearStones()
	case "clear-all":
		c.ClearAll()
	case "auto-star":
		for range max(st.Count, 1) {
			c.AutoPlaceStar()
		}
	case "auto-stone":
		for range max(st.Count, 1) {
			c.AutoPlaceStone()
		}
	case "screenshot":
		c.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
