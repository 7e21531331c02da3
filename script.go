package bramble

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string   `yaml:"action"`
	Label  string   `yaml:"label,omitempty"`
	X      int      `yaml:"x,omitempty"`
	Y      int      `yaml:"y,omitempty"`
	FromX  int      `yaml:"fromX,omitempty"`
	FromY  int      `yaml:"fromY,omitempty"`
	ToX    int      `yaml:"toX,omitempty"`
	ToY    int      `yaml:"toY,omitempty"`
	Frames int      `yaml:"frames,omitempty"`
	Key    string   `yaml:"key,omitempty"`
	Mods   []string `yaml:"mods,omitempty"`
	DY     int      `yaml:"dy,omitempty"`

	key  Key
	mods Modifiers
}

// script is the top-level structure of an input script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner replays injected input and screenshots one step per frame,
// for automated visual testing and scripted demos. Call Step once per frame,
// for example from ebitenwin's OnUpdate hook.
//
// Actions: click (x, y), hover (x, y), drag (fromX, fromY, toX, toY,
// frames), key (key, mods), scroll (dy), wait (frames) and screenshot
// (label).
type ScriptRunner struct {
	// Dir is where screenshot steps write their PNG files.
	Dir string

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	shots     []string
}

// LoadScript parses an input script. Scripts are YAML; JSON documents are
// accepted too.
//
//	steps:
//	  - {action: click, x: 100, y: 200}
//	  - {action: key, key: escape}
//	  - {action: wait, frames: 3}
//	  - {action: screenshot, label: after-click}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i := range s.Steps {
		if err := s.Steps[i].compile(); err != nil {
			return nil, fmt.Errorf("parse input script: step %d: %w", i+1, err)
		}
	}
	return &ScriptRunner{Dir: "screenshots", steps: s.Steps}, nil
}

func (st *scriptStep) compile() error {
	switch st.Action {
	case "click", "hover", "drag", "scroll", "wait", "screenshot":
		return nil
	case "key":
		k, err := parseKey(st.Key)
		if err != nil {
			return err
		}
		st.key = k
		for _, m := range st.Mods {
			mod, ok := modifierNames[strings.ToLower(m)]
			if !ok {
				return fmt.Errorf("unknown modifier %q", m)
			}
			st.mods |= mod
		}
		return nil
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

var modifierNames = map[string]Modifiers{
	"shift":   ModShift,
	"ctrl":    ModCtrl,
	"alt":     ModAlt,
	"cmd":     ModCommand,
	"command": ModCommand,
}

var namedKeys = []Key{
	KeyBackspace, KeyTab, KeyEnter, KeyEscape, KeySpace, KeyDelete,
	KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown,
}

// parseKey accepts a single printable character or a key name as printed
// by Key.String.
func parseKey(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if r, n := utf8.DecodeRuneInString(s); n == len(s) && r > 32 && r < 127 {
		return Key(r), nil
	}
	for _, k := range namedKeys {
		if k.String() == s {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("unknown key %q", s)
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Screenshots returns the paths written by screenshot steps so far.
func (r *ScriptRunner) Screenshots() []string {
	return r.shots
}

// Step advances the script by one frame, dispatching into win. raster is
// only needed by screenshot steps. A failed screenshot is returned but does
// not stop the script.
func (r *ScriptRunner) Step(win *Window, raster *Raster) error {
	if r.done {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "screenshot":
		err = r.screenshot(raster, st.Label)
	case "click":
		win.InjectClick(st.X, st.Y)
	case "hover":
		win.InjectHover(st.X, st.Y)
	case "drag":
		win.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "key":
		win.InjectKey(st.key, st.mods)
	case "scroll":
		win.InjectScroll(st.DY)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	Logger().Debug("script step", "step", r.cursor, "action", st.Action)

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	return err
}

func (r *ScriptRunner) screenshot(raster *Raster, label string) error {
	if raster == nil {
		return fmt.Errorf("script step %d: screenshot needs a raster", r.cursor)
	}
	path, err := raster.Screenshot(r.Dir, label)
	if err != nil {
		return fmt.Errorf("script step %d: %w", r.cursor, err)
	}
	r.shots = append(r.shots, path)
	return nil
}
