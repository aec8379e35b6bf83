package flourish

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKind is returned for an animation kind with no constructor.
	ErrUnknownKind = errors.New("unknown animation kind")
	// ErrUnknownCurve is returned for an unrecognised curve type.
	ErrUnknownCurve = errors.New("unknown curve type")
	// ErrBadPoints is returned when a bezier curve lacks four control values.
	ErrBadPoints = errors.New("bezier curve needs 4 points")
	// ErrUnknownFormat is returned by LoadDocument for unsupported extensions.
	ErrUnknownFormat = errors.New("unknown document format")
)

// CurveDef describes a TimingCurve in a document.
type CurveDef struct {
	Type      string    `yaml:"type" toml:"type"` // standard, linear, ease, bezier
	Duration  float64   `yaml:"duration" toml:"duration"`
	Intensity *float64  `yaml:"intensity" toml:"intensity"`
	Points    []float64 `yaml:"points" toml:"points"`
}

// Build returns the curve the definition describes. A zero duration selects
// DefaultDuration.
func (c CurveDef) Build() (TimingCurve, error) {
	switch strings.ToLower(c.Type) {
	case "", "standard":
		return Standard.WithDuration(orDefault(c.Duration)), nil
	case "linear":
		return Linear(c.Duration), nil
	case "ease":
		intensity := DefaultIntensity
		if c.Intensity != nil {
			intensity = *c.Intensity
		}
		return Ease(c.Duration, intensity), nil
	case "bezier":
		if len(c.Points) != 4 {
			return TimingCurve{}, fmt.Errorf("curve: %w, got %d", ErrBadPoints, len(c.Points))
		}
		p := c.Points
		return NewTimingCurve(p[0], p[1], p[2], p[3], orDefault(c.Duration)), nil
	default:
		return TimingCurve{}, fmt.Errorf("curve %q: %w", c.Type, ErrUnknownCurve)
	}
}

// AnimationDef describes an Animation tree in a document.
type AnimationDef struct {
	Kind     string         `yaml:"kind" toml:"kind"`
	Value    float64        `yaml:"value" toml:"value"`
	Duration float64        `yaml:"duration" toml:"duration"`
	Curve    *CurveDef      `yaml:"curve" toml:"curve"`
	Children []AnimationDef `yaml:"children" toml:"children"`
}

// Build returns the animation the definition describes.
func (d AnimationDef) Build() (Animation, error) {
	kind := strings.ToLower(d.Kind)
	if p, ok := ParseProperty(kind); ok {
		curve := Standard
		if d.Curve != nil {
			c, err := d.Curve.Build()
			if err != nil {
				return Animation{}, fmt.Errorf("%s: %w", kind, err)
			}
			curve = c
		}
		return Primitive(p, d.Value, curve), nil
	}

	switch kind {
	case "delay":
		return Delay(d.Duration), nil
	case "sequenced", "sequence":
		children, err := buildChildren(kind, d.Children)
		if err != nil {
			return Animation{}, err
		}
		return Sequenced(children...), nil
	case "parallel":
		children, err := buildChildren(kind, d.Children)
		if err != nil {
			return Animation{}, err
		}
		if d.Curve == nil {
			return Parallel(children...), nil
		}
		curve, err := d.Curve.Build()
		if err != nil {
			return Animation{}, fmt.Errorf("parallel: %w", err)
		}
		return ParallelTimed(curve, children...), nil
	default:
		return Animation{}, fmt.Errorf("animation %q: %w", d.Kind, ErrUnknownKind)
	}
}

func buildChildren(kind string, defs []AnimationDef) ([]Animation, error) {
	out := make([]Animation, 0, len(defs))
	for i, def := range defs {
		a, err := def.Build()
		if err != nil {
			return nil, fmt.Errorf("%s child %d: %w", kind, i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// ViewDef describes one flourishing view of a document.
type ViewDef struct {
	Name     string        `yaml:"name" toml:"name"`
	X        float64       `yaml:"x" toml:"x"`
	Y        float64       `yaml:"y" toml:"y"`
	Width    float64       `yaml:"width" toml:"width"`
	Height   float64       `yaml:"height" toml:"height"`
	Color    []float64     `yaml:"color" toml:"color"`
	In       AnimationDef  `yaml:"in" toml:"in"`
	Out      *AnimationDef `yaml:"out" toml:"out"`
	DelayIn  float64       `yaml:"delay_in" toml:"delay_in"`
	DelayOut float64       `yaml:"delay_out" toml:"delay_out"`
}

// Document describes a group of views sharing one flourish timeline.
type Document struct {
	Name        string    `yaml:"name" toml:"name"`
	Flourishing bool      `yaml:"flourishing" toml:"flourishing"`
	X           float64   `yaml:"x" toml:"x"`
	Y           float64   `yaml:"y" toml:"y"`
	DelayIn     float64   `yaml:"delay_in" toml:"delay_in"`
	DelayOut    float64   `yaml:"delay_out" toml:"delay_out"`
	Views       []ViewDef `yaml:"views" toml:"views"`
}

// DecodeYAML parses a YAML document.
func DecodeYAML(data []byte) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode yaml document: %w", err)
	}
	return doc, nil
}

// DecodeTOML parses a TOML document.
func DecodeTOML(data []byte) (Document, error) {
	var doc Document
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return Document{}, fmt.Errorf("decode toml document: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Document{}, fmt.Errorf("decode toml document: unknown key %q", undecoded[0].String())
	}
	return doc, nil
}

// LoadDocument reads a document from path, choosing the format from the
// file extension (.yaml, .yml or .toml).
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("load document: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".toml":
		return DecodeTOML(data)
	default:
		return Document{}, fmt.Errorf("load document %s: %w", path, ErrUnknownFormat)
	}
}

// View is a node built from a ViewDef and the evaluator animating it.
type View struct {
	Node     *Node
	Flourish *Flourish
}

// Stage is a document built into a scene.
type Stage struct {
	Group     *Group
	Container *Node
	Views     []View
}

// View returns the view named name, or false.
func (st *Stage) View(name string) (View, bool) {
	for _, v := range st.Views {
		if v.Node.Name == name {
			return v, true
		}
	}
	return View{}, false
}

const (
	defaultViewWidth  = 120
	defaultViewHeight = 24
)

// Build adds the document to the scene under the root: a container node
// controlled by a new group, with one box node and evaluator per view.
func (s *Scene) Build(doc Document) (*Stage, error) {
	type built struct {
		def     ViewDef
		in, out Animation
		hasOut  bool
		color   Color
		w, h    float64
	}
	views := make([]built, 0, len(doc.Views))
	for i, vd := range doc.Views {
		b := built{def: vd, w: vd.Width, h: vd.Height, color: ColorWhite}
		var err error
		if b.in, err = vd.In.Build(); err != nil {
			return nil, fmt.Errorf("view %d (%s) in: %w", i, vd.Name, err)
		}
		if vd.Out != nil {
			if b.out, err = vd.Out.Build(); err != nil {
				return nil, fmt.Errorf("view %d (%s) out: %w", i, vd.Name, err)
			}
			b.hasOut = true
		}
		if b.w == 0 {
			b.w = defaultViewWidth
		}
		if b.h == 0 {
			b.h = defaultViewHeight
		}
		switch len(vd.Color) {
		case 0:
		case 3:
			b.color = Color{vd.Color[0], vd.Color[1], vd.Color[2], 1}
		case 4:
			b.color = Color{vd.Color[0], vd.Color[1], vd.Color[2], vd.Color[3]}
		default:
			return nil, fmt.Errorf("view %d (%s): color needs 3 or 4 components", i, vd.Name)
		}
		views = append(views, b)
	}

	container := NewNode(nameOr(doc.Name, "group"))
	container.SetPosition(doc.X, doc.Y)
	g := s.NewGroup(container.Name, s.root, container, doc.Flourishing)
	env := Env{}.Delay(doc.DelayIn, doc.DelayOut)

	st := &Stage{Group: g, Container: container}
	for i, b := range views {
		node := NewBox(nameOr(b.def.Name, fmt.Sprintf("view%d", i)), b.w, b.h, b.color)
		node.SetPosition(b.def.X, b.def.Y)
		container.AddChild(node)

		viewEnv := env.Delay(b.def.DelayIn, b.def.DelayOut)
		var f *Flourish
		if b.hasOut {
			f = s.AttachAsymmetric(g, node, b.in, b.out, viewEnv)
		} else {
			f = s.Attach(g, node, b.in, viewEnv)
		}
		st.Views = append(st.Views, View{Node: node, Flourish: f})
	}
	return st, nil
}
