package flourish

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func loadTestDocument(t *testing.T, name string) Document {
	t.Helper()
	doc, err := LoadDocument(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("LoadDocument(%s): %v", name, err)
	}
	return doc
}

func TestLoadDocumentYAMLAndTOMLAgree(t *testing.T) {
	y := loadTestDocument(t, "greeting.yaml")
	tm := loadTestDocument(t, "greeting.toml")
	if !reflect.DeepEqual(y, tm) {
		t.Errorf("documents differ:\nyaml: %+v\ntoml: %+v", y, tm)
	}
	if y.Name != "greeting" || len(y.Views) != 3 {
		t.Errorf("unexpected document %+v", y)
	}
}

func TestLoadDocumentUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDocument(path); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	if _, err := LoadDocument(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	if _, err := DecodeYAML([]byte("name: x\nspeed: 2\n")); err == nil {
		t.Error("yaml: expected error for unknown field")
	}
	if _, err := DecodeTOML([]byte("name = \"x\"\nspeed = 2\n")); err == nil {
		t.Error("toml: expected error for unknown key")
	}
}

func TestCurveDefBuild(t *testing.T) {
	intensity := 0.2
	tests := []struct {
		name string
		def  CurveDef
		want TimingCurve
	}{
		{"empty is standard", CurveDef{}, Standard},
		{"standard with duration", CurveDef{Type: "standard", Duration: 1}, Standard.WithDuration(1)},
		{"linear", CurveDef{Type: "Linear", Duration: 0.5}, Linear(0.5)},
		{"ease default intensity", CurveDef{Type: "ease", Duration: 2}, Ease(2, DefaultIntensity)},
		{"ease intensity", CurveDef{Type: "ease", Intensity: &intensity}, Ease(0, 0.2)},
		{"bezier", CurveDef{Type: "bezier", Points: []float64{0.1, 0.2, 0.3, 0.4}}, NewTimingCurve(0.1, 0.2, 0.3, 0.4, DefaultDuration)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.def.Build()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Build() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCurveDefErrors(t *testing.T) {
	if _, err := (CurveDef{Type: "spring"}).Build(); !errors.Is(err, ErrUnknownCurve) {
		t.Errorf("err = %v, want ErrUnknownCurve", err)
	}
	if _, err := (CurveDef{Type: "bezier", Points: []float64{1, 2}}).Build(); !errors.Is(err, ErrBadPoints) {
		t.Errorf("err = %v, want ErrBadPoints", err)
	}
}

func TestAnimationDefBuild(t *testing.T) {
	def := AnimationDef{Kind: "sequence", Children: []AnimationDef{
		{Kind: "delay", Duration: 0.1},
		{Kind: "parallel", Curve: &CurveDef{Type: "linear", Duration: 1}, Children: []AnimationDef{
			{Kind: "scale", Value: 0},
			{Kind: "opacity", Value: 0.5, Curve: &CurveDef{Type: "linear", Duration: 0.2}},
		}},
		{Kind: "rotate", Value: 1},
	}}
	got, err := def.Build()
	if err != nil {
		t.Fatal(err)
	}
	want := Sequenced(
		Delay(0.1),
		ParallelTimed(Linear(1), Scale(0, Standard), Opacity(0.5, Linear(0.2))),
		Rotate(1, Standard),
	)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}
}

func TestAnimationDefErrors(t *testing.T) {
	_, err := AnimationDef{Kind: "parallel", Children: []AnimationDef{{Kind: "wobble"}}}.Build()
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
	_, err = AnimationDef{Kind: "opacity", Curve: &CurveDef{Type: "spring"}}.Build()
	if !errors.Is(err, ErrUnknownCurve) {
		t.Errorf("err = %v, want ErrUnknownCurve", err)
	}
}

func TestSceneBuildDocument(t *testing.T) {
	s := NewScene()
	st, err := s.Build(loadTestDocument(t, "greeting.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Views) != 3 || len(s.Groups()) != 1 {
		t.Fatalf("views=%d groups=%d", len(st.Views), len(s.Groups()))
	}
	if st.Group.Present() || st.Container.Parent != nil {
		t.Error("withered document should start detached")
	}
	if st.Container.X != 40 || st.Container.Y != 40 {
		t.Errorf("container at (%v, %v), want (40, 40)", st.Container.X, st.Container.Y)
	}

	d := st.Group.Durations()
	if !approx(d.Flourish, 0.5) || !approx(d.Wither, 0.4) {
		t.Errorf("Durations() = %+v, want {0.5 0.4}", d)
	}

	hello, ok := st.View("hello")
	if !ok {
		t.Fatal("hello view missing")
	}
	if hello.Node.Effect.TranslateX != -40 || hello.Node.Effect.Opacity != 0 {
		t.Errorf("hello not prepared: %+v", hello.Node.Effect)
	}
	if hello.Node.Color != (Color{0.9, 0.5, 0.2, 1}) {
		t.Errorf("hello color = %+v", hello.Node.Color)
	}

	badge, _ := st.View("badge")
	if _, ok := badge.Flourish.WitherAnimation(); !ok {
		t.Error("badge should be asymmetric")
	}
	if badge.Node.Effect.TranslateY != 30 || badge.Node.Effect.Scale != 1 {
		t.Errorf("badge not prepared from its flourish animation: %+v", badge.Node.Effect)
	}
	if badge.Node.Width != 64 {
		t.Errorf("badge width = %v, want 64", badge.Node.Width)
	}

	if _, ok := st.View("missing"); ok {
		t.Error("View(missing) should fail")
	}
}

func TestSceneBuildDefaults(t *testing.T) {
	s := NewScene()
	st, err := s.Build(Document{Flourishing: true, Views: []ViewDef{{In: AnimationDef{Kind: "opacity"}}}})
	if err != nil {
		t.Fatal(err)
	}
	if st.Container.Name != "group" || st.Container.Parent != s.Root() {
		t.Errorf("container %q parent=%v", st.Container.Name, st.Container.Parent)
	}
	n := st.Views[0].Node
	if n.Name != "view0" || n.Width != defaultViewWidth || n.Height != defaultViewHeight || n.Color != ColorWhite {
		t.Errorf("defaults not applied: %q %vx%v %v", n.Name, n.Width, n.Height, n.Color)
	}
	if n.Effect != IdentityEffect {
		t.Errorf("flourishing document prepared its views: %+v", n.Effect)
	}
}

func TestSceneBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		view ViewDef
		is   error
	}{
		{"bad in", ViewDef{In: AnimationDef{Kind: "wobble"}}, ErrUnknownKind},
		{"bad out", ViewDef{In: AnimationDef{Kind: "opacity"}, Out: &AnimationDef{Kind: "wobble"}}, ErrUnknownKind},
		{"bad color", ViewDef{In: AnimationDef{Kind: "opacity"}, Color: []float64{1, 1}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene()
			_, err := s.Build(Document{Views: []ViewDef{tt.view}})
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
			if len(s.Groups()) != 0 {
				t.Error("failed build left a group behind")
			}
		})
	}
}
