package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

var (
	greetingYAML = filepath.Join("..", "..", "testdata", "greeting.yaml")
	greetingTOML = filepath.Join("..", "..", "testdata", "greeting.toml")
	scriptJSON   = filepath.Join("..", "..", "testdata", "script.json")
)

func TestTimelineListsTriggersAndTotals(t *testing.T) {
	var out bytes.Buffer
	if err := runTimeline([]string{greetingYAML, greetingTOML}, &out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if n := strings.Count(got, "# greeting"); n != 2 {
		t.Errorf("got %d document headers, want 2\n%s", n, got)
	}
	if n := strings.Count(got, "flourish 0.500s, wither 0.400s"); n != 2 {
		t.Errorf("got %d totals lines, want 2\n%s", n, got)
	}
	for _, want := range []string{"translate_x", "translate_y", "badge", "out"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}

func TestTimelineErrors(t *testing.T) {
	var out bytes.Buffer
	if err := runTimeline(nil, &out); err == nil {
		t.Error("expected error without documents")
	}
	if err := runTimeline([]string{greetingYAML, filepath.Join(t.TempDir(), "missing.yaml")}, &out); err == nil {
		t.Error("expected error for a missing document")
	}
}

func TestLoadDocumentsKeepsArgumentOrder(t *testing.T) {
	docs, err := loadDocuments([]string{greetingTOML, greetingYAML, greetingTOML})
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3", len(docs))
	}
	for i, d := range docs {
		if d.Name != "greeting" {
			t.Errorf("doc %d name = %q", i, d.Name)
		}
	}
}

func TestSimulatePrintsSamples(t *testing.T) {
	var out bytes.Buffer
	if err := runSimulate([]string{"-script", scriptJSON, "-fps", "10", greetingYAML}, &out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{"LABEL", "start", "flourished", "withered", "hello", "badge", "frames,"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
	// Three samples of three views.
	if n := strings.Count(got, "hello"); n != 3 {
		t.Errorf("hello rows = %d, want 3\n%s", n, got)
	}
}

func TestSimulateFlagErrors(t *testing.T) {
	tests := map[string][]string{
		"no script":   {greetingYAML},
		"no document": {"-script", scriptJSON},
		"bad fps":     {"-script", scriptJSON, "-fps", "0", greetingYAML},
		"bad script":  {"-script", greetingYAML, greetingYAML},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			if err := runSimulate(args, &out); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestClampUnit(t *testing.T) {
	if clampUnit(-1) != 0 || clampUnit(2) != 1 || clampUnit(0.5) != 0.5 {
		t.Error("clampUnit")
	}
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		pollEvents(func() tcell.Event {
			return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
		}, events, done)
		close(exited)
	}()

	<-events
	close(done)
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("pollEvents still blocked after done was closed")
	}
}

func TestPollEventsClosesOnNil(t *testing.T) {
	events := make(chan tcell.Event, 1)
	n := 0
	go pollEvents(func() tcell.Event {
		n++
		if n > 1 {
			return nil
		}
		return tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	}, events, make(chan struct{}))

	var got []tcell.Event
	timeout := time.After(time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				if len(got) != 1 {
					t.Errorf("got %d events, want 1", len(got))
				}
				return
			}
			got = append(got, ev)
		case <-timeout:
			t.Fatal("events not closed after nil poll")
		}
	}
}
