package joystick

import (
	"testing"

	"github.com/decred/slog"
)

type recordingBinder struct {
	names []string
}

func (b *recordingBinder) BindInt(name string, _ *int)       { b.names = append(b.names, name) }
func (b *recordingBinder) BindString(name string, _ *string) { b.names = append(b.names, name) }

func TestBindVariablesRegistersNothing(t *testing.T) {
	b := &recordingBinder{}
	j := New(slog.Disabled, b)

	j.BindVariables()
	j.BindVariables()

	if len(b.names) != 0 {
		t.Errorf("expected no bound variables, got %v", b.names)
	}
}

func TestLifecycleAnyOrder(t *testing.T) {
	orders := []struct {
		name string
		ops  []string
	}{
		{"normal", []string{"init", "bind", "update", "update", "shutdown"}},
		{"shutdown first", []string{"shutdown", "init", "update"}},
		{"update only", []string{"update", "update", "update"}},
		{"repeated init", []string{"init", "init", "shutdown", "shutdown"}},
		{"empty", nil},
	}

	for _, o := range orders {
		t.Run(o.name, func(t *testing.T) {
			b := &recordingBinder{}
			j := New(nil, b)
			for _, op := range o.ops {
				switch op {
				case "init":
					j.Init()
				case "shutdown":
					j.Shutdown()
				case "update":
					j.Update()
				case "bind":
					j.BindVariables()
				}
			}
			if len(b.names) != 0 {
				t.Errorf("expected no bound variables, got %v", b.names)
			}
		})
	}
}

func TestUpdateManyFrames(t *testing.T) {
	b := &recordingBinder{}
	j := New(slog.Disabled, b)
	j.Init()
	for i := 0; i < 1000; i++ {
		j.Update()
	}
	j.Shutdown()

	if len(b.names) != 0 {
		t.Errorf("expected no bound variables, got %v", b.names)
	}
}

func TestNilBinder(t *testing.T) {
	j := New(slog.Disabled, nil)
	j.Init()
	j.BindVariables()
	j.Update()
	j.Shutdown()
}
