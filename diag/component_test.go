package diag

import (
	"testing"

	"github.com/kbukum/diagkit/registry"
)

func TestComponentLoggerPrependsNamespace(t *testing.T) {
	api := newTestAPI()
	rec := &recordingLogger{}
	api.SetLogger(rec, LevelAll)

	cl := api.CreateComponentLogger(ComponentLoggerOptions{Namespace: "comp-a"})
	cl.Warn("queue full", 128)

	if rec.count("warn") != 1 {
		t.Fatalf("expected one warn call, got %d", rec.count("warn"))
	}
	got := rec.calls[len(rec.calls)-1].args
	if len(got) != 3 || got[0] != "comp-a" || got[1] != "queue full" || got[2] != 128 {
		t.Errorf("expected namespace-first forwarding, got %v", got)
	}
}

func TestComponentLoggerDefaultNamespace(t *testing.T) {
	api := newTestAPI()
	rec := &recordingLogger{}
	api.SetLogger(rec, LevelAll)

	cl := api.CreateComponentLogger(ComponentLoggerOptions{})
	if cl.Namespace() != DefaultNamespace {
		t.Errorf("expected fallback namespace %q, got %q", DefaultNamespace, cl.Namespace())
	}

	cl.Info("hello")
	if rec.count("info") != 1 {
		t.Fatalf("expected one info call, got %d", rec.count("info"))
	}
	got := rec.calls[len(rec.calls)-1].args
	if got[0] != DefaultNamespace {
		t.Errorf("expected first argument %q, got %v", DefaultNamespace, got[0])
	}
}

func TestComponentLoggerTracksInstalledLogger(t *testing.T) {
	api := newTestAPI()
	cl := api.CreateComponentLogger(ComponentLoggerOptions{Namespace: "tracker"})

	// No logger installed yet: silent no-op.
	cl.Error("dropped")

	rec := &recordingLogger{}
	api.SetLogger(rec, LevelAll)
	cl.Error("delivered")
	if rec.count("error") != 1 {
		t.Fatalf("expected one error call after install, got %d", rec.count("error"))
	}

	api.Disable()
	cl.Error("dropped again")
	if rec.count("error") != 1 {
		t.Errorf("expected no calls after Disable, got %d", rec.count("error"))
	}
}

func TestComponentLoggerForwardsAllLevels(t *testing.T) {
	api := newTestAPI()
	rec := &recordingLogger{}
	api.SetLogger(rec, LevelAll)

	cl := api.CreateComponentLogger(ComponentLoggerOptions{Namespace: "all"})
	callAll(cl)

	if len(rec.calls) != 5 {
		t.Fatalf("expected 5 forwarded calls, got %d", len(rec.calls))
	}
	for _, c := range rec.calls {
		if c.args[0] != "all" {
			t.Errorf("expected namespace prefix on %s call, got %v", c.method, c.args)
		}
	}
}

func TestNewComponentLoggerWithExplicitRegistry(t *testing.T) {
	reg := registry.New()
	api := New(reg)
	rec := &recordingLogger{}
	api.SetLogger(rec, LevelAll)

	cl := NewComponentLogger(ComponentLoggerOptions{Namespace: "direct", Registry: reg})
	cl.Debug("hi")

	if rec.count("debug") != 1 {
		t.Errorf("expected the directly constructed logger to read the same slot, got %d calls", rec.count("debug"))
	}
}
