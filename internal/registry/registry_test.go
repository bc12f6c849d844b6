package registry

import (
	"context"
	"testing"

	"github.com/vovakirdan/riverraid/internal/session"
)

func stubLauncher(context.Context, SessionFactory) (session.Result, error) {
	return session.Result{Reason: session.ReasonQuit}, nil
}

func reset(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := backends
	backends = make(map[string]entry)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		backends = saved
		mu.Unlock()
	})
}

func TestRegisterAndLookup(t *testing.T) {
	reset(t)
	Register("zeta", "last", stubLauncher)
	Register("alpha", "first", stubLauncher)

	if !Exists("alpha") || Exists("missing") {
		t.Error("Exists mismatch")
	}

	list := List()
	if len(list) != 2 || list[0].Name != "alpha" || list[1].Name != "zeta" {
		t.Errorf("List() = %+v, expected alpha, zeta", list)
	}
	if list[0].Description != "first" {
		t.Errorf("Description = %q, expected first", list[0].Description)
	}

	l, err := Lookup("zeta")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	res, _ := l(context.Background(), nil)
	if res.Reason != session.ReasonQuit {
		t.Errorf("launcher result = %+v", res)
	}
}

func TestLookupUnknown(t *testing.T) {
	reset(t)
	if _, err := Lookup("nope"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	reset(t)
	Register("tea", "", stubLauncher)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("tea", "", stubLauncher)
}
