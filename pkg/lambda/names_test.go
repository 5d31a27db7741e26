package lambda

import (
	"sync"
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	if got := r.Lookup("x"); got != "x" {
		t.Errorf("Lookup of an unknown name = %q, want it back unchanged", got)
	}

	r.Record("u1", "x")
	if got := r.Lookup("u1"); got != "x" {
		t.Errorf("Lookup(u1) = %q, want x", got)
	}

	r.Record("u1", "y")
	if got := r.Lookup("u1"); got != "y" {
		t.Errorf("Lookup(u1) after overwrite = %q, want y", got)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}

	r.Reset()
	if got := r.Lookup("u1"); got != "u1" {
		t.Errorf("Lookup(u1) after Reset = %q", got)
	}
}

func TestGeneratorFresh(t *testing.T) {
	r := NewRegistry()
	g := NewGenerator(r)

	u1 := g.Fresh(Var{Name: "x"})
	u2 := g.Fresh(Var{Name: "y"})
	if u1.Name != "u1" || u2.Name != "u2" {
		t.Fatalf("Fresh = %s, %s, want u1, u2", u1.Name, u2.Name)
	}
	if got := r.Lookup("u2"); got != "y" {
		t.Errorf("Lookup(u2) = %q, want y", got)
	}

	// Renaming a generated name records the user name it stands for.
	u3 := g.Fresh(u1)
	if got := r.Lookup(u3.Name); got != "x" {
		t.Errorf("Lookup(%s) = %q, want x", u3.Name, got)
	}

	g.Reset()
	if got := g.Fresh(Var{Name: "z"}); got.Name != "u1" {
		t.Errorf("Fresh after Reset = %s, want u1", got.Name)
	}
}

// TestGeneratorCollision documents that a user name shaped like a
// generated one is not protected.
func TestGeneratorCollision(t *testing.T) {
	r := NewRegistry()
	g := NewGenerator(r)

	user := Var{Name: "u1"}
	if got := g.Fresh(Var{Name: "x"}); got != user {
		t.Errorf("Fresh = %s, want the colliding name u1", got.Name)
	}
}

func TestGeneratorConcurrent(t *testing.T) {
	const workers, perWorker = 16, 200

	r := NewRegistry()
	g := NewGenerator(r)

	names := make(chan string, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				names <- g.Fresh(Var{Name: "x"}).Name
			}
		}()
	}
	wg.Wait()
	close(names)

	seen := make(map[string]bool)
	for name := range names {
		if seen[name] {
			t.Fatalf("duplicate fresh name %s", name)
		}
		seen[name] = true
	}
	if len(seen) != workers*perWorker {
		t.Errorf("got %d names, want %d", len(seen), workers*perWorker)
	}
	if r.Len() != workers*perWorker {
		t.Errorf("registry has %d entries, want %d", r.Len(), workers*perWorker)
	}
	if g.Count() != workers*perWorker {
		t.Errorf("Count = %d, want %d", g.Count(), workers*perWorker)
	}
}

func TestEvaluatorReset(t *testing.T) {
	ev := NewEvaluator(Config{})
	ev.EnableTrace(4)
	ev.Fresh(Var{Name: "x"})
	if ev.Stats().Renames != 1 || len(ev.TraceSnapshot()) != 1 {
		t.Fatalf("Fresh was not counted: %+v", ev.Stats())
	}

	ev.Reset()
	if ev.Stats() != (Stats{}) {
		t.Errorf("Stats after Reset = %+v", ev.Stats())
	}
	if ev.Registry().Len() != 0 || ev.Generator().Count() != 0 {
		t.Errorf("naming context not cleared")
	}
	if n := len(ev.TraceSnapshot()); n != 0 {
		t.Errorf("trace has %d events after Reset", n)
	}
}

func TestTraceCapacity(t *testing.T) {
	ev := NewEvaluator(Config{})
	if ev.TraceSnapshot() != nil {
		t.Fatalf("trace should be off by default")
	}

	ev.EnableTrace(2)
	for i := 0; i < 5; i++ {
		ev.Fresh(Var{Name: "x"})
	}
	trace := ev.TraceSnapshot()
	if len(trace) != 2 {
		t.Fatalf("trace kept %d events, want 2", len(trace))
	}
	if trace[1].Step != 1 || trace[1].Rule != RuleRename || trace[1].Rule.String() != "Rename" {
		t.Errorf("unexpected event %+v", trace[1])
	}

	ev.DisableTrace()
	if ev.TraceSnapshot() != nil {
		t.Errorf("trace should be empty once disabled")
	}
}
