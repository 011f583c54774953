package game

import "testing"

func TestPendingEditCommitsOnce(t *testing.T) {
	sim := newTestSimulation(t, 50)
	var edit PendingEdit

	// A drag across several frames only previews the value
	for _, v := range []float32{60, 120, 300, 250} {
		edit.Set(v)
		if got := edit.Value(float32(sim.Params().Count)); got != v {
			t.Fatalf("preview = %v, want %v", got, v)
		}
	}
	if sim.Params().Count != 50 || len(sim.Particles()) != 50 {
		t.Fatalf("count changed during drag: %d", sim.Params().Count)
	}

	applied := 0
	ok := edit.Commit(func(v float32) {
		applied++
		sim.SetParticleCount(int(v))
	})
	if !ok || applied != 1 {
		t.Fatalf("commit ok = %v, applied %d times", ok, applied)
	}
	if got := len(sim.Particles()); got != 250 {
		t.Errorf("particles after release = %d, want 250", got)
	}

	if edit.Commit(func(float32) { applied++ }) || applied != 1 {
		t.Error("second commit applied again")
	}
	if edit.Active() {
		t.Error("edit still active after commit")
	}
	if got := edit.Value(7); got != 7 {
		t.Errorf("idle value = %v, want current 7", got)
	}
}
