package task

import "testing"

func TestSetPausedClearsRunningAndResumed(t *testing.T) {
	s := Idle.SetRunning().SetResumed()
	s = s.SetPaused()
	if !s.Has(Paused) || !s.Has(Idle) {
		t.Fatalf("expected paused+idle, got %s", s)
	}
	if s.Has(Running) || s.Has(Resumed) {
		t.Fatalf("expected running and resumed cleared, got %s", s)
	}
}

func TestSetResumedClearsPausedAndIdle(t *testing.T) {
	s := Idle.SetPaused().SetResumed()
	if !s.Has(Running) || !s.Has(Resumed) {
		t.Fatalf("expected running+resumed, got %s", s)
	}
	if s.Has(Paused) || s.Has(Idle) {
		t.Fatalf("expected paused and idle cleared, got %s", s)
	}
}

func TestStartedIsSticky(t *testing.T) {
	s := Idle.SetStarted().SetRunning().SetIdle()
	if !s.Has(Started) {
		t.Fatalf("started flag should survive idle/running transitions")
	}
}

func TestAbortedIsSticky(t *testing.T) {
	s := Idle.SetRunning().SetAborted().SetIdle()
	if !s.Has(Aborted) {
		t.Fatalf("aborted flag should survive idle transition")
	}
}
