package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (r *recordingState) Enter()             { *r.log = append(*r.log, r.name+".Enter") }
func (r *recordingState) Update(float64)     { *r.log = append(*r.log, r.name+".Update") }
func (r *recordingState) Draw(*ebiten.Image) {}
func (r *recordingState) Exit()              { *r.log = append(*r.log, r.name+".Exit") }

func TestStateMachine_Transitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(1) // без состояния ничего не происходит

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(1)
	sm.SetState(b)
	sm.SetState(nil)

	want := []string{"a.Enter", "a.Update", "a.Exit", "b.Enter", "b.Exit"}
	if len(log) != len(want) {
		t.Fatalf("got %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("step %d: got %q, want %q", i, log[i], want[i])
		}
	}
	if sm.Current() != nil {
		t.Error("current state not cleared")
	}
}
