package ecs

import (
	"testing"

	"github.com/yohamta/donburi"
)

type position struct {
	X, Y float64
}

var (
	testPosition = donburi.NewComponentType[position]()
	testMarkerA  = donburi.NewTag()
	testMarkerB  = donburi.NewTag()
)

func TestDespawnTaggedRemovesOnlyTagged(t *testing.T) {
	w := donburi.NewWorld()

	for i := 0; i < 3; i++ {
		Spawn(w, testPosition, testMarkerA)
	}
	for i := 0; i < 2; i++ {
		Spawn(w, testPosition, testMarkerB)
	}
	Spawn(w, testPosition)

	if got := DespawnTagged(w, testMarkerA); got != 3 {
		t.Errorf("DespawnTagged() = %d, expected 3", got)
	}
	if got := Count(w, testMarkerA); got != 0 {
		t.Errorf("%d marker A entities left, expected 0", got)
	}
	if got := Count(w, testMarkerB); got != 2 {
		t.Errorf("marker B entities = %d, expected 2", got)
	}
	if got := Count(w, testPosition); got != 3 {
		t.Errorf("position entities = %d, expected 3", got)
	}
}

func TestDespawnTaggedEmptyWorld(t *testing.T) {
	w := donburi.NewWorld()
	if got := DespawnTagged(w, testMarkerA); got != 0 {
		t.Errorf("DespawnTagged() on empty world = %d, expected 0", got)
	}
}

func TestSingle(t *testing.T) {
	w := donburi.NewWorld()

	if _, ok := Single[position](w, testPosition); ok {
		t.Fatal("Single should report missing component")
	}

	e := Spawn(w, testPosition)
	testPosition.SetValue(e, position{X: 4, Y: 2})

	p, ok := Single[position](w, testPosition)
	if !ok {
		t.Fatal("Single should find the entity")
	}
	if p.X != 4 || p.Y != 2 {
		t.Errorf("Single() = %+v, expected {4 2}", *p)
	}

	p.X = 9
	if testPosition.Get(e).X != 9 {
		t.Error("Single should return a pointer into the world")
	}
}

func TestCollect(t *testing.T) {
	w := donburi.NewWorld()
	a := Spawn(w, testPosition, testMarkerA).Entity()
	Spawn(w, testPosition)

	got := Collect(w, testPosition, testMarkerA)
	if len(got) != 1 || got[0] != a {
		t.Errorf("Collect() = %v, expected [%v]", got, a)
	}
}
