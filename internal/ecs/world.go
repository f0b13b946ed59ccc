// Package ecs holds small helpers over the donburi entity world that the
// game's systems share: tag-based bulk despawn, counting and singleton lookup.
package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// DespawnTagged removes every entity carrying tag and returns how many
// were removed. Entities are collected first so the world is never mutated
// while a query iterates it.
func DespawnTagged(w donburi.World, tag donburi.IComponentType) int {
	doomed := Collect(w, tag)
	for _, e := range doomed {
		w.Remove(e)
	}
	return len(doomed)
}

// Collect returns the entities carrying every listed component.
func Collect(w donburi.World, components ...donburi.IComponentType) []donburi.Entity {
	var out []donburi.Entity
	donburi.NewQuery(filter.Contains(components...)).Each(w, func(e *donburi.Entry) {
		out = append(out, e.Entity())
	})
	return out
}

// Count returns the number of entities carrying every listed component.
func Count(w donburi.World, components ...donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(components...)).Count(w)
}

// Getter is satisfied by every donburi component type holding a T.
type Getter[T any] interface {
	donburi.IComponentType
	Get(entry *donburi.Entry) *T
}

// Single returns the component value of the first entity carrying c.
// Resources such as shared spawn timers live on exactly one entity.
func Single[T any](w donburi.World, c Getter[T]) (*T, bool) {
	entry, ok := donburi.NewQuery(filter.Contains(c)).First(w)
	if !ok {
		return nil, false
	}
	return c.Get(entry), true
}

// Spawn creates an entity with the given components and returns its entry.
func Spawn(w donburi.World, components ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(components...))
}
