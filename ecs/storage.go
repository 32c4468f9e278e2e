package ecs

import "github.com/CindyYangCS/CircuitCider/ecs/component"

// componentStore is the type-erased view of a sparseSet used when the world
// needs to touch every store, e.g. on entity destruction.
type componentStore interface {
	has(id entityID) bool
	remove(id entityID) bool
	len() int
}

func storeFor[T any](w *World, kind component.ComponentKind[T]) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	raw, ok := w.stores[kind.ID()]
	if !ok {
		return nil
	}
	s, _ := raw.(*sparseSet[T])
	return s
}

func ensureStore[T any](w *World, kind component.ComponentKind[T]) *sparseSet[T] {
	if s := storeFor(w, kind); s != nil {
		return s
	}
	s := newSparseSet[T]()
	w.stores[kind.ID()] = s
	return s
}
