package bag

import "math/rand"

// Contains reports whether l is currently in the Bag.
func (b *Bag[T]) Contains(l T) bool {
	return b.indices[int32(l)] != empty
}

// Add inserts l into the Bag. Panics with ErrAlreadyPresent if l is
// already present — per spec this is a programming error, never a
// move-rejection outcome.
func (b *Bag[T]) Add(l T) {
	if b.Contains(l) {
		panic(ErrAlreadyPresent)
	}
	b.indices[int32(l)] = int32(b.size)
	b.elements[b.size] = l
	b.size++
}

// Remove deletes l from the Bag, moving the last element into its
// slot to keep elements dense. Panics with ErrNotPresent if l is
// absent.
func (b *Bag[T]) Remove(l T) {
	if !b.Contains(l) {
		panic(ErrNotPresent)
	}
	b.size--
	idx := b.indices[int32(l)]
	last := b.elements[b.size]

	b.elements[idx] = last
	b.indices[int32(last)] = idx
	b.indices[int32(l)] = empty
}

// UniformPick returns a uniformly random element of the Bag using rng.
// Panics with ErrEmpty if the Bag has no elements. The PRNG is always
// supplied by the caller (package simulation or package universe),
// never stored on the Bag, so every subsystem can run its own
// independent, seeded stream.
func (b *Bag[T]) UniformPick(rng *rand.Rand) T {
	if b.size == 0 {
		panic(ErrEmpty)
	}
	return b.elements[rng.Intn(b.size)]
}

// Elements returns the Bag's live labels, in no particular order. The
// returned slice aliases no internal state past the call — callers
// that need a live view should re-call Elements after any mutation.
func (b *Bag[T]) Elements() []T {
	out := make([]T, b.size)
	copy(out, b.elements[:b.size])
	return out
}
