// Package pointstore owns the native-style curve point objects and hands out
// generation-checked references to them.
//
// The store replaces the raw-pointer handles of a C binding layer with an
// arena: a reference encodes a slot index and a per-slot generation counter.
// Freeing a slot bumps the generation, so a stale reference (double free, use
// after free, or a value that was never issued) fails the generation check
// and surfaces as an error instead of corrupting memory.
package pointstore

import (
	"errors"
	"sync"

	"github.com/coinbase/ecf2m-go/pkg/ecf2m/field"
)

// ErrStale reports a reference that is unknown, already freed, or from
// another store.
var ErrStale = errors.New("pointstore: stale or unknown point reference")

// Ref is an opaque reference to a stored point: slot index in the high 32
// bits, slot generation in the low 32. The zero Ref is never issued.
type Ref uint64

// Object is a mutable curve point as the native layer would hold it: affine
// coordinates, the infinity sentinel, and the membership flag recorded at
// construction time. An Object whose OnCurve flag is false is in an
// indeterminate state and must not be used for arithmetic.
type Object struct {
	X, Y     *field.Element
	Infinity bool
	OnCurve  bool
}

// Zeroize wipes the coordinate buffers.
func (o *Object) Zeroize() {
	o.X.Zeroize()
	o.Y.Zeroize()
}

type slot struct {
	gen  uint32
	obj  *Object
	live bool
}

// Store is a mutex-guarded arena of point objects. The lock covers only
// reference bookkeeping; the objects themselves follow the session's
// single-caller discipline.
type Store struct {
	mu    sync.Mutex
	slots []slot
	free  []uint32
}

func New() *Store {
	return &Store{}
}

// Put stores obj and returns its reference.
func (s *Store) Put(obj *Object) Ref {
	s.mu.Lock()
	defer s.mu.Unlock()

	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}

	sl := &s.slots[idx]
	sl.gen++
	if sl.gen == 0 {
		// Generation 0 is reserved so the zero Ref stays invalid.
		sl.gen = 1
	}
	sl.obj = obj
	sl.live = true
	return Ref(uint64(idx)<<32 | uint64(sl.gen))
}

// Get returns the object behind r, or ErrStale.
func (s *Store) Get(r Ref) (*Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, err := s.lookup(r)
	if err != nil {
		return nil, err
	}
	return sl.obj, nil
}

// Free releases the slot behind r and returns the evicted object so the
// caller can wipe it. A second Free with the same reference returns ErrStale.
func (s *Store) Free(r Ref) (*Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, err := s.lookup(r)
	if err != nil {
		return nil, err
	}
	obj := sl.obj
	sl.obj = nil
	sl.live = false
	sl.gen++
	s.free = append(s.free, uint32(r>>32))
	return obj, nil
}

// Drain releases every live slot and returns the evicted objects.
func (s *Store) Drain() []*Object {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Object
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.live {
			continue
		}
		out = append(out, sl.obj)
		sl.obj = nil
		sl.live = false
		sl.gen++
		s.free = append(s.free, uint32(i))
	}
	return out
}

// Len returns the number of live objects.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for i := range s.slots {
		if s.slots[i].live {
			n++
		}
	}
	return n
}

func (s *Store) lookup(r Ref) (*slot, error) {
	idx := uint32(r >> 32)
	gen := uint32(r)
	if int(idx) >= len(s.slots) {
		return nil, ErrStale
	}
	sl := &s.slots[idx]
	if !sl.live || sl.gen != gen {
		return nil, ErrStale
	}
	return sl, nil
}
