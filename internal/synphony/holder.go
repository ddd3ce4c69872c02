package synphony

import "sync/atomic"

// Holder publishes the current Snapshot of a curriculum. Readers always see
// a complete snapshot; a reload replaces it only after a successful build.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// Load returns the current snapshot, or nil before the first Store.
func (h *Holder) Load() *Snapshot { return h.current.Load() }

// Store publishes s.
func (h *Holder) Store(s *Snapshot) { h.current.Store(s) }

// Reload runs build and publishes its result. On error the previous
// snapshot stays in place and is returned with the error.
func (h *Holder) Reload(build func() (*Snapshot, error)) (*Snapshot, error) {
	s, err := build()
	if err != nil {
		return h.current.Load(), err
	}
	h.current.Store(s)
	return s, nil
}

// StoreIfEmpty publishes s only when nothing is published yet and returns
// the snapshot that is current afterwards.
func (h *Holder) StoreIfEmpty(s *Snapshot) *Snapshot {
	if h.current.CompareAndSwap(nil, s) {
		return s
	}
	return h.current.Load()
}
