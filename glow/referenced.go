package glow

// Referenced is implemented by everything whose lifetime is governed by a reference count.
// A freshly constructed value holds one reference owned by its creator. Holders that keep
// a value beyond the call that received it (attachments, shader lists, vertex bindings,
// uniform registrations) take their own reference and drop it when they let go.
type Referenced interface {
	// Ref adds a reference.
	Ref()

	// Unref drops a reference. When the count reaches zero the value is destroyed.
	// Dropping a reference from a destroyed value has no effect.
	Unref()

	// RefCount returns the number of outstanding references.
	//
	// Returns:
	//   - int: the current count (0 once destroyed)
	RefCount() int
}

// refCounter implements Referenced. onRelease runs exactly once, when the count reaches zero.
type refCounter struct {
	count     int
	released  bool
	pinned    bool
	onRelease func()
}

func newRefCounter(onRelease func()) refCounter {
	return refCounter{count: 1, onRelease: onRelease}
}

func (r *refCounter) Ref() {
	if r.released {
		return
	}
	r.count++
}

func (r *refCounter) Unref() {
	if r.released || r.pinned {
		return
	}
	if r.count > 0 {
		r.count--
	}
	if r.count > 0 {
		return
	}
	r.released = true
	if r.onRelease != nil {
		r.onRelease()
	}
}

func (r *refCounter) RefCount() int {
	return r.count
}

// isReleased reports whether the value has been destroyed.
func (r *refCounter) isReleased() bool {
	return r.released
}

// NewReferenced returns a standalone reference count holding one reference, for helper
// types that own glow objects. onRelease runs once, when the count drops to zero.
func NewReferenced(onRelease func()) Referenced {
	r := newRefCounter(onRelease)
	return &r
}
