package pointerfx

// handler is one registered callback tagged with the id its handle removes.
type handler[T any] struct {
	id uint32
	fn func(T)
}

// handlerList is an ordered set of callbacks. Removal during emit is safe:
// the slot is nilled and compacted once the outermost emit returns, so no
// callback is skipped or called twice.
type handlerList[T any] struct {
	entries  []handler[T]
	emitting int
	holes    bool
}

func (l *handlerList[T]) add(id uint32, fn func(T)) {
	l.entries = append(l.entries, handler[T]{id: id, fn: fn})
}

// remove unregisters id and reports whether it was present.
func (l *handlerList[T]) remove(id uint32) bool {
	for i := range l.entries {
		if l.entries[i].id != id || l.entries[i].fn == nil {
			continue
		}
		if l.emitting > 0 {
			l.entries[i].fn = nil
			l.holes = true
			return true
		}
		copy(l.entries[i:], l.entries[i+1:])
		l.entries[len(l.entries)-1] = handler[T]{}
		l.entries = l.entries[:len(l.entries)-1]
		return true
	}
	return false
}

func (l *handlerList[T]) emit(v T) {
	l.emitting++
	// Handlers added during emit are not called until the next emit.
	n := len(l.entries)
	for i := 0; i < n && i < len(l.entries); i++ {
		if fn := l.entries[i].fn; fn != nil {
			fn(v)
		}
	}
	l.emitting--
	if l.emitting == 0 && l.holes {
		l.compact()
	}
}

func (l *handlerList[T]) compact() {
	kept := l.entries[:0]
	for _, h := range l.entries {
		if h.fn != nil {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(l.entries); i++ {
		l.entries[i] = handler[T]{}
	}
	l.entries = kept
	l.holes = false
}

// len returns the number of live callbacks.
func (l *handlerList[T]) len() int {
	n := 0
	for _, h := range l.entries {
		if h.fn != nil {
			n++
		}
	}
	return n
}

func (l *handlerList[T]) clear() {
	if l.emitting > 0 {
		for i := range l.entries {
			l.entries[i].fn = nil
		}
		l.holes = true
		return
	}
	clear(l.entries)
	l.entries = l.entries[:0]
}
