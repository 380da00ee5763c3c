package pointerfx

// Ref is a reference to an Element that is filled in once the element is
// mounted. Zones bound to an empty Ref stay inert and attach when Set is
// called, which lets callers create bindings before the element exists.
type Ref struct {
	value    Element
	watchers handlerList[Element]
	nextID   uint32
}

// NewRef creates a new empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

// Set stores the element and notifies every zone bound to this ref. Setting
// nil unmounts.
func (r *Ref) Set(el Element) {
	r.value = el
	r.watchers.emit(el)
}

// El returns the referenced element, or nil if not yet set.
func (r *Ref) El() Element {
	if r == nil {
		return nil
	}
	return r.value
}

// IsSet reports whether the ref holds an element.
func (r *Ref) IsSet() bool {
	return r != nil && r.value != nil
}

func (r *Ref) watch(fn func(Element)) uint32 {
	r.nextID++
	r.watchers.add(r.nextID, fn)
	return r.nextID
}

func (r *Ref) unwatch(id uint32) {
	r.watchers.remove(id)
}
