package pointerfx

// Zone binds an Element's enter/leave to a directive descriptor.
//
// On enter the zone replaces the live directive with its resolved
// descriptor. On leave it resets the directive to default unconditionally,
// even if the pointer is still inside an enclosing zone: the last zone whose
// enter or leave fired wins.
//
// A zone only writes to the store; it never owns it, and its writes are
// dropped while the store's zone writes are switched off. Every attach has
// exactly one reachable detach: Update, Retarget, Dispose, engine suspension
// and the element unmounting all remove the listeners they replace.
//
// If the element implements Unmounter, the zone follows it: removal from the
// surface releases the directive, and disposal disposes the zone (or, for a
// zone bound through a Ref, leaves it inert until the ref is set again).
type Zone struct {
	store *Store
	desc  Descriptor

	target   Element
	ref      *Ref
	refWatch uint32

	enterH   CallbackHandle
	leaveH   CallbackHandle
	unmountH CallbackHandle

	suspended bool
	disposed  bool

	// engine hooks; nil for zones bound directly to a store
	onDispose func(*Zone)
}

// BindZone binds target to desc, writing into store. A nil target (including
// a nil *Region) yields an inert zone rather than an error; call Retarget once
// the element exists.
func BindZone(store *Store, target Element, desc Descriptor) *Zone {
	z := newZone(store, desc, target, nil)
	z.attach()
	return z
}

// BindZoneRef binds whatever element ref holds, now or later. The zone
// follows the ref: setting a new element detaches from the old one first.
func BindZoneRef(store *Store, ref *Ref, desc Descriptor) *Zone {
	z := newZone(store, desc, nil, ref)
	z.attach()
	return z
}

func newZone(store *Store, desc Descriptor, target Element, ref *Ref) *Zone {
	z := &Zone{store: store, desc: desc, target: target}
	if ref != nil {
		z.ref = ref
		z.target = ref.El()
		z.refWatch = ref.watch(z.Retarget)
	}
	return z
}

// Descriptor returns the descriptor the zone is bound with.
func (z *Zone) Descriptor() Descriptor {
	return z.desc
}

// Directive returns the directive the zone installs on enter.
func (z *Zone) Directive() Directive {
	return z.desc.Resolve()
}

// Attached reports whether enter/leave listeners are currently registered on
// an element.
func (z *Zone) Attached() bool {
	return z.enterH.list != nil || z.leaveH.list != nil
}

// Engaged reports whether this zone wrote the live directive.
func (z *Zone) Engaged() bool {
	return z.store != nil && z.store.owner == z
}

// Disposed reports whether Dispose has been called.
func (z *Zone) Disposed() bool {
	return z.disposed
}

// Update rebinds the zone to a new descriptor. An unchanged descriptor is a
// no-op; otherwise the old listeners are removed before new ones capturing
// the new descriptor are attached. If the zone is engaged, the live
// directive is refreshed in place.
func (z *Zone) Update(desc Descriptor) {
	if z.disposed || desc == z.desc {
		return
	}
	engaged := z.Engaged()
	z.detach()
	z.desc = desc
	z.attach()
	if engaged && !z.suspended {
		z.store.zoneWrite(desc.Resolve(), z)
	}
}

// Retarget moves the zone to another element, detaching from the current
// one first. Passing nil leaves the zone inert; if it was engaged the
// directive is reset, because its element is gone.
func (z *Zone) Retarget(el Element) {
	if z.disposed {
		return
	}
	z.detach()
	z.releaseOwnership()
	z.target = el
	z.attach()
}

// Dispose removes the zone's listeners. If the zone wrote the live directive,
// the directive is reset so the zone's state cannot outlive it. Dispose is
// idempotent.
func (z *Zone) Dispose() {
	if z.disposed {
		return
	}
	z.detach()
	z.releaseOwnership()
	if z.ref != nil {
		z.ref.unwatch(z.refWatch)
		z.ref = nil
	}
	z.disposed = true
	z.target = nil
	if z.onDispose != nil {
		z.onDispose(z)
	}
}

func (z *Zone) suspend() {
	z.suspended = true
	z.detach()
}

func (z *Zone) resume() {
	if z.disposed || !z.suspended {
		return
	}
	z.suspended = false
	z.attach()
}

func (z *Zone) attach() {
	if z.target == nil || z.suspended || z.disposed || z.Attached() {
		return
	}
	// The handlers capture this resolution; Update must detach and reattach.
	resolved := z.desc.Resolve()
	z.enterH = z.target.OnPointerEnter(func(PointerEvent) {
		z.store.zoneWrite(resolved, z)
	})
	z.leaveH = z.target.OnPointerLeave(func(PointerEvent) {
		z.store.zoneReset()
	})
	if u, ok := z.target.(Unmounter); ok {
		z.unmountH = u.OnUnmount(z.unmounted)
	}
}

func (z *Zone) detach() {
	z.enterH.Remove()
	z.leaveH.Remove()
	z.unmountH.Remove()
	z.enterH = CallbackHandle{}
	z.leaveH = CallbackHandle{}
	z.unmountH = CallbackHandle{}
}

func (z *Zone) unmounted(ev PointerEvent) {
	if ev.Region != nil && !ev.Region.IsDisposed() {
		// Removed from the surface but may be added back.
		z.releaseOwnership()
		return
	}
	if z.ref != nil {
		z.Retarget(nil)
		return
	}
	z.Dispose()
}

func (z *Zone) releaseOwnership() {
	if z.Engaged() {
		z.store.ResetDirective()
	}
}
