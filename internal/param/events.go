package param

import "weak"

// EventKind classifies change notifications.
type EventKind int

const (
	// ValueChanged reports that the value behind one access changed.
	ValueChanged EventKind = iota
	// StructureChanged reports that parameters or children were added or removed.
	StructureChanged
	// UIChanged reports a change in presentation metadata only.
	UIChanged
)

func (k EventKind) String() string {
	switch k {
	case ValueChanged:
		return "value-changed"
	case StructureChanged:
		return "structure-changed"
	case UIChanged:
		return "ui-changed"
	default:
		return "unknown"
	}
}

// Event is a single change notification.
type Event struct {
	Kind EventKind
	// Key is the local key of the changed access for ValueChanged events.
	Key string
	// Source is the collection that emitted the event first.
	Source Collection
}

// Listener receives events synchronously.
type Listener func(Event)

type listenerBox struct {
	fn Listener
}

type entry struct {
	id     uint64
	strong *listenerBox
	weak   weak.Pointer[listenerBox]
}

func (e entry) load() *listenerBox {
	if e.strong != nil {
		return e.strong
	}
	return e.weak.Value()
}

// Emitter fans events out to its subscribers in subscription order.
// The zero value is ready to use.
type Emitter struct {
	entries []entry
	nextID  uint64
}

// Subscription is the token returned by Subscribe. Dropping the token of a
// weak subscription ends delivery once the garbage collector reclaims it;
// Unsubscribe ends delivery immediately for both kinds.
type Subscription struct {
	emitter *Emitter
	id      uint64
	box     *listenerBox
}

// Subscribe registers fn and keeps it alive until Unsubscribe is called.
func (e *Emitter) Subscribe(fn Listener) *Subscription {
	box := &listenerBox{fn: fn}
	return e.add(entry{strong: box}, box)
}

// SubscribeWeak registers fn without retaining it. The emitter only keeps a
// weak pointer; the returned token holds the listener alive.
func (e *Emitter) SubscribeWeak(fn Listener) *Subscription {
	box := &listenerBox{fn: fn}
	return e.add(entry{weak: weak.Make(box)}, box)
}

func (e *Emitter) add(en entry, box *listenerBox) *Subscription {
	e.prune()
	e.nextID++
	en.id = e.nextID
	e.entries = append(e.entries, en)
	return &Subscription{emitter: e, id: en.id, box: box}
}

// Emit delivers ev to every live subscriber. Subscribers added or removed
// during delivery take effect for the next event.
func (e *Emitter) Emit(ev Event) {
	snapshot := make([]*listenerBox, 0, len(e.entries))
	for _, en := range e.entries {
		if box := en.load(); box != nil {
			snapshot = append(snapshot, box)
		}
	}
	e.prune()
	for _, box := range snapshot {
		if box.fn != nil {
			box.fn(ev)
		}
	}
}

// Len returns the number of live subscribers.
func (e *Emitter) Len() int {
	e.prune()
	return len(e.entries)
}

func (e *Emitter) prune() {
	live := e.entries[:0]
	for _, en := range e.entries {
		if en.load() != nil {
			live = append(live, en)
		}
	}
	for i := len(live); i < len(e.entries); i++ {
		e.entries[i] = entry{}
	}
	e.entries = live
}

func (e *Emitter) remove(id uint64) {
	for i, en := range e.entries {
		if en.id == id {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			return
		}
	}
}

// Unsubscribe stops delivery. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.emitter == nil {
		return
	}
	s.box.fn = nil
	s.emitter.remove(s.id)
	s.emitter = nil
}
