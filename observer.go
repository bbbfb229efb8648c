package reflow

import "log"

// Observer receives layout change notifications. Identity is the
// ObserverID string: attaching two observers with the same id keeps only
// the first.
type Observer interface {
	ObserverID() string
	LayoutChanged(scale float64, bounds BackgroundBounds)
}

// Subject is the attach/detach/notify half of the observer protocol. It
// owns no observer state beyond identity and the callback, so detaching is
// all a dependent object needs to do on teardown; the subject holds no
// reference afterwards.
//
// Single-threaded, like the rest of the engine.
type Subject struct {
	observers []Observer
}

// Attach registers an observer. No-op if an observer with the same id is
// already attached.
func (s *Subject) Attach(o Observer) {
	id := o.ObserverID()
	for _, existing := range s.observers {
		if existing.ObserverID() == id {
			return
		}
	}
	s.observers = append(s.observers, o)
}

// Detach removes an observer by id. No-op if not present.
func (s *Subject) Detach(o Observer) {
	id := o.ObserverID()
	for i, existing := range s.observers {
		if existing.ObserverID() == id {
			copy(s.observers[i:], s.observers[i+1:])
			s.observers[len(s.observers)-1] = nil
			s.observers = s.observers[:len(s.observers)-1]
			return
		}
	}
}

// Count returns the number of attached observers.
func (s *Subject) Count() int {
	return len(s.observers)
}

// Notify calls LayoutChanged on every attached observer, in attachment
// order, over a snapshot of the registration list: an observer detached by
// an earlier callback in the same pass is skipped, one attached mid-pass
// waits for the next pass. A panicking observer is logged and isolated; the
// remaining observers are still notified.
func (s *Subject) Notify(scale float64, bounds BackgroundBounds) {
	snapshot := make([]Observer, len(s.observers))
	copy(snapshot, s.observers)
	for _, o := range snapshot {
		if !s.attached(o.ObserverID()) {
			continue
		}
		notifyOne(o, scale, bounds)
	}
}

func (s *Subject) attached(id string) bool {
	for _, o := range s.observers {
		if o.ObserverID() == id {
			return true
		}
	}
	return false
}

func notifyOne(o Observer, scale float64, bounds BackgroundBounds) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("reflow: observer %q panicked during notify: %v", o.ObserverID(), r)
		}
	}()
	o.LayoutChanged(scale, bounds)
}
