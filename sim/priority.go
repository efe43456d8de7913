// sim/priority.go
package sim

import "container/heap"

// PriorityKey is the two-level key for ordering waiters on a
// PriorityResource: lower priority class wins, ties within a class
// resolve in request order (fifoSeq).
type PriorityKey struct {
	Class   int
	FIFOSeq int
}

// less reports whether k sorts before other (k is served first).
func (k PriorityKey) less(other PriorityKey) bool {
	if k.Class != other.Class {
		return k.Class < other.Class
	}
	return k.FIFOSeq < other.FIFOSeq
}

// Priority classes, lowest value served first.
const (
	PriorityClassClosure   = -1
	PriorityClassEmergency = 0
	PriorityClassNormal    = 1
)

// Reservation is a request handle on a PriorityResource. It is granted
// exactly once, either synchronously (idle resource) or later when the
// holder releases and this reservation is the minimum-keyed waiter.
type Reservation struct {
	key       PriorityKey
	granted   bool
	cancelled bool
	onGrant   func(now float64)
}

// Granted reports whether the reservation currently holds the resource.
func (r *Reservation) Granted() bool { return r.granted }

// waiterHeap orders pending reservations by PriorityKey.
type waiterHeap []*Reservation

func (h waiterHeap) Len() int           { return len(h) }
func (h waiterHeap) Less(i, j int) bool { return h[i].key.less(h[j].key) }
func (h waiterHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *waiterHeap) Push(x any)        { *h = append(*h, x.(*Reservation)) }
func (h *waiterHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// PriorityResource is a unit-capacity resource: at most one holder at a
// time, waiters queued by PriorityKey, FIFO within a class.
type PriorityResource struct {
	busy    bool
	holder  *Reservation
	waiters waiterHeap
}

// NewPriorityResource returns an idle resource.
func NewPriorityResource() *PriorityResource {
	return &PriorityResource{}
}

// QueueLen reports the number of waiters not yet granted, used by
// shortest-queue runway selection.
func (p *PriorityResource) QueueLen() int {
	n := 0
	for _, r := range p.waiters {
		if !r.cancelled {
			n++
		}
	}
	return n
}

// Request asks for the resource under the given key. onGrant is invoked
// exactly once: synchronously, before Request returns, if the resource is
// idle; otherwise later, from a Release call, once this is the
// minimum-keyed waiter. The returned Reservation reports Granted()
// immediately if it fired synchronously.
func (p *PriorityResource) Request(key PriorityKey, onGrant func(now float64)) *Reservation {
	r := &Reservation{key: key, onGrant: onGrant}
	if !p.busy {
		p.busy = true
		p.holder = r
		r.granted = true
		return r
	}
	heap.Push(&p.waiters, r)
	return r
}

// Release gives up the resource. It is only legal to call this on the
// current holder. It grants at most one waiter, the minimum-keyed one not
// already cancelled, immediately and synchronously. now is the simulated
// time at which the grant takes effect (used to schedule the new holder's
// service timer).
func (p *PriorityResource) Release(r *Reservation, now float64) {
	if p.holder != r {
		panic("runwaysim: release of a reservation that is not the current holder")
	}
	p.holder = nil
	p.busy = false
	for p.waiters.Len() > 0 {
		next := heap.Pop(&p.waiters).(*Reservation)
		if next.cancelled {
			continue
		}
		p.busy = true
		p.holder = next
		next.granted = true
		next.onGrant(now)
		return
	}
}

// Cancel withdraws a not-yet-granted reservation from the wait queue.
// Cancelling an already-granted reservation releases it instead, covering
// the case where a grant and a timeout land at the same simulated instant.
func (p *PriorityResource) Cancel(r *Reservation, now float64) {
	if r.granted {
		p.Release(r, now)
		return
	}
	r.cancelled = true
}
