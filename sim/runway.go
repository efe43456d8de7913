package sim

// Runway bundles a runway's configuration with the single priority
// resource that arbitrates access to it. The Config's Status field only
// decides whether the runway is considered for new requests at all (it
// must be Available); it is not reported in any log. A closure
// seizes the resource but never edits Status: the resource mechanism
// alone is enough to get correct queuing, with no explicit
// status-change events.
type Runway struct {
	Config   RunwayConfig
	resource *PriorityResource
}

// NewRunway wraps a config in a fresh, idle priority resource.
func NewRunway(cfg RunwayConfig) *Runway {
	return &Runway{Config: cfg, resource: NewPriorityResource()}
}

// SupportsLanding reports whether this runway's mode accepts inbound
// traffic.
func (r *Runway) SupportsLanding() bool {
	return r.Config.Mode == Landing || r.Config.Mode == Mixed
}

// SupportsTakeoff reports whether this runway's mode accepts outbound
// traffic.
func (r *Runway) SupportsTakeoff() bool {
	return r.Config.Mode == Takeoff || r.Config.Mode == Mixed
}

// QueueLen is the current number of waiters, used to pick the
// shortest-queue candidate among runways that qualify.
func (r *Runway) QueueLen() int {
	return r.resource.QueueLen()
}
