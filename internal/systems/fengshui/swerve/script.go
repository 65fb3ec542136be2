package swerve

// Script replays fixed swerves in order, then falls back to a roller.
//
// Scenario files and replays use it to pin every roll of a mook attack.
type Script struct {
	queue    []Swerve
	fallback *Roller
}

// NewScript returns an oracle that yields swerves in order.
// When the queue runs out, fallback rolls; a nil fallback yields zero swerves.
func NewScript(fallback *Roller, swerves ...Swerve) *Script {
	queue := make([]Swerve, len(swerves))
	copy(queue, swerves)
	return &Script{queue: queue, fallback: fallback}
}

// Push appends swerves to the end of the queue.
func (s *Script) Push(swerves ...Swerve) {
	s.queue = append(s.queue, swerves...)
}

// Remaining reports how many scripted swerves are still queued.
func (s *Script) Remaining() int {
	return len(s.queue)
}

// Swerve returns the next scripted swerve.
func (s *Script) Swerve() Swerve {
	if len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		return next
	}
	if s.fallback != nil {
		return s.fallback.Swerve()
	}
	return Swerve{}
}

// Outcome evaluates an opposed check.
func (s *Script) Outcome(request OutcomeRequest) Outcome {
	return Evaluate(request)
}
