package ecs

type System interface {
	Update(w *World)
}

// Scheduler runs its systems in insertion order and then applies the
// commands they queued.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs one frame and returns the entities spawned by queued commands.
func (s *Scheduler) Update(w *World) []Entity {
	if w == nil {
		return nil
	}
	for _, system := range s.systems {
		system.Update(w)
	}
	return ApplyCommands(w)
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
