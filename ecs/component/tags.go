package component

// Edited marks the placer currently attached to the cursor.
type Edited struct{}

var EditedComponent = NewComponent[Edited]()

// AttachCandidate marks a placer whose collider overlaps another part.
type AttachCandidate struct{}

var AttachCandidateComponent = NewComponent[AttachCandidate]()
