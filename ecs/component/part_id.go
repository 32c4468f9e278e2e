package component

import "github.com/google/uuid"

type PartID struct {
	ID uuid.UUID
}

func NewPartID() PartID {
	return PartID{ID: uuid.New()}
}

var PartIDComponent = NewComponent[PartID]()
