package ecs

// EntityID identifies one entity slot. Ids are dense and reused after removal.
type EntityID int

// NoEntity is never a valid id.
const NoEntity EntityID = -1

// Entity is the iteration view of one entity slot.
type Entity struct {
	ID    EntityID
	Name  string
	Alive bool
}
