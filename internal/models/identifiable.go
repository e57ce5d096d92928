package models

// Identifiable is implemented by every persisted entity
type Identifiable interface {
	GetID() uint
	SetID(id uint)
}
