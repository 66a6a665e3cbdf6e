package ecs

// EntityID is a unique identifier for an entity within a World
type EntityID uint64

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is the base interface for all components
type Component interface{}

// ComponentMap stores components by their type ID
type ComponentMap map[ComponentID]Component

// Entity is a tagged handle; its data lives in the World's component maps
type Entity struct {
	ID   EntityID
	Tags map[string]bool
}
