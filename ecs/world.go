package ecs

import "sort"

// System defines an interface for processing entities once per frame
type System interface {
	Update(world *World, dt float64)
}

// World manages all entities, their components and the systems that run on them
type World struct {
	nextID     EntityID
	entities   map[EntityID]*Entity
	components map[EntityID]ComponentMap
	systems    []System
	entityTags map[string]map[EntityID]bool
	events     *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:   make(map[EntityID]*Entity),
		components: make(map[EntityID]ComponentMap),
		entityTags: make(map[string]map[EntityID]bool),
		events:     NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	w.nextID++
	entity := &Entity{
		ID:   w.nextID,
		Tags: make(map[string]bool),
	}
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}
	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.Tags[tag] = true
	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all entities with a specific tag, oldest first
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0, len(w.entityTags[tag]))
	for entityID := range w.entityTags[tag] {
		if entity, ok := w.entities[entityID]; ok {
			entities = append(entities, entity)
		}
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
	return entities
}

// FindComponent returns the given component of the oldest entity carrying tag
func (w *World) FindComponent(tag string, componentID ComponentID) (Component, bool) {
	for _, entity := range w.GetEntitiesWithTag(tag) {
		if comp, ok := w.GetComponent(entity.ID, componentID); ok {
			return comp, true
		}
	}
	return nil, false
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs every system in registration order
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// Events returns the world's event manager
func (w *World) Events() *EventManager {
	return w.events
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.events.Emit(event)
}
