package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSystem struct {
	calls []float64
	order *[]string
	name  string
}

func (s *countingSystem) Update(world *World, dt float64) {
	s.calls = append(s.calls, dt)
	*s.order = append(*s.order, s.name)
}

type pingEvent struct{ n int }

func (pingEvent) Type() EventType { return "ping" }

func TestEntityIDsArePerWorld(t *testing.T) {
	a, b := NewWorld(), NewWorld()

	assert.Equal(t, EntityID(1), a.CreateEntity().ID)
	assert.Equal(t, EntityID(2), a.CreateEntity().ID)
	assert.Equal(t, EntityID(1), b.CreateEntity().ID)
}

func TestComponentsAndTags(t *testing.T) {
	w := NewWorld()
	first := w.CreateEntity()
	second := w.CreateEntity()

	w.AddComponent(second.ID, 7, "second")
	w.AddComponent(first.ID, 7, "first")
	w.TagEntity(second.ID, "viewer")
	w.TagEntity(first.ID, "viewer")

	got, ok := w.GetComponent(first.ID, 7)
	require.True(t, ok)
	assert.Equal(t, "first", got)

	_, ok = w.GetComponent(first.ID, 8)
	assert.False(t, ok)

	tagged := w.GetEntitiesWithTag("viewer")
	require.Len(t, tagged, 2)
	assert.Equal(t, first.ID, tagged[0].ID, "oldest first")
	assert.True(t, tagged[1].Tags["viewer"])

	comp, ok := w.FindComponent("viewer", 7)
	require.True(t, ok)
	assert.Equal(t, "first", comp)

	_, ok = w.FindComponent("map", 7)
	assert.False(t, ok)
}

func TestUnknownEntityIsIgnored(t *testing.T) {
	w := NewWorld()
	w.AddComponent(42, 1, "ghost")
	w.TagEntity(42, "viewer")

	_, ok := w.GetComponent(42, 1)
	assert.False(t, ok)
	assert.Empty(t, w.GetEntitiesWithTag("viewer"))
}

func TestSystemsRunInRegistrationOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	input := &countingSystem{name: "input", order: &order}
	render := &countingSystem{name: "render", order: &order}
	w.AddSystem(input)
	w.AddSystem(render)

	w.Update(0.5)
	w.Update(0.25)

	assert.Equal(t, []string{"input", "render", "input", "render"}, order)
	assert.Equal(t, []float64{0.5, 0.25}, input.calls)
}

func TestEventsReachSubscribersInOrder(t *testing.T) {
	w := NewWorld()
	var seen []int
	w.Events().Subscribe("ping", func(e Event) { seen = append(seen, e.(pingEvent).n) })
	w.Events().Subscribe("ping", func(e Event) { seen = append(seen, -e.(pingEvent).n) })
	w.Events().Subscribe("pong", func(e Event) { t.Fatal("wrong event type delivered") })

	w.EmitEvent(pingEvent{n: 3})

	assert.Equal(t, []int{3, -3}, seen)
}
