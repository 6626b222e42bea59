package ecs

import (
	"github.com/phanxgames/cursorpos"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType carries tracker changes through a Donburi world.
var InteractionEventType = events.NewEventType[cursorpos.InteractionEvent]()

// trackerStore publishes tracker changes whose kind is in kinds.
type trackerStore struct {
	world donburi.World
	kinds kindSet
}

// kindSet is a bitmask of cursorpos.ChangeKind values.
type kindSet uint8

func newKindSet(kinds []cursorpos.ChangeKind) kindSet {
	if len(kinds) == 0 {
		return ^kindSet(0)
	}
	var s kindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

func (s kindSet) has(k cursorpos.ChangeKind) bool {
	return s&(1<<k) != 0
}

// NewDonburiStore returns an EntityStore that publishes tracker changes to
// InteractionEventType in world. With no kinds every change is published;
// otherwise only the listed kinds are, so a system that only reacts to
// activation is not woken by every pointer move.
//
// Events queue until InteractionEventType.ProcessEvents runs.
func NewDonburiStore(world donburi.World, kinds ...cursorpos.ChangeKind) cursorpos.EntityStore {
	return &trackerStore{world: world, kinds: newKindSet(kinds)}
}

func (s *trackerStore) EmitEvent(event cursorpos.InteractionEvent) {
	if !s.kinds.has(event.Kind) {
		return
	}
	InteractionEventType.Publish(s.world, event)
}

// OnChange subscribes fn to tracker changes of one kind in world.
func OnChange(world donburi.World, kind cursorpos.ChangeKind, fn func(donburi.World, cursorpos.InteractionEvent)) {
	InteractionEventType.Subscribe(world, func(w donburi.World, e cursorpos.InteractionEvent) {
		if e.Kind == kind {
			fn(w, e)
		}
	})
}

// ActiveEntities returns the IDs whose latest activation event in events
// reports active, in first-seen order. Pass the events a system collected
// during one ProcessEvents call.
func ActiveEntities(evs []cursorpos.InteractionEvent) []uint32 {
	var order []uint32
	active := make(map[uint32]bool)
	for _, e := range evs {
		if e.Kind != cursorpos.ChangeActivation {
			continue
		}
		if _, seen := active[e.EntityID]; !seen {
			order = append(order, e.EntityID)
		}
		active[e.EntityID] = e.State.IsActive
	}
	out := order[:0]
	for _, id := range order {
		if active[id] {
			out = append(out, id)
		}
	}
	return out
}
