// Package ecs bridges cursorpos trackers into a Donburi world.
//
// A tracker with a non-zero EntityID and a store from [NewDonburiStore]
// publishes an [cursorpos.InteractionEvent] for every position, activation
// and environment change. Systems read them from [InteractionEventType],
// either directly or one kind at a time with [OnChange]:
//
//	tracker.EntityID = uint32(entity.Id())
//	tracker.SetEntityStore(ecs.NewDonburiStore(world, cursorpos.ChangeActivation))
//
//	ecs.OnChange(world, cursorpos.ChangeActivation, func(w donburi.World, e cursorpos.InteractionEvent) {
//		highlight(w, e.EntityID, e.State.IsActive)
//	})
//
// Events are delivered when InteractionEventType.ProcessEvents runs, usually
// once per frame from the world's update.
//
// See https://github.com/yohamta/donburi for Donburi itself.
package ecs
