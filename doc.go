// Package cursorpos tracks mouse and touch interaction on a rectangular
// element hosted in an [Ebitengine] game loop.
//
// A [Tracker] consumes normalized pointer events and produces an
// interaction [State]: element-relative position, whether that position is
// inside the element, whether the interaction is active, and which input
// modalities have been seen. Rendering is left to the caller, which reads
// [Tracker.State] or subscribes through the [Config] callbacks.
//
// # Quick start
//
// The simplest way to try it is [Run], which opens a window, tracks a
// centered region and prints the state every frame:
//
//	region := cursorpos.NewRegion("pad", cursorpos.Rect{X: 120, Y: 90, Width: 400, Height: 300})
//	tracker, _ := cursorpos.NewTracker(cursorpos.DefaultConfig())
//	cursorpos.Run(region, tracker, cursorpos.RunConfig{
//		Title: "Tracker", Width: 640, Height: 480, ShowState: true,
//	})
//
// For full control, mount the tracker on a [Region] and drive a
// [PointerSource] from your own [ebiten.Game]:
//
//	src := cursorpos.NewPointerSource(region, nil)
//	_ = tracker.Mount(region)
//
//	func (g *Game) Update() error {
//		if err := g.src.Update(); err != nil {
//			return err
//		}
//		g.tracker.Update(time.Second / time.Duration(ebiten.TPS()))
//		return nil
//	}
//
// # Activation
//
// Touch presses activate immediately when [Config.IsActivatedOnTouch] is
// set. Otherwise a press must be held for [Config.PressDuration] without
// moving further than [Config.PressMoveThreshold]. Mouse hovers activate
// after a short hover-intent delay, provided the cursor is still inside the
// element when it expires.
//
// Timers only advance through [Tracker.Update], so tests can simulate time
// exactly. Interaction events can also be forwarded to an ECS via the
// cursorpos/ecs module ([Donburi] adapter).
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package cursorpos
