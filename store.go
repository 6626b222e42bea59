package cursorpos

// EntityStore is the interface for optional ECS integration.
// When set on a Tracker with a non-zero EntityID, every change notification
// is also forwarded as an InteractionEvent.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// ChangeKind identifies which state slice an InteractionEvent reports.
type ChangeKind uint8

const (
	ChangePosition    ChangeKind = iota // position, dimensions or inside/outside
	ChangeActivation                    // IsActive was set
	ChangeEnvironment                   // a modality was detected for the first time
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePosition:
		return "position"
	case ChangeActivation:
		return "activation"
	case ChangeEnvironment:
		return "environment"
	default:
		return "unknown"
	}
}

// InteractionEvent carries a state change for the ECS bridge.
type InteractionEvent struct {
	Kind     ChangeKind
	EntityID uint32
	State    State
}
