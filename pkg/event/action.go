package event

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionDrop
	ActionRestart
)

func (a GameAction) String() string {
	switch a {
	case ActionDrop:
		return "drop"
	case ActionRestart:
		return "restart"
	default:
		return "unknown"
	}
}
