package datastructure

// DirectionModifier is the coarse directional label of a maneuver, ordered
// counter-clockwise starting at the u-turn.
type DirectionModifier uint8

const (
	UTurn DirectionModifier = iota
	SharpRight
	Right
	SlightRight
	Straight
	SlightLeft
	Left
	SharpLeft
	MaxDirectionModifier
)

func (d DirectionModifier) String() string {
	switch d {
	case UTurn:
		return "uturn"
	case SharpRight:
		return "sharp right"
	case Right:
		return "right"
	case SlightRight:
		return "slight right"
	case Straight:
		return "straight"
	case SlightLeft:
		return "slight left"
	case Left:
		return "left"
	case SharpLeft:
		return "sharp left"
	default:
		return "invalid"
	}
}

// mirroredModifiers maps every modifier to its left/right mirror image.
// UTurn and Straight map onto themselves.
var mirroredModifiers = [MaxDirectionModifier]DirectionModifier{
	UTurn,
	SharpLeft,
	Left,
	SlightLeft,
	Straight,
	SlightRight,
	Right,
	SharpRight,
}

func (d DirectionModifier) Mirror() DirectionModifier {
	return mirroredModifiers[d]
}

// TurnType is the semantic category of a maneuver.
type TurnType uint8

const (
	TurnNone TurnType = iota
	TurnInvalid
	TurnNoTurn
	TurnSuppressed
	TurnNewName
	TurnContinue
	TurnBasic
	TurnEndOfRoad
	TurnFork
	TurnOnRamp
	TurnNotification
)

func (t TurnType) String() string {
	switch t {
	case TurnNone:
		return "none"
	case TurnInvalid:
		return "invalid"
	case TurnNoTurn:
		return "no turn"
	case TurnSuppressed:
		return "suppressed"
	case TurnNewName:
		return "new name"
	case TurnContinue:
		return "continue"
	case TurnBasic:
		return "turn"
	case TurnEndOfRoad:
		return "end of road"
	case TurnFork:
		return "fork"
	case TurnOnRamp:
		return "on ramp"
	case TurnNotification:
		return "notification"
	default:
		return "invalid"
	}
}

type TurnInstruction struct {
	turnType          TurnType
	directionModifier DirectionModifier
}

func NewTurnInstruction(turnType TurnType, modifier DirectionModifier) TurnInstruction {
	return TurnInstruction{
		turnType:          turnType,
		directionModifier: modifier,
	}
}

func (t TurnInstruction) GetTurnType() TurnType {
	return t.turnType
}

func (t TurnInstruction) GetDirectionModifier() DirectionModifier {
	return t.directionModifier
}

// IsAssigned reports whether the classifier already produced an instruction
// for this road.
func (t TurnInstruction) IsAssigned() bool {
	return t.turnType != TurnNone
}
