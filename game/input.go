package game

import "wrapsnake/game/types"

// Intent is a decoded key press, already stripped of any frontend details
type Intent int

const (
	IntentNone Intent = iota
	IntentPause
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
)

// Direction maps a turn intent onto a heading
func (i Intent) Direction() (types.Direction, bool) {
	switch i {
	case IntentUp:
		return types.Up, true
	case IntentDown:
		return types.Down, true
	case IntentLeft:
		return types.Left, true
	case IntentRight:
		return types.Right, true
	default:
		return 0, false
	}
}

func (i Intent) String() string {
	switch i {
	case IntentPause:
		return "pause"
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	default:
		return "none"
	}
}
