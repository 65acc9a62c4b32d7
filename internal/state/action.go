package state

import (
	"fmt"

	"github.com/Makepad-fr/cards/internal/model"
)

// ActionType names a state transition.
type ActionType string

const (
	ToggleChoice   ActionType = "TOGGLE_CHOICE"
	AddItem        ActionType = "ADD_ITEM"
	RemoveItem     ActionType = "REMOVE_ITEM"
	ReverseList    ActionType = "REVERSE_LIST"
	ResetData      ActionType = "RESET_DATA"
	SetInitialData ActionType = "SET_INITIAL_DATA"
)

// Action is what the view dispatches. Only TOGGLE_CHOICE carries a payload.
type Action struct {
	Type      ActionType
	ItemID    model.ID
	OptionKey string
}

func (a Action) String() string {
	if a.Type == ToggleChoice {
		return fmt.Sprintf("%s(%s,%s)", a.Type, a.ItemID, a.OptionKey)
	}
	return string(a.Type)
}

// Toggle builds a TOGGLE_CHOICE action.
func Toggle(id model.ID, optionKey string) Action {
	return Action{Type: ToggleChoice, ItemID: id, OptionKey: optionKey}
}
