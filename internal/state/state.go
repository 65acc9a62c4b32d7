package state

import (
	"slices"

	"github.com/Makepad-fr/cards/internal/model"
)

// State is one immutable snapshot: the item store, the display order and the reversed flag.
// The zero value is the empty state before SET_INITIAL_DATA.
//
// Transitions never write into the maps or slices of an existing State; they build new
// ones for whatever changes, so a snapshot handed to a reader stays valid forever.
type State struct {
	items    map[model.ID]model.Item
	order    []model.ID
	reversed bool
	seq      uint64 // next counter value for ADD_ITEM, never decreases
}

// ItemIDs returns the display order.
func (s State) ItemIDs() []model.ID { return slices.Clone(s.order) }

// Len is the number of ids in the display order.
func (s State) Len() int { return len(s.order) }

func (s State) IsReversed() bool { return s.reversed }

// Item looks up a record in the store, whether or not it is still in the order.
func (s State) Item(id model.ID) (model.Item, bool) {
	it, ok := s.items[id]
	return it, ok
}

// StoreSize counts every record, including ones dropped from the order by REMOVE_ITEM.
func (s State) StoreSize() int { return len(s.items) }

// Items returns the records referenced by the order, in order.
func (s State) Items() []model.Item {
	out := make([]model.Item, 0, len(s.order))
	for _, id := range s.order {
		if it, ok := s.items[id]; ok {
			out = append(out, it)
		}
	}
	return out
}

// AppState is the combined read view handed to renderers.
type AppState struct {
	ItemIDs    []model.ID   `json:"itemIds"`
	IsReversed bool         `json:"isReversed"`
	Items      []model.Item `json:"items"`
}

func (s State) AppState() AppState {
	return AppState{
		ItemIDs:    s.ItemIDs(),
		IsReversed: s.reversed,
		Items:      s.Items(),
	}
}
