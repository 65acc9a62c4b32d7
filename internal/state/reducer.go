package state

import (
	"maps"
	"slices"

	"github.com/Makepad-fr/cards/internal/model"
)

// Provider supplies the seed items and builds new ones for ADD_ITEM.
type Provider interface {
	Seed() []model.Item
	// NewItem builds the n-th item (1-based, counted over the current order) with the given id.
	NewItem(id model.ID, n int) model.Item
}

// Reducer turns (state, action) into the next state. It never fails:
// unknown actions and references to missing items or options leave the state as it was.
type Reducer struct {
	Provider Provider
	IDs      IDGenerator
}

// NewReducer wires a provider with an id generator; a nil generator means CounterIDs.
func NewReducer(p Provider, ids IDGenerator) Reducer {
	if ids == nil {
		ids = CounterIDs{}
	}
	return Reducer{Provider: p, IDs: ids}
}

// Apply is the reducer. The returned state shares unchanged parts with s.
func (r Reducer) Apply(s State, a Action) State {
	switch a.Type {
	case ToggleChoice:
		return toggleChoice(s, a.ItemID, a.OptionKey)
	case AddItem:
		return r.addItem(s)
	case RemoveItem:
		return removeItem(s)
	case ReverseList:
		return reverseList(s)
	case ResetData:
		return resetData(s)
	case SetInitialData:
		return r.setInitialData(s)
	}
	return s
}

func toggleChoice(s State, id model.ID, key string) State {
	it, ok := s.items[id]
	if !ok {
		return s
	}
	opts, ok := it.Options.Toggle(key)
	if !ok {
		return s
	}
	return s.withItem(it.WithOptions(opts))
}

func (r Reducer) addItem(s State) State {
	if r.Provider == nil {
		return s
	}
	ids := r.IDs
	if ids == nil {
		ids = CounterIDs{}
	}
	seq := s.seq
	var id model.ID
	for {
		id = ids.Next(seq)
		seq++
		if _, taken := s.items[id]; !taken {
			break
		}
	}

	it := r.Provider.NewItem(id, len(s.order)+1)
	it.ID = id
	it.Options = it.Options.Cleared()

	next := s.withItem(it)
	next.order = append(slices.Clip(s.order), id)
	next.seq = seq
	return next
}

func removeItem(s State) State {
	if len(s.order) == 0 {
		return s
	}
	s.order = slices.Clip(s.order[:len(s.order)-1])
	return s
}

func reverseList(s State) State {
	order := slices.Clone(s.order)
	slices.Reverse(order)
	s.order = order
	s.reversed = !s.reversed
	return s
}

func resetData(s State) State {
	if s.reversed {
		s = reverseList(s)
	}
	var items map[model.ID]model.Item
	for _, id := range s.order {
		it, ok := s.items[id]
		if !ok || it.Options.CountSet() == 0 {
			continue
		}
		if items == nil {
			items = maps.Clone(s.items)
		}
		items[id] = it.WithOptions(it.Options.Cleared())
	}
	if items != nil {
		s.items = items
	}
	return s
}

func (r Reducer) setInitialData(s State) State {
	var seed []model.Item
	if r.Provider != nil {
		seed = r.Provider.Seed()
	}
	items := make(map[model.ID]model.Item, len(seed))
	order := make([]model.ID, 0, len(seed))
	for _, it := range seed {
		if _, dup := items[it.ID]; !dup {
			order = append(order, it.ID)
		}
		items[it.ID] = it
	}
	return State{
		items: items,
		order: order,
		seq:   max(s.seq, uint64(len(order))),
	}
}

// withItem returns s with one record replaced, copying the map.
func (s State) withItem(it model.Item) State {
	items := make(map[model.ID]model.Item, len(s.items)+1)
	maps.Copy(items, s.items)
	items[it.ID] = it
	s.items = items
	return s
}
