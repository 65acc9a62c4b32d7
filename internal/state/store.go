package state

import (
	"log/slog"
	"sync/atomic"

	"github.com/Makepad-fr/cards/internal/model"
)

// Listener observes every dispatched action with the snapshots around it.
type Listener func(prev, next State, a Action)

// Store owns the current snapshot and is the only writer of it.
//
// Dispatch and the bound action creators must be called from one goroutine (the Bubble Tea
// update loop, or the CLI). Snapshot and the read views are safe from anywhere: snapshots
// are published whole through an atomic pointer.
type Store struct {
	reducer     Reducer
	log         *slog.Logger
	cur         atomic.Pointer[State]
	initialized bool
	listeners   []Listener
}

// NewStore returns an empty store. A nil logger discards.
func NewStore(r Reducer, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Store{reducer: r, log: log}
	s.cur.Store(&State{})
	return s
}

// Logger is the store's logger, for views that report alongside dispatches.
func (s *Store) Logger() *slog.Logger { return s.log }

// Snapshot returns the current state.
func (s *Store) Snapshot() State { return *s.cur.Load() }

// Subscribe registers fn; it runs synchronously after each dispatch.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// Dispatch applies a to the current state and publishes the result.
func (s *Store) Dispatch(a Action) State {
	prev := s.Snapshot()
	next := s.reducer.Apply(prev, a)
	s.cur.Store(&next)

	s.log.Debug("dispatch", "action", a.String(), "len", next.Len(), "reversed", next.IsReversed())
	if a.Type == ToggleChoice {
		if it, ok := prev.Item(a.ItemID); !ok || !it.Options.Has(a.OptionKey) {
			s.log.Debug("toggle ignored", "item", a.ItemID, "option", a.OptionKey)
		}
	}
	for _, fn := range s.listeners {
		fn(prev, next, a)
	}
	return next
}

// ------- bound action creators -------

// SetInitialData loads the seed once. It reports whether this call did the load.
func (s *Store) SetInitialData() bool {
	if s.initialized {
		return false
	}
	s.initialized = true
	next := s.Dispatch(Action{Type: SetInitialData})
	s.log.Info("initial data loaded", "items", next.Len())
	return true
}

func (s *Store) ToggleChoice(id model.ID, optionKey string) {
	s.Dispatch(Toggle(id, optionKey))
}

func (s *Store) AddItem()        { s.Dispatch(Action{Type: AddItem}) }
func (s *Store) RemoveItem()     { s.Dispatch(Action{Type: RemoveItem}) }
func (s *Store) ReverseItemIDs() { s.Dispatch(Action{Type: ReverseList}) }
func (s *Store) ResetData()      { s.Dispatch(Action{Type: ResetData}) }

// ------- read views -------

func (s *Store) ItemIDs() []model.ID { return s.Snapshot().ItemIDs() }
func (s *Store) IsReversed() bool    { return s.Snapshot().IsReversed() }
func (s *Store) AppState() AppState  { return s.Snapshot().AppState() }

func (s *Store) Item(id model.ID) (model.Item, bool) {
	return s.Snapshot().Item(id)
}
