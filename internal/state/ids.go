package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Makepad-fr/cards/internal/model"
)

// IDGenerator mints ids for ADD_ITEM. seq is the state's monotonic counter.
type IDGenerator interface {
	Next(seq uint64) model.ID
}

// CounterIDs renders the counter as a decimal id. It is deterministic.
type CounterIDs struct{}

func (CounterIDs) Next(seq uint64) model.ID {
	return model.ID(strconv.FormatUint(seq, 10))
}

// UUIDIDs ignores the counter and returns random v4 UUIDs.
type UUIDIDs struct{}

func (UUIDIDs) Next(uint64) model.ID {
	return model.ID(uuid.NewString())
}

// IDScheme names a generator in config and flags.
const (
	SchemeCounter = "counter"
	SchemeUUID    = "uuid"
)

// NewIDGenerator maps a scheme name to a generator. Empty means counter.
func NewIDGenerator(scheme string) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeCounter:
		return CounterIDs{}, nil
	case SchemeUUID:
		return UUIDIDs{}, nil
	}
	return nil, fmt.Errorf("unknown id scheme %q (want %s|%s)", scheme, SchemeCounter, SchemeUUID)
}
