package seed

import (
	"fmt"
	"math/rand/v2"

	"github.com/Makepad-fr/cards/internal/model"
)

// DefaultOptions is the option set used when nothing else is configured.
var DefaultOptions = []string{"notify", "pin", "share", "archive"}

var (
	adjectives = []string{"Amber", "Brisk", "Cobalt", "Dusty", "Eager", "Frosty", "Golden", "Hollow", "Ivory", "Jolly"}
	nouns      = []string{"Falcon", "Harbor", "Lantern", "Meadow", "Orchid", "Pebble", "Quarry", "Ridge", "Summit", "Thicket"}
)

// Fake generates deterministic demo items.
// The seed list is built once, so Seed returns the same items on every call.
type Fake struct {
	keys  []string
	items []model.Item
}

// NewFake builds count items over keys. The same randSeed always yields the same items.
func NewFake(count int, keys []string, randSeed uint64) *Fake {
	if len(keys) == 0 {
		keys = DefaultOptions
	}
	if count < 0 {
		count = 0
	}
	r := rand.New(rand.NewPCG(randSeed, randSeed^0x9e3779b97f4a7c15))
	f := &Fake{keys: append([]string(nil), keys...)}
	for i := range count {
		id := model.ID(fmt.Sprint(i))
		it := f.NewItem(id, i+1)
		opts := it.Options
		for _, k := range f.keys {
			opts = opts.With(k, r.IntN(3) == 0)
		}
		f.items = append(f.items, it.WithOptions(opts))
	}
	return f
}

func (f *Fake) Seed() []model.Item {
	return append([]model.Item(nil), f.items...)
}

// NewItem names the n-th item after a word pair; all options false.
func (f *Fake) NewItem(id model.ID, n int) model.Item {
	return model.Item{
		ID:          id,
		Label:       Label(n),
		Description: describe(id, n, f.keys),
		Options:     model.NewOptions(f.keys...),
	}
}

// Label is the demo name of the n-th item (1-based).
func Label(n int) string {
	if n < 1 {
		n = 1
	}
	i := n - 1
	return adjectives[i%len(adjectives)] + " " + nouns[(i/len(adjectives)+i)%len(nouns)]
}

func describe(id model.ID, n int, keys []string) string {
	d := fmt.Sprintf("## %s\n\nCard **#%d** (id `%s`).\n\nOptions:\n\n", Label(n), n, id)
	for _, k := range keys {
		d += "- " + k + "\n"
	}
	return d
}
