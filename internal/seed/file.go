package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/cards/internal/model"
)

// File-backed seed. JSON or YAML, chosen by extension; read once, never written.

// File serves items loaded from disk. New items reuse the option keys of the first seed item.
type File struct {
	path  string
	keys  []string
	items []model.Item
}

// LoadFile reads and validates a seed file. fallbackKeys are used for new items when the file is empty.
func LoadFile(path string, fallbackKeys []string) (*File, error) {
	items, err := readItems(path)
	if err != nil {
		return nil, err
	}
	seen := make(map[model.ID]bool, len(items))
	for i, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("%s: item %d: missing id", path, i+1)
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("%s: duplicate id %q", path, it.ID)
		}
		seen[it.ID] = true
	}

	keys := fallbackKeys
	if len(items) > 0 {
		keys = items[0].Options.Keys()
	}
	if len(keys) == 0 {
		keys = DefaultOptions
	}
	return &File{path: path, keys: keys, items: items}, nil
}

func readItems(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("seed file %s does not exist", path)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	}
	return items, nil
}

func (f *File) Path() string { return f.path }

func (f *File) Seed() []model.Item {
	return append([]model.Item(nil), f.items...)
}

func (f *File) NewItem(id model.ID, n int) model.Item {
	return model.Item{
		ID:      id,
		Label:   Label(n),
		Options: model.NewOptions(f.keys...),
	}
}
