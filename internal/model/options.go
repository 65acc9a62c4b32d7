package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Option is a single named boolean on an item.
type Option struct {
	Value bool `json:"value" yaml:"value"`
}

// Options is an insertion-ordered mapping from option key to value.
// The key set is fixed once built; With and Toggle never add keys.
// Every method leaves the receiver untouched, so a value can be shared between snapshots.
type Options struct {
	keys   []string
	values map[string]bool
}

// NewOptions returns options with the given keys, all false. Duplicate keys are ignored.
func NewOptions(keys ...string) Options {
	var o Options
	for _, k := range keys {
		o.set(k, false)
	}
	return o
}

// set appends or overwrites in place; only for builders that own o.
func (o *Options) set(key string, v bool) {
	if o.values == nil {
		o.values = make(map[string]bool)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

func (o Options) Len() int { return len(o.keys) }

// Keys returns a copy of the keys in order.
func (o Options) Keys() []string { return slices.Clone(o.keys) }

// Value reports the option value and whether the key exists.
func (o Options) Value(key string) (value, ok bool) {
	value, ok = o.values[key]
	return
}

func (o Options) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// All iterates key/value pairs in order.
func (o Options) All() iter.Seq2[string, bool] {
	return func(yield func(string, bool) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// With returns a copy with key set to v. Unknown keys leave the result equal to o.
func (o Options) With(key string, v bool) Options {
	cur, ok := o.values[key]
	if !ok || cur == v {
		return o
	}
	out := Options{keys: o.keys, values: maps.Clone(o.values)}
	out.values[key] = v
	return out
}

// Toggle flips key. ok is false when the key does not exist.
func (o Options) Toggle(key string) (Options, bool) {
	cur, ok := o.values[key]
	if !ok {
		return o, false
	}
	return o.With(key, !cur), true
}

// Cleared returns a copy with every value false.
func (o Options) Cleared() Options {
	if o.CountSet() == 0 {
		return o
	}
	out := Options{keys: o.keys, values: make(map[string]bool, len(o.keys))}
	for _, k := range o.keys {
		out.values[k] = false
	}
	return out
}

// CountSet is the number of options that are true.
func (o Options) CountSet() int {
	n := 0
	for _, v := range o.values {
		if v {
			n++
		}
	}
	return n
}

// Equal compares keys, order and values.
func (o Options) Equal(p Options) bool {
	return slices.Equal(o.keys, p.keys) && maps.Equal(o.values, p.values)
}

func (o Options) String() string {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s:%t", k, o.values[k])
	}
	b.WriteByte('}')
	return b.String()
}

// ------- JSON -------

// MarshalJSON writes an object in key order: {"a":{"value":true},...}.
func (o Options) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(Option{Value: o.values[k]})
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON keeps the document's key order. Values may be {"value":bool} or a bare bool.
func (o *Options) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("options: %w", err)
	}
	if tok == nil {
		*o = Options{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("options: want object, got %v", tok)
	}
	var out Options
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("options: %w", err)
		}
		key, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("options %q: %w", key, err)
		}
		v, err := decodeOptionJSON(raw)
		if err != nil {
			return fmt.Errorf("options %q: %w", key, err)
		}
		out.set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("options: %w", err)
	}
	*o = out
	return nil
}

func decodeOptionJSON(raw json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var opt Option
	if err := json.Unmarshal(raw, &opt); err != nil {
		return false, err
	}
	return opt.Value, nil
}

// ------- YAML -------

// MarshalYAML emits a mapping node so key order survives.
func (o Options) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range o.keys {
		var val yaml.Node
		if err := val.Encode(Option{Value: o.values[k]}); err != nil {
			return nil, err
		}
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return n, nil
}

func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*o = Options{}
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("options: line %d: want mapping", node.Line)
	}
	var out Options
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		var v bool
		if val.Kind == yaml.ScalarNode {
			if err := val.Decode(&v); err != nil {
				return fmt.Errorf("options %q: %w", key, err)
			}
		} else {
			var opt Option
			if err := val.Decode(&opt); err != nil {
				return fmt.Errorf("options %q: %w", key, err)
			}
			v = opt.Value
		}
		out.set(key, v)
	}
	*o = out
	return nil
}
