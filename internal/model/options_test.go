package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewOptions(t *testing.T) {
	o := NewOptions("b", "a", "b")

	assert.Equal(t, []string{"b", "a"}, o.Keys())
	assert.Equal(t, 0, o.CountSet())
	v, ok := o.Value("a")
	assert.True(t, ok)
	assert.False(t, v)
	assert.False(t, o.Has("c"))
}

func TestOptionsWithLeavesReceiver(t *testing.T) {
	o := NewOptions("a", "b")
	p := o.With("a", true)

	assert.False(t, mustValue(t, o, "a"))
	assert.True(t, mustValue(t, p, "a"))
	assert.Equal(t, o.Keys(), p.Keys())
}

func TestOptionsWithUnknownKey(t *testing.T) {
	o := NewOptions("a")
	p := o.With("zzz", true)

	assert.True(t, o.Equal(p))
	assert.False(t, p.Has("zzz"))
}

func TestOptionsToggle(t *testing.T) {
	o := NewOptions("a", "b")

	once, ok := o.Toggle("b")
	require.True(t, ok)
	assert.True(t, mustValue(t, once, "b"))

	twice, ok := once.Toggle("b")
	require.True(t, ok)
	assert.True(t, o.Equal(twice))

	same, ok := o.Toggle("missing")
	assert.False(t, ok)
	assert.True(t, o.Equal(same))
}

func TestOptionsCleared(t *testing.T) {
	o := NewOptions("a", "b", "c").With("a", true).With("c", true)
	require.Equal(t, 2, o.CountSet())

	c := o.Cleared()
	assert.Equal(t, 0, c.CountSet())
	assert.Equal(t, []string{"a", "b", "c"}, c.Keys())
	assert.Equal(t, 2, o.CountSet())
}

func TestOptionsAllKeepsOrder(t *testing.T) {
	o := NewOptions("z", "y", "x").With("y", true)

	var keys []string
	var set []string
	for k, v := range o.All() {
		keys = append(keys, k)
		if v {
			set = append(set, k)
		}
	}
	assert.Equal(t, []string{"z", "y", "x"}, keys)
	assert.Equal(t, []string{"y"}, set)
}

func TestOptionsJSONKeepsOrder(t *testing.T) {
	in := `{"zeta":{"value":true},"alpha":false,"mid":{"value":false}}`

	var o Options
	require.NoError(t, json.Unmarshal([]byte(in), &o))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, o.Keys())
	assert.True(t, mustValue(t, o, "zeta"))

	out, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{"zeta":{"value":true},"alpha":{"value":false},"mid":{"value":false}}`, string(out))
	assert.Equal(t, `{"zeta":{"value":true},"alpha":{"value":false},"mid":{"value":false}}`, string(out))
}

func TestOptionsJSONRejectsArray(t *testing.T) {
	var o Options
	err := json.Unmarshal([]byte(`[true]`), &o)
	assert.Error(t, err)
}

func TestOptionsYAMLKeepsOrder(t *testing.T) {
	in := "zeta: true\nalpha:\n  value: false\nmid: {value: true}\n"

	var o Options
	require.NoError(t, yaml.Unmarshal([]byte(in), &o))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, o.Keys())
	assert.Equal(t, 2, o.CountSet())

	out, err := yaml.Marshal(o)
	require.NoError(t, err)

	var back Options
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.True(t, o.Equal(back))
}

func TestItemIDFromNumber(t *testing.T) {
	var it Item
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"label":"one","options":{"a":false}}`), &it))
	assert.Equal(t, ID("1"), it.ID)
	assert.Equal(t, "one", it.Title())

	require.NoError(t, json.Unmarshal([]byte(`{"id":"x-1"}`), &it))
	assert.Equal(t, ID("x-1"), it.ID)
	assert.Equal(t, "#x-1", Item{ID: "x-1"}.Title())
}

func mustValue(t *testing.T, o Options, key string) bool {
	t.Helper()
	v, ok := o.Value(key)
	require.True(t, ok, "missing key %q", key)
	return v
}
