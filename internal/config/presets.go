package config

import "sort"

func seq(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

var Presets = map[string]*Config{
	"demo": {
		Name: "demo", Constructor: ConstructorDefault,
		Ops: []OpConfig{
			{Op: OpAppend, Values: seq(0, 10)},
			{Op: OpAppend, Value: 1},
			{Op: OpRemove, Index: 0, Repeat: 11},
			{Op: OpIsEmpty},
			{Op: OpDump},
		},
	},
	"growth": {
		Name: "growth", Constructor: ConstructorCapacity, Capacity: 0,
		Ops: []OpConfig{
			{Op: OpAppend, Values: seq(0, 60)},
			{Op: OpDump},
		},
	},
	"insert": {
		Name: "insert", Constructor: ConstructorCapacity, Capacity: 4,
		Ops: []OpConfig{
			{Op: OpAppendAll, Values: []int{10, 20, 30, 40}},
			{Op: OpInsert, Index: 1, Value: 15},
			{Op: OpInsert, Index: 0, Value: 5},
			{Op: OpInsert, Index: 6, Value: 50},
			{Op: OpDump},
		},
	},
	"bulk-shrink": {
		Name: "bulk-shrink", Constructor: ConstructorCapacity, Capacity: 32,
		Ops: []OpConfig{
			{Op: OpAppendAll, Values: []int{1, 2, 3}},
			{Op: OpInsertAll, Index: 1, Values: []int{7, 8}},
			{Op: OpDump},
		},
	},
	"sequence": {
		Name: "sequence", Constructor: ConstructorSequence, Initial: []int{3, 1, 4, 1, 5},
		Ops: []OpConfig{
			{Op: OpIndexOf, Value: 1},
			{Op: OpContains, Value: 9},
			{Op: OpSet, Index: 4, Value: 9},
			{Op: OpContains, Value: 9},
			{Op: OpAppend, Value: 2},
			{Op: OpDump},
		},
	},
	"bounds": {
		Name: "bounds", Constructor: ConstructorDefault,
		Ops: []OpConfig{
			{Op: OpAppendAll, Values: []int{1, 2, 3}},
			{Op: OpGet, Index: 3},
			{Op: OpInsert, Index: 3, Value: 4},
			{Op: OpRemove, Index: 5},
			{Op: OpClear},
			{Op: OpIsEmpty},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
