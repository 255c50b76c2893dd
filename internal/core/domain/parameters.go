package domain

import "sort"

// MaskedParameterValue is what the provider returns in place of NoEcho
// parameter values.
const MaskedParameterValue = "****"

type Parameter struct {
	Key   string
	Value string
}

// ParameterSet maps unique parameter keys to values and remembers the order
// keys were first added in. The zero value is an empty set.
type ParameterSet struct {
	keys   []string
	values map[string]string
}

func NewParameterSet(params ...Parameter) ParameterSet {
	var ps ParameterSet
	for _, p := range params {
		ps.set(p.Key, p.Value)
	}
	return ps
}

// ParameterSetFromMap builds a set from m with keys in sorted order.
func ParameterSetFromMap(m map[string]string) ParameterSet {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var ps ParameterSet
	for _, k := range keys {
		ps.set(k, m[k])
	}
	return ps
}

func (ps *ParameterSet) set(key, value string) {
	if ps.values == nil {
		ps.values = make(map[string]string)
	}
	if _, exists := ps.values[key]; !exists {
		ps.keys = append(ps.keys, key)
	}
	ps.values[key] = value
}

func (ps ParameterSet) Get(key string) (string, bool) {
	v, ok := ps.values[key]
	return v, ok
}

func (ps ParameterSet) Len() int {
	return len(ps.keys)
}

func (ps ParameterSet) Keys() []string {
	out := make([]string, len(ps.keys))
	copy(out, ps.keys)
	return out
}

// Parameters returns the set as an ordered slice.
func (ps ParameterSet) Parameters() []Parameter {
	out := make([]Parameter, 0, len(ps.keys))
	for _, k := range ps.keys {
		out = append(out, Parameter{Key: k, Value: ps.values[k]})
	}
	return out
}

// Map returns a copy of the set as a plain map.
func (ps ParameterSet) Map() map[string]string {
	out := make(map[string]string, len(ps.keys))
	for _, k := range ps.keys {
		out[k] = ps.values[k]
	}
	return out
}

// Merge returns the union of source and overrides. Override values win on
// key collision. Source keys keep their order and override-only keys follow
// in override order.
func Merge(source, overrides ParameterSet) ParameterSet {
	var merged ParameterSet
	for _, k := range source.keys {
		merged.set(k, source.values[k])
	}
	for _, k := range overrides.keys {
		merged.set(k, overrides.values[k])
	}
	return merged
}

// MaskedKeys lists source keys whose value is masked and that overrides does
// not replace. Copying such a value would send the mask literally.
func MaskedKeys(source, overrides ParameterSet) []string {
	var masked []string
	for _, k := range source.keys {
		if source.values[k] != MaskedParameterValue {
			continue
		}
		if _, ok := overrides.values[k]; ok {
			continue
		}
		masked = append(masked, k)
	}
	return masked
}
