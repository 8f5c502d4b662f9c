package timeseries

import "fmt"

// Keyed is an ordered table of labelled scalars, used for results that have
// no time axis (for example one mean per column).
type Keyed struct {
	Keys   []string
	Values []float64
}

// Len returns the number of entries.
func (k *Keyed) Len() int {
	return len(k.Keys)
}

// Get returns the value stored under key.
func (k *Keyed) Get(key string) (float64, error) {
	for i, name := range k.Keys {
		if name == key {
			return k.Values[i], nil
		}
	}
	return Missing(), fmt.Errorf("%w: %q", ErrUnknownColumn, key)
}
