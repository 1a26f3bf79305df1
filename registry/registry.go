// Package registry holds the known-good token->Counts regression table,
// loaded once from an embedded YAML document, used to self-check fresh
// computations against previously validated results.
package registry

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/combo"
	"gopkg.in/yaml.v3"
)

//go:embed data/known_counts.yaml
var knownCountsYAML []byte

type entry struct {
	Token        int64  `yaml:"token"`
	All          uint64 `yaml:"all"`
	Symmetric180 uint64 `yaml:"symmetric180"`
	Symmetric90  uint64 `yaml:"symmetric90"`
}

type document struct {
	Entries []entry `yaml:"entries"`
}

var (
	once  sync.Once
	table map[int64]brick.Counts
	loadErr error
)

func load() {
	var doc document
	if err := yaml.Unmarshal(knownCountsYAML, &doc); err != nil {
		loadErr = fmt.Errorf("registry: parse known_counts.yaml: %w", err)
		return
	}
	table = make(map[int64]brick.Counts, len(doc.Entries))
	for _, e := range doc.Entries {
		table[e.Token] = brick.Counts{All: e.All, Symmetric180: e.Symmetric180, Symmetric90: e.Symmetric90}
	}
}

func ensureLoaded() error {
	once.Do(load)
	return loadErr
}

// Lookup returns the known Counts for token, trying token and then its
// digit-reversal (since the same assembly can be encoded with its base
// layer's digits read either direction), and whether an entry was found.
func Lookup(token int64) (brick.Counts, bool, error) {
	if err := ensureLoaded(); err != nil {
		return brick.Counts{}, false, err
	}
	if c, ok := table[token]; ok {
		return c, true, nil
	}
	if c, ok := table[combo.ReverseToken(token)]; ok {
		return c, true, nil
	}
	return brick.Counts{}, false, nil
}

// Check compares got against the registry entry for token. If no entry
// exists, it reports ok=true and known=false (a "NEW" result, not a
// failure). If an entry exists but disagrees, it reports ok=false.
func Check(token int64, got brick.Counts) (ok bool, known bool, err error) {
	want, found, err := Lookup(token)
	if err != nil {
		return false, false, err
	}
	if !found {
		return true, false, nil
	}
	return want == got, true, nil
}

// All returns every entry in the registry, for driver.X to sweep.
func All() (map[int64]brick.Counts, error) {
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	out := make(map[int64]brick.Counts, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out, nil
}
