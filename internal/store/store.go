// Package store keeps parsed layers in memory and serves progress-based
// re-clipping. It is the only stateful component of the pipeline; all
// access is mutex-guarded so independent callers can parse and re-clip
// concurrently.
package store

import (
	"errors"
	"sync"

	"github.com/paulmach/orb/geojson"

	"github.com/geodrop/geodrop/internal/clip"
	"github.com/geodrop/geodrop/pkg/core"
)

// ErrLayerNotFound is returned when a layer id is unknown.
var ErrLayerNotFound = errors.New("layer not found")

// Layer groups a parsed input with its style metadata and the current
// progress percentage. Collection always holds the full, unclipped
// geometry; clipped variants are derived on demand and never stored.
type Layer struct {
	ID       string
	Name     string
	Format   core.Format
	Partial  bool
	Progress float64

	Collection *geojson.FeatureCollection
	Styles     []core.StyleProperties
}

// Store holds registered layers keyed by id, preserving insertion order.
type Store struct {
	layers map[string]*Layer
	order  []string
	mu     sync.RWMutex
}

// New creates an empty layer store.
func New() *Store {
	return &Store{
		layers: make(map[string]*Layer),
	}
}

// Add registers a parse result as a named layer at full progress.
// An existing layer with the same id is replaced in place, keeping its
// position in the ordering.
func (s *Store) Add(id, name string, result *core.ParseResult) *Layer {
	s.mu.Lock()
	defer s.mu.Unlock()

	layer := &Layer{
		ID:         id,
		Name:       name,
		Format:     result.Format,
		Partial:    result.PartialGeoJSON,
		Progress:   100,
		Collection: result.AsCollection(),
		Styles:     result.Styles,
	}
	if _, exists := s.layers[id]; !exists {
		s.order = append(s.order, id)
	}
	s.layers[id] = layer
	return layer
}

// Get returns the layer with the given id.
func (s *Store) Get(id string) (*Layer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	layer, ok := s.layers[id]
	return layer, ok
}

// List returns all layers in insertion order.
func (s *Store) List() []*Layer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Layer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.layers[id])
	}
	return out
}

// Remove deletes a layer. It reports whether the id was present.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.layers[id]; !ok {
		return false
	}
	delete(s.layers, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// SetProgress records a new progress percentage for the layer and
// returns the layer's collection clipped to it. The stored collection
// stays complete; only the returned copy is clipped.
func (s *Store) SetProgress(id string, pct float64) (*geojson.FeatureCollection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	layer, ok := s.layers[id]
	if !ok {
		return nil, ErrLayerNotFound
	}
	clipped, err := clip.ByProgress(layer.Collection, pct)
	if err != nil {
		return nil, err
	}
	layer.Progress = pct
	return clipped, nil
}

// Reset drops all layers.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layers = make(map[string]*Layer)
	s.order = nil
}
