// Package graph implements the Layered Promotion Graph of spec §4.4 (C8): a
// DAG of PromotionLayer nodes with typed edges, traversed in a
// deterministic topological order, assembling a single internal/ilp.Problem
// across every layer. Grounded structurally in
// original_source/crates/core/src/graph (PromotionLayerKey, LayerEdge) and
// in qhato-ecommerce's pkg/rules for the evaluation-order discipline
// (deterministic, side-effect-free traversal).
package graph

import (
	"sort"

	"github.com/qhato/promoengine/internal/promotion"
	apperrors "github.com/qhato/promoengine/pkg/errors"
)

// LayerKey identifies a PromotionLayer. Deterministic tie-breaks in
// topological sort compare LayerKey ascending, per spec §4.4.
type LayerKey int

// EdgeKind tags how a LayerEdge routes items to its destination.
type EdgeKind int

const (
	// All forwards every item unconditionally (PassThrough layers only).
	All EdgeKind = iota
	// Participating forwards items covered by an activated promotion variable
	// in the source layer (Split layers only).
	Participating
	// NonParticipating forwards items left at full price in the source layer
	// (Split layers only).
	NonParticipating
)

// OutputMode determines which EdgeKinds a layer's outgoing edges may use.
type OutputMode int

const (
	PassThrough OutputMode = iota
	Split
)

// Edge is a directed, typed connection from one layer to another.
type Edge struct {
	To   LayerKey
	Kind EdgeKind
}

// Layer is one node of the promotion graph.
type Layer struct {
	Key        LayerKey
	Promotions []promotion.Promotion
	OutputMode OutputMode
	Edges      []Edge
}

// Graph is a DAG of layers, keyed by LayerKey.
type Graph struct {
	layers map[LayerKey]*Layer
	order  []LayerKey // insertion order of AddLayer calls; duplicate keys are detected via layers
}

// New constructs an empty Graph.
func New() *Graph {
	return &Graph{layers: make(map[LayerKey]*Layer)}
}

// AddLayer registers a new layer. GraphMalformed if key is already used.
func (g *Graph) AddLayer(key LayerKey, promotions []promotion.Promotion, mode OutputMode) error {
	if _, exists := g.layers[key]; exists {
		return apperrors.GraphMalformed("duplicate layer key")
	}
	g.layers[key] = &Layer{Key: key, Promotions: promotions, OutputMode: mode}
	g.order = append(g.order, key)
	return nil
}

// AddEdge adds a directed edge from -> to of the given kind, validating it
// against the source layer's OutputMode per spec §3: PassThrough layers may
// only carry All edges; Split layers may carry at most one Participating and
// one NonParticipating edge.
func (g *Graph) AddEdge(from, to LayerKey, kind EdgeKind) error {
	src, ok := g.layers[from]
	if !ok {
		return apperrors.GraphMalformed("edge references unknown source layer")
	}
	if _, ok := g.layers[to]; !ok {
		return apperrors.GraphMalformed("edge references unknown destination layer")
	}
	switch src.OutputMode {
	case PassThrough:
		if kind != All {
			return apperrors.GraphMalformed("pass-through layer may only have All outgoing edges")
		}
	case Split:
		if kind == All {
			return apperrors.GraphMalformed("split layer may not have an All outgoing edge")
		}
		for _, e := range src.Edges {
			if e.Kind == kind {
				return apperrors.GraphMalformed("split layer already has an outgoing edge of this kind")
			}
		}
	}
	src.Edges = append(src.Edges, Edge{To: to, Kind: kind})
	return nil
}

// Layers returns every layer, keyed by LayerKey.
func (g *Graph) Layers() map[LayerKey]*Layer { return g.layers }

// Layer returns the layer for key, if present.
func (g *Graph) Layer(key LayerKey) (*Layer, bool) {
	l, ok := g.layers[key]
	return l, ok
}

// incomingEdge is one (parent, edge kind) pair routing into a layer; incoming
// returns them for every layer.
type incomingEdge struct {
	from LayerKey
	kind EdgeKind
}

func (g *Graph) incoming() map[LayerKey][]incomingEdge {
	result := make(map[LayerKey][]incomingEdge)
	for key, layer := range g.layers {
		_ = key
		for _, e := range layer.Edges {
			result[e.To] = append(result[e.To], incomingEdge{from: layer.Key, kind: e.Kind})
		}
	}
	return result
}

// TopoSort returns layers in a deterministic topological order (Kahn's
// algorithm, ties broken by ascending LayerKey), or GraphCycle if the graph
// is not a DAG.
func (g *Graph) TopoSort() ([]LayerKey, error) {
	inDegree := make(map[LayerKey]int, len(g.layers))
	for key := range g.layers {
		inDegree[key] = 0
	}
	for _, layer := range g.layers {
		for _, e := range layer.Edges {
			inDegree[e.To]++
		}
	}

	var ready []LayerKey
	for key, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, key)
		}
	}
	sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })

	order := make([]LayerKey, 0, len(g.layers))
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })
		next := ready[0]
		ready = ready[1:]
		order = append(order, next)

		layer := g.layers[next]
		for _, e := range layer.Edges {
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				ready = append(ready, e.To)
			}
		}
	}

	if len(order) != len(g.layers) {
		return nil, apperrors.GraphCycle("promotion layer graph contains a cycle")
	}
	return order, nil
}
