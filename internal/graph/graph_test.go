package graph_test

import (
	"testing"

	"github.com/qhato/promoengine/internal/graph"
	apperrors "github.com/qhato/promoengine/pkg/errors"
	"github.com/qhato/promoengine/pkg/testutil"
)

func TestTopoSortDeterministicTieBreak(t *testing.T) {
	g := graph.New()
	testutil.AssertNoError(t, g.AddLayer(2, nil, graph.PassThrough), "add layer 2")
	testutil.AssertNoError(t, g.AddLayer(0, nil, graph.PassThrough), "add layer 0")
	testutil.AssertNoError(t, g.AddLayer(1, nil, graph.PassThrough), "add layer 1")

	order, err := g.TopoSort()
	testutil.AssertNoError(t, err, "topo sort")
	testutil.AssertEqual(t, order, []graph.LayerKey{0, 1, 2}, "independent layers sort by ascending key")
}

func TestTopoSortDetectsCycle(t *testing.T) {
	g := graph.New()
	testutil.AssertNoError(t, g.AddLayer(0, nil, graph.PassThrough), "add layer 0")
	testutil.AssertNoError(t, g.AddLayer(1, nil, graph.PassThrough), "add layer 1")
	testutil.AssertNoError(t, g.AddEdge(0, 1, graph.All), "edge 0->1")
	testutil.AssertNoError(t, g.AddEdge(1, 0, graph.All), "edge 1->0")

	_, err := g.TopoSort()
	testutil.AssertError(t, err, "expected GraphCycle")
	testutil.AssertTrue(t, apperrors.HasCode(err, apperrors.ErrCodeGraphCycle), "error code")
}

func TestAddEdgeRejectsAllOnSplitLayer(t *testing.T) {
	g := graph.New()
	testutil.AssertNoError(t, g.AddLayer(0, nil, graph.Split), "add split layer")
	testutil.AssertNoError(t, g.AddLayer(1, nil, graph.PassThrough), "add destination")

	err := g.AddEdge(0, 1, graph.All)
	testutil.AssertError(t, err, "expected GraphMalformed")
	testutil.AssertTrue(t, apperrors.HasCode(err, apperrors.ErrCodeGraphMalformed), "error code")
}

func TestAddEdgeRejectsNonAllOnPassThroughLayer(t *testing.T) {
	g := graph.New()
	testutil.AssertNoError(t, g.AddLayer(0, nil, graph.PassThrough), "add pass-through layer")
	testutil.AssertNoError(t, g.AddLayer(1, nil, graph.PassThrough), "add destination")

	err := g.AddEdge(0, 1, graph.Participating)
	testutil.AssertError(t, err, "expected GraphMalformed")
}

func TestAddEdgeRejectsDuplicateKindOnSplitLayer(t *testing.T) {
	g := graph.New()
	testutil.AssertNoError(t, g.AddLayer(0, nil, graph.Split), "add split layer")
	testutil.AssertNoError(t, g.AddLayer(1, nil, graph.PassThrough), "dest a")
	testutil.AssertNoError(t, g.AddLayer(2, nil, graph.PassThrough), "dest b")

	testutil.AssertNoError(t, g.AddEdge(0, 1, graph.Participating), "first participating edge")
	err := g.AddEdge(0, 2, graph.Participating)
	testutil.AssertError(t, err, "expected GraphMalformed for duplicate edge kind")
}

func TestAddLayerRejectsDuplicateKey(t *testing.T) {
	g := graph.New()
	testutil.AssertNoError(t, g.AddLayer(0, nil, graph.PassThrough), "first add")
	err := g.AddLayer(0, nil, graph.PassThrough)
	testutil.AssertError(t, err, "expected GraphMalformed on duplicate layer key")
}
