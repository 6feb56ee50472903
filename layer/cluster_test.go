package layer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsaulue/Gustave-sub001/layer"
)

func TestBuildClustersMatchesLayerGrouping(t *testing.T) {
	f := buildTwoTowerScene(t)
	dd := layer.BuildDepthDecomposition(f)
	ls := layer.BuildLayerStructure(f, dd)
	clusters := layer.BuildClusters(f, dd)

	require.Len(t, clusters, len(ls.Layers()))

	layerNodeSets := make([]map[int]bool, len(ls.Layers()))
	for id, l := range ls.Layers() {
		set := make(map[int]bool, len(l.Nodes))
		for _, n := range l.Nodes {
			set[int(n)] = true
		}
		layerNodeSets[id] = set
	}

	clusterNodeSets := make(map[int]bool)
	for _, c := range clusters {
		for _, n := range c.Nodes {
			clusterNodeSets[int(n)] = true
		}
	}

	// Every cluster's node set matches exactly one layer's node set: the
	// same equal-depth, contact-connected grouping, just unchained.
	for _, c := range clusters {
		set := make(map[int]bool, len(c.Nodes))
		for _, n := range c.Nodes {
			set[int(n)] = true
		}
		var found bool
		for _, ls := range layerNodeSets {
			if sameSet(set, ls) {
				found = true
				break
			}
		}
		require.True(t, found, "cluster %v has no matching layer", c.Nodes)
	}
}

func sameSet(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func TestClusterStepRunnerBalancesNonFoundationCluster(t *testing.T) {
	f, _ := buildColumnScene(t)
	dd := layer.BuildDepthDecomposition(f)
	clusters := layer.BuildClusters(f, dd)

	potentials := make([]float64, f.NodeCount())
	runner := layer.NewClusterStepRunner(1e-6)
	// BuildClusters returns raw (depth-descending) order: process from the
	// foundation outward so a cluster's low contacts are never perturbed
	// by a correction applied after it.
	for i := len(clusters) - 1; i >= 0; i-- {
		runner.RunStep(potentials, clusters[i])
	}

	for _, c := range clusters {
		if len(c.LowContacts) == 0 {
			continue
		}
		var sumForce float64
		for _, lc := range c.LowContacts {
			deltaP := potentials[lc.Contact.OtherNodeID] - potentials[lc.LocalNodeID]
			cond := lc.Contact.CondPlus
			if deltaP < 0 {
				cond = lc.Contact.CondMinus
			}
			sumForce += cond * deltaP
		}
		require.InDelta(t, -c.CumulatedWeight, sumForce, 1)
	}
}

func TestClusterStepRunnerSkipsFoundationCluster(t *testing.T) {
	f, nodes := buildColumnScene(t)
	dd := layer.BuildDepthDecomposition(f)
	clusters := layer.BuildClusters(f, dd)

	potentials := make([]float64, f.NodeCount())
	before := append([]float64(nil), potentials...)
	runner := layer.NewClusterStepRunner(1e-6)
	for _, c := range clusters {
		if len(c.LowContacts) == 0 {
			runner.RunStep(potentials, c)
		}
	}
	base := nodes[0]
	require.Equal(t, before[base], potentials[base])
}
