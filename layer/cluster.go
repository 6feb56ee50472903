package layer

import (
	"github.com/vsaulue/Gustave-sub001/fgraph"
	"github.com/vsaulue/Gustave-sub001/force"
)

// Cluster is an equal-depth, contact-connected group of nodes (C7) — the
// same grouping primitive as Layer, but kept independent rather than
// chained bottom-up: ClusterStepRunner corrects each cluster's own
// offset directly against its own low contacts, as a mid-granularity
// preconditioner applied between the layer pass and the per-node basic
// pass.
type Cluster struct {
	Nodes           []fgraph.NodeIndex
	CumulatedWeight float64
	LowContacts     []LowContact
}

// BuildClusters groups f's reachable nodes using the same depth-driven
// flood fill as the layer decomposition, but reports each component's
// low contacts against its own immediate lower depth instead of
// chaining them through reversed layer ids.
func BuildClusters(f *fgraph.F1Structure, dd *DepthDecomposition) []Cluster {
	_, rawLayers, _ := buildRawLayers(f, dd)

	clusters := make([]Cluster, len(rawLayers))
	for id, rl := range rawLayers {
		clusters[id].Nodes = rl.nodes
		clusters[id].CumulatedWeight = rl.cumulatedWeight
		for _, nodeID := range rl.nodes {
			for _, c := range f.ContactsOf(nodeID) {
				if dd.DepthOfNode[c.OtherNodeID] < rl.depth {
					clusters[id].LowContacts = append(clusters[id].LowContacts, LowContact{LocalNodeID: nodeID, Contact: c})
				}
			}
		}
	}
	return clusters
}

// ClusterStepRunner is the per-cluster global-offset pass (C7): the same
// Newton/secant balance as LayerStepRunner, applied independently to
// each cluster against its own low contacts.
type ClusterStepRunner struct {
	targetMaxError float64
}

// NewClusterStepRunner builds a ClusterStepRunner targeting
// targetMaxError as the global relative-error tolerance.
func NewClusterStepRunner(targetMaxError float64) *ClusterStepRunner {
	return &ClusterStepRunner{targetMaxError: targetMaxError}
}

// RunStep shifts every node in cluster by the single offset that
// balances the force crossing its low contacts. Foundation clusters
// (no low contacts) are left untouched.
func (r *ClusterStepRunner) RunStep(potentials []float64, cluster Cluster) {
	if len(cluster.LowContacts) == 0 {
		return
	}
	maxForceError := layerErrorBudget * r.targetMaxError * cluster.CumulatedWeight
	offset, _ := force.FindRoot(0, lowContactEvaluator(potentials, cluster.LowContacts, cluster.CumulatedWeight), maxForceError)
	for _, nodeID := range cluster.Nodes {
		potentials[nodeID] += offset
	}
}
