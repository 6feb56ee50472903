package layer

import (
	"math"

	"github.com/vsaulue/Gustave-sub001/fgraph"
)

// UnreachedDepth marks a node with no path to any foundation.
const UnreachedDepth = math.MaxInt

// DepthDecomposition is a multi-source BFS from every foundation node
// (C5): the minimal number of links separating each reachable node from
// some foundation. Foundations sit at depth 0; a non-foundation node's
// depth is one more than the minimum depth of its neighbours.
type DepthDecomposition struct {
	// DepthOfNode is indexed like fgraph.F1Structure's nodes; unreached
	// entries hold UnreachedDepth.
	DepthOfNode []int

	// NodesAtDepth[d] lists, in BFS discovery order, every node at depth d.
	NodesAtDepth [][]fgraph.NodeIndex

	// ReachedCount is the number of nodes with a finite depth.
	ReachedCount int
}

// BuildDepthDecomposition runs the BFS over f's adjacency, seeding the
// frontier with every foundation node in node-index order.
func BuildDepthDecomposition(f *fgraph.F1Structure) *DepthDecomposition {
	n := f.NodeCount()
	depthOfNode := make([]int, n)
	for i := range depthOfNode {
		depthOfNode[i] = UnreachedDepth
	}

	nodesAtDepth := [][]fgraph.NodeIndex{{}}
	var queue []fgraph.NodeIndex
	for i, node := range f.Structure().Nodes() {
		if node.IsFoundation {
			id := fgraph.NodeIndex(i)
			depthOfNode[i] = 0
			nodesAtDepth[0] = append(nodesAtDepth[0], id)
			queue = append(queue, id)
		}
	}

	reachedCount := len(queue)
	for head := 0; head < len(queue); head++ {
		id := queue[head]
		nextDepth := depthOfNode[id] + 1
		for _, c := range f.ContactsOf(id) {
			if depthOfNode[c.OtherNodeID] != UnreachedDepth {
				continue
			}
			depthOfNode[c.OtherNodeID] = nextDepth
			for len(nodesAtDepth) <= nextDepth {
				nodesAtDepth = append(nodesAtDepth, nil)
			}
			nodesAtDepth[nextDepth] = append(nodesAtDepth[nextDepth], c.OtherNodeID)
			queue = append(queue, c.OtherNodeID)
			reachedCount++
		}
	}

	return &DepthDecomposition{
		DepthOfNode:  depthOfNode,
		NodesAtDepth: nodesAtDepth,
		ReachedCount: reachedCount,
	}
}
