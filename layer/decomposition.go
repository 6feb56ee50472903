package layer

import "github.com/vsaulue/Gustave-sub001/fgraph"

// noLowLayer marks a rawLayer whose supporting layer hasn't been
// discovered yet (or never will be, if it's a foundation layer).
const noLowLayer = -1

// rawLayer mirrors the original C++ LayerDecomposition::DecLayer: built
// from the highest depth down to the foundations, so rawLayer 0 sits at
// the deepest reached depth. depth is the common depth of every node in
// the layer.
type rawLayer struct {
	nodes           []fgraph.NodeIndex
	cumulatedWeight float64
	depth           int
	lowLayerID      int
}

// buildRawLayers groups f's reachable nodes into equal-depth,
// contact-connected layers, processing depths from the deepest down to
// the foundations. Whenever a layer's flood-fill reaches a contact to an
// already-built (higher-depth) layer, that higher layer's cumulated
// weight is spliced into the current one (once, the first time it is
// discovered) and the higher layer's own neighbours are used as extra
// seeds for the current flood-fill — this is what lets two same-depth
// islands merge into a single layer when they share a higher neighbour.
func buildRawLayers(f *fgraph.F1Structure, dd *DepthDecomposition) (layerOfNode []int, layers []rawLayer, lowContactsCount int) {
	n := f.NodeCount()
	layerOfNode = make([]int, n)
	for i := range layerOfNode {
		layerOfNode[i] = noLowLayer
	}
	isPlaced := make([]bool, n)
	nodeInfos := f.NodeInfos()

	nodesAtDepth := dd.NodesAtDepth
	for len(nodesAtDepth) > 0 {
		depth := len(nodesAtDepth) - 1
		curDepthNodes := nodesAtDepth[depth]
		for _, rootID := range curDepthNodes {
			if isPlaced[rootID] {
				continue
			}
			layerID := len(layers)
			layers = append(layers, rawLayer{depth: depth, lowLayerID: noLowLayer})

			var stack []fgraph.NodeIndex
			addNodeToLayer := func(id fgraph.NodeIndex) {
				if isPlaced[id] {
					return
				}
				isPlaced[id] = true
				layerOfNode[id] = layerID
				layers[layerID].nodes = append(layers[layerID].nodes, id)
				stack = append(stack, id)
			}

			addNodeToLayer(rootID)
			for len(stack) > 0 {
				localID := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				layers[layerID].cumulatedWeight += nodeInfos[localID].Weight

				for _, c := range f.ContactsOf(localID) {
					otherDepth := dd.DepthOfNode[c.OtherNodeID]
					switch {
					case otherDepth < depth:
						lowContactsCount++
					case otherDepth == depth:
						addNodeToLayer(c.OtherNodeID)
					default:
						otherLayerID := layerOfNode[c.OtherNodeID]
						otherLayer := &layers[otherLayerID]
						if otherLayer.lowLayerID == noLowLayer {
							otherLayer.lowLayerID = layerID
							layers[layerID].cumulatedWeight += otherLayer.cumulatedWeight
							for _, highNodeID := range otherLayer.nodes {
								for _, highContact := range f.ContactsOf(highNodeID) {
									addNodeToLayer(highContact.OtherNodeID)
								}
							}
						}
					}
				}
			}
		}
		nodesAtDepth = nodesAtDepth[:depth]
	}

	return layerOfNode, layers, lowContactsCount
}

// LowContact is a contact carrying force from a layer down into the
// layer immediately beneath it: spec.md's (F1BasicContact, localNodeId) pair.
type LowContact struct {
	LocalNodeID fgraph.NodeIndex
	Contact     fgraph.Contact
}

// Layer is one decomposition layer: its member nodes, its cumulated
// weight (including any higher layer spliced in above it), and — unless
// it's a foundation layer — the id of the layer immediately beneath it.
type Layer struct {
	Nodes           []fgraph.NodeIndex
	CumulatedWeight float64
	IsFoundation    bool
	LowLayerID      int

	lowContactStart int
	lowContactLen   int
}

// LayerStructure reverses the raw decomposition so layer 0 sits on the
// foundations, and materialises a flat lowContacts array that each
// Layer's LowContactsOf slices into.
type LayerStructure struct {
	f            *fgraph.F1Structure
	layerOfNode  []int
	layers       []Layer
	lowContacts  []LowContact
	reachedCount int
}

// BuildLayerStructure builds the layer decomposition of f, reusing a
// DepthDecomposition the caller already computed.
func BuildLayerStructure(f *fgraph.F1Structure, dd *DepthDecomposition) *LayerStructure {
	rawLayerOfNode, rawLayers, lowContactsCount := buildRawLayers(f, dd)

	numLayers := len(rawLayers)
	finalID := func(rawID int) int { return numLayers - 1 - rawID }

	layers := make([]Layer, numLayers)
	for rawID, rl := range rawLayers {
		id := finalID(rawID)
		layers[id] = Layer{
			Nodes:           rl.nodes,
			CumulatedWeight: rl.cumulatedWeight,
			IsFoundation:    rl.lowLayerID == noLowLayer,
			LowLayerID:      noLowLayer,
		}
		if rl.lowLayerID != noLowLayer {
			layers[id].LowLayerID = finalID(rl.lowLayerID)
		}
	}

	layerOfNode := make([]int, len(rawLayerOfNode))
	for i, rawID := range rawLayerOfNode {
		if rawID == noLowLayer {
			layerOfNode[i] = noLowLayer
		} else {
			layerOfNode[i] = finalID(rawID)
		}
	}

	lowContacts := make([]LowContact, 0, lowContactsCount)
	for id := range layers {
		layers[id].lowContactStart = len(lowContacts)
		for _, nodeID := range layers[id].Nodes {
			for _, c := range f.ContactsOf(nodeID) {
				otherLayerID := layerOfNode[c.OtherNodeID]
				if otherLayerID != noLowLayer && otherLayerID < id {
					lowContacts = append(lowContacts, LowContact{LocalNodeID: nodeID, Contact: c})
				}
			}
		}
		layers[id].lowContactLen = len(lowContacts) - layers[id].lowContactStart
	}

	return &LayerStructure{
		f:            f,
		layerOfNode:  layerOfNode,
		layers:       layers,
		lowContacts:  lowContacts,
		reachedCount: dd.ReachedCount,
	}
}

// F1Structure returns the compiled structure this decomposition was built over.
func (ls *LayerStructure) F1Structure() *fgraph.F1Structure { return ls.f }

// Layers returns every layer, indexed so that 0 sits on the foundations.
func (ls *LayerStructure) Layers() []Layer { return ls.layers }

// LayerOfNode returns, for each node, its layer id, or noLowLayer (-1)
// if the node was not reached by the depth decomposition.
func (ls *LayerStructure) LayerOfNode() []int { return ls.layerOfNode }

// ReachedCount is the number of nodes reached by the depth decomposition.
func (ls *LayerStructure) ReachedCount() int { return ls.reachedCount }

// LowContactsOf returns layerID's low-contacts slice. The returned slice
// aliases internal storage and must not be mutated.
func (ls *LayerStructure) LowContactsOf(layerID int) []LowContact {
	l := ls.layers[layerID]
	return ls.lowContacts[l.lowContactStart : l.lowContactStart+l.lowContactLen]
}
