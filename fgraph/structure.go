package fgraph

import "github.com/vsaulue/Gustave-sub001/vecmath"

// NodeIndex identifies a Node within a Structure. Stable for the life of
// the Structure.
type NodeIndex int

// LinkIndex identifies a Link within a Structure. Stable for the life of
// the Structure.
type LinkIndex int

// Node is a point mass: its weight under gravity is computed by
// F1Structure from Mass, and IsFoundation marks it as a boundary
// condition the solver never moves.
type Node struct {
	Mass         float64
	IsFoundation bool
}

// Link is an elastic contact between two nodes. Normal points from
// LocalNodeID to OtherNodeID; Conductivity is the (compression, shear,
// tensile) triple the contact can transmit, in force/length units.
type Link struct {
	LocalNodeID  NodeIndex
	OtherNodeID  NodeIndex
	Normal       vecmath.UnitVec3
	Conductivity vecmath.Stress[float64]
}

// Structure is the solver's raw weighted graph: nodes plus elastic
// links between them. It is append-only (no removal) so that indices
// handed out by AddNode/AddLink stay valid for the Structure's whole
// life; scene.StructureData relies on this to keep its block-index to
// node-index map in sync with the Structure it is building.
type Structure struct {
	nodes []Node
	links []Link
}

// NewStructure returns an empty Structure.
func NewStructure() *Structure {
	return &Structure{}
}

// AddNode appends a node and returns its index.
// Fails with ErrNonPositiveMass if mass <= 0.
func (s *Structure) AddNode(mass float64, isFoundation bool) (NodeIndex, error) {
	if mass <= 0 {
		return 0, ErrNonPositiveMass
	}
	id := NodeIndex(len(s.nodes))
	s.nodes = append(s.nodes, Node{Mass: mass, IsFoundation: isFoundation})
	return id, nil
}

// AddLink appends a link between two distinct, already-added nodes and
// returns its index. Fails with ErrNodeNotFound if either endpoint is
// out of range, or ErrSelfLink if localID == otherID.
func (s *Structure) AddLink(localID, otherID NodeIndex, normal vecmath.UnitVec3, conductivity vecmath.Stress[float64]) (LinkIndex, error) {
	if localID == otherID {
		return 0, ErrSelfLink
	}
	if !s.hasNode(localID) || !s.hasNode(otherID) {
		return 0, ErrNodeNotFound
	}
	id := LinkIndex(len(s.links))
	s.links = append(s.links, Link{LocalNodeID: localID, OtherNodeID: otherID, Normal: normal, Conductivity: conductivity})
	return id, nil
}

func (s *Structure) hasNode(id NodeIndex) bool {
	return id >= 0 && int(id) < len(s.nodes)
}

// Nodes returns the Structure's nodes. The returned slice aliases
// internal storage and must not be mutated.
func (s *Structure) Nodes() []Node { return s.nodes }

// Links returns the Structure's links. The returned slice aliases
// internal storage and must not be mutated.
func (s *Structure) Links() []Link { return s.links }

// NodeCount returns the number of nodes.
func (s *Structure) NodeCount() int { return len(s.nodes) }

// LinkCount returns the number of links.
func (s *Structure) LinkCount() int { return len(s.links) }
