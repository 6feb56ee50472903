package fgraph

import (
	"math"

	"github.com/vsaulue/Gustave-sub001/vecmath"
)

// alignEpsilon bounds how close |n| (the cosine between a link's normal
// and gravity) may get to 0 or 1 before the corresponding conductivity
// is treated as the neutral element of min (+Inf), per spec.md §4.1.
const alignEpsilon = 1e-9

// Contact is one entry of a node's adjacency slice: the neighbour it
// reaches, the link that carries it, and the two directional
// conductivities (§3's contact force law) as seen from this node.
type Contact struct {
	OtherNodeID NodeIndex
	LinkID      LinkIndex
	CondPlus    float64 // conductivity applied when ΔP = P[other]-P[this] >= 0
	CondMinus   float64 // conductivity applied when ΔP < 0
}

// NodeInfo is the compiled per-node data: its weight under gravity, and
// the [contactStart, contactStart+contactLen) window into F1Structure's
// flat contacts slice.
type NodeInfo struct {
	Weight       float64
	contactStart int
	contactLen   int
}

// LinkContactIDs records, for one Link, the offset of its contact
// inside each endpoint's own adjacency slice (not a global index) — the
// O(1) lookup table spec.md §4.1 asks for.
type LinkContactIDs struct {
	LocalContactID int
	OtherContactID int
}

// F1Structure is a Structure compiled against a gravity vector: every
// link's shear/compression/tensile conductivity has been projected into
// a directional (CondPlus, CondMinus) pair, and every node's contacts
// are laid out as a CSR-style flat array for allocation-free traversal.
type F1Structure struct {
	structure      *Structure
	normalizedG    vecmath.UnitVec3
	gMagnitude     float64
	nodeInfos      []NodeInfo
	contacts       []Contact
	linkContactIDs []LinkContactIDs
}

// Build compiles s against gravity vector g. Fails with ErrZeroGravity
// if g cannot be normalized (spec.md's external Vec3 collaborator
// contract: normalizing a near-zero vector fails).
func Build(s *Structure, g vecmath.Vec3) (*F1Structure, error) {
	normalizedG, err := vecmath.Normalize(g)
	if err != nil {
		return nil, ErrZeroGravity
	}
	gMagnitude := g.Norm()

	n := s.NodeCount()
	nodeInfos := make([]NodeInfo, n)
	degree := make([]int, n)
	for _, link := range s.links {
		degree[link.LocalNodeID]++
		degree[link.OtherNodeID]++
	}
	offset := 0
	for i := 0; i < n; i++ {
		nodeInfos[i].Weight = s.nodes[i].Mass * gMagnitude
		nodeInfos[i].contactStart = offset
		nodeInfos[i].contactLen = degree[i]
		offset += degree[i]
	}

	contacts := make([]Contact, offset)
	cursor := make([]int, n)
	linkContactIDs := make([]LinkContactIDs, len(s.links))
	for linkID, link := range s.links {
		n := link.Normal.Dot(normalizedG.Vec3)
		condPlus, condMinus := directionalConductivities(link.Conductivity, n)

		localSlot := cursor[link.LocalNodeID]
		localIdx := nodeInfos[link.LocalNodeID].contactStart + localSlot
		contacts[localIdx] = Contact{OtherNodeID: link.OtherNodeID, LinkID: LinkIndex(linkID), CondPlus: condPlus, CondMinus: condMinus}
		cursor[link.LocalNodeID]++

		otherSlot := cursor[link.OtherNodeID]
		otherIdx := nodeInfos[link.OtherNodeID].contactStart + otherSlot
		// The other endpoint sees the link's normal reversed, so its
		// directional conductivities are this link's pair swapped.
		contacts[otherIdx] = Contact{OtherNodeID: link.LocalNodeID, LinkID: LinkIndex(linkID), CondPlus: condMinus, CondMinus: condPlus}
		cursor[link.OtherNodeID]++

		linkContactIDs[linkID] = LinkContactIDs{LocalContactID: localSlot, OtherContactID: otherSlot}
	}

	return &F1Structure{
		structure:      s,
		normalizedG:    normalizedG,
		gMagnitude:     gMagnitude,
		nodeInfos:      nodeInfos,
		contacts:       contacts,
		linkContactIDs: linkContactIDs,
	}, nil
}

// directionalConductivities projects a link's (compression, shear,
// tensile) triple against n = normal·ĝ into the (CondPlus, CondMinus)
// pair used by the force law, per spec.md §3/§4.1.
func directionalConductivities(stress vecmath.Stress[float64], n float64) (condPlus, condMinus float64) {
	nSq := n * n

	var tangential float64
	if nSq >= 1-alignEpsilon {
		tangential = math.Inf(1)
	} else {
		tangential = stress.Shear / math.Sqrt(1-nSq)
	}

	absN := math.Abs(n)
	var normalPlus, normalMinus float64
	switch {
	case absN <= alignEpsilon:
		normalPlus, normalMinus = math.Inf(1), math.Inf(1)
	case n <= 0:
		normalPlus, normalMinus = stress.Compression/absN, stress.Tensile/absN
	default:
		normalPlus, normalMinus = stress.Tensile/absN, stress.Compression/absN
	}

	return math.Min(tangential, normalPlus), math.Min(tangential, normalMinus)
}

// Structure returns the compiled Structure.
func (f *F1Structure) Structure() *Structure { return f.structure }

// NormalizedG returns the unit gravity direction used to compile f.
func (f *F1Structure) NormalizedG() vecmath.UnitVec3 { return f.normalizedG }

// GMagnitude returns |g| used to compile f.
func (f *F1Structure) GMagnitude() float64 { return f.gMagnitude }

// NodeInfos returns the per-node compiled info, indexed like Structure.Nodes().
func (f *F1Structure) NodeInfos() []NodeInfo { return f.nodeInfos }

// NodeCount returns the number of nodes.
func (f *F1Structure) NodeCount() int { return len(f.nodeInfos) }

// ContactsOf returns node id's adjacency slice. The returned slice
// aliases internal storage and must not be mutated.
func (f *F1Structure) ContactsOf(id NodeIndex) []Contact {
	info := f.nodeInfos[id]
	return f.contacts[info.contactStart : info.contactStart+info.contactLen]
}

// LinkContactIDs returns the (localContactId, otherContactId) pair for
// every link, indexed like Structure.Links().
func (f *F1Structure) LinkContactIDs() []LinkContactIDs { return f.linkContactIDs }

// ContactOnSide returns the Contact for linkID as seen from its local
// side (isLocalSide=true) or its other side (isLocalSide=false), along
// with the id of the node that owns that Contact. O(1).
func (f *F1Structure) ContactOnSide(linkID LinkIndex, isLocalSide bool) (Contact, NodeIndex) {
	link := f.structure.links[linkID]
	ids := f.linkContactIDs[linkID]
	if isLocalSide {
		info := f.nodeInfos[link.LocalNodeID]
		return f.contacts[info.contactStart+ids.LocalContactID], link.LocalNodeID
	}
	info := f.nodeInfos[link.OtherNodeID]
	return f.contacts[info.contactStart+ids.OtherContactID], link.OtherNodeID
}
