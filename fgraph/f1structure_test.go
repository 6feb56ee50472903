package fgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsaulue/Gustave-sub001/fgraph"
	"github.com/vsaulue/Gustave-sub001/vecmath"
)

// buildColumnAndRow reproduces the reference F1Structure scenario: a
// gravity-aligned column crossing a perpendicular row, plus one
// unconnected node. Node layout (by insertion order):
//
//	0: unreachable (no links)
//	1: x1y1   2: x2y0(foundation)   3: x2y1   4: x2y2   5: x2y3
//	6: x3y1   7: x4y1
//
// Links: 0:(x1y1,x2y1,+x) 1:(x3y1,x2y1,-x) 2:(x3y1,x4y1,+x)
//
//	3:(x2y0,x2y1,+y) 4:(x2y1,x2y2,+y) 5:(x2y3,x2y2,-y)
func buildColumnAndRow(t *testing.T) (*fgraph.Structure, *fgraph.F1Structure) {
	t.Helper()
	s := fgraph.NewStructure()
	stress, err := vecmath.NewStress(1000.0, 200.0, 100.0)
	require.NoError(t, err)
	addNode := func(isFoundation bool) fgraph.NodeIndex {
		id, err := s.AddNode(1000, isFoundation)
		require.NoError(t, err)
		return id
	}
	axis := func(v vecmath.Vec3) vecmath.UnitVec3 {
		u, err := vecmath.Normalize(v)
		require.NoError(t, err)
		return u
	}
	plusX, minusX := axis(vecmath.NewVec3(1, 0, 0)), axis(vecmath.NewVec3(-1, 0, 0))
	plusY, minusY := axis(vecmath.NewVec3(0, 1, 0)), axis(vecmath.NewVec3(0, -1, 0))

	_ = addNode(false) // unreachable
	x1y1 := addNode(false)
	x2y0 := addNode(true)
	x2y1 := addNode(false)
	x2y2 := addNode(false)
	x2y3 := addNode(false)
	x3y1 := addNode(false)
	x4y1 := addNode(false)

	addLink := func(local, other fgraph.NodeIndex, normal vecmath.UnitVec3) {
		_, err := s.AddLink(local, other, normal, stress)
		require.NoError(t, err)
	}
	addLink(x1y1, x2y1, plusX)
	addLink(x3y1, x2y1, minusX)
	addLink(x3y1, x4y1, plusX)
	addLink(x2y0, x2y1, plusY)
	addLink(x2y1, x2y2, plusY)
	addLink(x2y3, x2y2, minusY)

	f, err := fgraph.Build(s, vecmath.NewVec3(0, -10, 0))
	require.NoError(t, err)
	return s, f
}

func TestBuildRejectsZeroGravity(t *testing.T) {
	s := fgraph.NewStructure()
	_, err := s.AddNode(1, true)
	require.NoError(t, err)
	_, err = fgraph.Build(s, vecmath.NewVec3(0, 0, 0))
	require.ErrorIs(t, err, fgraph.ErrZeroGravity)
}

func TestF1StructureNodeWeights(t *testing.T) {
	_, f := buildColumnAndRow(t)
	for i := 0; i < f.NodeCount(); i++ {
		require.InDelta(t, 10000.0, f.NodeInfos()[i].Weight, 1e-9)
	}
}

func TestF1StructurePerpendicularLinksAreShearOnly(t *testing.T) {
	_, f := buildColumnAndRow(t)
	const x1y1, x2y1 = 1, 3
	contacts := f.ContactsOf(x1y1)
	require.Len(t, contacts, 1)
	require.Equal(t, fgraph.NodeIndex(x2y1), contacts[0].OtherNodeID)
	require.Equal(t, 200.0, contacts[0].CondPlus)
	require.Equal(t, 200.0, contacts[0].CondMinus)
}

func TestF1StructureGravityAlignedLinksSplitCompressionTensile(t *testing.T) {
	_, f := buildColumnAndRow(t)
	const x2y0, x2y1, x2y2, x2y3 = 2, 3, 4, 5

	// x2y0 (local side of link 3): n<=0 -> (compression, tensile).
	x2y0Contacts := f.ContactsOf(x2y0)
	require.Len(t, x2y0Contacts, 1)
	require.Equal(t, fgraph.NodeIndex(x2y1), x2y0Contacts[0].OtherNodeID)
	require.Equal(t, 1000.0, x2y0Contacts[0].CondPlus)
	require.Equal(t, 100.0, x2y0Contacts[0].CondMinus)

	// x2y1 sees x2y0 from the "other" side of link 3: swapped.
	x2y1Contacts := f.ContactsOf(x2y1)
	require.Len(t, x2y1Contacts, 4)
	toX2y0 := x2y1Contacts[2]
	require.Equal(t, fgraph.NodeIndex(x2y0), toX2y0.OtherNodeID)
	require.Equal(t, 100.0, toX2y0.CondPlus)
	require.Equal(t, 1000.0, toX2y0.CondMinus)

	// x2y1 is the local side of link 4 (to x2y2): (compression, tensile).
	toX2y2 := x2y1Contacts[3]
	require.Equal(t, fgraph.NodeIndex(x2y2), toX2y2.OtherNodeID)
	require.Equal(t, 1000.0, toX2y2.CondPlus)
	require.Equal(t, 100.0, toX2y2.CondMinus)

	// x2y3 is the local side of link 5 (normal along gravity): n>0 -> (tensile, compression).
	x2y3Contacts := f.ContactsOf(x2y3)
	require.Len(t, x2y3Contacts, 1)
	require.Equal(t, 100.0, x2y3Contacts[0].CondPlus)
	require.Equal(t, 1000.0, x2y3Contacts[0].CondMinus)
}

func TestF1StructureLinkContactIDsAreLocalOffsets(t *testing.T) {
	_, f := buildColumnAndRow(t)
	ids := f.LinkContactIDs()
	require.Len(t, ids, 6)
	// link 4: (x2y1,x2y2,+y). x2y1's slice has it at local offset 3 (4th entry);
	// x2y2's slice has it at local offset 0 (1st entry).
	require.Equal(t, fgraph.LinkContactIDs{LocalContactID: 3, OtherContactID: 0}, ids[4])
}

func TestF1StructureContactOnSideMatchesContactsOf(t *testing.T) {
	_, f := buildColumnAndRow(t)
	const x2y1, x2y2 = 3, 4
	localContact, localNode := f.ContactOnSide(4, true)
	require.Equal(t, fgraph.NodeIndex(x2y1), localNode)
	require.Equal(t, fgraph.NodeIndex(x2y2), localContact.OtherNodeID)

	otherContact, otherNode := f.ContactOnSide(4, false)
	require.Equal(t, fgraph.NodeIndex(x2y2), otherNode)
	require.Equal(t, fgraph.NodeIndex(x2y1), otherContact.OtherNodeID)

	// Force conservation: conductivities seen from either side are swapped.
	require.Equal(t, localContact.CondPlus, otherContact.CondMinus)
	require.Equal(t, localContact.CondMinus, otherContact.CondPlus)
}

func TestDirectionalConductivityAtExactAlignmentIsFinite(t *testing.T) {
	s := fgraph.NewStructure()
	a, _ := s.AddNode(1, true)
	b, _ := s.AddNode(1, false)
	normal, _ := vecmath.Normalize(vecmath.NewVec3(0, 1, 0))
	stress, _ := vecmath.NewStress(20000.0, 20000.0, 1.0)
	_, err := s.AddLink(a, b, normal, stress)
	require.NoError(t, err)

	f, err := fgraph.Build(s, vecmath.NewVec3(0, -10, 0))
	require.NoError(t, err)
	c := f.ContactsOf(a)[0]
	require.False(t, math.IsInf(c.CondPlus, 1))
	require.Equal(t, 20000.0, c.CondPlus) // n<=0: compression
	require.Equal(t, 1.0, c.CondMinus)    // tensile
}
