package force_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsaulue/Gustave-sub001/fgraph"
	"github.com/vsaulue/Gustave-sub001/force"
	"github.com/vsaulue/Gustave-sub001/vecmath"
)

func buildThreeNodeChain(t *testing.T) *fgraph.F1Structure {
	t.Helper()
	s := fgraph.NewStructure()
	a, err := s.AddNode(1000, true) // foundation
	require.NoError(t, err)
	b, err := s.AddNode(1000, false)
	require.NoError(t, err)
	c, err := s.AddNode(1000, false)
	require.NoError(t, err)

	normal, err := vecmath.Normalize(vecmath.NewVec3(0, 1, 0))
	require.NoError(t, err)
	stress, err := vecmath.NewStress(1e6, 1e6, 1e6)
	require.NoError(t, err)

	_, err = s.AddLink(a, b, normal, stress)
	require.NoError(t, err)
	_, err = s.AddLink(b, c, normal, stress)
	require.NoError(t, err)

	f, err := fgraph.Build(s, vecmath.NewVec3(0, -10, 0))
	require.NoError(t, err)
	return f
}

func TestBasicStepRunnerLeavesFoundationPotentialsUnchanged(t *testing.T) {
	f := buildThreeNodeChain(t)
	runner := force.NewBasicStepRunner(f, 1e-6)

	potentials := []float64{7.0, 0, 0}
	next := make([]float64, 3)
	runner.RunStep(potentials, next)
	require.Equal(t, 7.0, next[0])
}

func TestBasicStepRunnerConvergesOverRepeatedSweeps(t *testing.T) {
	f := buildThreeNodeChain(t)
	runner := force.NewBasicStepRunner(f, 1e-6)

	potentials := make([]float64, f.NodeCount())
	next := make([]float64, f.NodeCount())

	var last force.StepResult
	for i := 0; i < 50; i++ {
		last = runner.RunStep(potentials, next)
		potentials, next = next, potentials
	}
	require.Less(t, last.CurrentMaxError, 1e-6)
}
