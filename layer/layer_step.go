package layer

import "github.com/vsaulue/Gustave-sub001/force"

// layerErrorBudget is the fraction of targetMaxError a layer (or
// cluster) balance pass is allowed, mirroring force.basicErrorBudget.
const layerErrorBudget = 0.75

// LayerStepRunner is the per-layer global-offset pass (C6): for each
// layer, it finds a single additive offset so the force crossing the
// layer's low contacts balances its cumulated weight, processing layers
// bottom-up so each layer's offset builds on the one immediately below.
type LayerStepRunner struct {
	ls             *LayerStructure
	targetMaxError float64
}

// NewLayerStepRunner builds a LayerStepRunner targeting targetMaxError
// as the global relative-error tolerance.
func NewLayerStepRunner(ls *LayerStructure, targetMaxError float64) *LayerStepRunner {
	return &LayerStepRunner{ls: ls, targetMaxError: targetMaxError}
}

// RunStep computes every layer's balance offset (using offsets as
// scratch space; it must have length >= len(ls.Layers())) and adds the
// resulting per-node offset to potentials.
func (r *LayerStepRunner) RunStep(potentials, offsets []float64) {
	layers := r.ls.Layers()
	for id := range layers {
		layer := layers[id]
		if layer.IsFoundation {
			offsets[id] = 0
			continue
		}
		offsets[id] = offsets[layer.LowLayerID] + r.findBalanceOffset(potentials, id, layer)
	}

	for nodeID, layerID := range r.ls.LayerOfNode() {
		if layerID != noLowLayer {
			potentials[nodeID] += offsets[layerID]
		}
	}
}

// findBalanceOffset solves, for layerID's low contacts, the same
// monotone-decreasing root as force.BasicStepRunner's per-node pass —
// here the unknown is a single offset applied to every node in the
// layer, rather than one node's potential.
func (r *LayerStepRunner) findBalanceOffset(potentials []float64, layerID int, layer Layer) float64 {
	maxForceError := layerErrorBudget * r.targetMaxError * layer.CumulatedWeight
	contacts := r.ls.LowContactsOf(layerID)
	offset, _ := force.FindRoot(0, lowContactEvaluator(potentials, contacts, layer.CumulatedWeight), maxForceError)
	return offset
}

// lowContactEvaluator builds the monotone evaluator shared by
// LayerStepRunner and ClusterStepRunner: the layer's net force (its own
// cumulated weight plus the force crossing its low contacts) as a
// function of an offset applied to every contact's local node — the
// same weight-plus-forceSum convention force.ForceRepartition.StatsAt
// uses at node granularity.
func lowContactEvaluator(potentials []float64, contacts []LowContact, cumulatedWeight float64) force.Evaluator {
	return func(offset float64) (netForce, derivative float64) {
		var sumForce float64
		for _, lc := range contacts {
			deltaP := potentials[lc.Contact.OtherNodeID] - (potentials[lc.LocalNodeID] + offset)
			cond := lc.Contact.CondPlus
			if deltaP < 0 {
				cond = lc.Contact.CondMinus
			}
			sumForce += force.ContactForce(lc.Contact.CondPlus, lc.Contact.CondMinus, deltaP)
			derivative -= cond
		}
		return cumulatedWeight + sumForce, derivative
	}
}
