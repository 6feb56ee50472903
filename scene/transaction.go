package scene

// Transaction is an unordered collection of AddBlock/RemoveBlock
// commands, applied atomically by SceneUpdater.RunTransaction
// (spec.md §4.8, §6). Commands are recorded in call order but carry no
// semantic ordering of their own — validation rejects duplicates and
// conflicts regardless of the order they were appended in.
type Transaction struct {
	adds    []BlockConstructionInfo
	removes []BlockIndex
}

// NewTransaction returns an empty Transaction.
func NewTransaction() *Transaction {
	return &Transaction{}
}

// AddBlock records a block to add. Returns the receiver for chaining.
func (t *Transaction) AddBlock(info BlockConstructionInfo) *Transaction {
	t.adds = append(t.adds, info)
	return t
}

// RemoveBlock records a block index to remove. Returns the receiver for chaining.
func (t *Transaction) RemoveBlock(idx BlockIndex) *Transaction {
	t.removes = append(t.removes, idx)
	return t
}

// Clear empties the transaction of every recorded command.
func (t *Transaction) Clear() {
	t.adds = nil
	t.removes = nil
}

// validate applies spec.md §4.8 step 1: a transaction is invalid if it
// adds the same index twice, adds an index already occupied in scene,
// removes the same index twice, adds and removes the same index, or
// removes an index absent from scene.
func (t *Transaction) validate(scene *SceneData) error {
	seenAdd := make(map[BlockIndex]bool, len(t.adds))
	for _, info := range t.adds {
		if seenAdd[info.Index] {
			return ErrDuplicateAdd
		}
		seenAdd[info.Index] = true
		if err := info.validate(); err != nil {
			return err
		}
		if _, ok := scene.BlockAt(info.Index); ok {
			return ErrBlockExists
		}
	}

	seenRemove := make(map[BlockIndex]bool, len(t.removes))
	for _, idx := range t.removes {
		if seenRemove[idx] {
			return ErrDuplicateRemove
		}
		seenRemove[idx] = true
		if seenAdd[idx] {
			return ErrAddRemoveConflict
		}
		if _, ok := scene.BlockAt(idx); !ok {
			return ErrBlockNotFound
		}
	}

	return nil
}
