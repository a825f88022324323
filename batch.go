package statesort

// Run is a maximal stretch of consecutive records sharing one key.
type Run struct {
	Key      Key
	Resource *Resource // nil for EmptyKey runs
	Start    int
	Len      int
}

// End returns the index one past the last record of the run.
func (r Run) End() int { return r.Start + r.Len }

// Runs splits records into runs of equal keys for slot, in order.
// An empty input yields no runs.
func Runs(records []*Record, slot Slot) []Run {
	if len(records) == 0 {
		return nil
	}
	var runs []Run
	cur := Run{Key: KeyOf(records[0], slot), Resource: ResourceOf(records[0], slot)}
	for i := 1; i < len(records); i++ {
		k := KeyOf(records[i], slot)
		if k == cur.Key {
			continue
		}
		cur.Len = i - cur.Start
		runs = append(runs, cur)
		cur = Run{Key: k, Resource: ResourceOf(records[i], slot), Start: i}
	}
	cur.Len = len(records) - cur.Start
	return append(runs, cur)
}

// Changes counts adjacent pairs whose keys differ for slot: the number of
// rebinds a draw pass needs after the first bind.
func Changes(records []*Record, slot Slot) int {
	n := 0
	for i := 1; i < len(records); i++ {
		if KeyOf(records[i-1], slot) != KeyOf(records[i], slot) {
			n++
		}
	}
	return n
}
