//go:build unit || e2e

package programtest

import (
	"sync"
	"time"
)

type UnitObservation struct {
	Op      string
	Outcome string
	Code    string
}

type SettlementObservation struct {
	Path     string
	OwnerNet uint64
	Fee      uint64
}

// Recorder captures what the executor reports to metrics.
type Recorder struct {
	mu          sync.Mutex
	Units       []UnitObservation
	Settlements []SettlementObservation
}

func (r *Recorder) ObserveUnit(op, outcome, code string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Units = append(r.Units, UnitObservation{Op: op, Outcome: outcome, Code: code})
}

func (r *Recorder) ObserveSettlement(path string, ownerNet, protocolFee uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Settlements = append(r.Settlements, SettlementObservation{Path: path, OwnerNet: ownerNet, Fee: protocolFee})
}

// Last returns the most recent unit observation.
func (r *Recorder) Last() UnitObservation {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Units) == 0 {
		return UnitObservation{}
	}
	return r.Units[len(r.Units)-1]
}
