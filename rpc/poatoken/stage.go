package poatoken

import "strconv"

// Stage is a lifecycle stage of PoA Token contract.
type Stage int64

// Stages in the order they are declared by the contract.
const (
	StagePreFunding Stage = iota
	StagePreSale
	StageFunding
	StagePending
	StageCancelled
	StageFailed
	StageActive
	StageTerminated
)

var stageNames = [...]string{
	"PreFunding",
	"PreSale",
	"Funding",
	"Pending",
	"Cancelled",
	"Failed",
	"Active",
	"Terminated",
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Stage(" + strconv.FormatInt(int64(s), 10) + ")"
	}
	return stageNames[s]
}

// IsFinal checks whether no stage can follow s.
func (s Stage) IsFinal() bool {
	return s == StageCancelled || s == StageFailed || s == StageTerminated
}
