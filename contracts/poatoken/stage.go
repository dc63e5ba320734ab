package poatoken

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/poa-contract/common"
)

// Stages of the funding round.
const (
	stagePreFunding = iota
	stagePreSale
	stageFunding
	stagePending
	stageCancelled
	stageFailed
	stageActive
	stageTerminated
)

// Roles required to perform an operation.
const (
	roleAnyone = iota
	roleOwner
	roleCustodian
	roleOwnerOrCustodian
)

// rule lists preconditions of an operation checked by admit.
type rule struct {
	stages []int
	role   int
	// timeout requests expired rounds to be failed before the stage check.
	timeout bool
}

var (
	startPreSaleRule = rule{stages: []int{stagePreFunding}, role: roleCustodian, timeout: true}
	startSaleRule    = rule{stages: []int{stagePreFunding, stagePreSale}, role: roleAnyone, timeout: true}
	buyFiatRule      = rule{stages: []int{stagePreSale}, role: roleCustodian, timeout: true}
	contributeRule   = rule{stages: []int{stageFunding}, role: roleAnyone, timeout: true}
	activateRule     = rule{stages: []int{stagePending}, role: roleCustodian, timeout: true}
	distributeRule   = rule{stages: []int{stageActive, stageTerminated}, role: roleAnyone}
	claimRule        = rule{stages: []int{stageActive, stageTerminated}, role: roleAnyone}
	reclaimRule      = rule{stages: []int{stageFailed, stageCancelled}, role: roleAnyone, timeout: true}
	cancelRule       = rule{stages: []int{stagePreSale}, role: roleOwnerOrCustodian, timeout: true}
	terminateRule    = rule{stages: []int{stageActive}, role: roleOwnerOrCustodian}
	proofRule        = rule{stages: []int{stageActive, stageTerminated}, role: roleCustodian}
	pauseRule        = rule{stages: []int{stageActive}, role: roleOwner}
)

// admit is the single entry check of all stage-dependent operations. It fails
// expired rounds first (when the rule asks for it), then checks the stage and
// the role of the caller. It returns the stage the operation proceeds in.
// Failed transition made here persists only if the whole invocation succeeds.
func admit(ctx storage.Context, r rule) int {
	mustBeInitialized(ctx)

	stage := getStage(ctx)
	if r.timeout {
		stage = failExpired(ctx, stage)
	}

	allowed := false
	for i := range r.stages {
		if r.stages[i] == stage {
			allowed = true
			break
		}
	}
	if !allowed {
		panic(common.ErrInvalidStage)
	}

	checkRole(ctx, r.role)
	return stage
}

func checkRole(ctx storage.Context, role int) {
	switch role {
	case roleOwner:
		common.CheckOwnerWitness(ctx)
	case roleCustodian:
		common.CheckWitness(getCustodian(ctx))
	case roleOwnerOrCustodian:
		if !runtime.CheckWitness(common.Owner(ctx)) && !runtime.CheckWitness(getCustodian(ctx)) {
			panic(common.ErrUnauthorized)
		}
	}
}

// failExpired moves the round to Failed if its funding or activation time is
// over and returns the resulting stage.
func failExpired(ctx storage.Context, stage int) int {
	if isExpired(ctx, stage) {
		setStage(ctx, stageFailed)
		return stageFailed
	}
	return stage
}

func isExpired(ctx storage.Context, stage int) bool {
	if stage > stagePending {
		return false
	}

	cfg := getConfig(ctx)
	deadline := cfg.StartTime + cfg.FundingTimeout
	if stage == stagePending {
		deadline += cfg.ActivationTimeout
	}
	return runtime.GetTime() >= deadline
}

func getStage(ctx storage.Context) int {
	return common.GetInt(ctx, stageKey)
}

func setStage(ctx storage.Context, stage int) {
	common.PutInt(ctx, stageKey, stage)
	runtime.Notify("StageChanged", stage)
}

// Stage returns current stage of the funding round:
// 0 - PreFunding, 1 - PreSale, 2 - Funding, 3 - Pending, 4 - Cancelled,
// 5 - Failed, 6 - Active, 7 - Terminated.
func Stage() int {
	return getStage(storage.GetReadOnlyContext())
}

// Paused returns true if token transfers are suspended.
func Paused() bool {
	return common.GetFlag(storage.GetReadOnlyContext(), pausedKey)
}

// StartPreSale opens fiat funding phase. It can be invoked only by custodian
// before the GAS sale has started.
func StartPreSale() {
	ctx := storage.GetContext()
	admit(ctx, startPreSaleRule)
	setStage(ctx, stagePreSale)
}

// StartSale opens GAS funding phase. It can be invoked by anyone once the start
// time has come.
func StartSale() {
	ctx := storage.GetContext()
	admit(ctx, startSaleRule)

	if runtime.GetTime() < getConfig(ctx).StartTime {
		panic(common.ErrTimeoutNotReached + ": sale has not started yet")
	}
	setStage(ctx, stageFunding)
}

// SetFailed fails the funding round making contributions reclaimable. Anyone
// can fail an expired round, owner can also fail it while it is still Funding
// or Pending.
func SetFailed() {
	ctx := storage.GetContext()
	mustBeInitialized(ctx)

	stage := getStage(ctx)
	if stage > stagePending {
		panic(common.ErrInvalidStage)
	}
	if isExpired(ctx, stage) {
		setStage(ctx, stageFailed)
		return
	}
	if stage != stageFunding && stage != stagePending {
		panic(common.ErrInvalidStage)
	}
	if !runtime.CheckWitness(common.Owner(ctx)) {
		panic(common.ErrTimeoutNotReached)
	}
	setStage(ctx, stageFailed)
}

// SetCancelled cancels the round during the fiat funding phase. It can be
// invoked by owner or custodian.
func SetCancelled() {
	ctx := storage.GetContext()
	admit(ctx, cancelRule)
	setStage(ctx, stageCancelled)
}

// Terminate finishes the life of an active asset. Transfers are not possible
// afterwards, while payouts and claims are. It can be invoked by owner or
// custodian.
func Terminate() {
	ctx := storage.GetContext()
	admit(ctx, terminateRule)
	setStage(ctx, stageTerminated)
	setPaused(ctx, true)
}

// Pause suspends token transfers. It can be invoked only by owner.
func Pause() {
	ctx := storage.GetContext()
	admit(ctx, pauseRule)
	if common.GetFlag(ctx, pausedKey) {
		panic(common.ErrInvalidStage + ": already paused")
	}
	setPaused(ctx, true)
}

// Unpause resumes token transfers. It can be invoked only by owner.
func Unpause() {
	ctx := storage.GetContext()
	admit(ctx, pauseRule)
	if !common.GetFlag(ctx, pausedKey) {
		panic(common.ErrInvalidStage + ": not paused")
	}
	setPaused(ctx, false)
}

func setPaused(ctx storage.Context, paused bool) {
	common.SetFlag(ctx, pausedKey, paused)
	if paused {
		runtime.Notify("Pause")
	} else {
		runtime.Notify("Unpause")
	}
}
