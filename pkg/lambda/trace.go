package lambda

import "sync/atomic"

type RuleKind int

const (
	RuleUnknown RuleKind = iota
	RuleBeta
	RuleRename
)

func (r RuleKind) String() string {
	switch r {
	case RuleBeta:
		return "Beta"
	case RuleRename:
		return "Rename"
	default:
		return "Unknown"
	}
}

// TraceEvent records one reduction step. For RuleBeta, Param is the bound
// variable and Arg the normalized argument. For RuleRename, Param is the
// renamed binder and Arg the fresh variable.
type TraceEvent struct {
	Step  uint64
	Rule  RuleKind
	Param Var
	Arg   Term
}

// Stats holds reduction statistics.
type Stats struct {
	TotalReductions   uint64
	BetaReductions    uint64
	Substitutions     uint64
	Renames           uint64
	StuckApplications uint64
}

func (e *Evaluator) Stats() Stats {
	beta := atomic.LoadUint64(&e.statBeta)
	return Stats{
		TotalReductions:   beta,
		BetaReductions:    beta,
		Substitutions:     atomic.LoadUint64(&e.statSubst),
		Renames:           atomic.LoadUint64(&e.statRename),
		StuckApplications: atomic.LoadUint64(&e.statStuck),
	}
}

// EnableTrace keeps the first capacity events from now on.
func (e *Evaluator) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	e.traceBuf = make([]TraceEvent, capacity)
	e.traceCap = uint64(capacity)
	atomic.StoreUint64(&e.traceIdx, 0)
	atomic.StoreUint32(&e.traceOn, 1)
}

func (e *Evaluator) DisableTrace() {
	atomic.StoreUint32(&e.traceOn, 0)
}

func (e *Evaluator) TraceSnapshot() []TraceEvent {
	if atomic.LoadUint32(&e.traceOn) == 0 {
		return nil
	}
	count := atomic.LoadUint64(&e.traceIdx)
	if count > e.traceCap {
		count = e.traceCap
	}
	res := make([]TraceEvent, count)
	copy(res, e.traceBuf[:count])
	return res
}

func (e *Evaluator) recordTrace(rule RuleKind, param Var, arg Term) {
	if atomic.LoadUint32(&e.traceOn) == 0 || e.traceCap == 0 {
		return
	}
	idx := atomic.AddUint64(&e.traceIdx, 1) - 1
	if idx >= e.traceCap {
		return
	}
	e.traceBuf[idx] = TraceEvent{
		Step:  idx,
		Rule:  rule,
		Param: param,
		Arg:   arg,
	}
}
