package schedulers

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"process-scheduler/internal/core"
)

type Policy string

const (
	FirstComeFirstServe Policy = "fcfs"
	ShortestJobFirst    Policy = "sjf"
	PriorityScheduling  Policy = "priority"
	RoundRobin          Policy = "rr"
)

// Policies lists every supported policy in display order.
var Policies = []Policy{FirstComeFirstServe, ShortestJobFirst, PriorityScheduling, RoundRobin}

func (p Policy) DisplayName() string {
	switch p {
	case FirstComeFirstServe:
		return "First Come First Serve"
	case ShortestJobFirst:
		return "Shortest Job First"
	case PriorityScheduling:
		return "Priority"
	case RoundRobin:
		return "Round Robin"
	default:
		return string(p)
	}
}

// ParsePolicy accepts the short names plus the labels a user would type.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first come first serve", "first_come_first_serve":
		return FirstComeFirstServe, nil
	case "sjf", "shortest job first", "shortest_job_first":
		return ShortestJobFirst, nil
	case "priority":
		return PriorityScheduling, nil
	case "rr", "round robin", "round_robin", "roundrobin":
		return RoundRobin, nil
	default:
		return "", core.NewValidationError("policy", "unknown scheduling policy %q", name)
	}
}

// ParseQuantum converts textual quantum input into a positive time slice.
func ParseQuantum(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, core.NewValidationError("time_quantum", "required for round robin")
	}
	quantum, err := strconv.Atoi(raw)
	if err != nil {
		return 0, core.NewValidationError("time_quantum", "%q is not an integer", raw)
	}
	if quantum <= 0 {
		return 0, core.NewValidationError("time_quantum", "must be > 0, got %d", quantum)
	}
	return quantum, nil
}

// IdleStrategy decides how the clock moves while no process is ready.
type IdleStrategy int

const (
	IdleJump IdleStrategy = iota // jump to the next arrival
	IdleTick                     // advance one unit at a time
)

func ParseIdleStrategy(s string) (IdleStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "jump":
		return IdleJump, nil
	case "tick":
		return IdleTick, nil
	default:
		return IdleJump, fmt.Errorf("invalid idle strategy: %s (must be 'jump' or 'tick')", s)
	}
}

type options struct {
	idle   IdleStrategy
	logger *slog.Logger
}

type Option func(*options)

func WithIdleStrategy(idle IdleStrategy) Option {
	return func(o *options) { o.idle = idle }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func newOptions(opts []Option) options {
	o := options{idle: IdleJump, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result is the outcome of one simulation run.
type Result struct {
	RunId          string
	Policy         Policy
	TimeQuantum    int
	Trace          core.Trace
	WaitingTime    map[string]int
	TurnAroundTime map[string]int
	ResponseTime   map[string]int
	CompletionTime map[string]int
	CpuMetric      core.CpuMetric
}

// Simulate validates the input and runs the selected policy to completion.
// quantum is only read for RoundRobin.
func Simulate(processes []core.Process, policy Policy, quantum int, opts ...Option) (Result, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return Result{}, err
	}
	switch policy {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes, opts...), nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes, opts...), nil
	case PriorityScheduling:
		return SchedulePriority(processes, opts...), nil
	case RoundRobin:
		if quantum <= 0 {
			return Result{}, core.NewValidationError("time_quantum", "must be > 0, got %d", quantum)
		}
		return ScheduleRoundRobin(processes, quantum, opts...), nil
	default:
		return Result{}, core.NewValidationError("policy", "unknown scheduling policy %q", string(policy))
	}
}

// runState holds everything a run mutates. It is indexed by input position
// and built fresh for every run.
type runState struct {
	processes  []core.Process
	cpu        *core.Cpu
	remaining  []int
	queued     []bool
	done       []bool
	waiting    []int
	pending    int
	idle       IdleStrategy
	logger     *slog.Logger
	completion []int
}

func newRunState(processes []core.Process, o options) *runState {
	n := len(processes)
	st := &runState{
		processes:  processes,
		cpu:        core.NewCpu(),
		remaining:  make([]int, n),
		queued:     make([]bool, n),
		done:       make([]bool, n),
		waiting:    make([]int, n),
		completion: make([]int, n),
		pending:    n,
		idle:       o.idle,
		logger:     o.logger,
	}
	for i, p := range processes {
		st.remaining[i] = p.BurstTime
	}
	return st
}

// arrivalOrder returns input indices sorted by arrival, ties kept in input
// order.
func arrivalOrder(processes []core.Process) []int {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return processes[order[a]].ArrivalTime < processes[order[b]].ArrivalTime
	})
	return order
}

// nextArrival is the earliest arrival after now among processes that are
// neither finished nor queued.
func (st *runState) nextArrival() (int, bool) {
	now := st.cpu.Now()
	next, found := 0, false
	for i, p := range st.processes {
		if st.done[i] || st.queued[i] || p.ArrivalTime <= now {
			continue
		}
		if !found || p.ArrivalTime < next {
			next, found = p.ArrivalTime, true
		}
	}
	return next, found
}

// idleUntil moves the clock towards target following the idle strategy.
// With IdleTick the caller re-evaluates the ready set after every unit.
func (st *runState) idleUntil(target int) {
	switch st.idle {
	case IdleTick:
		st.cpu.IdleUntil(st.cpu.Now() + 1)
	default:
		st.cpu.IdleUntil(target)
	}
}

// idleToNextArrival advances the clock when nothing is ready.
func (st *runState) idleToNextArrival() {
	next, ok := st.nextArrival()
	if !ok {
		// pending work always has a future arrival; step anyway
		next = st.cpu.Now() + 1
	}
	st.logger.Debug("cpu idle", slog.Int("from", st.cpu.Now()), slog.Int("until", next))
	st.idleUntil(next)
}

// run executes process i for duration units and completes it when its
// remaining service reaches zero.
func (st *runState) run(i, duration int) core.Slice {
	p := st.processes[i]
	slice := st.cpu.Execute(p.Pid, duration)
	st.remaining[i] -= duration
	st.logger.Debug("dispatch",
		slog.String("pid", p.Pid),
		slog.Int("start", slice.Start),
		slog.Int("duration", duration),
		slog.Int("remaining", st.remaining[i]),
	)
	if st.remaining[i] == 0 {
		st.done[i] = true
		st.completion[i] = slice.End()
		st.pending--
	}
	return slice
}

// result derives the timing maps from completion times.
// turnaround = completion - arrival, waiting = turnaround - burst.
func (st *runState) result(policy Policy, quantum int) Result {
	res := Result{
		RunId:          uuid.NewString(),
		Policy:         policy,
		TimeQuantum:    quantum,
		Trace:          st.cpu.Trace(),
		WaitingTime:    make(map[string]int, len(st.processes)),
		TurnAroundTime: make(map[string]int, len(st.processes)),
		ResponseTime:   make(map[string]int, len(st.processes)),
		CompletionTime: make(map[string]int, len(st.processes)),
		CpuMetric:      st.cpu.Metric(),
	}
	for i, p := range st.processes {
		if !st.done[i] {
			continue
		}
		turnaround := st.completion[i] - p.ArrivalTime
		res.CompletionTime[p.Pid] = st.completion[i]
		res.TurnAroundTime[p.Pid] = turnaround
		res.WaitingTime[p.Pid] = turnaround - p.BurstTime
		if start, ok := res.Trace.FirstStart(p.Pid); ok {
			res.ResponseTime[p.Pid] = start - p.ArrivalTime
		}
	}
	st.logger.Info("simulation finished",
		slog.String("run_id", res.RunId),
		slog.String("policy", string(policy)),
		slog.Int("processes", len(st.processes)),
		slog.Int("makespan", res.Trace.Makespan()),
		slog.Int("idle", res.CpuMetric.IdleTime),
	)
	return res
}
