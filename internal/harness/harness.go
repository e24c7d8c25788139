package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/sortscope/internal/algo"
	"github.com/roach88/sortscope/internal/playback"
	"github.com/roach88/sortscope/internal/step"
	"github.com/roach88/sortscope/internal/trace"
)

// Result captures everything a scenario's assertions can see after the
// command list has been applied.
type Result struct {
	Scenario *Scenario
	Sequence step.Sequence
	Trace    *trace.Snapshot
	Final    []int
	Cursor   int
	State    playback.State
}

// Run executes a scenario against a ManualScheduler and evaluates its
// assertions. The first failing assertion is returned as an
// *AssertionError; an execution problem (unknown algorithm, bad command)
// is returned as a plain error.
func Run(scenario *Scenario) (*Result, error) {
	engine, err := algo.New(scenario.Algorithm)
	if err != nil {
		return nil, err
	}

	sched := playback.NewManualScheduler()
	opts := []playback.Option{playback.WithScheduler(sched)}
	if scenario.Speed != "" {
		speed, err := playback.ParseSpeed(scenario.Speed)
		if err != nil {
			return nil, err
		}
		opts = append(opts, playback.WithSpeed(speed))
	}

	ctrl := playback.NewController(engine, opts...)
	ctrl.SetArray(scenario.Array)

	for i, cmd := range scenario.Commands {
		if err := applyCommand(ctrl, sched, cmd); err != nil {
			return nil, fmt.Errorf("command %d (%q): %w", i, cmd, err)
		}
	}

	seq := ctrl.Sequence()
	result := &Result{
		Scenario: scenario,
		Sequence: seq,
		Trace:    trace.NewSnapshot(scenario.RunToken, scenario.Algorithm, scenario.Array, seq),
		Final:    ctrl.Array(),
		Cursor:   ctrl.Cursor(),
		State:    ctrl.State(),
	}

	for _, assertion := range scenario.Assertions {
		if err := evaluate(result, assertion); err != nil {
			return result, err
		}
	}
	return result, nil
}

// applyCommand maps one scenario command onto a controller operation.
func applyCommand(ctrl *playback.Controller, sched *playback.ManualScheduler, cmd string) error {
	switch {
	case cmd == "start":
		ctrl.Start()
	case cmd == "fast_start":
		ctrl.FastStart()
	case cmd == "pause":
		ctrl.Pause()
	case cmd == "reset":
		ctrl.Reset()
	case cmd == "step_forward":
		ctrl.StepForward()
	case cmd == "step_backward":
		ctrl.StepBackward()
	case cmd == "tick":
		sched.Fire()
	case cmd == "play_all":
		ctrl.Start()
		sched.Drain()
	case strings.HasPrefix(cmd, "set_speed:"):
		speed, err := playback.ParseSpeed(strings.TrimPrefix(cmd, "set_speed:"))
		if err != nil {
			return err
		}
		ctrl.SetSpeed(speed)
	default:
		return fmt.Errorf("unknown command")
	}
	return nil
}
