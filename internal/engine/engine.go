package engine

import (
	"context"
	"fmt"
	"io"
	"os"

	"turbocheck/internal/checks"
	"turbocheck/internal/config"
	"turbocheck/internal/logger"
	"turbocheck/internal/output"

	"github.com/google/uuid"
)

const (
	ExitPassed = 0
	ExitFailed = 1
	ExitFatal  = 2
)

func exitCodeForRun(fatal, failed bool) int {
	// 0 = every phase passed
	// 1 = at least one check failed
	// 2 = the run could not start
	if fatal {
		return ExitFatal
	}
	if failed {
		return ExitFailed
	}
	return ExitPassed
}

type Engine struct {
	Stdout io.Writer
	Stderr io.Writer
	Log    *logger.Logger

	// newRunID is a test seam; nil uses a random UUID.
	newRunID func() string
}

func NewEngine(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Discard()
	}
	return &Engine{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    log,
	}
}

// Run verifies the workspace described by cfg and returns the process exit
// code. cfg must already be validated.
func (e *Engine) Run(ctx context.Context, cfg *config.Config) int {
	plan, err := BuildPlan(cfg)
	if err != nil {
		fmt.Fprintf(e.Stderr, "Error: %v\n", err)
		return exitCodeForRun(true, false)
	}

	outMgr, err := setupOutputManager(cfg, e.Stdout)
	if err != nil {
		fmt.Fprintf(e.Stderr, "Error: %v\n", err)
		return exitCodeForRun(true, false)
	}

	summary := e.Execute(ctx, cfg, plan, outMgr)
	if err := outMgr.Close(); err != nil {
		e.Log.Warnf("closing outputs: %v", err)
	}
	return summary.ExitCode
}

func setupOutputManager(cfg *config.Config, stdout io.Writer) (*output.Manager, error) {
	outMgr := output.NewManager()

	colorize := !cfg.Output.NoColor && output.IsTerminal(stdout)
	if err := outMgr.AddSink(output.NewConsoleSink(stdout, colorize)); err != nil {
		outMgr.Close()
		return nil, err
	}

	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	if cfg.Output.Report != "" {
		rs, err := output.NewReportSink(cfg.Output.Report)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(rs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

// Execute runs every phase of plan in order and streams events to outMgr.
// Every phase runs regardless of earlier outcomes; the summary is always
// written.
func (e *Engine) Execute(ctx context.Context, cfg *config.Config, plan *RunPlan, outMgr *output.Manager) output.Summary {
	runID := e.runID()
	write := func(ev output.Event) {
		if err := outMgr.Write(ev); err != nil {
			e.Log.Warnf("%v", err)
		}
	}

	e.Log.Debugf("run %s: base directory %s, %d phase(s)", runID, plan.Workspace.Root(), len(plan.Phases))
	write(output.Event{
		Type:    output.EventRunStarted,
		RunID:   runID,
		Title:   cfg.Checklist.Title,
		BaseDir: plan.Workspace.Root(),
	})

	summary := output.Summary{Phases: len(plan.Phases)}
	for i, phase := range plan.Phases {
		index := i + 1
		write(output.Event{
			Type:  output.EventPhaseStarted,
			RunID: runID,
			Index: index,
			Phase: phase.ID(),
			Title: phase.Title(),
		})

		report := e.evaluatePhase(ctx, phase, plan.Workspace)
		for _, r := range report.Results {
			write(output.ResultEvent(runID, index, r))
		}

		pass, fail := report.Counts()
		summary.Checks += pass + fail
		summary.ChecksPassed += pass
		if report.Passed {
			summary.PhasesPassed++
		}
		e.Log.Debugf("phase %s: passed=%t (%d ok, %d failed)", phase.ID(), report.Passed, pass, fail)

		rep := report
		write(output.Event{
			Type:   output.EventPhaseFinished,
			RunID:  runID,
			Index:  index,
			Phase:  phase.ID(),
			Title:  phase.Title(),
			Report: &rep,
		})
	}

	summary.Passed = summary.PhasesPassed == summary.Phases
	summary.ExitCode = exitCodeForRun(false, !summary.Passed)
	if summary.Passed {
		summary.Verdict = cfg.Checklist.Success
		summary.NextSteps = cfg.Checklist.NextSteps
	} else {
		summary.Verdict = cfg.Checklist.Failure
	}

	write(output.Event{Type: output.EventRunFinished, RunID: runID, Summary: &summary})
	return summary
}

func (e *Engine) evaluatePhase(ctx context.Context, phase checks.Phase, ws *checks.Workspace) checks.PhaseReport {
	report, err := phase.Evaluate(ctx, ws)
	if report.PhaseID == "" {
		report.PhaseID = phase.ID()
	}
	if report.Title == "" {
		report.Title = phase.Title()
	}
	if err != nil {
		e.Log.Errorf("phase %s interrupted: %v", phase.ID(), err)
		report.Passed = false
		report.Results = append(report.Results, checks.Result{
			PhaseID:     phase.ID(),
			Description: phase.Title(),
			Status:      checks.StatusError,
			Message:     fmt.Sprintf("%s interrupted: %v", phase.Title(), err),
		})
	}
	return report
}

func (e *Engine) runID() string {
	if e.newRunID != nil {
		return e.newRunID()
	}
	return uuid.NewString()
}
