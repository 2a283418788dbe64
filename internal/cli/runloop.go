package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/askohli/hunt/internal/cli/tui"
	"github.com/askohli/hunt/internal/events"
	"github.com/askohli/hunt/internal/workflow"
)

// statusPollInterval is how often the run loop samples machine state while
// waiting for a terminal outcome.
const statusPollInterval = 50 * time.Millisecond

// runWorkflow connects the channel, starts one workflow run, and blocks until
// the run reaches a terminal status or the channel fails permanently. A failed
// run returns its server error message; a dead channel returns the transport
// error with the run left untouched.
func (a *App) runWorkflow(ctx context.Context, rt *Runtime, title string,
	begin func(context.Context) error, snapshot func() workflow.Run[any]) error {

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	handler := NewSignalHandler(cancel)
	handler.OnShutdown(func() {
		fmt.Fprintln(os.Stderr, "\nShutting down...")
	})
	handler.Start()
	defer handler.Stop()

	useTUI := !a.noTUI && term.IsTerminal(int(os.Stdout.Fd()))

	var bridge *tui.Bridge
	var tuiDone chan error
	if useTUI {
		model := tui.NewModel(title, rt.Config.BaseAddress)
		program := tea.NewProgram(model)
		bridge = tui.NewBridge(program)
		rt.Bus.Subscribe(bridge.Handler())

		tuiDone = make(chan error, 1)
		go func() {
			_, err := program.Run()
			tuiDone <- err
		}()
	} else {
		rt.Bus.Subscribe(ProgressHandler(os.Stdout))
		if a.verbose {
			rt.Bus.Subscribe(events.LogHandler(events.LogConfig{Writer: os.Stderr}))
		}
	}

	if err := rt.Channel.Start(ctx); err != nil {
		return err
	}

	if err := begin(ctx); err != nil {
		if bridge != nil {
			bridge.SendDone()
			<-tuiDone
		}
		return err
	}

	g, waitCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ticker := time.NewTicker(statusPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-waitCtx.Done():
				return waitCtx.Err()
			case <-rt.Channel.Done():
				if snapshot().Status.IsTerminal() {
					return nil
				}
				if err := rt.Channel.LastError(); err != nil {
					return fmt.Errorf("event channel failed: %w", err)
				}
				return errors.New("event channel closed before the run finished")
			case <-ticker.C:
				if snapshot().Status.IsTerminal() {
					return nil
				}
			}
		}
	})
	waitErr := g.Wait()

	if bridge != nil {
		bridge.SendDone()
		if err := <-tuiDone; err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		}
	}

	if waitErr != nil {
		return waitErr
	}

	if run := snapshot(); run.Status == workflow.StatusFailed {
		return fmt.Errorf("%s failed: %s", title, run.Err)
	}
	return nil
}

// jobSnapshot adapts the job machine's typed snapshot for the run loop.
func jobSnapshot(m *workflow.JobMachine) func() workflow.Run[any] {
	return func() workflow.Run[any] {
		return eraseRun(m.Snapshot())
	}
}

// interviewSnapshot adapts the interview machine's typed snapshot.
func interviewSnapshot(m *workflow.InterviewMachine) func() workflow.Run[any] {
	return func() workflow.Run[any] {
		return eraseRun(m.Snapshot())
	}
}

func eraseRun[R any](run workflow.Run[R]) workflow.Run[any] {
	out := workflow.Run[any]{
		Kind:   run.Kind,
		Status: run.Status,
		Token:  run.Token,
		Log:    run.Log,
		Err:    run.Err,
	}
	if run.Result != nil {
		var r any = *run.Result
		out.Result = &r
	}
	return out
}
