package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"tscfg/internal/driver"
	"tscfg/internal/source"
	"tscfg/internal/ui"
)

type checkOutcome struct {
	fs      *source.FileSet
	results []driver.FileResult
	err     error
}

// runCheckWithUI runs driver.Check while a progress TUI renders to out.
// Quitting the TUI cancels the check.
func runCheckWithUI(ctx context.Context, out io.Writer, title string, req driver.Request) (*source.FileSet, []driver.FileResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		reqCopy := req
		reqCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.Check(ctx, reqCopy)
		outcomeCh <- checkOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	files := make([]string, len(req.Inputs))
	for i, in := range req.Inputs {
		files[i] = in.Path
	}

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	final, uiErr := program.Run()
	if uiErr != nil || ui.Canceled(final) {
		cancel()
	}
	// воркеры не должны застрять на полном канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.fs, outcome.results, uiErr
	}
	if outcome.err == nil && ui.Canceled(final) {
		return outcome.fs, outcome.results, context.Canceled
	}
	return outcome.fs, outcome.results, outcome.err
}
