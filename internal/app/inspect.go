package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/explorer/internal/adapters/fetchcache"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/tui"
	"go.trai.ch/zerr"
)

// Inspect selects view and runs the inspector until the user quits.
func (a *App) Inspect(ctx context.Context, view domain.View, opts ViewOptions) error {
	if view == nil {
		return domain.ErrNoView
	}

	a.state.SetView(view)
	src := &inspector{app: a, view: view, pageSize: a.pageSizeOr(opts.PageSize)}
	model := tui.NewModel(ctx, src)

	teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	p := tea.NewProgram(model, teaOpts...)

	for _, n := range a.nodes(src.pageSize) {
		cancel := a.state.Graph().Watch(n.node, func() { p.Send(tui.MsgChanged{}) })
		defer cancel()
	}

	// Settled fetches carry the failures shown in the status line.
	unsubscribe := a.cache.Subscribe(func(e fetchcache.Event) {
		p.Send(tui.MsgSettled{Kind: e.Kind, Key: e.Key, Err: e.Err})
	})
	defer unsubscribe()

	// Fetches that settled before the subscription are picked up by this reload.
	go p.Send(tui.MsgSettled{})

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return zerr.Wrap(err, "inspector failed")
	}

	a.record(view)
	return nil
}

// inspector feeds the TUI from the application state.
type inspector struct {
	app      *App
	view     domain.View
	pageSize int
}

var _ tui.Source = (*inspector)(nil)

func (i *inspector) Title() string {
	if i.view.Payload() == "" {
		return string(i.view.Kind())
	}
	return fmt.Sprintf("%s %s", i.view.Kind(), i.view.Payload())
}

func (i *inspector) Rows() []tui.Row {
	report := i.app.snapshot(i.pageSize)
	rows := make([]tui.Row, 0, len(report.Nodes))
	for _, n := range report.Nodes {
		row := tui.Row{
			Label:   n.Label,
			Status:  n.Status,
			Summary: n.Summary(),
			Detail:  detail(n),
		}
		if i.app.stats != nil {
			st := i.app.stats.Stats(n.Label)
			row.Recomputes = st.Recomputes
			row.Changes = st.Changes
		}
		rows = append(rows, row)
	}
	return rows
}

func (i *inspector) Loading() bool {
	return i.app.cache.Inflight() > 0
}

func (i *inspector) Refresh(ctx context.Context) error {
	return i.app.cache.Refresh(ctx)
}

func (i *inspector) NextPage(ctx context.Context) error {
	address, err := i.app.state.Address().Get()
	if err != nil || address == "" {
		return err
	}
	return i.app.cache.FetchNextPage(ctx, address, i.pageSize)
}
