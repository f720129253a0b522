// Package tui provides the inspector: a terminal view of every derived node
// of the current view, refreshed as fetches settle.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Source feeds the inspector.
type Source interface {
	// Title describes what is inspected.
	Title() string
	// Rows returns the current state of every node.
	Rows() []Row
	// Loading reports whether fetches are still in flight.
	Loading() bool
	// Refresh fetches every cached entity again.
	Refresh(ctx context.Context) error
	// NextPage loads the next page of the account transaction list.
	NextPage(ctx context.Context) error
}

func refresh(ctx context.Context, src Source) tea.Cmd {
	return func() tea.Msg {
		return MsgRefreshed{Err: src.Refresh(ctx)}
	}
}

func nextPage(ctx context.Context, src Source) tea.Cmd {
	return func() tea.Msg {
		return MsgPageLoaded{Err: src.NextPage(ctx)}
	}
}
