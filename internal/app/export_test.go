package app

import (
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/tui"
)

// NewInspectorSource exposes the inspector source for tests.
func NewInspectorSource(a *App, view domain.View, pageSize int) tui.Source {
	return &inspector{app: a, view: view, pageSize: a.pageSizeOr(pageSize)}
}
