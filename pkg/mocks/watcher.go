package mocks

import (
	"context"

	"github.com/user/imgbench/pkg/ports"
)

// Watcher is a mock implementation of ports.Watcher.
type Watcher struct {
	// Changes are delivered to onChange in order before Watch returns.
	Changes [][]string

	WatchFunc func(ctx context.Context, paths []string, onChange func([]string)) error

	Paths []string
}

func (m *Watcher) Watch(ctx context.Context, paths []string, onChange func([]string)) error {
	m.Paths = paths
	if m.WatchFunc != nil {
		return m.WatchFunc(ctx, paths, onChange)
	}
	for _, c := range m.Changes {
		if ctx.Err() != nil {
			return nil
		}
		onChange(c)
	}
	return nil
}

var _ ports.Watcher = (*Watcher)(nil)
