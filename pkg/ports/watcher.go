package ports

import "context"

// Watcher reports changes to a set of files.
type Watcher interface {
	// Watch blocks until ctx is done, calling onChange with the changed
	// paths after each burst of writes settles.
	Watch(ctx context.Context, paths []string, onChange func(changed []string)) error
}
