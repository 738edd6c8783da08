package types

// EventKind tags a diagnostic event emitted during an install.
type EventKind string

const (
	EventClassified     EventKind = "classified"
	EventStagingCreated EventKind = "staging_created"
	EventStagingRemoved EventKind = "staging_removed"
	EventDirCreated     EventKind = "dir_created"
	EventFileCopied     EventKind = "file_copied"
	EventFileSkipped    EventKind = "file_skipped"
)

// Event is a single diagnostic occurrence during an install: a
// classification result, a staging directory lifecycle step, or a per-file
// copy/skip decision.
type Event struct {
	Kind EventKind
	// Source is the source path the event concerns, when any.
	Source string
	// Dest is the destination path the event concerns, when any.
	Dest string
	// Detail carries extra context, such as the layout name for
	// EventClassified.
	Detail string
}

// Sink receives diagnostic events. Callers inject one to observe an install;
// the orchestrator falls back to logging events when none is given.
type Sink func(Event)

// Emit is nil-safe so call sites never need to guard.
func (s Sink) Emit(e Event) {
	if s != nil {
		s(e)
	}
}
