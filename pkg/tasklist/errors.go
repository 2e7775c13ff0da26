package tasklist

import "errors"

var (
	// ErrValidationRejected means the task text was blank after trimming.
	// Nothing changed; the caller should re-prompt.
	ErrValidationRejected = errors.New("tasklist: task text is empty")

	// ErrStorageUnavailable wraps blob store read and write failures. After a
	// mutation it is a warning: the in-memory change was kept.
	ErrStorageUnavailable = errors.New("tasklist: storage unavailable")

	// ErrStorageCorrupt means the stored value could not be decoded. The
	// store starts empty.
	ErrStorageCorrupt = errors.New("tasklist: stored tasks are corrupt")

	// ErrTaskNotFound is returned for ids not in the list. Nothing changed.
	ErrTaskNotFound = errors.New("tasklist: task not found")

	// ErrAmbiguousID is returned by Resolve when a prefix matches more than
	// one task.
	ErrAmbiguousID = errors.New("tasklist: id prefix is ambiguous")
)

// IsWarning reports whether err leaves the requested change applied in memory.
func IsWarning(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
