package verify

import (
	"errors"
	"fmt"
	"io/fs"

	"archivecheck/internal/services"
)

// classifyOpenError separates "the file cannot be read" from "the file is not
// the container it claims to be". Only the latter is a verdict about the
// archive; the former leaves it unverifiable.
func classifyOpenError(component string, err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return services.Wrap(services.ErrIO, component, "open", "archive unreadable", err)
	}
	return services.Wrap(services.ErrFormat, component, "open", "container rejected", err)
}

// entryError tags a failure while draining one entry. The container was
// recognized at this point, so anything except an I/O-level failure means the
// archive is damaged.
func entryError(component, entry string, err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return services.Wrap(services.ErrIO, component, "read", fmt.Sprintf("entry %s", entry), err)
	}
	return services.Wrap(services.ErrCorrupt, component, "read", fmt.Sprintf("entry %s", entry), err)
}
