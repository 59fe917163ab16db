package bootstrap

import "github.com/cockroachdb/errors"

var (
	// ErrWindowInit is returned when the windowing subsystem cannot be initialized
	// or the window cannot be created.
	ErrWindowInit = errors.New("window init failed")
	// ErrInstanceCreation is returned when the driver rejects instance creation.
	ErrInstanceCreation = errors.New("instance creation failed")
	// ErrValidationLayersUnavailable is returned before instance creation is attempted
	// when a requested validation layer is not installed.
	ErrValidationLayersUnavailable = errors.New("validation layers requested but not available")
	// ErrExtensionNotPresent is returned when an optional extension entry point
	// cannot be resolved. It is never fatal to startup.
	ErrExtensionNotPresent = errors.New("extension not present")
	// ErrMessengerCreation is returned when the debug messenger entry point
	// exists but the driver fails to create the messenger.
	ErrMessengerCreation = errors.New("failed to set up debug messenger")
	// ErrNoSuitableDevice is returned when no physical device satisfies the predicate.
	ErrNoSuitableDevice = errors.New("failed to find a suitable GPU")
)

func markf(kind error, err error, format string, args ...interface{}) error {
	if err == nil {
		return errors.Mark(errors.Newf(format, args...), kind)
	}
	return errors.Mark(errors.Wrapf(err, format, args...), kind)
}
