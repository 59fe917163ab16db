package bootstrap

import (
	"log"

	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
)

// Severity is the debug utils message severity bitmask. Its String method
// renders combinations such as "Warning|Error".
type Severity = ext_debug_utils.DebugUtilsMessageSeverityFlags

const (
	SeverityVerbose = ext_debug_utils.SeverityVerbose
	SeverityInfo    = ext_debug_utils.SeverityInfo
	SeverityWarning = ext_debug_utils.SeverityWarning
	SeverityError   = ext_debug_utils.SeverityError
)

type MessageType = ext_debug_utils.DebugUtilsMessageTypeFlags

const (
	TypeGeneral     = ext_debug_utils.TypeGeneral
	TypeValidation  = ext_debug_utils.TypeValidation
	TypePerformance = ext_debug_utils.TypePerformance
)

// Sink receives diagnostic messages reported by the validation layers.
type Sink interface {
	Write(severity Severity, types MessageType, message string)
}

type SinkFunc func(severity Severity, types MessageType, message string)

func (f SinkFunc) Write(severity Severity, types MessageType, message string) {
	f(severity, types, message)
}

// LogSink writes every message to logger.
func LogSink(logger *log.Logger) Sink {
	return SinkFunc(func(severity Severity, types MessageType, message string) {
		logger.Printf("validation layer: [%s %s] - %s", severity, types, message)
	})
}

// CallbackFunc is invoked by the driver for each message. Returning true
// aborts the Vulkan call that triggered the message.
type CallbackFunc func(severity Severity, types MessageType, message string) bool

// Callback forwards every message verbatim to sink and never aborts.
func Callback(sink Sink) CallbackFunc {
	return func(severity Severity, types MessageType, message string) bool {
		sink.Write(severity, types, message)
		return false
	}
}

type MessengerCreateInfo struct {
	Severities Severity
	Types      MessageType
	Callback   CallbackFunc
}

// MessengerID identifies a driver-side debug messenger.
type MessengerID interface{}

// DebugUtils holds the debug messenger entry points of an instance. They are
// extension functions looked up at runtime, so either may be missing.
type DebugUtils struct {
	Create  func(info MessengerCreateInfo) (MessengerID, error)
	Destroy func(id MessengerID)
}

// Messenger owns a debug messenger. Detach releases it exactly once.
type Messenger struct {
	id       MessengerID
	destroy  func(MessengerID)
	released bool
}

func NewMessengerCreateInfo(severities Severity, types MessageType, sink Sink) MessengerCreateInfo {
	return MessengerCreateInfo{
		Severities: severities,
		Types:      types,
		Callback:   Callback(sink),
	}
}

// AttachMessenger creates a debug messenger on instance that forwards to sink.
func AttachMessenger(instance *InstanceHandle, severities Severity, types MessageType, sink Sink) (*Messenger, error) {
	if instance == nil || instance.released {
		return nil, markf(ErrMessengerCreation, nil, "attachMessenger: no live instance")
	}

	funcs := instance.instance.DebugUtils()
	if funcs.Create == nil {
		return nil, markf(ErrExtensionNotPresent, nil, "attachMessenger: vkCreateDebugUtilsMessengerEXT not present")
	}

	id, err := funcs.Create(NewMessengerCreateInfo(severities, types, sink))
	if err != nil {
		return nil, markf(ErrMessengerCreation, err, "attachMessenger: failed to set up debug messenger!")
	}

	return &Messenger{id: id, destroy: funcs.Destroy}, nil
}

func (m *Messenger) Released() bool {
	return m.released
}

// Detach destroys the messenger. A missing destroy entry point is ignored.
func (m *Messenger) Detach() {
	if m == nil || m.released {
		return
	}
	m.released = true

	if m.destroy != nil {
		m.destroy(m.id)
	}
	m.id = nil
}
