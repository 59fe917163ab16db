package bootstrap

import (
	"log"
	"runtime"

	"github.com/vkngwrapper/core/v3/common"
)

const (
	WindowWidth     = 800
	WindowHeight    = 600
	WindowTitle     = "Vulkan"
	ApplicationName = "Hello Triangle"
	EngineName      = "No Engine"
)

// KhronosValidationLayer is the validation layer shipped with the LunarG Vulkan SDK.
const KhronosValidationLayer = "VK_LAYER_KHRONOS_validation"

// Options configures an Application. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	Width  int
	Height int
	Title  string

	ApplicationName    string
	ApplicationVersion common.Version
	EngineName         string
	EngineVersion      common.Version
	APIVersion         common.APIVersion

	EnableValidation bool
	ValidationLayers []string
	MessageSeverity  Severity
	MessageTypes     MessageType
	// Sink receives validation messages. Nil writes them to Logger.
	Sink Sink

	// DevicePredicate decides which physical device is selected. Nil skips
	// device selection entirely.
	DevicePredicate Predicate

	// GOOS selects platform quirks, such as portability enumeration on darwin.
	GOOS string

	Logger *log.Logger
}

func DefaultOptions() Options {
	return Options{
		Width:  WindowWidth,
		Height: WindowHeight,
		Title:  WindowTitle,

		ApplicationName:    ApplicationName,
		ApplicationVersion: common.CreateVersion(1, 0, 0),
		EngineName:         EngineName,
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         common.Vulkan1_0,

		EnableValidation: validationDefault,
		ValidationLayers: []string{KhronosValidationLayer},
		MessageSeverity:  SeverityWarning | SeverityError,
		MessageTypes:     TypeGeneral | TypeValidation | TypePerformance,

		DevicePredicate: DiscreteWithGeometryShader,

		GOOS:   runtime.GOOS,
		Logger: log.Default(),
	}
}

func (o *Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

func (o *Options) sink() Sink {
	if o.Sink == nil {
		return LogSink(o.logger())
	}
	return o.Sink
}
