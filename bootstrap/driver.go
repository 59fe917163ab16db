package bootstrap

import (
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
)

// Driver is the part of the graphics driver that exists before an instance does.
type Driver interface {
	AvailableLayers() ([]string, error)
	AvailableExtensions() ([]string, error)
	CreateInstance(info InstanceCreateInfo) (DriverInstance, error)
}

// DriverLoader builds a Driver once the windowing subsystem has loaded the
// Vulkan library.
type DriverLoader func() (Driver, error)

// DriverInstance is a live driver instance.
type DriverInstance interface {
	EnumeratePhysicalDevices() ([]PhysicalDevice, error)
	// DebugUtils resolves the debug messenger entry points. Either function is
	// nil when the driver does not expose it.
	DebugUtils() DebugUtils
	Destroy()
}

type PhysicalDevice interface {
	Properties() (*DeviceProperties, error)
	Features() *DeviceFeatures
}

type InstanceFlags = core1_0.InstanceCreateFlags

const InstanceEnumeratePortability = khr_portability_enumeration.InstanceCreateEnumeratePortability

type InstanceCreateInfo struct {
	ApplicationName    string
	ApplicationVersion common.Version
	EngineName         string
	EngineVersion      common.Version
	APIVersion         common.APIVersion

	Flags      InstanceFlags
	Extensions []string
	Layers     []string

	// DebugMessenger, when set, is chained onto instance creation so that
	// messages emitted while the instance is created or destroyed are captured.
	DebugMessenger *MessengerCreateInfo
}
