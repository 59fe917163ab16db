// Package vkngdriver implements bootstrap.Driver on top of vkngwrapper.
package vkngdriver

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/hellotriangle/bootstrap"
)

type Driver struct {
	global core1_0.GlobalDriver

	// debugUtilsDriver resolves the VK_EXT_debug_utils entry points of an
	// instance. It returns nil when the extension is not active.
	debugUtilsDriver func(core1_0.CoreInstanceDriver) ext_debug_utils.ExtensionDriver
}

// Load builds a driver from a vkGetInstanceProcAddr pointer, as handed out by
// the windowing library once it has loaded the Vulkan loader.
func Load(procAddr unsafe.Pointer) (*Driver, error) {
	if procAddr == nil {
		return nil, errors.New("vkngdriver: vkGetInstanceProcAddr is nil")
	}

	global, err := core.CreateDriverFromProcAddr(procAddr)
	if err != nil {
		return nil, errors.Wrap(err, "vkngdriver: cannot create global driver")
	}

	return &Driver{
		global:           global,
		debugUtilsDriver: ext_debug_utils.CreateExtensionDriverFromCoreDriver,
	}, nil
}

// Loader adapts Load to bootstrap.DriverLoader. procAddr is called lazily
// because the windowing library only provides it after a window exists.
func Loader(procAddr func() unsafe.Pointer) bootstrap.DriverLoader {
	return func() (bootstrap.Driver, error) {
		driver, err := Load(procAddr())
		if err != nil {
			return nil, err
		}
		return driver, nil
	}
}

func (d *Driver) AvailableLayers() ([]string, error) {
	layers, _, err := d.global.AvailableLayers()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(layers))
	for name := range layers {
		names = append(names, name)
	}
	return names, nil
}

func (d *Driver) AvailableExtensions() ([]string, error) {
	extensions, _, err := d.global.AvailableExtensions()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	return names, nil
}

// CreateInstance creates the instance and builds its instance-level driver.
// If the driver cannot be built the new instance is destroyed straight away.
func (d *Driver) CreateInstance(info bootstrap.InstanceCreateInfo) (bootstrap.DriverInstance, error) {
	instance, _, err := d.global.CreateInstance(nil, instanceCreateInfo(info))
	if err != nil {
		return nil, err
	}

	instanceDriver, err := d.global.BuildInstanceDriver(instance)
	if err != nil {
		d.destroyUnowned(instance)
		return nil, errors.Wrap(err, "vkngdriver: cannot build instance driver")
	}

	return &Instance{driver: instanceDriver, debugUtilsDriver: d.debugUtilsDriver}, nil
}

// destroyUnowned destroys an instance that has no instance driver. The global
// loader cannot destroy instances, so an instance loader is built for it.
func (d *Driver) destroyUnowned(instance core1_0.Instance) {
	instanceLoader, err := d.global.Loader().CreateInstanceLoader(instance.Handle())
	if err != nil {
		return
	}
	instanceLoader.VkDestroyInstance(instance.Handle(), nil)
}

func instanceCreateInfo(info bootstrap.InstanceCreateInfo) core1_0.InstanceCreateInfo {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:       info.ApplicationName,
		ApplicationVersion:    info.ApplicationVersion,
		EngineName:            info.EngineName,
		EngineVersion:         info.EngineVersion,
		APIVersion:            info.APIVersion,
		Flags:                 info.Flags,
		EnabledExtensionNames: append([]string(nil), info.Extensions...),
		EnabledLayerNames:     append([]string(nil), info.Layers...),
	}

	if info.DebugMessenger != nil {
		instanceOptions.Next = messengerCreateInfo(*info.DebugMessenger)
	}

	return instanceOptions
}
