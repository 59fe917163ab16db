package vkngdriver

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/hellotriangle/bootstrap"
)

type Instance struct {
	driver           core1_0.CoreInstanceDriver
	debugUtilsDriver func(core1_0.CoreInstanceDriver) ext_debug_utils.ExtensionDriver
}

func (i *Instance) EnumeratePhysicalDevices() ([]bootstrap.PhysicalDevice, error) {
	physicalDevices, _, err := i.driver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, err
	}

	devices := make([]bootstrap.PhysicalDevice, 0, len(physicalDevices))
	for _, device := range physicalDevices {
		devices = append(devices, &PhysicalDevice{driver: i.driver, device: device})
	}
	return devices, nil
}

func (i *Instance) DebugUtils() bootstrap.DebugUtils {
	if i.debugUtilsDriver == nil {
		return bootstrap.DebugUtils{}
	}
	return debugUtils(i.debugUtilsDriver(i.driver))
}

func (i *Instance) Destroy() {
	i.driver.DestroyInstance(nil)
}

type PhysicalDevice struct {
	driver core1_0.CoreInstanceDriver
	device core1_0.PhysicalDevice
}

func (d *PhysicalDevice) Handle() core1_0.PhysicalDevice {
	return d.device
}

func (d *PhysicalDevice) Properties() (*bootstrap.DeviceProperties, error) {
	properties, err := d.driver.GetPhysicalDeviceProperties(d.device)
	if err != nil {
		return nil, err
	}

	return &bootstrap.DeviceProperties{
		Name:              properties.DriverName,
		Type:              properties.DriverType,
		APIVersion:        properties.APIVersion,
		DriverVersion:     properties.DriverVersion,
		VendorID:          properties.VendorID,
		DeviceID:          properties.DeviceID,
		PipelineCacheUUID: properties.PipelineCacheUUID,
	}, nil
}

func (d *PhysicalDevice) Features() *bootstrap.DeviceFeatures {
	features := d.driver.GetPhysicalDeviceFeatures(d.device)
	if features == nil {
		return &bootstrap.DeviceFeatures{}
	}

	return &bootstrap.DeviceFeatures{
		GeometryShader:     features.GeometryShader,
		TessellationShader: features.TessellationShader,
		SamplerAnisotropy:  features.SamplerAnisotropy,
	}
}
