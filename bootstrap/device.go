package bootstrap

import (
	"log"

	"github.com/google/uuid"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

type DeviceType = core1_0.PhysicalDeviceType

const (
	DeviceTypeOther         = core1_0.PhysicalDeviceTypeOther
	DeviceTypeIntegratedGPU = core1_0.PhysicalDeviceTypeIntegratedGPU
	DeviceTypeDiscreteGPU   = core1_0.PhysicalDeviceTypeDiscreteGPU
	DeviceTypeVirtualGPU    = core1_0.PhysicalDeviceTypeVirtualGPU
	DeviceTypeCPU           = core1_0.PhysicalDeviceTypeCPU
)

type DeviceProperties struct {
	Name              string
	Type              DeviceType
	APIVersion        common.APIVersion
	DriverVersion     common.Version
	VendorID          uint32
	DeviceID          uint32
	PipelineCacheUUID uuid.UUID
}

type DeviceFeatures struct {
	GeometryShader     bool
	TessellationShader bool
	SamplerAnisotropy  bool
}

// Predicate reports whether a device is suitable.
type Predicate func(properties *DeviceProperties, features *DeviceFeatures) bool

// DiscreteWithGeometryShader accepts discrete GPUs that support geometry shaders.
func DiscreteWithGeometryShader(properties *DeviceProperties, features *DeviceFeatures) bool {
	return properties.Type == DeviceTypeDiscreteGPU && features.GeometryShader
}

func AnyDevice(*DeviceProperties, *DeviceFeatures) bool {
	return true
}

// SelectedDevice is a physical device picked by SelectPhysicalDevice. It is
// not owned: it lives as long as the instance that enumerated it.
type SelectedDevice struct {
	Device     PhysicalDevice
	Index      int
	Properties DeviceProperties
	Features   DeviceFeatures
}

// SelectPhysicalDevice returns the first device, in enumeration order, that
// satisfies predicate. Devices whose properties cannot be read are skipped.
func SelectPhysicalDevice(instance *InstanceHandle, predicate Predicate, logger *log.Logger) (*SelectedDevice, error) {
	if instance == nil || instance.released {
		return nil, markf(ErrNoSuitableDevice, nil, "pickPhysicalDevice: no live instance")
	}
	if predicate == nil {
		predicate = DiscreteWithGeometryShader
	}
	if logger == nil {
		logger = log.Default()
	}

	devices, err := instance.instance.EnumeratePhysicalDevices()
	if err != nil {
		return nil, markf(ErrNoSuitableDevice, err, "pickPhysicalDevice: cannot enumerate physical devices")
	}

	if len(devices) == 0 {
		return nil, markf(ErrNoSuitableDevice, nil, "failed to find GPUs with Vulkan support!")
	}

	for idx, device := range devices {
		properties, err := device.Properties()
		if err != nil {
			logger.Printf("could not pull physical device %d properties: %v", idx, err)
			continue
		}

		features := device.Features()
		if features == nil {
			features = &DeviceFeatures{}
		}

		if predicate(properties, features) {
			return &SelectedDevice{
				Device:     device,
				Index:      idx,
				Properties: *properties,
				Features:   *features,
			}, nil
		}
	}

	return nil, markf(ErrNoSuitableDevice, nil, "failed to find a suitable GPU among %d devices", len(devices))
}
