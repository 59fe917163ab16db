package bootstrap

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
)

const (
	DebugUtilsExtensionName             = ext_debug_utils.ExtensionName
	PortabilityEnumerationExtensionName = khr_portability_enumeration.ExtensionName
)

// InstanceRequest describes the instance the application wants.
type InstanceRequest struct {
	ApplicationName    string
	ApplicationVersion common.Version
	EngineName         string
	EngineVersion      common.Version
	APIVersion         common.APIVersion

	// WindowExtensions are the extensions the windowing subsystem reports as
	// mandatory.
	WindowExtensions []string

	EnableValidation bool
	ValidationLayers []string
	// Messenger is chained onto instance creation when validation is enabled.
	Messenger *MessengerCreateInfo

	GOOS string
}

// InstanceHandle owns a driver instance. Close destroys it exactly once.
type InstanceHandle struct {
	instance   DriverInstance
	extensions []string
	layers     []string
	flags      InstanceFlags
	released   bool
}

// NeedsPortabilityEnumeration reports whether goos belongs to the platform
// family where Vulkan runs over a portability layer (MoltenVK).
func NeedsPortabilityEnumeration(goos string) bool {
	return goos == "darwin" || goos == "ios"
}

// RequiredExtensions computes the final instance extension list and creation
// flags. windowExts is never modified.
func RequiredExtensions(windowExts []string, enableValidation bool, goos string) ([]string, InstanceFlags) {
	extensions := make([]string, 0, len(windowExts)+2)
	seen := make(map[string]struct{}, len(windowExts)+2)
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		extensions = append(extensions, name)
	}

	for _, ext := range windowExts {
		add(ext)
	}

	if enableValidation {
		add(DebugUtilsExtensionName)
	}

	var flags InstanceFlags
	if NeedsPortabilityEnumeration(goos) {
		add(PortabilityEnumerationExtensionName)
		flags |= InstanceEnumeratePortability
	}

	return extensions, flags
}

// CheckValidationLayers fails if any requested layer is missing from available.
func CheckValidationLayers(available []string, requested []string) error {
	have := make(map[string]struct{}, len(available))
	for _, layer := range available {
		have[layer] = struct{}{}
	}

	var missing []string
	for _, layer := range requested {
		if _, ok := have[layer]; !ok {
			missing = append(missing, layer)
		}
	}

	if len(missing) > 0 {
		return markf(ErrValidationLayersUnavailable, nil,
			"createInstance: cannot add validation- layers %s not available- install LunarG Vulkan SDK",
			strings.Join(missing, ", "))
	}
	return nil
}

// CreateInstance checks layers and extensions, then asks drv for an instance.
func CreateInstance(drv Driver, req InstanceRequest) (*InstanceHandle, error) {
	var layers []string
	if req.EnableValidation {
		available, err := drv.AvailableLayers()
		if err != nil {
			return nil, markf(ErrInstanceCreation, err, "createInstance: cannot enumerate layers")
		}

		if err := CheckValidationLayers(available, req.ValidationLayers); err != nil {
			return nil, err
		}
		layers = append(layers, req.ValidationLayers...)
	}

	available, err := drv.AvailableExtensions()
	if err != nil {
		return nil, markf(ErrInstanceCreation, err, "createInstance: cannot enumerate extensions")
	}
	haveExt := make(map[string]struct{}, len(available))
	for _, ext := range available {
		haveExt[ext] = struct{}{}
	}
	for _, ext := range req.WindowExtensions {
		if _, ok := haveExt[ext]; !ok {
			return nil, markf(ErrInstanceCreation, nil, "createInstance: cannot initialize window: missing extension %s", ext)
		}
	}

	extensions, flags := RequiredExtensions(req.WindowExtensions, req.EnableValidation, req.GOOS)

	info := InstanceCreateInfo{
		ApplicationName:    req.ApplicationName,
		ApplicationVersion: req.ApplicationVersion,
		EngineName:         req.EngineName,
		EngineVersion:      req.EngineVersion,
		APIVersion:         req.APIVersion,
		Flags:              flags,
		Extensions:         extensions,
		Layers:             layers,
	}
	if req.EnableValidation && req.Messenger != nil {
		messenger := *req.Messenger
		info.DebugMessenger = &messenger
	}

	instance, err := drv.CreateInstance(info)
	if err == nil && instance == nil {
		err = errors.New("driver returned no instance")
	}
	if err != nil {
		return nil, markf(ErrInstanceCreation, err, "createInstance: failed to create instance")
	}

	return &InstanceHandle{
		instance:   instance,
		extensions: extensions,
		layers:     layers,
		flags:      flags,
	}, nil
}

func (h *InstanceHandle) Extensions() []string {
	return append([]string(nil), h.extensions...)
}

func (h *InstanceHandle) Layers() []string {
	return append([]string(nil), h.layers...)
}

func (h *InstanceHandle) Flags() InstanceFlags {
	return h.flags
}

func (h *InstanceHandle) Released() bool {
	return h.released
}

func (h *InstanceHandle) Close() {
	if h == nil || h.released {
		return
	}
	h.released = true

	h.instance.Destroy()
	h.instance = nil
}
