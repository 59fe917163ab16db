package bootstrap

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredExtensions(t *testing.T) {
	testCases := []struct {
		name       string
		window     []string
		validation bool
		goos       string
		expected   []string
		flags      InstanceFlags
	}{
		{
			name:     "linux",
			window:   []string{"ext.surface"},
			goos:     "linux",
			expected: []string{"ext.surface"},
		},
		{
			name:     "darwin",
			window:   []string{"ext.surface"},
			goos:     "darwin",
			expected: []string{"ext.surface", PortabilityEnumerationExtensionName},
			flags:    InstanceEnumeratePortability,
		},
		{
			name:       "validation",
			window:     []string{"ext.surface"},
			validation: true,
			goos:       "windows",
			expected:   []string{"ext.surface", DebugUtilsExtensionName},
		},
		{
			name:       "duplicates",
			window:     []string{"ext.surface", "ext.surface", DebugUtilsExtensionName},
			validation: true,
			goos:       "linux",
			expected:   []string{"ext.surface", DebugUtilsExtensionName},
		},
		{
			name:     "empty",
			goos:     "linux",
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := append([]string(nil), tc.window...)
			exts, flags := RequiredExtensions(input, tc.validation, tc.goos)
			assert.Equal(t, tc.expected, exts)
			assert.Equal(t, tc.flags, flags)
			assert.Equal(t, tc.window, input)
		})
	}
}

func TestCheckValidationLayers(t *testing.T) {
	require.NoError(t, CheckValidationLayers([]string{"a", "b"}, []string{"b"}))
	require.NoError(t, CheckValidationLayers(nil, nil))

	err := CheckValidationLayers([]string{"a"}, []string{"a", "b", "c"})
	require.True(t, errors.Is(err, ErrValidationLayersUnavailable))
	require.Contains(t, err.Error(), "b, c")
}

func request(windowExts []string, validation bool) InstanceRequest {
	return InstanceRequest{
		ApplicationName:  ApplicationName,
		EngineName:       EngineName,
		WindowExtensions: windowExts,
		EnableValidation: validation,
		ValidationLayers: []string{KhronosValidationLayer},
		GOOS:             "linux",
	}
}

func TestCreateInstance(t *testing.T) {
	var log calls
	drv := newFakeDriver(&log)

	instance, err := CreateInstance(drv, request([]string{"VK_KHR_surface"}, false))
	require.NoError(t, err)
	require.NotNil(t, drv.created)
	require.Equal(t, []string{"VK_KHR_surface"}, drv.created.Extensions)
	require.Empty(t, drv.created.Layers)
	require.Nil(t, drv.created.DebugMessenger)
	require.Equal(t, ApplicationName, drv.created.ApplicationName)
	require.Equal(t, 0, log.count("driver.AvailableLayers"))
	require.Equal(t, []string{"VK_KHR_surface"}, instance.Extensions())
}

func TestCreateInstanceMissingLayer(t *testing.T) {
	var log calls
	drv := newFakeDriver(&log)
	drv.layers = []string{"VK_LAYER_NV_optimus"}

	instance, err := CreateInstance(drv, request([]string{"VK_KHR_surface"}, true))
	require.Nil(t, instance)
	require.True(t, errors.Is(err, ErrValidationLayersUnavailable))
	require.Equal(t, 0, log.count("driver.CreateInstance"))
}

func TestCreateInstanceChainsMessenger(t *testing.T) {
	var log calls
	drv := newFakeDriver(&log)

	var got []string
	sink := SinkFunc(func(_ Severity, _ MessageType, message string) {
		got = append(got, message)
	})
	info := NewMessengerCreateInfo(SeverityError, TypeValidation, sink)

	req := request([]string{"VK_KHR_surface"}, true)
	req.Messenger = &info

	instance, err := CreateInstance(drv, req)
	require.NoError(t, err)
	require.Equal(t, calls{"driver.AvailableLayers", "driver.AvailableExtensions", "driver.CreateInstance"}, log)
	require.Equal(t, []string{KhronosValidationLayer}, instance.Layers())
	require.Equal(t, []string{"VK_KHR_surface", DebugUtilsExtensionName}, drv.created.Extensions)

	require.NotNil(t, drv.created.DebugMessenger)
	require.Equal(t, SeverityError, drv.created.DebugMessenger.Severities)
	require.False(t, drv.created.DebugMessenger.Callback(SeverityError, TypeValidation, "during creation"))
	require.Equal(t, []string{"during creation"}, got)
}

func TestCreateInstanceMissingWindowExtension(t *testing.T) {
	var log calls
	drv := newFakeDriver(&log)

	_, err := CreateInstance(drv, request([]string{"VK_KHR_wayland_surface"}, false))
	require.True(t, errors.Is(err, ErrInstanceCreation))
	require.Contains(t, err.Error(), "VK_KHR_wayland_surface")
	require.Equal(t, 0, log.count("driver.CreateInstance"))
}

func TestCreateInstanceDriverRejects(t *testing.T) {
	var log calls
	drv := newFakeDriver(&log)
	drv.createErr = errFake

	instance, err := CreateInstance(drv, request([]string{"VK_KHR_surface"}, false))
	require.Nil(t, instance)
	require.True(t, errors.Is(err, ErrInstanceCreation))
	require.True(t, errors.Is(err, errFake))
}

func TestCreateInstancePortability(t *testing.T) {
	var log calls
	drv := newFakeDriver(&log)

	req := request([]string{"VK_KHR_surface"}, false)
	req.GOOS = "darwin"

	instance, err := CreateInstance(drv, req)
	require.NoError(t, err)
	require.Equal(t, []string{"VK_KHR_surface", PortabilityEnumerationExtensionName}, drv.created.Extensions)
	require.Equal(t, InstanceEnumeratePortability, drv.created.Flags)
	require.Equal(t, InstanceEnumeratePortability, instance.Flags())
}

func TestInstanceCloseOnce(t *testing.T) {
	var log calls
	drv := newFakeDriver(&log)

	instance, err := CreateInstance(drv, request(nil, false))
	require.NoError(t, err)

	instance.Close()
	instance.Close()
	require.True(t, instance.Released())
	require.Equal(t, 1, log.count("instance.Destroy"))
}
