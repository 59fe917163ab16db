package bootstrap

import (
	"bytes"
	"log"

	"github.com/cockroachdb/errors"
)

// calls records the order in which fakes were invoked.
type calls []string

func (c *calls) add(name string) { *c = append(*c, name) }

func (c calls) count(name string) int {
	n := 0
	for _, call := range c {
		if call == name {
			n++
		}
	}
	return n
}

type fakeWindowing struct {
	log *calls

	initErr   error
	createErr error

	extensions []string
	closeAfter int

	window *fakeWindow
}

func (f *fakeWindowing) Init() error {
	f.log.add("windowing.Init")
	return f.initErr
}

func (f *fakeWindowing) CreateWindow(title string, width, height int) (Window, error) {
	f.log.add("windowing.CreateWindow")
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.window = &fakeWindow{
		log:        f.log,
		title:      title,
		width:      width,
		height:     height,
		extensions: f.extensions,
		closeAfter: f.closeAfter,
	}
	return f.window, nil
}

func (f *fakeWindowing) Terminate() {
	f.log.add("windowing.Terminate")
}

type fakeWindow struct {
	log *calls

	title         string
	width, height int
	extensions    []string

	// closeAfter makes ShouldClose report true once this many polls happened.
	// Zero never closes.
	closeAfter int
	polls      int
}

func (w *fakeWindow) PollEvents() {
	w.polls++
}

func (w *fakeWindow) ShouldClose() bool {
	return w.closeAfter > 0 && w.polls >= w.closeAfter
}

func (w *fakeWindow) RequiredInstanceExtensions() []string {
	return w.extensions
}

func (w *fakeWindow) Destroy() {
	w.log.add("window.Destroy")
}

type fakeDriver struct {
	log *calls

	layers     []string
	extensions []string
	layersErr  error
	createErr  error

	created  *InstanceCreateInfo
	instance *fakeInstance
}

func newFakeDriver(log *calls) *fakeDriver {
	return &fakeDriver{
		log:        log,
		layers:     []string{KhronosValidationLayer},
		extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface", DebugUtilsExtensionName, PortabilityEnumerationExtensionName},
		instance: &fakeInstance{
			log:          log,
			debugCreate:  true,
			debugDestroy: true,
		},
	}
}

func (d *fakeDriver) AvailableLayers() ([]string, error) {
	d.log.add("driver.AvailableLayers")
	return d.layers, d.layersErr
}

func (d *fakeDriver) AvailableExtensions() ([]string, error) {
	d.log.add("driver.AvailableExtensions")
	return d.extensions, nil
}

func (d *fakeDriver) CreateInstance(info InstanceCreateInfo) (DriverInstance, error) {
	d.log.add("driver.CreateInstance")
	d.created = &info
	if d.createErr != nil {
		return nil, d.createErr
	}
	return d.instance, nil
}

type fakeInstance struct {
	log *calls

	devices    []PhysicalDevice
	enumErr    error
	messengers []MessengerCreateInfo

	debugCreate    bool
	debugDestroy   bool
	debugCreateErr error
}

func (i *fakeInstance) EnumeratePhysicalDevices() ([]PhysicalDevice, error) {
	i.log.add("instance.EnumeratePhysicalDevices")
	return i.devices, i.enumErr
}

func (i *fakeInstance) DebugUtils() DebugUtils {
	var funcs DebugUtils
	if i.debugCreate {
		funcs.Create = func(info MessengerCreateInfo) (MessengerID, error) {
			i.log.add("messenger.Create")
			if i.debugCreateErr != nil {
				return nil, i.debugCreateErr
			}
			i.messengers = append(i.messengers, info)
			return len(i.messengers), nil
		}
	}
	if i.debugDestroy {
		funcs.Destroy = func(MessengerID) {
			i.log.add("messenger.Destroy")
		}
	}
	return funcs
}

func (i *fakeInstance) Destroy() {
	i.log.add("instance.Destroy")
}

type fakeDevice struct {
	properties DeviceProperties
	features   DeviceFeatures
	err        error
}

func (d *fakeDevice) Properties() (*DeviceProperties, error) {
	if d.err != nil {
		return nil, d.err
	}
	props := d.properties
	return &props, nil
}

func (d *fakeDevice) Features() *DeviceFeatures {
	features := d.features
	return &features
}

func discrete(name string, geometry bool) *fakeDevice {
	return &fakeDevice{
		properties: DeviceProperties{Name: name, Type: DeviceTypeDiscreteGPU},
		features:   DeviceFeatures{GeometryShader: geometry},
	}
}

func integrated(name string) *fakeDevice {
	return &fakeDevice{
		properties: DeviceProperties{Name: name, Type: DeviceTypeIntegratedGPU},
		features:   DeviceFeatures{GeometryShader: true},
	}
}

var errFake = errors.New("fake failure")

func testLogger() (*log.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return log.New(buf, "", 0), buf
}
