package bootstrap

import (
	"log"

	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"
)

// Application walks the bootstrap sequence: window, instance, optional debug
// messenger, optional device selection, then polls window events until a
// close request arrives. It is not safe for concurrent use; the windowing
// backends require every call on the thread that created the window.
type Application struct {
	opts      Options
	windowing Windowing
	load      DriverLoader
	logger    *log.Logger

	state    State
	polls    int
	releases releaseStack

	window    *WindowHandle
	instance  *InstanceHandle
	messenger *Messenger
	device    *SelectedDevice
}

func New(opts Options, windowing Windowing, load DriverLoader) *Application {
	return &Application{
		opts:      opts,
		windowing: windowing,
		load:      load,
		logger:    opts.logger(),
	}
}

func (app *Application) State() State {
	return app.state
}

// Device returns the selected physical device, or nil if none was selected.
func (app *Application) Device() *SelectedDevice {
	return app.device
}

func (app *Application) Instance() *InstanceHandle {
	return app.instance
}

// Polls returns how many event poll iterations Run has performed.
func (app *Application) Polls() int {
	return app.polls
}

// Start acquires every resource in order. On failure everything acquired so
// far is released in reverse order and the application ends up Closed.
func (app *Application) Start() error {
	if app.state != StateUninitialized {
		return errors.Newf("start: application already %s", app.state)
	}

	err := app.startup()
	if err != nil {
		app.Shutdown()
		return err
	}

	app.state = StateRunning
	return nil
}

func (app *Application) stage(name string, fn func() error) error {
	start := hrtime.Now()
	err := fn()
	if err != nil {
		return err
	}
	app.logger.Printf("%s took %v", name, hrtime.Since(start))
	return nil
}

func (app *Application) startup() error {
	err := app.stage("initWindow", app.initWindow)
	if err != nil {
		return err
	}

	err = app.stage("createInstance", app.createInstance)
	if err != nil {
		return err
	}

	err = app.stage("setupDebugMessenger", app.setupDebugMessenger)
	if err != nil {
		return err
	}

	return app.stage("pickPhysicalDevice", app.pickPhysicalDevice)
}

func (app *Application) initWindow() error {
	window, err := OpenWindow(app.windowing, app.opts.Width, app.opts.Height, app.opts.Title)
	if err != nil {
		return err
	}

	app.window = window
	app.releases.push(func() {
		app.window.Close()
		app.window = nil
	})
	app.state = StateWindowOpen
	return nil
}

func (app *Application) createInstance() error {
	if app.load == nil {
		return markf(ErrInstanceCreation, nil, "createInstance: no driver loader")
	}

	driver, err := app.load()
	if err != nil {
		return markf(ErrInstanceCreation, err, "createInstance: cannot load vulkan driver")
	}

	req := InstanceRequest{
		ApplicationName:    app.opts.ApplicationName,
		ApplicationVersion: app.opts.ApplicationVersion,
		EngineName:         app.opts.EngineName,
		EngineVersion:      app.opts.EngineVersion,
		APIVersion:         app.opts.APIVersion,
		WindowExtensions:   app.window.RequiredExtensions(),
		EnableValidation:   app.opts.EnableValidation,
		ValidationLayers:   app.opts.ValidationLayers,
		GOOS:               app.opts.GOOS,
	}
	if app.opts.EnableValidation {
		info := NewMessengerCreateInfo(app.opts.MessageSeverity, app.opts.MessageTypes, app.opts.sink())
		req.Messenger = &info
	}

	instance, err := CreateInstance(driver, req)
	if err != nil {
		return err
	}

	app.instance = instance
	app.releases.push(func() {
		app.instance.Close()
		app.instance = nil
	})
	app.state = StateInstanceCreated
	return nil
}

func (app *Application) setupDebugMessenger() error {
	if !app.opts.EnableValidation {
		return nil
	}

	messenger, err := AttachMessenger(app.instance, app.opts.MessageSeverity, app.opts.MessageTypes, app.opts.sink())
	if errors.Is(err, ErrExtensionNotPresent) {
		app.logger.Printf("skipping debug messenger: %v", err)
		return nil
	}
	if err != nil {
		return err
	}

	app.messenger = messenger
	app.releases.push(func() {
		app.messenger.Detach()
		app.messenger = nil
	})
	app.state = StateMessengerAttached
	return nil
}

func (app *Application) pickPhysicalDevice() error {
	if app.opts.DevicePredicate == nil {
		return nil
	}

	device, err := SelectPhysicalDevice(app.instance, app.opts.DevicePredicate, app.logger)
	if err != nil {
		return err
	}

	app.device = device
	app.releases.push(func() {
		app.device = nil
	})
	app.logger.Printf("selected physical device %d: %s (%s, vendor 0x%04x, device 0x%04x, api %s, cache %s)",
		device.Index, device.Properties.Name, device.Properties.Type,
		device.Properties.VendorID, device.Properties.DeviceID,
		device.Properties.APIVersion, device.Properties.PipelineCacheUUID)
	app.state = StateDeviceSelected
	return nil
}

// Run polls window events until a close request is observed.
func (app *Application) Run() error {
	if app.state != StateRunning {
		return errors.Newf("run: application is %s", app.state)
	}

	for !app.window.ShouldClose() {
		app.window.PollEvents()
		app.polls++
	}

	return nil
}

// Shutdown releases every acquired resource in reverse acquisition order. It is
// safe to call more than once.
func (app *Application) Shutdown() {
	if app.state == StateClosed {
		return
	}

	app.state = StateShuttingDown
	app.releases.unwind()
	app.state = StateClosed
}

// RunApplication starts the application, polls until the window is closed and
// tears everything down.
func RunApplication(opts Options, windowing Windowing, load DriverLoader) error {
	app := New(opts, windowing, load)

	err := app.Start()
	if err != nil {
		return err
	}
	defer app.Shutdown()

	return app.Run()
}
