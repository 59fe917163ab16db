// Package glfwwindow hosts the bootstrap window on GLFW.
package glfwwindow

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/vkngwrapper/hellotriangle/bootstrap"
)

type Windowing struct{}

func (Windowing) Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw.Init")
	}

	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return errors.New("glfw: vulkan loader not found")
	}

	return nil
}

func (Windowing) CreateWindow(title string, width, height int) (bootstrap.Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	// resizing needs swapchain recreation
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "glfw.CreateWindow")
	}

	return &Window{window: window}, nil
}

func (Windowing) Terminate() {
	glfw.Terminate()
}

func InstanceProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

type Window struct {
	window *glfw.Window
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.window.GetRequiredInstanceExtensions()
}

func (w *Window) Destroy() {
	w.window.Destroy()
}
