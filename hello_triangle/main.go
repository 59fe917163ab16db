package main

import (
	"log"
	"os"
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/hellotriangle/bootstrap"
	"github.com/vkngwrapper/hellotriangle/glfwwindow"
	"github.com/vkngwrapper/hellotriangle/sdlwindow"
	"github.com/vkngwrapper/hellotriangle/vkngdriver"
)

// windowEnv picks the windowing library: "sdl2" (default) or "glfw".
const windowEnv = "HELLO_TRIANGLE_WINDOW"

func init() {
	// SDL and GLFW must be driven from the main thread.
	runtime.LockOSThread()
}

func windowBackend(name string) (bootstrap.Windowing, func() unsafe.Pointer, error) {
	switch name {
	case "", "sdl2", "sdl":
		return sdlwindow.Windowing{}, sdlwindow.InstanceProcAddr, nil
	case "glfw":
		return glfwwindow.Windowing{}, glfwwindow.InstanceProcAddr, nil
	default:
		return nil, nil, errors.Newf("unknown %s %q: want sdl2 or glfw", windowEnv, name)
	}
}

func main() {
	windowing, procAddr, err := windowBackend(os.Getenv(windowEnv))
	if err != nil {
		log.Fatalf("%+v\n", err)
	}

	err = bootstrap.RunApplication(bootstrap.DefaultOptions(), windowing, vkngdriver.Loader(procAddr))
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
