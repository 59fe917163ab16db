// Package bootstrap brings up the first pieces of a Vulkan application: a
// native window, an instance, an optional validation-layer debug messenger and
// a physical device. Resources are released in reverse acquisition order, each
// exactly once, including when startup fails part way through.
//
// The package talks to the windowing system and the graphics driver only
// through the Windowing and Driver interfaces; see the sdlwindow, glfwwindow
// and vkngdriver packages for the real implementations.
package bootstrap
