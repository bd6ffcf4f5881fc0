package main

import (
	"fmt"
	"os"

	"deedles.dev/wlr"
)

type Server struct {
	Bar BarConfig

	display wlr.Display

	allocator    wlr.Allocator
	backend      wlr.Backend
	outputLayout wlr.OutputLayout
	renderer     wlr.Renderer

	outputs []*Output

	newOutput wlr.Listener
}

// NewServer creates the wlroots objects that a Server needs. The
// server does nothing until Start is called.
func NewServer(bar BarConfig) *Server {
	server := Server{Bar: bar}

	server.display = wlr.CreateDisplay()
	server.backend = wlr.AutocreateBackend(server.display)
	server.renderer = wlr.AutocreateRenderer(server.backend)
	server.renderer.InitWLDisplay(server.display)
	server.allocator = wlr.AutocreateAllocator(server.backend, server.renderer)

	wlr.CreateCompositor(server.display, server.renderer)
	server.outputLayout = wlr.CreateOutputLayout()

	server.newOutput = server.backend.OnNewOutput(server.onNewOutput)

	return &server
}

// Start starts the backend and opens a socket for clients. It sets
// WAYLAND_DISPLAY to the name of the socket.
func (server *Server) Start() error {
	err := server.backend.Start()
	if err != nil {
		return fmt.Errorf("start backend: %w", err)
	}

	socket, err := server.display.AddSocketAuto()
	if err != nil {
		return fmt.Errorf("add socket: %w", err)
	}
	err = os.Setenv("WAYLAND_DISPLAY", socket)
	if err != nil {
		return fmt.Errorf("set WAYLAND_DISPLAY: %w", err)
	}

	wlr.Log(wlr.Info, "running on WAYLAND_DISPLAY=%v", socket)
	return nil
}

// Run runs the display's event loop until it is terminated and then
// releases everything that the server created.
func (server *Server) Run() {
	server.display.Run()

	for _, out := range server.outputs {
		out.Destroy()
	}
	server.display.Destroy()
	server.outputLayout.Destroy()
}
