package main

import (
	"deedles.dev/wlr"
	"deedles.dev/ximage/geom"
)

type Output struct {
	Output    wlr.Output
	Frame     wlr.Listener
	StatusBar *StatusBar
}

// Bounds returns the bounds of the output in output-local
// coordinates.
func (out *Output) Bounds() geom.Rect[float64] {
	return geom.Rt(0, 0, float64(out.Output.Width()), float64(out.Output.Height()))
}

// Destroy releases the textures held by the output's status bar.
func (out *Output) Destroy() {
	out.StatusBar.Destroy()
}

func (server *Server) onNewOutput(wout wlr.Output) {
	wout.InitRender(server.allocator, server.renderer)

	out := Output{
		Output:    wout,
		StatusBar: NewStatusBar(&server.Bar, wout.Name()),
	}
	out.Frame = wout.OnFrame(func(wout wlr.Output) {
		server.onFrame(&out)
	})
	server.addOutput(&out)

	wout.Commit()
	wout.CreateGlobal()
}

func (server *Server) addOutput(out *Output) {
	server.outputs = append(server.outputs, out)
	server.outputLayout.AddAuto(out.Output)
	server.setOutputMode(out)
}

func (server *Server) setOutputMode(out *Output) {
	mode := out.Output.PreferredMode()
	if mode.Valid() {
		out.Output.SetMode(mode)
		return
	}

	modes := out.Output.Modes()
	if len(modes) > 0 {
		out.Output.SetMode(modes[len(modes)-1])
	}
}
