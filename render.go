package main

import (
	"image"

	"deedles.dev/simbar/ui"
	"deedles.dev/wlr"
)

func (server *Server) onFrame(out *Output) {
	_, err := out.Output.AttachRender()
	if err != nil {
		wlr.Log(wlr.Error, "output attach render: %v", err)
		return
	}
	defer out.Output.Commit()

	server.renderer.Begin(out.Output, out.Output.Width(), out.Output.Height())
	defer server.renderer.End()

	server.renderer.Clear(ColorBackground)
	server.renderStatusBar(out)
	server.renderCursor(out)
}

func (server *Server) renderStatusBar(out *Output) {
	b := server.Bar.Bounds(out.Bounds())
	if (b.Dx() <= 0) || (b.Dy() <= 0) {
		return
	}

	rc := ui.RenderContext{
		R:   server.renderer,
		Out: out.Output,
	}
	out.StatusBar.Render(rc, b)
}

func (server *Server) renderCursor(out *Output) {
	out.Output.RenderSoftwareCursors(image.ZR)
}
