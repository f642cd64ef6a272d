// Package terminal adapts a tcell screen to the desktop's drawing and input capabilities.
//
// Screen implements render.Target and render.Presenter over tcell cells, and acts as a
// non-blocking event source: a poller goroutine blocks on tcell, translates each event
// into an event.Raw, and pushes it onto an event.Queue drained by the frame loop.
package terminal
