// Package engine composites panels and routes input to them.
//
// Architecture:
//   - Compositor owns the panel sequence in ascending z-order and the focus handle
//   - Render walks bottom to top, clipping each panel to its own rectangle
//   - Dispatch hit-tests spatial events top to bottom and sends keyboard/text
//     events to the focused panel
//   - Loop drains pending input, routes it, then renders exactly one frame
//
// Single-threaded dispatch: the panel list, focus, and every panel's state are only
// touched from the goroutine running Loop.Run, so none of it is locked.
package engine
