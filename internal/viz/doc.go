// Package viz renders the galaxy collision in a terminal.
//
//   - [Canvas]: colored Braille grid that doubles as a drawing surface, so the
//     regular renderer can paint into it
//   - [Theme]: star palette, sky color and panel colors; four built in
//   - panel styles, sparklines and gradient text used by the TUI
//
// A Canvas works in logical pixels. With Scale 4 a 120 pixel galaxy spans
// 30 dots, or 15 terminal columns.
package viz
