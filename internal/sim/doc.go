// Package sim runs the galaxy collision as a frame-driven loop.
//
// A [Simulation] owns the particle collection. Once started against a
// [Container] it asks its [Scheduler] for a wake-up every frame; on each
// wake-up it either skips (too early for the target frame rate) or steps the
// physics and renders onto the container's surface.
//
//   - [Scheduler]: requests and cancels the next frame callback
//   - [FrameQueue]: a Scheduler that hosts drive once per display refresh,
//     also serializing posted events (resizes) with frames
//   - [Manual]: a FrameQueue with a hand-advanced clock
//   - [Viewport]: a resizable Container producing surfaces on demand
//
// # Threading
//
// A Simulation is not safe for concurrent use. Start, Stop, tick callbacks
// and resize notifications must all run on the one goroutine that drives the
// FrameQueue; other goroutines hand work over with [FrameQueue.Post].
package sim
