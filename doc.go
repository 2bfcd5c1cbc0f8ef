// Package zoomview implements a pinch-to-zoom, pannable image display
// widget: a gesture-to-transform mapping core that turns a raw pointer
// event stream into a 2D affine transform (uniform scale + translation)
// applied to a displayed image.
//
// # Overview
//
// The package splits the widget into a small capability stack:
//
//   - Controller — owns the transform, the configuration and the start
//     state, and exposes the narrow operation surface: ApplyScale,
//     ApplyTranslate, Release, DoubleTap, Reset, Tick.
//   - ScaleDetector / TapDetector — classify the pointer stream into
//     pinch and tap gestures.
//   - View — composes the detectors with a Controller and an image,
//     providing the per-event OnTouch pipeline and Draw compositing.
//
// The hosting layer (a terminal UI, a window system integration, a
// test) owns the display surface and forwards pointer events; the
// package never talks to a platform directly.
//
// # Quick Start
//
//	v, err := zoomview.New(800, 600, zoomview.WithScaleRange(0.6, 8))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v.SetImage(img)
//
//	// Forward pointer events from the host:
//	v.OnTouch(zoomview.PointerEvent{
//	    Phase:  zoomview.PhaseDown,
//	    Points: []zoomview.Point{{X: 100, Y: 100}},
//	    Time:   time.Now(),
//	})
//
//	// Drive animations from the host's frame callback:
//	v.Tick(time.Now())
//
//	// Composite into an RGBA viewport:
//	v.Draw(dst)
//
// # Concurrency
//
// The widget is single-threaded and event-driven: all transform
// mutations happen synchronously in OnTouch, Tick or an explicit
// operation call. Convergence animations are cooperative; they advance
// only when Tick is called and never block.
package zoomview
