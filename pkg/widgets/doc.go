// Package widgets hosts slimy widget instances in an arena keyed by ID.
//
// A Registry owns every spawned widget. Hosts set each widget's bounds
// after layout, feed one frame of input events through Registry.Frame and
// draw from the exposed state:
//
//	reg := widgets.NewRegistry(widgets.Options{})
//	name := reg.SpawnTextInput(widgets.TextInputConfig{
//	    Placeholder: "Name",
//	    MaxLength:   32,
//	    OnSubmitted: func(text string) { fmt.Println("hello,", text) },
//	})
//	reg.SetBounds(name, graphics.RectFromLTWH(10, 10, 200, 24))
//
//	// once per frame:
//	for _, sig := range reg.Frame(widgets.FrameInput{Events: events}) {
//	    ...
//	}
//
// The widget set is closed: [TextInput] and [ProgressBar] are the only
// implementations of [Widget]. Widget operations never fail; application
// callbacks that panic are recovered and reported through pkg/errors.
package widgets
