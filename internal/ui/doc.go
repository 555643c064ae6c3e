// Package ui provides terminal output formatting and key controls for
// hashsearch and hashcompute.
//
// This package handles:
//   - Colored output (cyan, green, red, yellow)
//   - Info, success, failure, and warning messages
//   - Dimmed text for secondary and verbose information
//   - Hex formatting of byte values (case and 0x prefix)
//   - Search event reporting
//   - Single-key controls read from a raw terminal
//
// Settings are captured once in a Style and never change afterwards, so a
// Printer can be handed to the search loop.
//
// Example usage:
//
//	p := ui.NewPrinter(os.Stderr, ui.Style{Color: true})
//	p.Info("Searching %s", alg.Name)
//	p.Success("Digest %s", p.Hex(sum))
//
//	loop, _ := search.New(cfg, h,
//		search.WithReporter(ui.NewSearchReporter(p)),
//		search.WithControls(ui.NewKeyControls(os.Stdin)))
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
//
// Keys:
//   - C: show the current value
//   - P: pause, any key resumes
//   - Q: quit
package ui
