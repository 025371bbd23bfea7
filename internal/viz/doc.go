// Package viz provides terminal views of accretion runs.
//
//   - [Model]: live Bubble Tea view that steps a simulator one nucleus at a
//     time and draws the disk and planets on a Braille [Canvas]
//   - [PlanetTable], [MassProfile], [SummaryView]: static renderings for
//     finished runs and ensembles
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from the same seed
//	+/-   - Nuclei per frame
//	[]    - Replay earlier steps
//	?     - Show help overlay
//	Q     - Quit
package viz
