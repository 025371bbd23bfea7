// Package accrete simulates planetary-system formation with the Dole accretion
// model.
//
// A [Simulator] owns a disk of dust and gas, described by an ordered list of
// [DustBand] values, and a set of planets sorted by semi-major axis. Each
// step injects a nucleus at a random orbit, grows it to a fixed point by
// sweeping material from its feeding zone, clears the swept zone from the
// disk and merges the result with any planet whose feeding zone overlaps it.
// A run ends when no dust remains between the innermost and outermost
// planetary orbits.
//
// # Example
//
//	sim, _ := accrete.New(accrete.Sol(), rng.NewJava(seed))
//	result, _ := sim.Run()
//	for _, p := range result.Planets {
//		fmt.Println(p)
//	}
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. A run is deterministic for a given
// random source: the only external effect is drawing two variates per nucleus.
package accrete
