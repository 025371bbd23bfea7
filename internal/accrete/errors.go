package accrete

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStar indicates a non-positive or non-finite stellar mass or luminosity.
	ErrInvalidStar = errors.New("accrete: invalid star (mass and luminosity must be positive)")

	// ErrNilSource indicates a simulator was built without a random source.
	ErrNilSource = errors.New("accrete: nil random source")

	// ErrBandGap indicates two successive bands that do not touch.
	ErrBandGap = errors.New("accrete: dust bands are not contiguous")

	// ErrBandCoverage indicates a band list that does not span the dust disk.
	ErrBandCoverage = errors.New("accrete: dust bands do not cover the disk")

	// ErrBandNotCompressed indicates adjacent bands with the same material state.
	ErrBandNotCompressed = errors.New("accrete: adjacent dust bands share material state")

	// ErrPlanetOrder indicates planets not sorted by increasing axis.
	ErrPlanetOrder = errors.New("accrete: planets not ordered by axis")
)

// BandError wraps a band-list invariant violation with the offending index.
type BandError struct {
	Index   int
	Band    DustBand
	Wrapped error
}

func (e *BandError) Error() string {
	return fmt.Sprintf("%v at band %d %v", e.Wrapped, e.Index, e.Band)
}

func (e *BandError) Unwrap() error {
	return e.Wrapped
}
