// Package hop implements Mattress Hop: a character bounces between a row of
// beds and scores points for landing on a different bed than the one it
// jumped from. Beds are removed on a fixed timer (every second removal brings
// one back) and falling below the screen ends the round.
//
// The package contains pure simulation logic. Rendering into a core.Screen is
// provided for the terminal host, audio and other collaborators observe the
// round through EventSink.
package hop

// Rand is the random source used for bed selection and character placement.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// BedRef identifies a bed by its stable index, or NoBed.
type BedRef int

// NoBed marks the absence of a bed reference.
const NoBed BedRef = -1

// Valid reports whether the reference points at a bed.
func (r BedRef) Valid() bool {
	return r >= 0
}
