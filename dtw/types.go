package dtw

import "errors"

var (
	// ErrEmptyInput indicates one or both series are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates invalid options: Window < -1, a negative or NaN
	// SlopePenalty, or an unknown MemoryMode.
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates ReturnPath was requested without FullMatrix.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how much of the DP table DTW keeps.
//
//   - FullMatrix — the whole (n+1)×(m+1) table; supports path recovery. Memory O(n·m).
//   - TwoRows    — previous and current row only. Memory O(m).
//   - NoMemory   — a single row plus one carried diagonal cell. Memory O(m).
type MemoryMode int

const (
	// FullMatrix keeps every row and allows ReturnPath.
	FullMatrix MemoryMode = iota
	// TwoRows keeps two alternating rows.
	TwoRows
	// NoMemory updates one row in place.
	NoMemory
)

// Options configures DTW.
//
// Fields:
//   - Window       — Sakoe–Chiba band: cells with |i-j| > Window are +Inf.
//     -1 disables the band; 0 allows the diagonal only.
//   - SlopePenalty — added to every insertion/deletion step (>= 0).
//   - ReturnPath   — backtrack and return the warping path (FullMatrix only).
//   - MemoryMode   — table storage, see MemoryMode.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only configuration.
func DefaultOptions() Options {
	return Options{
		Window:     -1,
		MemoryMode: FullMatrix,
	}
}

// Coord is one cell of a warping path: a[I] aligned with b[J].
type Coord struct {
	I, J int
}
