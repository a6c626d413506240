// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric series, with an optional alignment path and memory modes.
//
// DTW aligns two series that may vary in speed by warping the time axis to
// minimize cumulative |a[i]-b[j]| cost. It is the numeric sibling of
// editdist: the same (n+1)×(m+1) prefix table, with a continuous cost
// instead of unit edits.
//
// Key features:
//   - FullMatrix mode: O(N·M) memory, supports the warping path.
//   - TwoRows / NoMemory modes: O(M) memory, distance only.
//   - optional Sakoe–Chiba window (|i−j| ≤ w).
//   - slope penalty on insertion/deletion steps.
//
// Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10
//	opts.ReturnPath = true
//	dist, path, err := dtw.DTW(a, b, &opts)
//
// Time is O(N·M) in every mode.
package dtw
