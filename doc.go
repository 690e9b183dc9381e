// Package lvgrid is an in-memory toolkit of two-dimensional containers:
// compile-time-shaped grids over one contiguous buffer and runtime-sized
// grids over independently allocated rows.
//
// What is inside?
//
//	grid/ — FixedGrid, DynamicGrid, row-crossing iterators, allocators
//	        (heap, arena, counting, tracing) and gonum interop.
//
// Guarantees:
//
//   - Checked access never panics; errors are sentinels matched with errors.Is.
//   - DynamicGrid construction is all-or-nothing; failed construction
//     releases every buffer it obtained.
//   - Iteration is row-major and restartable; reverse iteration is its mirror.
//
// Grids are single-owner values: callers serialize concurrent access.
package lvgrid
