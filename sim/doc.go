// Package sim provides the core types for medium-band supernova grid simulations.
//
// # Reading Guide
//
// Start with these files:
//   - filters.go: the fixed band-code to HST filter-name table
//   - table.go: Table, the 6-d simulated light-curve grid, and its slicing helpers
//   - driver.go: SimulateGrid, which drives an external Simulator through one grid run
//
// # Architecture
//
// The sim package defines interfaces and data types; implementations live in
// sub-packages:
//   - sim/snana/: the SNANA-backed Simulator (simlib and input writers, subprocess
//     runner, TEXT grid table loader)
//   - sim/canvas/: drawing surfaces (Canvas, Axes) and the gonum/plot Figure
//   - sim/diagnostic/: pseudo-color vs redshift panels and color-color circle plots
//
// # Key Interfaces
//
//   - Simulator: generate a simlib, generate a grid input, run it, load the table
//   - canvas.Canvas: subplot creation and current-axes lookup for the plotters
package sim
