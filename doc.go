// Package pathtile fits authored terrain template segments onto grid
// paths for procedural tile-map generation.
//
// 🚀 What is pathtile?
//
//	A small, focused library that turns a sketched cell path into a
//	chain of painted terrain templates:
//		• Grid primitives: cell positions, 8-neighbor directions, dense matrices
//		• Catalogs: terrain templates, template segments, permitted-segment selection
//		• Conditioning: path validation, loop rotation, edge extension, chirality
//		• Search: Dijkstra over the (x, y, connection-type) cost lattice
//		• Traceback: randomized optimal painting of the chosen templates
//
// ✨ Why choose pathtile?
//
//   - Deterministic – a fixed RNG seed reproduces the exact tiling
//   - Pure Go core – the tiler is transient, no global state, no I/O
//   - Extensible – bring your own map type; the tiler only needs cell
//     bounds, a coverage test, and writable tiles
//
// Everything is organized under five packages:
//
//	catalog/ — templates, segments, permitted-segment selection, YAML codec
//	cmd/     — the pathtile CLI (tile, validate)
//	grid/    — lattice positions, directions, rectangles, matrices
//	tilemap/ — a concrete in-memory tile map
//	tiler/   — conditioning, geometry pass, search engine, traceback
//
// Quick ASCII example:
//
//	    ········
//	    ·1111···          a straight beach template laid over the
//	    ····333·          path, joined end-to-end with a bend
//	    ······3·
//
// Dive into the package docs for the search design, the scoring rules,
// and the failure taxonomy.
//
//	go get github.com/katalvlaran/pathtile
package pathtile
