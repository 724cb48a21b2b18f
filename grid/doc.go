// Package grid provides the integer-lattice primitives shared by the
// pathtile packages: cell positions and displacements, 8-neighbor
// compass directions, axis-aligned rectangles, and a dense row-major
// matrix generic over its cell type.
//
// What:
//
//   - CellPos / CellVec: lattice points and displacements with
//     elementwise arithmetic and Chebyshev distance.
//   - Direction: compass codes 0..7 (reverse = code XOR 4), plus the
//     DirNone sentinel; conversions to and from unit offsets and a
//     non-diagonal snap for arbitrary vectors.
//   - Rect: axis-aligned integer rectangle with exclusive maximum.
//   - Matrix[T]: dense row-major storage with a bounds test, fill,
//     and the explicit index formula y*Width + x.
//
// Why:
//
//   - Tile-map generation works on discrete cell grids; every other
//     pathtile package (catalog, tiler, tilemap) speaks these types.
//   - A flat backing slice keeps matrix access cache friendly and
//     allocation cheap for search scratch that is rebuilt per call.
//
// Complexity:
//
//   - All position, direction, and rectangle operations: O(1).
//   - Matrix construction and Fill: O(W×H); At/Set/In/Index: O(1).
//
// See: pathtile/tiler for the search that consumes these primitives.
package grid
