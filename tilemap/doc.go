// Package tilemap provides a concrete in-memory tile map satisfying
// the tiler's map contract: rectangular cell bounds, a coverage test,
// and a writable tile grid. Tests, the pathtile CLI, and callers
// without their own map engine use it as the painting target.
//
// Complexity: construction O(W×H); Contains/Tile/SetTile O(1);
// Render O(W×H).
package tilemap
