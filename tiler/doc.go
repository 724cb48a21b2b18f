// Package tiler fits a chain of authored template segments onto a
// user-supplied grid path: the laid segments connect end-to-end with
// compatible terminal types, stay within a bounded perpendicular
// deviation from the target path, and minimize total accumulated
// deviation. The chosen templates are painted onto the target map and
// the actual traversed cells are returned.
//
// What:
//
//   - TilingPath: the central entity — map, waypoints, deviation/skip/
//     separation bounds, start and end terminals, permitted segments.
//   - Path conditioning: validation, loop-start rotation, inertial
//     extension, map-edge extension, chirality normalization,
//     shrinking, disjoint-set retention. All conditioners are
//     chainable on TilingPath and mirrored by pure static helpers.
//   - Geometry pass: per-cell deviation, lowProgress and highProgress
//     matrices over a padded box around the path, with a
//     minimum-separation erosion that excludes cells near invalid or
//     over-skip regions.
//   - Search: Dijkstra-style best-first search over the (x, y,
//     terminal-type) cost lattice, scoring each candidate segment by
//     admissibility (terminal gating, deviation bound, skip bound,
//     progress monotonicity, loop anti-wrap) plus an additive
//     deviation cost.
//   - Traceback: a randomized walk back over cost-optimal
//     predecessors that paints each chosen template and emits the
//     traversed cells.
//
// Why:
//
//   - Procedural map generators author small terrain blocks, not
//     whole coastlines; chaining the blocks along a sketched path is
//     what turns a polyline into painted terrain.
//   - Uniform-cost search over the type-layered lattice finds the
//     cheapest conforming chain without revisiting settled cells; the
//     randomized traceback varies the visual result between seeds at
//     zero cost in optimality.
//
// Complexity (one Tile call, T = |terminal types|, W×H = padded box):
//
//   - Memory: O(T·W·H + |segments|).
//   - Time: O(T·W·H·log(T·W·H) + |relaxations|·|points per segment|).
//
// Concurrency:
//
//   - Single-threaded. Each Tile call owns its scratch (matrices,
//     priority array, cost tables) and releases it on return; the
//     only external mutation is the final paint onto the supplied
//     map. Callers serialize Tile against readers of that map.
//   - Randomness appears only in traceback; a fixed RNG seed makes
//     the output deterministic.
//
// Failure taxonomy:
//
//   - Unfittable path → Tile returns nil, no error.
//   - Validation failure → RetainIfValid nulls the point sequence;
//     ValidatePathPoints returns false.
//   - Programmer error (painting a pick-any template, a traceback
//     with zero candidates, Shrink with minimumLength ≤ 1) → panic.
package tiler
