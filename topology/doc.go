// Package topology stores the vertex/edge/face structure of a closed
// polyhedral surface and answers adjacency queries over it.
//
// What:
//
//   - Topology owns three ID-indexed tables (vertices, edges, faces) with
//     relationships expressed as ID sets, never object cycles.
//   - AddFace lazily creates boundary edges via an O(1) symmetric pair
//     index, so an edge shared by two faces is allocated exactly once.
//   - Face clues (Clue, NoClue) live on faces; everything else about a
//     grid is immutable once built.
//
// Why:
//
//   - Slitherlink on a polyhedron needs fast "which faces share this
//     edge", "which edges meet at this vertex" queries during both
//     interactive marking and solution checking.
//
// Complexity:
//
//   - AddVertex / AddEdge / FindEdge: O(1) amortized.
//   - AddFace: O(s) for a face with s sides.
//   - AdjacentFaces: O(s·f) for s sides and f faces per edge (f ≤ 2).
//
// Errors:
//
//   - ErrDuplicateID: vertex or face ID already registered.
//   - ErrUnknownVertex: edge or face references an unregistered vertex.
//   - ErrDegenerateFace: face supplied with fewer than 3 vertices.
//   - ErrSelfLoop: edge endpoints are the same vertex.
//   - ErrVertexIDRange: vertex ID exceeds MaxVertexID (pair-index packing).
//   - ErrVertexNotFound / ErrEdgeNotFound / ErrFaceNotFound: lookup misses.
package topology
