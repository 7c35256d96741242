// Package slitherlink3D brings the Slitherlink puzzle onto closed 3D
// surfaces: any polyhedral mesh becomes a board, every face can carry a
// clue, and the goal is a single closed loop along the edges.
//
// 🚀 What is slitherlink3D?
//
//	An engine for loop puzzles on polyhedra, organized as small packages:
//		• topology/ — vertices, edges, faces and their incidence, with
//		  fast endpoint-pair edge lookup
//		• grids/    — the five Platonic solids as built-in boards
//		• gridio/   — grid & puzzle JSON, OBJ mesh conversion, validation
//		• puzzle/   — clue overlays and reference solutions per grid
//		• guess/    — the player's tri-state edge marks
//		• checker/  — passive per-move feedback and the full solution check
//		• session/  — one object tying grid, puzzle and board together
//		• cmd/      — the sli3d CLI: info, validate, convert, watch, serve
//
// The rules, briefly: every clue face must be bordered by exactly that
// many loop edges, every vertex touches zero or two loop edges, and all
// loop edges form one single closed cycle.
//
// Start with session.New, load a grid from grids or gridio, and play.
package slitherlink3D
