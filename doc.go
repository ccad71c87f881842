// Package turnmaze scores walks through a grid maze where moving costs one
// point per step and a fixed penalty per 90° turn.
//
// What it answers:
//
//   - Solve:      the lowest possible score from the start (facing right) to the end.
//   - CountTiles: how many cells lie on at least one walk achieving that score.
//
// Under the hood, everything is organized under a few subpackages:
//
//	gridgraph/: text maze loader, Coordinate, Direction, bounds-checked lookups
//	dijkstra/ : oriented shortest paths over (cell × facing) states, best tiles
//	config/   : HCL configuration of markers and the cost model
//	render/   : PNG and terminal views of a solved maze
//
// Quick ASCII example:
//
//	#####
//	#..E#
//	#S..#
//	#####
//
// scores 1003: three steps and one turn.
//
//	go install github.com/katalvlaran/turnmaze/cmd/turnmaze@latest
package turnmaze
