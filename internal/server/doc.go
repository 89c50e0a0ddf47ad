// Package server implements the MCP (Model Context Protocol) server for
// the maze solver.
//
// This package provides a JSON-RPC 2.0 server that exposes the solving
// pipeline through the MCP protocol, so Claude and other MCP-compatible
// clients can solve photographed mazes as a tool call.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - maze_solve: full solution for a photo (located frame, grid
//     geometry, start/goal, run-length moves, normalized path points,
//     drive instructions)
//   - maze_moves: the compact move list only
//   - maze_overlay: the solved path painted onto the photo, written to
//     disk or returned as base64 PNG
//   - maze_grid: occupancy grid summary (dimensions, corridor/wall
//     counts, border openings) with an ASCII rendering for small grids
//   - maze_heatmap: the search distance field rendered as base64 PNG
//   - image_info: photo dimensions and format
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded photos keyed by
// path, so solving, overlay rendering, and grid inspection of the same
// photo decode it exactly once. The cache persists for the lifetime of
// the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// The recoverable pipeline outcomes (fewer than two border openings, no
// path between entrance and exit) surface through the same channel with
// their sentinel message; clients should relay those to the user rather
// than treating them as server faults.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(config.Load())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
