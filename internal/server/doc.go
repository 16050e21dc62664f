// Package server implements the MCP (Model Context Protocol) server for Sobel edge detection.
//
// This package provides a JSON-RPC 2.0 server that exposes the edge detector
// through the MCP protocol, so that clients which cannot share Go memory can
// send raw grayscale buffers and read back edge-magnitude maps.
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
// Edge Detection:
//   - sobel_detect: Compute the edge magnitude of a base64 raw buffer
//
// Handle Accessors:
//   - image_get_data: Read the pixels of a retained result
//   - image_get_width: Read the width of a retained result
//   - image_get_height: Read the height of a retained result
//   - image_release: Release a retained result
//
// Analysis Helpers:
//   - image_histogram: 256-bin histogram of a retained result
//
// # Handles
//
// Unless called with inline=true, sobel_detect keeps its result in memory and
// returns an opaque handle. The client owns that handle and must release it
// exactly once with image_release. Reading or releasing a handle that was
// already released is reported as a tool error. The number of retained
// results is capped (SOBEL_MCP_MAX_IMAGES).
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.NewWithConfig(server.ConfigFromEnv())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
