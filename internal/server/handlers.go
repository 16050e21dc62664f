package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/sobel-edge-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "sobel_detect", "image_release").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Resolves handles or decodes pixel buffers as needed
//  3. Calls the appropriate imaging function
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Edge Detection
	case "sobel_detect":
		return s.handleSobelDetect(args)

	// Handle Accessors
	case "image_get_data":
		return s.handleImageGetData(args)
	case "image_get_width":
		return s.handleImageGetWidth(args)
	case "image_get_height":
		return s.handleImageGetHeight(args)
	case "image_release":
		return s.handleImageRelease(args)

	// Analysis Helpers
	case "image_histogram":
		return s.handleImageHistogram(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Edge Detection Handlers ===

type sobelDetectArgs struct {
	Pixels string          `json:"pixels"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Region *imaging.Region `json:"region,omitempty"`
	Inline bool            `json:"inline"`
}

// SobelDetectResult describes an edge image produced by sobel_detect.
//
// Exactly one of Handle and PixelsBase64 is set: Handle when the image was
// retained, PixelsBase64 when the caller asked for the pixels inline.
type SobelDetectResult struct {
	Handle       string `json:"handle,omitempty"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	PixelsBase64 string `json:"pixels_base64,omitempty"`
}

func (s *Server) handleSobelDetect(args json.RawMessage) (interface{}, error) {
	var a sobelDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	pix, err := s.decodePixels(a.Pixels)
	if err != nil {
		return nil, err
	}

	var edges *imaging.Image
	if a.Region != nil {
		var src *imaging.Image
		if src, err = imaging.NewImage(pix, a.Width, a.Height); err != nil {
			return nil, err
		}
		edges, err = imaging.DetectRegion(src.Gray(), *a.Region)
	} else {
		edges, err = imaging.DetectEdges(pix, a.Width, a.Height)
	}
	if err != nil {
		return nil, err
	}

	if a.Inline {
		return &SobelDetectResult{
			Width:        edges.Width,
			Height:       edges.Height,
			PixelsBase64: base64.StdEncoding.EncodeToString(edges.Pix),
		}, nil
	}

	handle, err := s.store.Put(edges)
	if err != nil {
		return nil, err
	}
	if s.cfg.Debug {
		log.Printf("Retained %dx%d edge image as %s (%d held)", edges.Width, edges.Height, handle, s.store.Len())
	}

	return &SobelDetectResult{
		Handle: handle,
		Width:  edges.Width,
		Height: edges.Height,
	}, nil
}

// decodePixels decodes a base64 pixel buffer, refusing anything larger than
// the configured limit before allocating for it.
func (s *Server) decodePixels(encoded string) ([]uint8, error) {
	if n := base64.StdEncoding.DecodedLen(len(encoded)); n > s.cfg.MaxBufferBytes+2 {
		return nil, fmt.Errorf("pixel buffer of about %d bytes exceeds limit of %d bytes", n, s.cfg.MaxBufferBytes)
	}

	pix, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode pixels: %w", err)
	}
	if len(pix) > s.cfg.MaxBufferBytes {
		return nil, fmt.Errorf("pixel buffer of %d bytes exceeds limit of %d bytes", len(pix), s.cfg.MaxBufferBytes)
	}
	return pix, nil
}

// === Handle Accessor Handlers ===

type imageHandleArgs struct {
	Handle string `json:"handle"`
}

// lookup unmarshals handle arguments and resolves the retained image.
func (s *Server) lookup(args json.RawMessage) (string, *imaging.Image, error) {
	var a imageHandleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", nil, err
	}
	img, err := s.store.Get(a.Handle)
	if err != nil {
		return "", nil, err
	}
	return a.Handle, img, nil
}

// ImageDataResult carries the pixels of a retained image.
type ImageDataResult struct {
	Handle       string `json:"handle"`
	PixelsBase64 string `json:"pixels_base64"`
}

func (s *Server) handleImageGetData(args json.RawMessage) (interface{}, error) {
	handle, img, err := s.lookup(args)
	if err != nil {
		return nil, err
	}
	return &ImageDataResult{
		Handle:       handle,
		PixelsBase64: base64.StdEncoding.EncodeToString(img.Pix),
	}, nil
}

// ImageWidthResult carries the width of a retained image.
type ImageWidthResult struct {
	Handle string `json:"handle"`
	Width  int    `json:"width"`
}

func (s *Server) handleImageGetWidth(args json.RawMessage) (interface{}, error) {
	handle, img, err := s.lookup(args)
	if err != nil {
		return nil, err
	}
	return &ImageWidthResult{Handle: handle, Width: img.Width}, nil
}

// ImageHeightResult carries the height of a retained image.
type ImageHeightResult struct {
	Handle string `json:"handle"`
	Height int    `json:"height"`
}

func (s *Server) handleImageGetHeight(args json.RawMessage) (interface{}, error) {
	handle, img, err := s.lookup(args)
	if err != nil {
		return nil, err
	}
	return &ImageHeightResult{Handle: handle, Height: img.Height}, nil
}

// ImageReleaseResult confirms a release.
type ImageReleaseResult struct {
	Handle   string `json:"handle"`
	Released bool   `json:"released"`
}

func (s *Server) handleImageRelease(args json.RawMessage) (interface{}, error) {
	var a imageHandleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.store.Release(a.Handle); err != nil {
		return nil, err
	}
	if s.cfg.Debug {
		log.Printf("Released %s (%d held)", a.Handle, s.store.Len())
	}
	return &ImageReleaseResult{Handle: a.Handle, Released: true}, nil
}

// === Analysis Helper Handlers ===

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	_, img, err := s.lookup(args)
	if err != nil {
		return nil, err
	}
	return imaging.ComputeHistogram(img), nil
}
