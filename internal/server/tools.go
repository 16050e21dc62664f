package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// handleSchema is the input schema shared by the tools that act on a
// retained image.
func handleSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"handle": map[string]interface{}{
				"type":        "string",
				"description": "Image handle returned by sobel_detect",
			},
		},
		"required": []string{"handle"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Edge Detection
		{
			Name: "sobel_detect",
			Description: "Compute the Sobel edge magnitude of a raw 8-bit grayscale buffer. " +
				"The result has the same dimensions as the input; border pixels are 0. " +
				"By default the result is retained and a handle is returned, which must be released with image_release.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"pixels": map[string]interface{}{
						"type":        "string",
						"description": "Base64-encoded row-major pixel buffer, exactly width*height bytes, no header",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height in pixels",
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to process. If omitted, processes the entire image.",
					},
					"inline": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the edge pixels directly instead of retaining them behind a handle. Default false",
						"default":     false,
					},
				},
				"required": []string{"pixels", "width", "height"},
			},
		},

		// Handle Accessors
		{
			Name:        "image_get_data",
			Description: "Get the pixel buffer of a retained edge image as base64.",
			InputSchema: handleSchema(),
		},
		{
			Name:        "image_get_width",
			Description: "Get the width of a retained edge image.",
			InputSchema: handleSchema(),
		},
		{
			Name:        "image_get_height",
			Description: "Get the height of a retained edge image.",
			InputSchema: handleSchema(),
		},
		{
			Name:        "image_release",
			Description: "Release a retained edge image. Each handle must be released exactly once; the handle is invalid afterwards.",
			InputSchema: handleSchema(),
		},

		// Analysis Helpers
		{
			Name:        "image_histogram",
			Description: "Count the samples of a retained edge image into 256 bins and report total, mean and strongest value.",
			InputSchema: handleSchema(),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
