package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Solving
		{
			Name:        "maze_solve",
			Description: "Solve a photographed maze. Locates the drawn frame, rasterizes it into an occupancy grid, finds the entrance and exit on the border, and returns the shortest path as run-length moves, normalized path points, and drive instructions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the maze photo (png, jpg, gif, bmp, or webp)",
					},
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Grid cell edge length in pixels. Default from server tuning (3).",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_moves",
			Description: "Solve a photographed maze and return only the compact move list: run-length records like {\"dir\":\"E\",\"steps\":5} plus the total step count.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the maze photo",
					},
				},
				"required": []string{"path"},
			},
		},

		// Rendering
		{
			Name:        "maze_overlay",
			Description: "Solve a photographed maze and paint the path onto the photo: a thick round-capped stroke with entrance/exit markers. Writes a PNG to output_path when given, otherwise returns the image as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the maze photo",
					},
					"stroke_color": map[string]interface{}{
						"type":        "string",
						"description": "Stroke color as hex (default #FF0000)",
					},
					"stroke_width": map[string]interface{}{
						"type":        "integer",
						"description": "Stroke width in pixels. Default max(3, imageWidth/200).",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Where to write the overlay PNG. Omit to receive base64 instead.",
					},
				},
				"required": []string{"path"},
			},
		},

		// Inspection
		{
			Name:        "maze_grid",
			Description: "Rasterize a photographed maze into its occupancy grid and return a summary: dimensions, corridor/wall cell counts, border openings, and an ASCII rendering for small grids. Useful for checking recognition quality before solving.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the maze photo",
					},
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Grid cell edge length in pixels. Default from server tuning (3).",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_heatmap",
			Description: "Render the search distance field of a photographed maze as a heatmap PNG: blue near the entrance through red at the farthest reachable cell, walls black. Returned as base64.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the maze photo",
					},
				},
				"required": []string{"path"},
			},
		},

		// Basic Image Information
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, format, color depth, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
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
