package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/HenningRK/Smart-Systems-2025/internal/imaging"
	"github.com/HenningRK/Smart-Systems-2025/internal/maze"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "maze_solve", "maze_overlay").
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
//  2. Applies default values for optional parameters
//  3. Loads the photo from cache and downscales it to the working size
//  4. Runs the pipeline stages it needs
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Solving
	case "maze_solve":
		return s.handleMazeSolve(args)
	case "maze_moves":
		return s.handleMazeMoves(args)

	// Rendering
	case "maze_overlay":
		return s.handleMazeOverlay(args)

	// Inspection
	case "maze_grid":
		return s.handleMazeGrid(args)
	case "maze_heatmap":
		return s.handleMazeHeatmap(args)

	// Basic Image Information
	case "image_info":
		return s.handleImageInfo(args)

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

// loadWorking loads a photo through the cache and shrinks it to the
// configured working size. All solving and rendering happens on the
// working image, so results from different tools on the same photo line
// up with each other.
func (s *Server) loadWorking(path string) (image.Image, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return imaging.FitDown(img, s.cfg.MaxImageDim), nil
}

// === Solving Handlers ===

type mazeSolveArgs struct {
	Path     string `json:"path"`
	CellSize int    `json:"cell_size"`
}

func (s *Server) solveMaze(a mazeSolveArgs) (*maze.Solution, image.Image, error) {
	working, err := s.loadWorking(a.Path)
	if err != nil {
		return nil, nil, err
	}

	cfg := s.cfg.Pipeline
	if a.CellSize > 0 {
		cfg.CellSize = a.CellSize
	}

	sol, err := maze.SolveImage(working, cfg)
	if err != nil {
		return nil, nil, err
	}
	return sol, working, nil
}

func (s *Server) handleMazeSolve(args json.RawMessage) (interface{}, error) {
	var a mazeSolveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sol, _, err := s.solveMaze(a)
	if err != nil {
		return nil, err
	}
	return sol, nil
}

type mazeMovesResult struct {
	Moves      []maze.Move `json:"moves"`
	TotalSteps int         `json:"total_steps"`
}

func (s *Server) handleMazeMoves(args json.RawMessage) (interface{}, error) {
	var a mazeSolveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sol, _, err := s.solveMaze(a)
	if err != nil {
		return nil, err
	}
	return &mazeMovesResult{Moves: sol.Moves, TotalSteps: sol.TotalSteps}, nil
}

// === Rendering Handlers ===

type mazeOverlayArgs struct {
	Path        string `json:"path"`
	StrokeColor string `json:"stroke_color"`
	StrokeWidth int    `json:"stroke_width"`
	OutputPath  string `json:"output_path"`
}

type mazeOverlaySaved struct {
	SavedTo string `json:"saved_to"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

func (s *Server) handleMazeOverlay(args json.RawMessage) (interface{}, error) {
	var a mazeOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	sol, working, err := s.solveMaze(mazeSolveArgs{Path: a.Path})
	if err != nil {
		return nil, err
	}

	opts := s.cfg.Overlay()
	if a.StrokeColor != "" {
		opts.StrokeColor = a.StrokeColor
	}
	if a.StrokeWidth > 0 {
		opts.StrokeWidth = a.StrokeWidth
	}
	if dir, ok := sol.EntryDirection(); ok {
		opts.EntryArrow = arrowDir(dir)
	}
	if dir, ok := sol.ExitDirection(); ok {
		opts.ExitArrow = arrowDir(dir)
	}

	if a.OutputPath != "" {
		img, err := imaging.PathOverlay(working, sol.PixelPath(), opts)
		if err != nil {
			return nil, err
		}
		if err := imaging.SaveImage(img, a.OutputPath); err != nil {
			return nil, err
		}
		b := img.Bounds()
		return &mazeOverlaySaved{SavedTo: a.OutputPath, Width: b.Dx(), Height: b.Dy()}, nil
	}

	return imaging.RenderOverlay(working, sol.PixelPath(), opts)
}

// arrowDir maps a travel direction to the marker arrow pointing the same
// way on screen (north is up).
func arrowDir(d maze.Direction) imaging.ArrowDir {
	switch d {
	case maze.North:
		return imaging.ArrowUp
	case maze.South:
		return imaging.ArrowDown
	case maze.West:
		return imaging.ArrowLeft
	default:
		return imaging.ArrowRight
	}
}

// === Inspection Handlers ===

// asciiGridLimit caps the grid size rendered as ASCII in maze_grid
// results; larger grids would blow up the response without being
// readable anyway.
const asciiGridLimit = 80

type mazeGridResult struct {
	Cols          int         `json:"cols"`
	Rows          int         `json:"rows"`
	CellSize      int         `json:"cell_size"`
	FreeCells     int         `json:"free_cells"`
	WallCells     int         `json:"wall_cells"`
	FrameFallback bool        `json:"frame_fallback"`
	Openings      []maze.Cell `json:"openings"`
	Start         *maze.Cell  `json:"start,omitempty"`
	Goal          *maze.Cell  `json:"goal,omitempty"`
	ASCII         string      `json:"ascii,omitempty"`
}

func (s *Server) handleMazeGrid(args json.RawMessage) (interface{}, error) {
	var a mazeSolveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	working, err := s.loadWorking(a.Path)
	if err != nil {
		return nil, err
	}

	cfg := s.cfg.Pipeline
	if a.CellSize > 0 {
		cfg.CellSize = a.CellSize
	}

	raster, err := maze.BuildRaster(working, cfg)
	if err != nil {
		return nil, err
	}
	grid := raster.Grid

	result := &mazeGridResult{
		Cols:          grid.Cols(),
		Rows:          grid.Rows(),
		CellSize:      cfg.CellSize,
		FreeCells:     grid.FreeCells(),
		WallCells:     grid.Cols()*grid.Rows() - grid.FreeCells(),
		FrameFallback: raster.Frame.Fallback,
		Openings:      maze.BorderOpenings(grid),
	}
	if start, goal, err := maze.FindOpenings(grid); err == nil {
		result.Start = &start
		result.Goal = &goal
	}
	if grid.Cols() <= asciiGridLimit && grid.Rows() <= asciiGridLimit {
		result.ASCII = grid.String()
	}
	return result, nil
}

func (s *Server) handleMazeHeatmap(args json.RawMessage) (interface{}, error) {
	var a mazeSolveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	working, err := s.loadWorking(a.Path)
	if err != nil {
		return nil, err
	}

	raster, err := maze.BuildRaster(working, s.cfg.Pipeline)
	if err != nil {
		return nil, err
	}

	start, goal, err := maze.FindOpenings(raster.Grid)
	if err != nil {
		return nil, err
	}

	sealed := raster.Grid.Sealed(start, goal)
	dist, err := maze.DistanceField(sealed, start)
	if err != nil {
		return nil, err
	}

	return imaging.DistanceHeatmap(sealed.Cols(), sealed.Rows(), s.cfg.Pipeline.CellSize, dist)
}

// === Basic Image Information Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}
