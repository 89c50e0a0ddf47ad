package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HenningRK/Smart-Systems-2025/internal/imaging"
	"github.com/HenningRK/Smart-Systems-2025/internal/maze"
)

// testMazeRows sketches the test maze: '#' is drawn wall, '.' is paper.
// One opening on the top row at column 1 and one on the bottom row at
// column 5; the corridor snakes through all three open rows, so the
// solution is a fixed 18-step path.
var testMazeRows = []string{
	"#.#####",
	"#.....#",
	"#####.#",
	"#.....#",
	"#.#####",
	"#.....#",
	"#####.#",
}

// writeMazePNG renders testMazeRows at 3 pixels per cell and writes it to
// a temp file. The walls reach every image corner, so the located frame
// is the whole image and grid cells line up exactly with the sketch.
func writeMazePNG(t *testing.T) string {
	t.Helper()
	return writeImagePNG(t, "maze.png", mazeImage(t, testMazeRows, 3))
}

func mazeImage(t *testing.T, rows []string, cellSize int) *image.RGBA {
	t.Helper()
	w := len(rows[0]) * cellSize
	h := len(rows) * cellSize
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if rows[y/cellSize][x/cellSize] == '#' {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func writeImagePNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create temp image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode temp image: %v", err)
	}
	return path
}

func mustArgs(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal args: %v", err)
	}
	return b
}

func TestExecuteTool_Unknown(t *testing.T) {
	s := newTestServer(t)
	if _, err := s.executeTool("image_teleport", nil); err == nil {
		t.Error("Expected error for unknown tool")
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer(t)
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`{"name":`),
	}

	resp := s.handleToolsCall(req)
	if resp.Error == nil {
		t.Fatal("Expected error response")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error code: got %d, want -32602", resp.Error.Code)
	}
}

func TestHandleToolsCall_ContentEnvelope(t *testing.T) {
	s := newTestServer(t)
	path := writeMazePNG(t)
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      7,
		Method:  "tools/call",
		Params:  mustArgs(t, map[string]interface{}{"name": "maze_moves", "arguments": map[string]string{"path": path}}),
	}

	resp := s.handleToolsCall(req)
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content: got %v, want one entry", result["content"])
	}
	if content[0]["type"] != "text" {
		t.Errorf("content type: got %v, want text", content[0]["type"])
	}

	var moves mazeMovesResult
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), &moves); err != nil {
		t.Fatalf("Content text is not valid JSON: %v", err)
	}
	if moves.TotalSteps != 18 {
		t.Errorf("TotalSteps = %d, want 18", moves.TotalSteps)
	}
}

func TestMazeSolve(t *testing.T) {
	s := newTestServer(t)
	path := writeMazePNG(t)

	result, err := s.executeTool("maze_solve", mustArgs(t, map[string]string{"path": path}))
	if err != nil {
		t.Fatalf("maze_solve failed: %v", err)
	}

	sol, ok := result.(*maze.Solution)
	if !ok {
		t.Fatalf("Result type: got %T, want *maze.Solution", result)
	}

	if sol.GridCols != 7 || sol.GridRows != 7 {
		t.Errorf("Grid: got %dx%d, want 7x7", sol.GridCols, sol.GridRows)
	}
	if sol.Start != (maze.Cell{X: 1, Y: 0}) {
		t.Errorf("Start = %v, want (1,0)", sol.Start)
	}
	if sol.Goal != (maze.Cell{X: 5, Y: 6}) {
		t.Errorf("Goal = %v, want (5,6)", sol.Goal)
	}
	if sol.FrameFallback {
		t.Error("FrameFallback should be false: the walls are dark")
	}

	wantMoves := []maze.Move{
		{Dir: maze.South, Steps: 1},
		{Dir: maze.East, Steps: 4},
		{Dir: maze.South, Steps: 2},
		{Dir: maze.West, Steps: 4},
		{Dir: maze.South, Steps: 2},
		{Dir: maze.East, Steps: 4},
		{Dir: maze.South, Steps: 1},
	}
	if len(sol.Moves) != len(wantMoves) {
		t.Fatalf("Moves = %v, want %v", sol.Moves, wantMoves)
	}
	for i, want := range wantMoves {
		if sol.Moves[i] != want {
			t.Errorf("Moves[%d] = %v, want %v", i, sol.Moves[i], want)
		}
	}

	if sol.TotalSteps != 18 {
		t.Errorf("TotalSteps = %d, want 18", sol.TotalSteps)
	}
	if len(sol.Points) != 19 {
		t.Errorf("Points: got %d, want 19 (one per path cell)", len(sol.Points))
	}
	if len(sol.Instructions) == 0 || sol.Instructions[0] != "FORWARD 1" {
		t.Errorf("Instructions start with %v, want FORWARD 1", sol.Instructions)
	}
}

func TestMazeSolve_MissingFile(t *testing.T) {
	s := newTestServer(t)
	_, err := s.executeTool("maze_solve", mustArgs(t, map[string]string{"path": "/nonexistent/maze.png"}))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestMazeSolve_NoOpenings(t *testing.T) {
	s := newTestServer(t)
	path := writeImagePNG(t, "dark.png", mazeImage(t, []string{"###", "###", "###"}, 3))

	_, err := s.executeTool("maze_solve", mustArgs(t, map[string]string{"path": path}))
	if err == nil {
		t.Fatal("Expected error for an all-wall maze")
	}
	if !strings.Contains(err.Error(), "openings") {
		t.Errorf("Error %q should mention openings", err)
	}
}

func TestMazeOverlay_SaveToDisk(t *testing.T) {
	s := newTestServer(t)
	path := writeMazePNG(t)
	outPath := filepath.Join(t.TempDir(), "solved.png")

	result, err := s.executeTool("maze_overlay", mustArgs(t, map[string]string{
		"path":        path,
		"output_path": outPath,
	}))
	if err != nil {
		t.Fatalf("maze_overlay failed: %v", err)
	}

	saved, ok := result.(*mazeOverlaySaved)
	if !ok {
		t.Fatalf("Result type: got %T, want *mazeOverlaySaved", result)
	}
	if saved.SavedTo != outPath {
		t.Errorf("SavedTo = %q, want %q", saved.SavedTo, outPath)
	}
	if saved.Width != 21 || saved.Height != 21 {
		t.Errorf("Overlay size: got %dx%d, want 21x21", saved.Width, saved.Height)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("Overlay file missing: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("Overlay file is not a valid PNG: %v", err)
	}
}

func TestMazeOverlay_Base64(t *testing.T) {
	s := newTestServer(t)
	path := writeMazePNG(t)

	result, err := s.executeTool("maze_overlay", mustArgs(t, map[string]string{
		"path":         path,
		"stroke_color": "#00AA00",
	}))
	if err != nil {
		t.Fatalf("maze_overlay failed: %v", err)
	}

	overlay, ok := result.(*imaging.OverlayResult)
	if !ok {
		t.Fatalf("Result type: got %T, want *imaging.OverlayResult", result)
	}
	if overlay.MimeType != "image/png" {
		t.Errorf("MimeType = %q, want image/png", overlay.MimeType)
	}
	if overlay.ImageBase64 == "" {
		t.Error("ImageBase64 should not be empty")
	}
	if overlay.Width != 21 || overlay.Height != 21 {
		t.Errorf("Overlay size: got %dx%d, want 21x21", overlay.Width, overlay.Height)
	}
}

func TestMazeGrid(t *testing.T) {
	s := newTestServer(t)
	path := writeMazePNG(t)

	result, err := s.executeTool("maze_grid", mustArgs(t, map[string]string{"path": path}))
	if err != nil {
		t.Fatalf("maze_grid failed: %v", err)
	}

	grid, ok := result.(*mazeGridResult)
	if !ok {
		t.Fatalf("Result type: got %T, want *mazeGridResult", result)
	}
	if grid.Cols != 7 || grid.Rows != 7 {
		t.Errorf("Grid: got %dx%d, want 7x7", grid.Cols, grid.Rows)
	}
	if grid.FreeCells != 19 {
		t.Errorf("FreeCells = %d, want 19", grid.FreeCells)
	}
	if grid.WallCells != 49-19 {
		t.Errorf("WallCells = %d, want %d", grid.WallCells, 49-19)
	}
	if len(grid.Openings) != 2 {
		t.Errorf("Openings = %v, want 2 entries", grid.Openings)
	}
	if grid.Start == nil || *grid.Start != (maze.Cell{X: 1, Y: 0}) {
		t.Errorf("Start = %v, want (1,0)", grid.Start)
	}
	if grid.Goal == nil || *grid.Goal != (maze.Cell{X: 5, Y: 6}) {
		t.Errorf("Goal = %v, want (5,6)", grid.Goal)
	}

	wantASCII := strings.Join(testMazeRows, "\n") + "\n"
	if grid.ASCII != wantASCII {
		t.Errorf("ASCII rendering:\n%s\nwant:\n%s", grid.ASCII, wantASCII)
	}
}

func TestMazeGrid_CellSizeOverride(t *testing.T) {
	s := newTestServer(t)
	path := writeMazePNG(t)

	result, err := s.executeTool("maze_grid", mustArgs(t, map[string]interface{}{
		"path":      path,
		"cell_size": 21,
	}))
	if err != nil {
		t.Fatalf("maze_grid failed: %v", err)
	}

	grid := result.(*mazeGridResult)
	if grid.Cols != 1 || grid.Rows != 1 {
		t.Errorf("Grid: got %dx%d, want 1x1 at cell size 21", grid.Cols, grid.Rows)
	}
	if grid.CellSize != 21 {
		t.Errorf("CellSize = %d, want 21", grid.CellSize)
	}
}

func TestMazeHeatmap(t *testing.T) {
	s := newTestServer(t)
	path := writeMazePNG(t)

	result, err := s.executeTool("maze_heatmap", mustArgs(t, map[string]string{"path": path}))
	if err != nil {
		t.Fatalf("maze_heatmap failed: %v", err)
	}

	heatmap, ok := result.(*imaging.HeatmapResult)
	if !ok {
		t.Fatalf("Result type: got %T, want *imaging.HeatmapResult", result)
	}
	if heatmap.MimeType != "image/png" {
		t.Errorf("MimeType = %q, want image/png", heatmap.MimeType)
	}
	if heatmap.Width != 21 || heatmap.Height != 21 {
		t.Errorf("Heatmap size: got %dx%d, want 21x21", heatmap.Width, heatmap.Height)
	}
	// The corridor is a single snake, so the farthest reachable cell is
	// the exit at the full path length.
	if heatmap.MaxDistance != 18 {
		t.Errorf("MaxDistance = %d, want 18", heatmap.MaxDistance)
	}
}

func TestImageInfo(t *testing.T) {
	s := newTestServer(t)
	path := writeMazePNG(t)

	result, err := s.executeTool("image_info", mustArgs(t, map[string]string{"path": path}))
	if err != nil {
		t.Fatalf("image_info failed: %v", err)
	}

	info, ok := result.(*imaging.ImageInfo)
	if !ok {
		t.Fatalf("Result type: got %T, want *imaging.ImageInfo", result)
	}
	if info.Width != 21 || info.Height != 21 {
		t.Errorf("Dimensions: got %dx%d, want 21x21", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format = %q, want png", info.Format)
	}
}

func TestMazeSolve_CachedPhotoSolvesIdentically(t *testing.T) {
	s := newTestServer(t)
	path := writeMazePNG(t)
	args := mustArgs(t, map[string]string{"path": path})

	first, err := s.executeTool("maze_solve", args)
	if err != nil {
		t.Fatalf("First solve failed: %v", err)
	}
	second, err := s.executeTool("maze_solve", args)
	if err != nil {
		t.Fatalf("Second solve failed: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Error("Repeated solves of the same photo should be bit-identical")
	}
}
