package main

import (
	"fmt"
	"log"
	"os"

	"github.com/HenningRK/Smart-Systems-2025/internal/config"
	"github.com/HenningRK/Smart-Systems-2025/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("maze-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("maze-mcp - MCP server for solving photographed mazes")
			fmt.Println()
			fmt.Println("Usage: maze-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MAZE_MCP_LOG_LEVEL=debug     Enable debug logging")
			fmt.Println("  MAZE_WALL_THRESHOLD          Frame ink luminance threshold (default 200)")
			fmt.Println("  MAZE_FREE_THRESHOLD          Corridor luminance threshold (default 230)")
			fmt.Println("  MAZE_CELL_SIZE               Grid cell size in pixels (default 3)")
			fmt.Println("  MAZE_FREE_RATIO              Free pixel fraction per corridor cell (default 0.7)")
			fmt.Println("  MAZE_MAX_IMAGE_DIM           Downscale photos above this size (default 1024)")
			fmt.Println()
			fmt.Println("A .env file in the working directory is read for the same variables.")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("MAZE_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Maze MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(config.Load())
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
