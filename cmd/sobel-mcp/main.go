package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/sobel-edge-mcp/internal/server"
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
			fmt.Printf("sobel-edge-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("sobel-edge-mcp - MCP server for Sobel edge detection")
			fmt.Println()
			fmt.Println("Usage: sobel-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  SOBEL_MCP_LOG_LEVEL=debug         Enable debug logging")
			fmt.Printf("  SOBEL_MCP_MAX_BUFFER_BYTES=<n>    Largest input buffer (default %d)\n", server.DefaultMaxBufferBytes)
			fmt.Printf("  SOBEL_MCP_MAX_IMAGES=<n>          Retained image limit, 0 = unlimited (default %d)\n", server.DefaultMaxImages)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := server.ConfigFromEnv()
	if cfg.Debug {
		log.Printf("Sobel MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Max buffer %d bytes, max retained images %d", cfg.MaxBufferBytes, cfg.MaxImages)
	}

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
