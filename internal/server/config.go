package server

import (
	"log"
	"os"
	"strconv"
)

const (
	// DefaultMaxBufferBytes is the largest input buffer accepted by default (4 MiB).
	DefaultMaxBufferBytes = 4 << 20

	// MaxBufferBytesLimit caps MaxBufferBytes so the base64 line length
	// still fits in an int on 32-bit platforms.
	MaxBufferBytesLimit = 1 << 30

	// DefaultMaxImages is the default number of edge images retained at once.
	DefaultMaxImages = 64
)

// Config holds server settings.
type Config struct {
	// Debug enables per-request debug logging.
	Debug bool

	// MaxBufferBytes limits the decoded size of a pixel buffer.
	MaxBufferBytes int

	// MaxImages limits how many edge images may be retained by handle.
	// Zero or less means no limit.
	MaxImages int
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MaxBufferBytes: DefaultMaxBufferBytes,
		MaxImages:      DefaultMaxImages,
	}
}

// ConfigFromEnv reads settings from the environment:
//
//	SOBEL_MCP_LOG_LEVEL=debug         enable debug logging
//	SOBEL_MCP_MAX_BUFFER_BYTES=<n>    largest accepted pixel buffer
//	SOBEL_MCP_MAX_IMAGES=<n>          retained image limit (0 = unlimited)
//
// Unparseable numbers are logged and replaced by the default. Buffer limits
// above MaxBufferBytesLimit are capped.
func ConfigFromEnv() Config {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) Config {
	cfg := DefaultConfig()

	if v, ok := lookup("SOBEL_MCP_LOG_LEVEL"); ok && v == "debug" {
		cfg.Debug = true
	}
	if v, ok := lookup("SOBEL_MCP_MAX_BUFFER_BYTES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Printf("Ignoring SOBEL_MCP_MAX_BUFFER_BYTES=%q, using %d", v, cfg.MaxBufferBytes)
		} else {
			cfg.MaxBufferBytes = n
		}
		if cfg.MaxBufferBytes > MaxBufferBytesLimit {
			log.Printf("SOBEL_MCP_MAX_BUFFER_BYTES=%q exceeds %d, capping", v, MaxBufferBytesLimit)
			cfg.MaxBufferBytes = MaxBufferBytesLimit
		}
	}
	if v, ok := lookup("SOBEL_MCP_MAX_IMAGES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Ignoring SOBEL_MCP_MAX_IMAGES=%q, using %d", v, cfg.MaxImages)
		} else {
			cfg.MaxImages = n
		}
	}

	return cfg
}
