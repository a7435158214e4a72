package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"http_peek/types"

	"github.com/joho/godotenv"
)

type config struct {
	mode types.ServerMode

	httpPort        string
	upstreamAddress string

	bufferSize int

	pprofEnabled bool
	pprofPort    string
}

func parse() (*config, error) {
	mode, err := parseMode()
	if err != nil {
		return nil, err
	}

	httpPort := getenv("HTTP_PORT", "8080")

	upstream := getenv("UPSTREAM_ADDRESS", "")
	if upstream == "" {
		return nil, fmt.Errorf("UPSTREAM_ADDRESS is required")
	}

	bufferSize := parseBufferSize()

	pprofEnabled := getenvBool("PPROF_ENABLED", false)
	pprofPort := getenv("PPROF_PORT", "6060")

	return &config{
		mode:            mode,
		httpPort:        httpPort,
		upstreamAddress: upstream,
		bufferSize:      bufferSize,
		pprofEnabled:    pprofEnabled,
		pprofPort:       pprofPort,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseMode() (types.ServerMode, error) {
	switch strings.ToLower(getenv("MODE", "proxy")) {
	case "proxy":
		return types.ServerModePROXY, nil
	case "watch":
		return types.ServerModeWATCH, nil
	default:
		return "", fmt.Errorf("invalid MODE value")
	}
}

func parseBufferSize() int {
	raw := getenv("BUFFER_SIZE", "32768")
	size, err := strconv.Atoi(raw)
	if err != nil || size < 4096 || size > 1048576 {
		log.Println("Invalid BUFFER_SIZE, falling back to 4096")
		return 4096
	}
	return size
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
