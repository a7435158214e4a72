package version

import "fmt"

var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func GetVersion() string {
	return fmt.Sprintf("http_peek %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

func GetShortVersion() string {
	return Version
}
