package app

import "fmt"

// Build metadata, injected at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/jobboard-backend/internal/app.Version=1.2.0 \
//	  -X github.com/heartmarshall/jobboard-backend/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the human-readable build string logged at startup.
func BuildVersion() string {
	return fmt.Sprintf("jobboard %s (commit %s, built %s)", Version, Commit, BuildTime)
}
