// Package buildinfo carries version metadata set at link time.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("lease-fees %s (commit=%s, date=%s)", Version, Commit, Date)
}
