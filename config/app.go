package config

import "os"

// AllowDuplicateTags mirrors the historical behavior of accepting tags with
// the same name. Set TAG_DUPLICATES_ALLOWED=false to reject duplicates with
// a conflict instead.
func AllowDuplicateTags() bool {
	return os.Getenv("TAG_DUPLICATES_ALLOWED") != "false"
}
