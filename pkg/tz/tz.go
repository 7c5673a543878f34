package tz

import (
	"fmt"
	"time"
)

// Load resolves an IANA zone name. An empty name or "Local" is the process
// local zone, which is what event start times are converted to by default.
func Load(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}
