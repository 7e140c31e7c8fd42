package cmd

import (
	"fmt"
	"runtime/debug"
)

const (
	// VersionTrack is the upstream autojump release whose data format and
	// command line this build follows.
	VersionTrack = "22.5.0"

	// Version of this implementation.
	Version = "0.3.0"
)

// versionString is computed once; the revision comes from the VCS stamp
// the go toolchain embeds in the binary.
var versionString = func() string {
	s := fmt.Sprintf("autojump v%s\nautojump-go v%s", VersionTrack, Version)

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return s
	}
	var rev string
	dirty := false
	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			rev = kv.Value
		case "vcs.modified":
			dirty = kv.Value == "true"
		}
	}
	if rev == "" {
		return s
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if dirty {
		rev += "-dirty"
	}
	return fmt.Sprintf("%s (%s)", s, rev)
}()
