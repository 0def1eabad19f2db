// Package version describes the running todo build.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Placeholders used by unreleased builds; linker flags replace them.
const (
	DevVersion     = "dev"
	UnknownCommit  = "none"
	UnknownDate    = "unknown"
	shortCommitLen = 12
)

// Info describes a build of todo.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// NewInfo builds an Info from the linker-set values. Any value still at its
// placeholder is filled from the module build info when the binary has it,
// so go install builds report a real version and revision.
func NewInfo(version, commit, date string) *Info {
	info := &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.fill(bi)
	}
	return info
}

func (i *Info) fill(bi *debug.BuildInfo) {
	if i.Version == DevVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && i.Commit == UnknownCommit && s.Value != "":
			i.Commit = s.Value
			if len(i.Commit) > shortCommitLen {
				i.Commit = i.Commit[:shortCommitLen]
			}
		case s.Key == "vcs.time" && i.Date == UnknownDate && s.Value != "":
			i.Date = s.Value
		}
	}
}

// String is the one-line form used by --version.
func (i *Info) String() string {
	return fmt.Sprintf("todo %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString is the multi-line form printed by the version command.
func (i *Info) FullString() string {
	return fmt.Sprintf("todo %s\n  Commit:   %s\n  Built:    %s\n  Go:       %s\n  OS/Arch:  %s/%s",
		i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}
