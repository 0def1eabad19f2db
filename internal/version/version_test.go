package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.2.3", "abc123", "2024-01-15")

	if info.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", info.Version)
	}
	if info.Commit != "abc123" {
		t.Errorf("Commit = %q, want abc123", info.Commit)
	}
	if info.Date != "2024-01-15" {
		t.Errorf("Date = %q, want 2024-01-15", info.Date)
	}
	if info.GoVer != runtime.Version() {
		t.Errorf("GoVer = %q, want %q", info.GoVer, runtime.Version())
	}
	if info.OS != runtime.GOOS || info.Arch != runtime.GOARCH {
		t.Errorf("OS/Arch = %s/%s", info.OS, info.Arch)
	}
}

func TestInfoString(t *testing.T) {
	info := NewInfo("1.0.0", "abc", "today")
	want := "todo 1.0.0 (commit: abc, built: today)"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInfoFullString(t *testing.T) {
	info := NewInfo("1.0.0", "abc", "today")
	full := info.FullString()

	for _, want := range []string{"todo 1.0.0", "Commit:   abc", "Built:    today", "Go:", runtime.GOOS + "/" + runtime.GOARCH} {
		if !strings.Contains(full, want) {
			t.Errorf("FullString() missing %q:\n%s", want, full)
		}
	}
}

func TestInfoFill(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2024-03-14T10:00:00Z"},
		},
	}

	tests := []struct {
		name string
		in   Info
		want Info
	}{
		{
			name: "placeholders filled",
			in:   Info{Version: DevVersion, Commit: UnknownCommit, Date: UnknownDate},
			want: Info{Version: "v0.4.0", Commit: "0123456789ab", Date: "2024-03-14T10:00:00Z"},
		},
		{
			name: "linker values kept",
			in:   Info{Version: "1.0.0", Commit: "abc", Date: "today"},
			want: Info{Version: "1.0.0", Commit: "abc", Date: "today"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.fill(bi)
			if got != tt.want {
				t.Errorf("fill() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInfoFill_DevelVersion(t *testing.T) {
	info := Info{Version: DevVersion}
	info.fill(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if info.Version != DevVersion {
		t.Errorf("Version = %q, want %q", info.Version, DevVersion)
	}
}
