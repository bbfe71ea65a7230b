package version

import (
	"fmt"

	"github.com/carlmjohnson/versioninfo"
)

/* injected */

var release string

/* ** */

type AirmacVersionInfoGit struct {
	Commit string `json:"commit"`
	Dirty  bool   `json:"dirty"`
}

type AirmacVersionInfo struct {
	Release string               `json:"release"`
	Git     AirmacVersionInfoGit `json:"git"`
}

func GetRelease() *AirmacVersionInfo {
	r := release
	if r == "" {
		r = versioninfo.Version
	}

	return &AirmacVersionInfo{
		Release: r,
		Git: AirmacVersionInfoGit{
			Commit: versioninfo.Revision,
			Dirty:  versioninfo.DirtyBuild,
		},
	}
}

func (v AirmacVersionInfo) String() string {
	commit := v.Git.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if v.Git.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s)", v.Release, commit)
}
