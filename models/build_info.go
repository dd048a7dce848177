// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable stands in for build fields the linker did not set.
const notAvailable = "N/A"

// BuildInfo identifies a portal binary. The fields are set through -ldflags
// at release time.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo fills unset fields with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Released reports whether the binary was stamped with a version.
func (b BuildInfo) Released() bool {
	return b.Version != "" && b.Version != notAvailable
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("staff-portal %s (commit %s, built %s)", b.Version, b.Commit, b.Date)
}

func orNotAvailable(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}
