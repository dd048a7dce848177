// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildInfo(t *testing.T) {
	tests := []struct {
		name         string
		version      string
		date         string
		commit       string
		want         BuildInfo
		wantReleased bool
		wantString   string
	}{
		{
			name:         "stamped binary",
			version:      "1.4.0",
			date:         "2026-10-01",
			commit:       "a1b2c3d",
			want:         BuildInfo{Version: "1.4.0", Date: "2026-10-01", Commit: "a1b2c3d"},
			wantReleased: true,
			wantString:   "staff-portal 1.4.0 (commit a1b2c3d, built 2026-10-01)",
		},
		{
			name:       "local build",
			want:       BuildInfo{Version: "N/A", Date: "N/A", Commit: "N/A"},
			wantString: "staff-portal N/A (commit N/A, built N/A)",
		},
		{
			name:       "commit only",
			commit:     "a1b2c3d",
			want:       BuildInfo{Version: "N/A", Date: "N/A", Commit: "a1b2c3d"},
			wantString: "staff-portal N/A (commit a1b2c3d, built N/A)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.want, info)
			assert.Equal(t, tt.wantReleased, info.Released())
			assert.Equal(t, tt.wantString, info.String())
		})
	}
}
