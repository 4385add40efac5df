// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", " ", "")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: N/A", info.String())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo
	assert.Equal(t, "N/A", info.BuildVersion())
}
