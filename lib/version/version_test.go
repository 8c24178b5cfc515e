// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestInfoIncludesCommitAndBuildTime(t *testing.T) {
	info := Info()
	if !strings.Contains(info, Version) {
		t.Errorf("expected version in %q", info)
	}
	if !strings.Contains(info, GitCommit) {
		t.Errorf("expected commit in %q", info)
	}
	if !strings.Contains(info, BuildTime) {
		t.Errorf("expected build time in %q", info)
	}
}

func TestInfoMarksDirtyBuilds(t *testing.T) {
	saved := GitDirty
	defer func() { GitDirty = saved }()

	GitDirty = "true"
	if !strings.Contains(Info(), "-dirty") {
		t.Errorf("expected dirty marker in %q", Info())
	}

	GitDirty = "false"
	if strings.Contains(Info(), "-dirty") {
		t.Errorf("unexpected dirty marker in %q", Info())
	}
}
