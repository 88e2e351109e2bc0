package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSettings(t *testing.T) {
	tests := []struct {
		name       string
		settings   []debug.BuildSetting
		wantCommit string
		wantDirty  bool
	}{
		{"no vcs info", nil, "dev", false},
		{
			"long revision is shortened",
			[]debug.BuildSetting{{Key: "vcs.revision", Value: "a3f8c2d1e5b7"}},
			"a3f8c2d1", false,
		},
		{
			"modified tree",
			[]debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}, {Key: "vcs.modified", Value: "true"}},
			"abc", true,
		},
		{
			"empty revision",
			[]debug.BuildSetting{{Key: "vcs.revision", Value: ""}},
			"dev", false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commit, dirty := fromSettings(tt.settings)
			assert.Equal(t, tt.wantCommit, commit)
			assert.Equal(t, tt.wantDirty, dirty)
		})
	}
}

func TestFull(t *testing.T) {
	assert.True(t, strings.HasPrefix(Full(), AppName+"/"+GitCommit))
}
