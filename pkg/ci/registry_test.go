package ci_test

import (
	"testing"

	"autobuilder/pkg/ci"
	mockci "autobuilder/pkg/ci/mock"
	"autobuilder/pkg/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	gh := mockci.NewMockClient(ctrl)
	gh.EXPECT().Platform().Return(domain.PlatformGitHubActions).AnyTimes()
	cm := mockci.NewMockClient(ctrl)
	cm.EXPECT().Platform().Return(domain.PlatformCodemagic).AnyTimes()

	r := ci.NewRegistry(gh, cm)

	c, ok := r.Get(domain.PlatformCodemagic)
	require.True(t, ok)
	require.Same(t, cm, c)

	_, ok = r.Get(domain.PlatformBitrise)
	require.False(t, ok)

	require.Equal(t, []domain.Platform{domain.PlatformCodemagic, domain.PlatformGitHubActions}, r.Platforms())
}

func TestSplitRepository(t *testing.T) {
	owner, name, ok := ci.SplitRepository("acme/app")
	require.True(t, ok)
	require.Equal(t, "acme", owner)
	require.Equal(t, "app", name)

	for _, bad := range []string{"", "acme", "/app", "acme/", "a/b/c"} {
		_, _, ok = ci.SplitRepository(bad)
		require.False(t, ok, bad)
	}
}

func TestConfigString(t *testing.T) {
	cfg := map[string]any{"workflow": "ci.yml", "empty": "", "num": 3}
	require.Equal(t, "ci.yml", ci.ConfigString(cfg, "workflow", "build.yml"))
	require.Equal(t, "x", ci.ConfigString(cfg, "empty", "x"))
	require.Equal(t, "x", ci.ConfigString(cfg, "num", "x"))
	require.Equal(t, "x", ci.ConfigString(nil, "missing", "x"))
}
