package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jbicker/dugite-extra/testhelpers"
)

func TestGetRepoConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults when config does not exist", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		config, err := GetRepoConfig(scene.Dir)
		require.NoError(t, err)
		require.Nil(t, config.DefaultRemote)
		require.Nil(t, config.Progress)
	})

	t.Run("fails on malformed config", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		configPath := filepath.Join(scene.Dir, ".git", ".dugite_config")
		err := os.WriteFile(configPath, []byte("{not json"), 0600)
		require.NoError(t, err)

		_, err = GetRepoConfig(scene.Dir)
		require.Error(t, err)
	})
}

func TestSetRepoConfig(t *testing.T) {
	t.Parallel()

	t.Run("round-trips the configuration", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		remote := "upstream"
		progress := false
		err := SetRepoConfig(scene.Dir, &RepoConfig{
			DefaultRemote: &remote,
			Progress:      &progress,
		})
		require.NoError(t, err)

		config, err := GetRepoConfig(scene.Dir)
		require.NoError(t, err)
		require.NotNil(t, config.DefaultRemote)
		require.Equal(t, "upstream", *config.DefaultRemote)
		require.NotNil(t, config.Progress)
		require.False(t, *config.Progress)
	})
}

func TestGetDefaultRemote(t *testing.T) {
	t.Parallel()

	t.Run("returns origin when unset", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		remote, err := GetDefaultRemote(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "origin", remote)
	})

	t.Run("returns the configured remote", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		configPath := filepath.Join(scene.Dir, ".git", ".dugite_config")
		remote := "upstream"
		data, err := json.Marshal(&RepoConfig{DefaultRemote: &remote})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(configPath, data, 0600))

		got, err := GetDefaultRemote(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "upstream", got)
	})
}

func TestIsProgressEnabled(t *testing.T) {
	t.Parallel()

	t.Run("defaults to enabled", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		enabled, err := IsProgressEnabled(scene.Dir)
		require.NoError(t, err)
		require.True(t, enabled)
	})

	t.Run("honors an explicit opt-out", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		progress := false
		require.NoError(t, SetRepoConfig(scene.Dir, &RepoConfig{Progress: &progress}))

		enabled, err := IsProgressEnabled(scene.Dir)
		require.NoError(t, err)
		require.False(t, enabled)
	})
}
