package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "プレイヤー", cfg.PlayerName)
	assert.Equal(t, "未設定", cfg.Prefecture)
	assert.Equal(t, 100*time.Millisecond, cfg.Tick)
	assert.Zero(t, cfg.Seed)
	assert.Zero(t, cfg.AIShare)
	assert.Equal(t, "", cfg.LogFile)
}

func TestLoad_FromEnvironment(t *testing.T) {
	cfg, err := Load(map[string]string{
		"BOKIBATTLE_DB":          "/tmp/boki.db",
		"BOKIBATTLE_PLAYER_NAME": "簿記太郎",
		"BOKIBATTLE_PREFECTURE":  "大阪府",
		"BOKIBATTLE_TICK":        "50ms",
		"BOKIBATTLE_SEED":        "42",
		"BOKIBATTLE_AI_SHARE":    "0.25",
		"BOKIBATTLE_LOG_FILE":    "/tmp/boki.log",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/boki.db", cfg.DBPath)
	assert.Equal(t, 50*time.Millisecond, cfg.Tick)
	assert.EqualValues(t, 42, cfg.Seed)
	assert.InDelta(t, 0.25, cfg.AIShare, 1e-9)
	assert.Equal(t, "/tmp/boki.log", cfg.LogPath("/tmp/boki.db"))

	p := cfg.Profile()
	assert.Equal(t, "簿記太郎", p.Name)
	assert.Equal(t, "大阪府", p.Prefecture)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		want    string
	}{
		{"bad duration", map[string]string{"BOKIBATTLE_TICK": "soon"}, "parse config"},
		{"zero tick", map[string]string{"BOKIBATTLE_TICK": "0s"}, "TICK must be positive"},
		{"share above one", map[string]string{"BOKIBATTLE_AI_SHARE": "1.5"}, "AI_SHARE must be within"},
		{"negative share", map[string]string{"BOKIBATTLE_AI_SHARE": "-0.1"}, "AI_SHARE must be within"},
		{"bad seed", map[string]string{"BOKIBATTLE_SEED": "-1"}, "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.environ)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestProfile_EmptyFallsBack(t *testing.T) {
	p := Config{}.Profile()
	assert.Equal(t, "プレイヤー", p.Name)
	assert.Equal(t, "未設定", p.Prefecture)
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "nested", "boki.db")

	got, err := Config{DBPath: want}.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.DirExists(t, filepath.Dir(want))
}

func TestResolveDBPath_DefaultsToStore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BOKIBATTLE_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := Config{}.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bokibattle", "bokibattle.db"), got)
}

func TestLogPath_NextToDatabase(t *testing.T) {
	assert.Equal(t, filepath.Join("/data", "bokibattle.log"), Config{}.LogPath("/data/boki.db"))
}

func TestSeeds(t *testing.T) {
	_, _, ok := Config{}.Seeds()
	assert.False(t, ok)

	a, b, ok := Config{Seed: 7}.Seeds()
	assert.True(t, ok)
	assert.EqualValues(t, 7, a)
	assert.NotEqual(t, a, b)
}
