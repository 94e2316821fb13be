package framehost_test

import (
	"errors"
	"testing"
	"time"

	"github.com/agiangrant/framehost"
	"github.com/agiangrant/framehost/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppConfigOverridesDefaults(t *testing.T) {
	cfg, err := framehost.ParseAppConfig([]byte(`
[window]
title = "Sandbox"
width = 1280

[graphics]
swap = "vsync"
clear_color = [0.1, 0.2, 0.3]

[loop]
frame_budget = "16ms"
pacing = "sleep"
max_frames = 10

[debug]
dump_mutator = false
`))
	require.NoError(t, err)

	assert.Equal(t, "Sandbox", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset keys keep their default")
	assert.Equal(t, 16*time.Millisecond, cfg.Loop.FrameBudget.Duration)

	ec := cfg.EngineConfig()
	assert.Equal(t, framehost.SwapVSync, ec.Swap)
	assert.Equal(t, framehost.PacingSleep, ec.Pacing)
	assert.Equal(t, uint64(10), ec.MaxFrames)
	assert.False(t, ec.DumpMutator)
	assert.Equal(t, ui.NewColor(0.1, 0.2, 0.3), ec.ClearColor)
	assert.Equal(t, framehost.ProfileCore, ec.Context.Profile)
	assert.True(t, ec.Context.DoubleBuffer)
}

func TestDefaultEngineConfig(t *testing.T) {
	cfg := framehost.DefaultEngineConfig()
	assert.Equal(t, 960, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 4, cfg.Context.Major)
	assert.Equal(t, 1, cfg.Context.Minor)
	assert.Equal(t, 12*time.Millisecond, cfg.FrameBudget)
	assert.Equal(t, framehost.SwapImmediate, cfg.Swap)
	assert.Equal(t, framehost.PacingYield, cfg.Pacing)
	assert.NoError(t, framehost.DefaultAppConfig().Validate())
}

func TestParseAppConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[window\nwidth = 1"},
		{"unknown key", "[window]\ncolour = 1"},
		{"bad duration", "[loop]\nframe_budget = \"soon\""},
		{"negative duration", "[loop]\nframe_budget = \"-1ms\""},
		{"zero width", "[window]\nwidth = 0"},
		{"bad profile", "[graphics]\nprofile = \"vulkan\""},
		{"bad swap", "[graphics]\nswap = \"sometimes\""},
		{"bad pacing", "[loop]\npacing = \"spin\""},
		{"color out of range", "[graphics]\nclear_color = [2.0, 0.0, 0.0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := framehost.ParseAppConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, framehost.ConfigError, framehost.KindOf(err))
			assert.True(t, errors.Is(err, &framehost.Error{Kind: framehost.ConfigError}))
		})
	}
}

func TestAppConfigMarshalRoundTrip(t *testing.T) {
	want := framehost.DefaultAppConfig()
	want.Window.Title = "Round"
	want.Loop.FrameBudget.Duration = 8 * time.Millisecond

	data, err := want.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "8ms")

	got, err := framehost.ParseAppConfig(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
