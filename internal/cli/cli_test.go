package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags:      options.Flags{Dialect: "superchip", InstructionsPerSec: 700},
			},
		},
		{
			name: "dialect alias",
			args: []string{"prog", "-dialect", "VIP", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags:      options.Flags{Dialect: "cosmac", InstructionsPerSec: 700},
			},
		},
		{
			name: "trace implies debug",
			args: []string{"prog", "-q", "-trace", "-ips", "60", "-seed", "7", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags: options.Flags{
					Dialect:            "superchip",
					InstructionsPerSec: 60,
					Seed:               7,
					Trace:              true,
					Debug:              true,
				},
			},
		},
		{
			name: "input flag",
			args: []string{"prog", "-i", "game.ch8", "-paused", "-statsview"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags: options.Flags{
					Dialect:            "superchip",
					InstructionsPerSec: 700,
					Paused:             true,
					StatsView:          true,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantUsage bool
	}{
		{"no ROM", []string{"prog"}, true},
		{"flag after ROM", []string{"prog", "game.ch8", "-debug"}, true},
		{"unknown dialect", []string{"prog", "-dialect", "xo", "game.ch8"}, false},
		{"ips too low", []string{"prog", "-ips", "0", "game.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.wantUsage, errors.As(err, &usageErr))
		})
	}
}

func TestParseListingFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "-o", "game.asm", "-nohexcomments", "-z", "-dialect", "vip", "game.ch8"}

	got, err := ParseListingFlags()
	assert.NoError(t, err)
	assert.Equal(t, "game.ch8", got.Input)
	assert.Equal(t, "cosmac", got.Dialect)
	assert.Equal(t, "game.asm", got.Output)
	assert.True(t, got.NoHexComments)
	assert.False(t, got.NoOffsets)
	assert.True(t, got.ZeroBytes)
}

func TestParseListingFlags_DefaultDialect(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "game.ch8"}
	got, err := ParseListingFlags()
	assert.NoError(t, err)
	assert.Equal(t, "superchip", got.Dialect)

	os.Args = []string{"prog", "-dialect", "xo", "game.ch8"}
	_, err = ParseListingFlags()
	assert.ErrorContains(t, err, "unsupported dialect")
}
