package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSearchCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "peeq",
		Commands: []*cli.Command{
			{
				Name:   "search",
				Action: searchCommand,
				Flags:  catalogFlags(),
			},
		},
	}

	t.Run("data-dir is required", func(t *testing.T) {
		err := app.Run([]string{"peeq", "search", "red", "tshirt"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data-dir")
	})

	t.Run("query is required", func(t *testing.T) {
		dir := t.TempDir()
		err := app.Run([]string{"peeq", "search", "--data-dir", dir})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query")
	})
}

func TestServeCommandDefaults(t *testing.T) {
	var addrFlag *cli.StringFlag
	var stepsFlag *cli.IntFlag

	app := &cli.App{
		Name: "peeq",
		Commands: []*cli.Command{
			{
				Name: "serve",
				Flags: append(catalogFlags(),
					&cli.StringFlag{Name: "addr", Value: ":8080"},
					&cli.IntFlag{Name: "max-tool-steps", Value: 5},
				),
			},
		},
	}

	for _, flag := range app.Commands[0].Flags {
		switch f := flag.(type) {
		case *cli.StringFlag:
			if f.Name == "addr" {
				addrFlag = f
			}
		case *cli.IntFlag:
			if f.Name == "max-tool-steps" {
				stepsFlag = f
			}
		}
	}

	require.NotNil(t, addrFlag)
	assert.Equal(t, ":8080", addrFlag.Value)
	require.NotNil(t, stepsFlag)
	assert.Equal(t, 5, stepsFlag.Value)
}

func TestPromptCommandsRequireDb(t *testing.T) {
	app := &cli.App{
		Name: "peeq",
		Commands: []*cli.Command{
			{
				Name: "prompt",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Required: true},
				},
				Subcommands: []*cli.Command{
					{Name: "list", Action: promptListCommand},
				},
			},
		},
	}

	err := app.Run([]string{"peeq", "prompt", "list"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db")
}

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"DEBUG", false},
		{"verbose", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			app := &cli.App{
				Name: "peeq",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "log-level", Value: "info"},
				},
				Before: setupLogger,
				Action: func(c *cli.Context) error { return nil },
			}

			args := []string{"peeq"}
			if tt.level != "" {
				args = append(args, "--log-level", tt.level)
			} else {
				args = append(args, "--log-level", "")
			}

			err := app.Run(args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "hello", firstLine("hello"))
	assert.Equal(t, "hello", firstLine("hello\nworld"))

	long := make([]byte, 80)
	for i := range long {
		long[i] = 'x'
	}
	got := firstLine(string(long))
	assert.Len(t, got, 63)
	assert.Contains(t, got, "...")
}
