package main

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestIndexCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "docdex",
		Commands: []*cli.Command{
			{
				Name: "index",
				Action: func(c *cli.Context) error {
					return nil
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "documents",
						Aliases:  []string{"d"},
						Required: true,
					},
					&cli.StringFlag{
						Name:  "index",
						Value: "document_index.json",
					},
					&cli.StringFlag{
						Name:  "cache",
						Value: "content_cache",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Value: 4,
					},
				},
			},
		},
	}

	t.Run("documents is required", func(t *testing.T) {
		err := app.Run([]string{"docdex", "index"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "documents")
	})

	t.Run("index file has default value", func(t *testing.T) {
		cmd := app.Commands[0]
		var indexFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "index" {
				indexFlag = f
				break
			}
		}
		require.NotNil(t, indexFlag)
		assert.Equal(t, "document_index.json", indexFlag.Value)
	})

	t.Run("pool-size has default value of 4", func(t *testing.T) {
		cmd := app.Commands[0]
		var poolFlag *cli.IntFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "pool-size" {
				poolFlag = f
				break
			}
		}
		require.NotNil(t, poolFlag)
		assert.Equal(t, 4, poolFlag.Value)
	})
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	app := &cli.App{
		Name: "docdex",
		Commands: []*cli.Command{
			{
				Name:   "search",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "index", Value: "document_index.json"},
					&cli.StringFlag{Name: "cache", Value: "content_cache"},
					&cli.IntFlag{Name: "max-docs", Value: 3},
				},
			},
		},
	}

	err := app.Run([]string{"docdex", "search"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query")
}

func TestPreviewSummary(t *testing.T) {
	short := "a short summary"
	assert.Equal(t, short, previewSummary(short))

	long := strings.Repeat("é", 250)
	preview := previewSummary(long)
	assert.True(t, utf8.ValidString(preview))
	assert.Equal(t, 203, utf8.RuneCountInString(preview))
	assert.True(t, strings.HasSuffix(preview, "é..."))
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: tc.input,
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, tc := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(tc, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}

		err := app.Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}
