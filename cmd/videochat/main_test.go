package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, tc := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
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

func TestIngestCommandValidation(t *testing.T) {
	t.Run("rejects neither url nor file", func(t *testing.T) {
		set := flag.NewFlagSet("test", 0)
		ctx := cli.NewContext(cli.NewApp(), set, nil)

		err := ingestCommand(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one of")
	})

	t.Run("rejects both url and file", func(t *testing.T) {
		set := flag.NewFlagSet("test", 0)
		set.String("url", "https://youtu.be/abc", "")
		set.String("file", "/tmp/a.mp3", "")
		ctx := cli.NewContext(cli.NewApp(), set, nil)

		err := ingestCommand(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one of")
	})
}

func TestAskCommandValidation(t *testing.T) {
	set := flag.NewFlagSet("test", 0)
	set.String("url", "https://youtu.be/abc", "")
	ctx := cli.NewContext(cli.NewApp(), set, nil)

	err := askCommand(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question is required")
}

func TestDefaultDataDir(t *testing.T) {
	assert.NotEmpty(t, defaultDataDir())
}
