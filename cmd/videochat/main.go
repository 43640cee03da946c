// Copyright 2025 Shradaya
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	videochat "github.com/Shradaya/chat-with-youtube-video"
	"github.com/Shradaya/chat-with-youtube-video/ai"
)

func main() {
	app := &cli.App{
		Name:  "videochat",
		Usage: "Chat with YouTube videos and audio files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "Directory for the content index, sessions and audio downloads",
				Value:   defaultDataDir(),
			},
			&cli.StringFlag{
				Name:    "api-host",
				Usage:   "OpenAI-compatible API host URL",
				EnvVars: []string{"VIDEOCHAT_API_HOST"},
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "API key for the model backend",
				EnvVars: []string{"OPENAI_API_KEY"},
			},
			&cli.StringFlag{
				Name:  "chat-model",
				Usage: "Chat model name",
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "chat",
				Usage:  "Start an interactive chat session",
				Action: chatCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "session",
						Aliases: []string{"s"},
						Usage:   "Session id to resume",
						Value:   "default",
					},
				},
			},
			{
				Name:   "ingest",
				Usage:  "Ingest a video or audio file and print its summary",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "url",
						Aliases: []string{"u"},
						Usage:   "YouTube video URL",
					},
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Path to a local audio file",
					},
				},
			},
			{
				Name:      "ask",
				Usage:     "Ask a question about an already ingested video",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "url",
						Aliases:  []string{"u"},
						Usage:    "YouTube video URL identifying the source",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".videochat"
	}
	return home + "/.videochat"
}

func newAssistant(c *cli.Context) (*videochat.Assistant, error) {
	var opts []ai.ConfigOption
	if host := c.String("api-host"); host != "" {
		opts = append(opts, ai.WithHost(host))
	}
	if key := c.String("api-key"); key != "" {
		opts = append(opts, ai.WithToken(key))
	}
	if model := c.String("chat-model"); model != "" {
		opts = append(opts, ai.WithChatModel(model))
	}
	if model := c.String("embedding-model"); model != "" {
		opts = append(opts, ai.WithEmbeddingModel(model))
	}

	cfg := ai.NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	return videochat.NewAssistant(videochat.Config{
		DataDir: c.String("data-dir"),
		AI:      cfg,
	})
}

func chatCommand(c *cli.Context) error {
	ctx := context.Background()

	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	sessionID := c.String("session")
	fmt.Println("Share a YouTube link to get started. Type 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		reply, err := assistant.Chat(ctx, sessionID, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Printf("Bot: %s\n\n", reply)
	}
	return scanner.Err()
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	url := c.String("url")
	file := c.String("file")
	if (url == "") == (file == "") {
		return fmt.Errorf("exactly one of --url or --file is required")
	}

	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	var summary string
	if url != "" {
		_, summary, err = assistant.IngestURL(ctx, url)
	} else {
		_, summary, err = assistant.IngestFile(ctx, file)
	}
	if err != nil {
		return err
	}

	fmt.Println(summary)
	return nil
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	src, _, err := assistant.IngestURL(ctx, c.String("url"))
	if err != nil {
		return err
	}

	answer, err := assistant.Ask(ctx, question, src)
	if err != nil {
		return err
	}

	fmt.Println(answer)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
