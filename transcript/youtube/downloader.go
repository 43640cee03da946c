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


package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Shradaya/chat-with-youtube-video/transcript"
)

// Downloader fetches best-available audio for a video through the yt-dlp
// binary. It writes into a single shared output directory that is cleared
// before every download, so downloads must not run in parallel within one
// process.
type Downloader struct {
	binary    string
	outputDir string
	logger    *slog.Logger
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithBinary sets the yt-dlp binary path. Defaults to "yt-dlp" on PATH.
func WithBinary(binary string) DownloaderOption {
	return func(d *Downloader) {
		d.binary = binary
	}
}

// WithDownloaderLogger sets a custom logger.
func WithDownloaderLogger(logger *slog.Logger) DownloaderOption {
	return func(d *Downloader) {
		d.logger = logger
	}
}

// NewDownloader creates a downloader writing into outputDir.
func NewDownloader(outputDir string, opts ...DownloaderOption) (*Downloader, error) {
	if outputDir == "" {
		return nil, fmt.Errorf("output directory cannot be empty")
	}

	d := &Downloader{
		binary:    "yt-dlp",
		outputDir: outputDir,
		logger:    slog.Default().With("component", "youtube_downloader"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Download fetches the audio track for a video id and returns the path of
// the produced file. The output directory is emptied first to avoid stale
// file collisions across runs.
func (d *Downloader) Download(ctx context.Context, videoID string) (string, error) {
	if err := d.resetOutputDir(); err != nil {
		return "", fmt.Errorf("preparing output directory: %w", err)
	}

	videoURL := fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
	outputTemplate := filepath.Join(d.outputDir, "output.%(ext)s")

	// bestaudio keeps the download small; playlists are never expanded.
	cmd := exec.CommandContext(ctx, d.binary,
		"-f", "bestaudio",
		"--no-playlist",
		"-o", outputTemplate,
		videoURL)

	d.logger.Info("downloading audio", "video_id", videoID, "output_dir", d.outputDir)
	if output, err := cmd.CombinedOutput(); err != nil {
		d.logger.Error("download failed",
			"video_id", videoID,
			"error", err,
			"output", string(output))
		return "", fmt.Errorf("running %s: %w", d.binary, err)
	}

	path, err := d.findOutput()
	if err != nil {
		return "", err
	}

	d.logger.Info("audio downloaded", "video_id", videoID, "path", path)
	return path, nil
}

// resetOutputDir clears and recreates the shared output directory.
func (d *Downloader) resetOutputDir() error {
	if err := os.RemoveAll(d.outputDir); err != nil {
		return err
	}
	return os.MkdirAll(d.outputDir, 0o755)
}

// findOutput locates the file yt-dlp produced. The extension depends on the
// source format, so match on the fixed stem.
func (d *Downloader) findOutput() (string, error) {
	matches, err := filepath.Glob(filepath.Join(d.outputDir, "output.*"))
	if err != nil {
		return "", fmt.Errorf("scanning output directory: %w", err)
	}
	if len(matches) == 0 {
		return "", transcript.ErrNoAudio
	}
	return matches[0], nil
}

var _ transcript.AudioDownloader = (*Downloader)(nil)
