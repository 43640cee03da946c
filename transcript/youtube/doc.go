// Package youtube provides YouTube-backed implementations of the
// transcript acquisition interfaces: a caption client over the public
// timedtext endpoint and an audio downloader shelling out to yt-dlp.
package youtube
