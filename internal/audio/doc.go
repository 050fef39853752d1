// Package audio wraps the external ffmpeg/ffprobe tooling behind the Codec
// interface the curation operations depend on. Prefer this package over
// ad-hoc exec.Command usage when touching audio files.
package audio
