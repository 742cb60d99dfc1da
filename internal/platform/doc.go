package platform

// Package platform contains OS integration and external tooling glue: media
// source normalization, well-known user directories and ffmpeg discovery.
