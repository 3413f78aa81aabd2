// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort      = "8080"
	DefaultDBPath    = "soundvault.db"
	DefaultUploadDir = "uploads"
	DefaultJWTSecret = "change-me-in-production"
)

// Upload limits
const (
	MaxAudioFileSize = 50 * 1024 * 1024 // 50MB
	MaxCoverSize     = 10 * 1024 * 1024 // 10MB
)

// Serving path prefixes for uploaded artifacts. Rows store these, the
// static file server resolves them against the upload root.
const (
	AudioPathPrefix  = "/uploads/audio/"
	CoversPathPrefix = "/uploads/covers/"
)

// Upload subdirectories under the upload root.
const (
	AudioSubdir  = "audio"
	CoversSubdir = "covers"
)

// MIME Types
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
)

// File Extensions
const (
	ExtFLAC = ".flac"
	ExtMP3  = ".mp3"
	ExtWAV  = ".wav"
	ExtM4A  = ".m4a"
	ExtAAC  = ".aac"
	ExtOGG  = ".ogg"
	ExtJPG  = ".jpg"
	ExtPNG  = ".png"
)

// File Permissions
const (
	DirPermissions  = 0755
	FilePermissions = 0644
)

// Server timeouts
const (
	ReadTimeout     = 30 * time.Second
	WriteTimeout    = 30 * time.Second
	IdleTimeout     = 120 * time.Second
	ShutdownTimeout = 5 * time.Second
)

// Default playback volume for a fresh player state.
const DefaultVolume = 1.0

// Characters to sanitize from filesystem paths
const InvalidPathChars = "<>:\"/\\|?*"
