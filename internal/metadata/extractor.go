// Package metadata reads embedded tag data from uploaded audio files.
// Extraction is best effort: a file the parsers cannot handle yields
// filename-derived defaults, never an error.
package metadata

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"

	"github.com/soundvault/soundvault/internal/constants"
)

const (
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
)

// Cover is an embedded front-cover image.
type Cover struct {
	Data     []byte
	MIMEType string
}

// Metadata is the tag data recovered from one audio file.
type Metadata struct {
	Title    string
	Artist   string
	Album    string
	Duration int // whole seconds
	Year     int
	Cover    *Cover
}

// Extract reads tags, duration and cover art from the file at path.
// originalName is the name the file was uploaded under; it seeds the
// title fallback when the file carries no tags.
func Extract(path, originalName string) Metadata {
	md := fallback(originalName)

	tags, err := taglib.ReadTags(path)
	if err != nil {
		return md
	}

	if v := firstTag(tags, taglib.Title); v != "" {
		md.Title = v
	}
	if v := firstTag(tags, taglib.Artist); v != "" {
		md.Artist = v
	}
	if v := firstTag(tags, taglib.Album); v != "" {
		md.Album = v
	}
	if year := parseYear(firstTag(tags, taglib.Date, "YEAR", "ORIGINALDATE")); year > 0 {
		md.Year = year
	}

	if props, err := taglib.ReadProperties(path); err == nil && props.Length > 0 {
		md.Duration = int(props.Length.Round(time.Second).Seconds())
	}

	md.Cover = extractCover(path)
	return md
}

// fallback is the metadata used when the file carries no readable tags.
// The title keeps the uploaded file name as-is, extension included.
func fallback(originalName string) Metadata {
	return Metadata{
		Title:  filepath.Base(originalName),
		Artist: UnknownArtist,
		Album:  UnknownAlbum,
	}
}

// extractCover returns the first embedded picture, or nil when the file
// has none or cannot be parsed.
func extractCover(path string) *Cover {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil
	}

	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil
	}
	return &Cover{Data: pic.Data, MIMEType: pic.MIMEType}
}

func firstTag(tags map[string][]string, keys ...string) string {
	for _, key := range keys {
		for _, v := range tags[key] {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// parseYear pulls a four-digit year out of DATE-ish values like "1999",
// "1999-04-21" or "1999/04".
func parseYear(value string) int {
	if len(value) < 4 {
		return 0
	}
	year, err := strconv.Atoi(value[:4])
	if err != nil || year < 1000 || year > 9999 {
		return 0
	}
	return year
}

// IsValidAudioFile reports whether name carries an allowed audio extension.
func IsValidAudioFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case constants.ExtMP3, constants.ExtWAV, constants.ExtFLAC,
		constants.ExtM4A, constants.ExtAAC, constants.ExtOGG:
		return true
	}
	return false
}
