// Package tagging re-embeds library metadata into stored audio files so
// edits made through the API stay in sync with the files themselves.
// Writeback is best effort; callers log failures and move on.
package tagging

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"

	"github.com/soundvault/soundvault/internal/domain"
)

// Apply writes the song's title, artist, album and lyrics into the audio
// file at filePath. coverData, when non-empty, is re-attached as the front
// cover. Formats without tag support are a no-op.
func Apply(filePath string, song *domain.Song, coverData []byte) error {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".mp3":
		return applyMP3(filePath, song, coverData)
	case ".flac":
		return applyFLAC(filePath, song, coverData)
	default:
		// wav/aac/ogg uploads keep their bytes untouched.
		return nil
	}
}

func applyMP3(filePath string, song *domain.Song, coverData []byte) error {
	tag, err := id3v2.Open(filePath, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open mp3 for tagging: %w", err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(song.Title)
	tag.SetArtist(song.Artist)
	tag.SetAlbum(song.Album)

	if song.Lyrics != "" {
		tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
			Encoding:          id3v2.EncodingUTF8,
			Language:          "und",
			ContentDescriptor: "Lyrics",
			Lyrics:            song.Lyrics,
		})
	}

	if len(coverData) > 0 {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    detectMIME(coverData),
			PictureType: id3v2.PTFrontCover,
			Description: "Front Cover",
			Picture:     coverData,
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("failed to save mp3 tags: %w", err)
	}
	return nil
}

func applyFLAC(filePath string, song *domain.Song, coverData []byte) error {
	f, err := flac.ParseFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to parse flac: %w", err)
	}

	// Rebuild the metadata list: keep everything except old vorbis
	// comments and pictures, then append fresh ones.
	var kept []*flac.MetaDataBlock
	for _, block := range f.Meta {
		if block.Type == flac.VorbisComment || block.Type == flac.Picture {
			continue
		}
		kept = append(kept, block)
	}

	vorbis := flacvorbis.New()
	if song.Title != "" {
		_ = vorbis.Add(flacvorbis.FIELD_TITLE, song.Title)
	}
	if song.Artist != "" {
		_ = vorbis.Add(flacvorbis.FIELD_ARTIST, song.Artist)
	}
	if song.Album != "" {
		_ = vorbis.Add(flacvorbis.FIELD_ALBUM, song.Album)
	}
	if song.Lyrics != "" {
		_ = vorbis.Add("LYRICS", song.Lyrics)
	}
	vorbisBlock := vorbis.Marshal()
	kept = append(kept, &vorbisBlock)

	if len(coverData) > 0 {
		pic, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "", coverData, detectMIME(coverData))
		if err != nil {
			return fmt.Errorf("failed to build flac picture: %w", err)
		}
		picBlock := pic.Marshal()
		kept = append(kept, &picBlock)
	}

	f.Meta = kept
	if err := f.Save(filePath); err != nil {
		return fmt.Errorf("failed to save flac tags: %w", err)
	}
	return nil
}

func detectMIME(data []byte) string {
	mime := http.DetectContentType(data)
	if idx := strings.Index(mime, ";"); idx != -1 {
		mime = strings.TrimSpace(mime[:idx])
	}
	return mime
}
