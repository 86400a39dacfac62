package audio

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
)

// TagEditAction defines how to handle individual ID3 tags.
type TagEditAction int

const (
	// TagEmpty clears the tag value.
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value from TagMeta.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each ID3 field.
type TagConfig struct {
	// ModifyTags is a master switch. If false, no text frames are modified.
	ModifyTags bool

	// Title controls the TIT2 frame (soundpack name).
	Title TagEditAction

	// Artist controls the TPE1 frame.
	Artist TagEditAction

	// Album controls the TALB frame.
	Album TagEditAction

	// Comments controls the COMM frame listing the included categories.
	Comments TagEditAction
}

// DefaultTagConfig returns a configuration that writes every supported frame.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags: true,
		Title:      TagModify,
		Artist:     TagModify,
		Album:      TagModify,
		Comments:   TagModify,
	}
}

// TagMeta is the metadata written to a combined track.
type TagMeta struct {
	Title      string
	Artist     string
	Album      string
	Categories []string
}

// Tagger writes ID3 tags to combined MP3 tracks.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	if SupportsTags(output) {
//	    err := tagger.SaveTags(output, TagMeta{Title: "CC-Sounds", Categories: cats}, art)
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// SupportsTags returns true if the file format at path carries ID3 tags.
func SupportsTags(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".mp3")
}

// SaveTags writes ID3 tags to the file at path.
//
// artwork holds JPEG bytes for the front cover; nil leaves pictures alone.
func (t *Tagger) SaveTags(path string, meta TagMeta, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	if t.config.ModifyTags {
		t.updateTextFrames(tag, meta)
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	return tag.Save()
}

func (t *Tagger) updateTextFrames(tag *id3v2.Tag, meta TagMeta) {
	switch t.config.Title {
	case TagEmpty:
		tag.SetTitle("")
	case TagModify:
		tag.SetTitle(meta.Title)
	}

	switch t.config.Artist {
	case TagEmpty:
		tag.SetArtist("")
	case TagModify:
		tag.SetArtist(meta.Artist)
	}

	switch t.config.Album {
	case TagEmpty:
		tag.SetAlbum("")
	case TagModify:
		tag.SetAlbum(meta.Album)
	}

	switch t.config.Comments {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID("Comments"))
	case TagModify:
		tag.DeleteFrames(tag.CommonID("Comments"))
		if len(meta.Categories) > 0 {
			tag.AddCommentFrame(id3v2.CommentFrame{
				Encoding:    id3v2.EncodingUTF8,
				Language:    "eng",
				Description: "categories",
				Text:        strings.Join(meta.Categories, ", "),
			})
		}
	}
}

// updateArtwork embeds cover art as the front cover picture.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	})
}
