// Package ingestmap translates raw remote media-server JSON into the
// internal catalog records the Store persists. It is a pure function:
// no network, filesystem, or database access happens here.
package ingestmap

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the polymorphic content kind a RemoteItem maps to.
type Kind string

const (
	KindMovie Kind = "movie"
	KindShow  Kind = "show"
	KindSeason Kind = "season"
	KindEpisode Kind = "episode"
)

// Rating is a normalized (system, code) pair.
type Rating struct {
	System string
	Code   string
}

// Guid is a parsed external identifier, e.g. {Provider: "tvdb", ExternalID: "121361"}.
type Guid struct {
	Provider   string
	ExternalID string
}

// MappedItem is the Mapper's output: everything needed to upsert one
// content item and its associated rows.
type MappedItem struct {
	Kind              Kind
	Title             string
	Synopsis          *string
	DurationMs        *int64
	Rating            *Rating
	IsKidsFriendly    bool
	SeasonNumber      *int32
	EpisodeNumber     *int32
	MetadataUpdatedAt *int64
	Guids             []Guid
	PrimaryGuid       *Guid
	Files             []MappedFile
	Editorial         Editorial
	Tags              []Tag
}

// MappedFile is one extracted media file, ready for the Validator.
type MappedFile struct {
	FilePath        string
	Size            int64
	Container       *string
	VideoCodec      *string
	AudioCodec      *string
	Width           *int32
	Height          *int32
	Bitrate         *int64
	FrameRate       *float64
	Channels        *int32
	UpdatedAtRemote *int64
}

// Editorial is the captured-at-ingest-time descriptive payload.
type Editorial struct {
	OriginalTitle     string
	OriginalSynopsis  *string
	SourcePayloadJSON string
}

// Tag is one (namespace, key, value) facet extracted from the remote item.
type Tag struct {
	Namespace string
	Key       string
	Value     string
}

var kidsFriendlyRatings = map[string]bool{
	"G":     true,
	"TV-Y":  true,
	"TV-Y7": true,
	"TV-G":  true,
}

var mpaaCodes = map[string]bool{
	"G": true, "PG": true, "PG-13": true, "R": true, "NC-17": true,
}

// canonicalGenres is the genre vocabulary tag values are folded onto. Remote
// servers disagree on spelling and punctuation ("Sci-Fi" vs "Science
// Fiction"); fuzzy matching collapses near-duplicates onto one tag value
// instead of persisting every server's spelling as a distinct tag.
var canonicalGenres = []string{
	"Action", "Adventure", "Animation", "Comedy", "Crime", "Documentary",
	"Drama", "Family", "Fantasy", "History", "Horror", "Music", "Mystery",
	"Romance", "Science Fiction", "Thriller", "War", "Western", "Kids",
	"Reality", "Talk", "Soap", "Anime",
}

const genreMatchThreshold = 0.82

var titleCaser = cases.Title(language.English)

func canonicalGenre(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	best := raw
	var bestScore float32
	for _, candidate := range canonicalGenres {
		score, err := edlib.StringsSimilarity(raw, candidate, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	if bestScore >= genreMatchThreshold {
		return best
	}
	return titleCaser.String(raw)
}

// InferKind honors an explicit type field first, then falls back to
// structural inference: an item with a parent rating key and an index is an
// episode, everything else defaults to movie.
func InferKind(item RemoteItem) Kind {
	switch item.Type {
	case "movie":
		return KindMovie
	case "episode":
		return KindEpisode
	case "show":
		return KindShow
	case "season":
		return KindSeason
	}
	if item.ParentRatingKey != "" && item.Index != nil {
		return KindEpisode
	}
	return KindMovie
}

var guidProviderOrder = map[string]int{
	"tvdb": 0,
	"tmdb": 1,
	"imdb": 2,
}

// ParseGuids splits the remote "provider://id" GUID list into parsed
// entries, keeping the first occurrence per provider (earliest wins).
func ParseGuids(raw []RemoteGuid) []Guid {
	seen := make(map[string]bool)
	var out []Guid
	for _, g := range raw {
		provider, externalID, ok := splitGuid(g.ID)
		if !ok {
			continue
		}
		if seen[provider] {
			continue
		}
		seen[provider] = true
		out = append(out, Guid{Provider: provider, ExternalID: externalID})
	}
	return out
}

func splitGuid(raw string) (provider, externalID string, ok bool) {
	idx := strings.Index(raw, "://")
	if idx < 0 {
		return "", "", false
	}
	provider = strings.ToLower(raw[:idx])
	externalID = raw[idx+3:]
	if externalID == "" {
		return "", "", false
	}
	switch provider {
	case "imdb":
		externalID = strings.TrimPrefix(externalID, "tt")
		if externalID == "" {
			return "", "", false
		}
		externalID = "tt" + externalID
	case "tmdb", "tvdb":
		if _, err := strconv.Atoi(externalID); err != nil {
			return "", "", false
		}
	case "plex":
		// path-shaped native id, kept verbatim
	default:
		return "", "", false
	}
	return provider, externalID, true
}

// PrimaryGuid picks the highest-preference GUID: TVDB > TMDB > IMDB >
// remote-native (the first entry of any other provider, e.g. "plex").
func PrimaryGuid(guids []Guid) *Guid {
	if len(guids) == 0 {
		return nil
	}
	best := -1
	bestRank := len(guidProviderOrder) + 1
	for i, g := range guids {
		rank, known := guidProviderOrder[g.Provider]
		if !known {
			rank = len(guidProviderOrder)
		}
		if rank < bestRank {
			bestRank = rank
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	return &guids[best]
}

// NormalizeRating maps a remote content-rating string to a (system, code)
// pair. TV-* strings are TV-system, MPAA letters are MPAA-system, and
// "Not Rated"/"Unrated" collapse to MPAA/NR. An empty string returns nil;
// anything else unrecognized is still reported as an MPAA code verbatim
// (uppercased) rather than dropped, since Plex content ratings are a mostly
// open vocabulary.
func NormalizeRating(raw string) *Rating {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	upper := strings.ToUpper(trimmed)
	switch upper {
	case "NOT RATED", "UNRATED", "NR":
		return &Rating{System: "MPAA", Code: "NR"}
	}
	if strings.HasPrefix(upper, "TV-") {
		return &Rating{System: "TV", Code: upper}
	}
	if mpaaCodes[upper] {
		return &Rating{System: "MPAA", Code: upper}
	}
	return &Rating{System: "MPAA", Code: upper}
}

func isKidsFriendly(raw string) bool {
	return kidsFriendlyRatings[strings.ToUpper(strings.TrimSpace(raw))]
}

// resolveTimestamp returns updatedAt, falling back to addedAt, nil if
// neither is present.
func resolveTimestamp(updatedAt, addedAt *int64) *int64 {
	if updatedAt != nil {
		return updatedAt
	}
	return addedAt
}

// extractFiles iterates Media/Part entries, dropping parts with no file
// path. Per-file updated_at_remote falls back to the item-level timestamp.
func extractFiles(item RemoteItem, itemTimestamp *int64) []MappedFile {
	var files []MappedFile
	for _, media := range item.Media {
		for _, part := range media.Part {
			if part.File == "" {
				continue
			}
			var size int64
			if part.Size != nil {
				size = *part.Size
			}
			f := MappedFile{
				FilePath:        part.File,
				Size:            size,
				Width:           media.Width,
				Height:          media.Height,
				Bitrate:         media.Bitrate,
				FrameRate:       media.FrameRate,
				Channels:        media.AudioChannels,
				UpdatedAtRemote: itemTimestamp,
			}
			if media.Container != "" {
				c := media.Container
				f.Container = &c
			}
			if media.VideoCodec != "" {
				vc := media.VideoCodec
				f.VideoCodec = &vc
			}
			if media.AudioCodec != "" {
				ac := media.AudioCodec
				f.AudioCodec = &ac
			}
			files = append(files, f)
		}
	}
	return files
}

func buildTags(item RemoteItem, rating *Rating, kidsFriendly bool) []Tag {
	var tags []Tag
	if rating != nil {
		tags = append(tags, Tag{Namespace: "rating", Key: "system", Value: rating.System})
		tags = append(tags, Tag{Namespace: "rating", Key: "code", Value: rating.Code})
	}
	if kidsFriendly {
		tags = append(tags, Tag{Namespace: "audience", Key: "kids", Value: "1"})
	}
	for _, g := range item.Genre {
		if g.Tag == "" {
			continue
		}
		tags = append(tags, Tag{Namespace: "genre", Key: "primary", Value: canonicalGenre(g.Tag)})
	}
	if item.Studio != "" {
		tags = append(tags, Tag{Namespace: "studio", Key: "primary", Value: item.Studio})
	}
	return tags
}

// Map converts a single RemoteItem into a MappedItem. It never returns an
// error: malformed or missing optional fields are simply omitted.
func Map(item RemoteItem) MappedItem {
	kind := InferKind(item)
	rating := NormalizeRating(item.ContentRating)
	kidsFriendly := isKidsFriendly(item.ContentRating)
	timestamp := resolveTimestamp(item.UpdatedAt, item.AddedAt)
	guids := ParseGuids(item.Guid)
	primary := PrimaryGuid(guids)

	var synopsis *string
	if item.Summary != "" {
		s := item.Summary
		synopsis = &s
	}

	payload, _ := json.Marshal(item)

	mapped := MappedItem{
		Kind:              kind,
		Title:             item.Title,
		Synopsis:          synopsis,
		DurationMs:        item.Duration,
		Rating:            rating,
		IsKidsFriendly:    kidsFriendly,
		SeasonNumber:      item.ParentIndex,
		EpisodeNumber:     item.Index,
		MetadataUpdatedAt: timestamp,
		Guids:             guids,
		PrimaryGuid:       primary,
		Files:             extractFiles(item, timestamp),
		Editorial: Editorial{
			OriginalTitle:     item.Title,
			OriginalSynopsis:  synopsis,
			SourcePayloadJSON: string(payload),
		},
		Tags: buildTags(item, rating, kidsFriendly),
	}

	if kind == KindEpisode && item.GrandparentTitle != "" && mapped.Title == "" {
		mapped.Title = item.GrandparentTitle
	}

	return mapped
}
