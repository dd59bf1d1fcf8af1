package ingestmap

// RemoteItem is the shape of a single Metadata entry returned by the remote
// media server's library listing and item-detail endpoints. Field names
// mirror the wire JSON (and its XML-decoded equivalent) directly.
type RemoteItem struct {
	RatingKey            string   `json:"ratingKey,omitempty"`
	ParentRatingKey      string   `json:"parentRatingKey,omitempty"`
	GrandparentRatingKey string   `json:"grandparentRatingKey,omitempty"`
	GrandparentTitle     string   `json:"grandparentTitle,omitempty"`
	Type             string       `json:"type,omitempty"`
	Title            string       `json:"title,omitempty"`
	Summary          string       `json:"summary,omitempty"`
	Year             *int32       `json:"year,omitempty"`
	Duration         *int64       `json:"duration,omitempty"`
	ContentRating    string       `json:"contentRating,omitempty"`
	Index            *int32       `json:"index,omitempty"`
	ParentIndex      *int32       `json:"parentIndex,omitempty"`
	UpdatedAt        *int64       `json:"updatedAt,omitempty"`
	AddedAt          *int64       `json:"addedAt,omitempty"`
	Guid             []RemoteGuid `json:"Guid,omitempty"`
	Genre            []RemoteTag  `json:"Genre,omitempty"`
	Studio           string       `json:"studio,omitempty"`
	Media            []RemoteMedia `json:"Media,omitempty"`
}

// RemoteGuid is one entry of the item's external-identifier list, in any of
// the forms imdb://, tmdb://, tvdb://, plex://.
type RemoteGuid struct {
	ID string `json:"id,omitempty"`
}

// RemoteTag is a generic labeled facet (genre, studio, ...).
type RemoteTag struct {
	Tag string `json:"tag,omitempty"`
}

// RemoteMedia is one Media entry, itself composed of one or more file Parts.
type RemoteMedia struct {
	VideoCodec      string       `json:"videoCodec,omitempty"`
	AudioCodec      string       `json:"audioCodec,omitempty"`
	Width           *int32       `json:"width,omitempty"`
	Height          *int32       `json:"height,omitempty"`
	Bitrate         *int64       `json:"bitrate,omitempty"`
	AudioChannels   *int32       `json:"audioChannels,omitempty"`
	Container       string       `json:"container,omitempty"`
	Duration        *int64       `json:"duration,omitempty"`
	FrameRate       *float64     `json:"frameRate,omitempty"`
	Part            []RemotePart `json:"Part,omitempty"`
}

// RemotePart is a single file backing a Media entry.
type RemotePart struct {
	File string `json:"file,omitempty"`
	Size *int64 `json:"size,omitempty"`
}
