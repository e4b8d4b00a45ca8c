package alexa

import "encoding/json"

// AudioPlayer interface datatypes, from
// https://developer.amazon.com/en-US/docs/alexa/custom-skills/audioplayer-interface-reference.html

// PlayBehavior selects how AudioPlayer.Play interacts with the current
// playback queue.
type PlayBehavior string

const (
	PlayReplaceAll      PlayBehavior = "REPLACE_ALL"
	PlayEnqueue         PlayBehavior = "ENQUEUE"
	PlayReplaceEnqueued PlayBehavior = "REPLACE_ENQUEUED"
)

// PlayDirective starts or enqueues playback of an audio stream.
type PlayDirective struct {
	PlayBehavior PlayBehavior `json:"playBehavior"`
	AudioItem    AudioItem    `json:"audioItem"`
}

// NewPlayDirective validates and constructs a play directive for the
// given stream. Offset is in milliseconds from the start of the stream.
func NewPlayDirective(behavior PlayBehavior, url, token string, offset int64) (*PlayDirective, error) {
	switch behavior {
	case PlayReplaceAll, PlayEnqueue, PlayReplaceEnqueued:
	default:
		return nil, &InvalidDirectiveError{Type: DirectivePlay, Reason: "unknown play behavior " + string(behavior)}
	}
	if url == "" {
		return nil, &InvalidDirectiveError{Type: DirectivePlay, Reason: "stream url must not be empty"}
	}
	if token == "" {
		return nil, &InvalidDirectiveError{Type: DirectivePlay, Reason: "stream token must not be empty"}
	}
	return &PlayDirective{
		PlayBehavior: behavior,
		AudioItem: AudioItem{
			Stream: Stream{URL: url, Token: token, OffsetInMilliseconds: offset},
		},
	}, nil
}

func (d *PlayDirective) DirectiveType() string { return DirectivePlay }

func (d *PlayDirective) MarshalJSON() ([]byte, error) {
	type play PlayDirective
	return json.Marshal(struct {
		Type string `json:"type"`
		*play
	}{Type: d.DirectiveType(), play: (*play)(d)})
}

type AudioItem struct {
	Stream   Stream             `json:"stream"`
	Metadata *AudioItemMetadata `json:"metadata,omitempty"`
}

// Stream describes the audio source. OffsetInMilliseconds should be
// non-negative, but the platform has been observed to send -1, so it is
// not validated on parse.
type Stream struct {
	URL                   string       `json:"url"`
	Token                 string       `json:"token"`
	OffsetInMilliseconds  int64        `json:"offsetInMilliseconds"`
	ExpectedPreviousToken *string      `json:"expectedPreviousToken,omitempty"`
	CaptionData           *CaptionData `json:"captionData,omitempty"`
}

type CaptionData struct {
	Type    *string `json:"type,omitempty"`
	Content *string `json:"content,omitempty"`
}

// AudioItemMetadata is what the device shows while the stream plays.
type AudioItemMetadata struct {
	Title           *string `json:"title,omitempty"`
	Subtitle        *string `json:"subtitle,omitempty"`
	Art             *Image  `json:"art,omitempty"`
	BackgroundImage *Image  `json:"backgroundImage,omitempty"`
}
