package alexa

import "encoding/json"

// SpeechType is the markup kind of an output speech.
type SpeechType string

const (
	SpeechPlainText SpeechType = "PlainText"
	SpeechSSML      SpeechType = "SSML"
)

// SpeechPlayBehavior controls how output speech interleaves with any
// speech already playing.
type SpeechPlayBehavior string

const (
	SpeechEnqueue         SpeechPlayBehavior = "ENQUEUE"
	SpeechReplaceAll      SpeechPlayBehavior = "REPLACE_ALL"
	SpeechReplaceEnqueued SpeechPlayBehavior = "REPLACE_ENQUEUED"
)

// Speech is the spoken part of a response, either plain text or SSML.
type Speech struct {
	Type         SpeechType          `json:"type"`
	Text         *string             `json:"text,omitempty"`
	SSML         *string             `json:"ssml,omitempty"`
	PlayBehavior *SpeechPlayBehavior `json:"playBehavior,omitempty"`
}

// PlainSpeech constructs a plain text output speech.
func PlainSpeech(text string) *Speech {
	return &Speech{Type: SpeechPlainText, Text: &text}
}

// SSMLSpeech constructs an SSML output speech from the supplied markup.
func SSMLSpeech(ssml string) *Speech {
	return &Speech{Type: SpeechSSML, SSML: &ssml}
}

// CardType names the home-card variants.
type CardType string

const (
	CardSimple                   CardType = "Simple"
	CardStandard                 CardType = "Standard"
	CardLinkAccount              CardType = "LinkAccount"
	CardAskForPermissionsConsent CardType = "AskForPermissionsConsent"
)

// Card is shown in the companion app alongside the spoken response.
// Simple cards use Content, standard cards use Text and Image.
type Card struct {
	Type        CardType   `json:"type"`
	Title       *string    `json:"title,omitempty"`
	Content     *string    `json:"content,omitempty"`
	Text        *string    `json:"text,omitempty"`
	Image       *CardImage `json:"image,omitempty"`
	Permissions []string   `json:"permissions,omitempty"`
}

type CardImage struct {
	SmallImageURL *string `json:"smallImageUrl,omitempty"`
	LargeImageURL *string `json:"largeImageUrl,omitempty"`
}

// SimpleCard constructs a simple title/content card.
func SimpleCard(title, content string) *Card {
	return &Card{Type: CardSimple, Title: &title, Content: &content}
}

// StandardCard constructs a standard card with text and an image.
func StandardCard(title, text string, image *CardImage) *Card {
	return &Card{Type: CardStandard, Title: &title, Text: &text, Image: image}
}

// LinkAccountCard constructs a card prompting the user to link their
// account.
func LinkAccountCard() *Card {
	return &Card{Type: CardLinkAccount}
}

// AskForPermissionsCard constructs a card requesting the listed
// permissions.
func AskForPermissionsCard(permissions []string) *Card {
	return &Card{Type: CardAskForPermissionsConsent, Permissions: permissions}
}

// Reprompt is spoken when the user stays silent after an open session
// prompt.
type Reprompt struct {
	OutputSpeech Speech `json:"outputSpeech"`
}

// ResponseEnvelope is the top-level outbound value.
type ResponseEnvelope struct {
	Version           string                     `json:"version"`
	SessionAttributes map[string]json.RawMessage `json:"sessionAttributes,omitempty"`
	Response          Response                   `json:"response"`
}

// Response carries the skill's output. ShouldEndSession nil means the
// key is omitted on the wire, which the platform treats differently
// from an explicit false.
type Response struct {
	OutputSpeech     *Speech     `json:"outputSpeech,omitempty"`
	Card             *Card       `json:"card,omitempty"`
	Reprompt         *Reprompt   `json:"reprompt,omitempty"`
	Directives       []Directive `json:"directives,omitempty"`
	ShouldEndSession *bool       `json:"shouldEndSession,omitempty"`
}

func (r *Response) UnmarshalJSON(data []byte) error {
	type response struct {
		OutputSpeech     *Speech           `json:"outputSpeech"`
		Card             *Card             `json:"card"`
		Reprompt         *Reprompt         `json:"reprompt"`
		Directives       []json.RawMessage `json:"directives"`
		ShouldEndSession *bool             `json:"shouldEndSession"`
	}
	var body response
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	r.OutputSpeech = body.OutputSpeech
	r.Card = body.Card
	r.Reprompt = body.Reprompt
	r.ShouldEndSession = body.ShouldEndSession
	r.Directives = nil
	for _, raw := range body.Directives {
		d, err := decodeDirective(raw)
		if err != nil {
			return err
		}
		r.Directives = append(r.Directives, d)
	}
	return nil
}

// SerializeResponse is the outbound counterpart of ParseRequest.
func SerializeResponse(env ResponseEnvelope) ([]byte, error) {
	return json.Marshal(env)
}

// ParseResponse deserializes a response envelope. Mainly useful in
// tests and tooling; skills normally only build responses.
func ParseResponse(data []byte) (*ResponseEnvelope, error) {
	var env ResponseEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &DeserializationError{Path: "$", Err: err}
	}
	return &env, nil
}
