package alexa

import "encoding/json"

// Directive type discriminators.
const (
	DirectiveSpeak          = "VoicePlayer.Speak"
	DirectivePlay           = "AudioPlayer.Play"
	DirectiveStop           = "AudioPlayer.Stop"
	DirectiveClearQueue     = "AudioPlayer.ClearQueue"
	DirectiveRenderTemplate = "Display.RenderTemplate"
)

// Directive is an instruction attached to a response telling the device
// to act beyond speaking. The set of kinds grows on the platform side;
// a kind this package does not model decodes into *OpaqueDirective
// rather than failing. Directive order in a response is the platform's
// execution order and is preserved exactly.
type Directive interface {
	// DirectiveType returns the wire discriminator, e.g. "AudioPlayer.Play".
	DirectiveType() string
}

// SpeakDirective speaks the given markup immediately.
type SpeakDirective struct {
	Speech string `json:"speech"`
}

// NewSpeakDirective validates and constructs a speak directive.
func NewSpeakDirective(speech string) (*SpeakDirective, error) {
	if speech == "" {
		return nil, &InvalidDirectiveError{Type: DirectiveSpeak, Reason: "speech must not be empty"}
	}
	return &SpeakDirective{Speech: speech}, nil
}

func (d *SpeakDirective) DirectiveType() string { return DirectiveSpeak }

func (d *SpeakDirective) MarshalJSON() ([]byte, error) {
	type speak SpeakDirective
	return json.Marshal(struct {
		Type string `json:"type"`
		*speak
	}{Type: d.DirectiveType(), speak: (*speak)(d)})
}

// ClearBehavior selects what AudioPlayer.ClearQueue removes.
type ClearBehavior string

const (
	ClearAll      ClearBehavior = "CLEAR_ALL"
	ClearEnqueued ClearBehavior = "CLEAR_ENQUEUED"
)

// StopDirective stops the current audio stream.
type StopDirective struct{}

func (d *StopDirective) DirectiveType() string { return DirectiveStop }

func (d *StopDirective) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{Type: d.DirectiveType()})
}

// ClearQueueDirective clears the playback queue.
type ClearQueueDirective struct {
	ClearBehavior ClearBehavior `json:"clearBehavior"`
}

// NewClearQueueDirective validates and constructs a clear-queue
// directive.
func NewClearQueueDirective(behavior ClearBehavior) (*ClearQueueDirective, error) {
	switch behavior {
	case ClearAll, ClearEnqueued:
	default:
		return nil, &InvalidDirectiveError{Type: DirectiveClearQueue, Reason: "unknown clear behavior " + string(behavior)}
	}
	return &ClearQueueDirective{ClearBehavior: behavior}, nil
}

func (d *ClearQueueDirective) DirectiveType() string { return DirectiveClearQueue }

func (d *ClearQueueDirective) MarshalJSON() ([]byte, error) {
	type clearQueue ClearQueueDirective
	return json.Marshal(struct {
		Type string `json:"type"`
		*clearQueue
	}{Type: d.DirectiveType(), clearQueue: (*clearQueue)(d)})
}

// OpaqueDirective carries a directive kind this package does not model:
// the raw discriminator plus every other field of the original object,
// written back verbatim on serialization.
type OpaqueDirective struct {
	Type   string
	Fields map[string]json.RawMessage
}

func (d *OpaqueDirective) DirectiveType() string { return d.Type }

func (d *OpaqueDirective) MarshalJSON() ([]byte, error) {
	obj := make(map[string]json.RawMessage, len(d.Fields)+1)
	for k, v := range d.Fields {
		obj[k] = v
	}
	typ, err := json.Marshal(d.Type)
	if err != nil {
		return nil, err
	}
	obj["type"] = typ
	return json.Marshal(obj)
}

// decodeDirective dispatches on the wire discriminator. Unknown kinds
// become *OpaqueDirective, never an error.
func decodeDirective(data []byte) (Directive, error) {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}

	switch tag.Type {
	case DirectiveSpeak:
		var d SpeakDirective
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return &d, nil
	case DirectivePlay:
		var d PlayDirective
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return &d, nil
	case DirectiveStop:
		return &StopDirective{}, nil
	case DirectiveClearQueue:
		var d ClearQueueDirective
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return &d, nil
	case DirectiveRenderTemplate:
		var d RenderTemplateDirective
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return &d, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	delete(fields, "type")
	if len(fields) == 0 {
		fields = nil
	}
	return &OpaqueDirective{Type: tag.Type, Fields: fields}, nil
}
