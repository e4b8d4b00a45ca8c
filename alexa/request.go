package alexa

import (
	"encoding/json"
	"errors"
)

// RequestType is the discriminator of the request body. Any string is
// representable; the constants cover the request types this package
// models explicitly. Everything else is carried through the catch-all
// (raw type string plus Extra field capture).
type RequestType string

const (
	RequestLaunch           RequestType = "LaunchRequest"
	RequestIntent           RequestType = "IntentRequest"
	RequestSessionEnded     RequestType = "SessionEndedRequest"
	RequestCanFulfillIntent RequestType = "CanFulfillIntentRequest"

	RequestPlaybackStarted        RequestType = "AudioPlayer.PlaybackStarted"
	RequestPlaybackFinished       RequestType = "AudioPlayer.PlaybackFinished"
	RequestPlaybackStopped        RequestType = "AudioPlayer.PlaybackStopped"
	RequestPlaybackNearlyFinished RequestType = "AudioPlayer.PlaybackNearlyFinished"
	RequestPlaybackFailed         RequestType = "AudioPlayer.PlaybackFailed"
)

// Known reports whether this package models the request type
// explicitly. Unknown types still parse; their payload lives in
// Request.Extra.
func (t RequestType) Known() bool {
	switch t {
	case RequestLaunch, RequestIntent, RequestSessionEnded, RequestCanFulfillIntent,
		RequestPlaybackStarted, RequestPlaybackFinished, RequestPlaybackStopped,
		RequestPlaybackNearlyFinished, RequestPlaybackFailed:
		return true
	}
	return false
}

// SessionEndedReason explains a SessionEndedRequest.
type SessionEndedReason string

const (
	SessionEndedUserInitiated        SessionEndedReason = "USER_INITIATED"
	SessionEndedError                SessionEndedReason = "ERROR"
	SessionEndedExceededMaxReprompts SessionEndedReason = "EXCEEDED_MAX_REPROMPTS"
)

// RequestEnvelope is the top-level inbound value. Session is absent for
// session-less request types (audio player events); Context may be
// absent on old requests and in tests. Neither absence is an error.
type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Context *Context `json:"context,omitempty"`
	Request Request  `json:"request"`
}

// Request is the tagged request body. Type discriminates; RequestID,
// Timestamp and Locale are common to every type; the remaining fields
// are per-type payload and nil when not applicable. Fields of request
// types this package does not model are captured in Extra and written
// back on serialization.
type Request struct {
	Type      RequestType `json:"type"`
	RequestID string      `json:"requestId"`
	Timestamp string      `json:"timestamp,omitempty"`
	Locale    Locale      `json:"locale,omitempty"`

	// IntentRequest
	Intent      *Intent      `json:"intent,omitempty"`
	DialogState *DialogState `json:"dialogState,omitempty"`

	// SessionEndedRequest, AudioPlayer.PlaybackFailed
	Reason *SessionEndedReason `json:"reason,omitempty"`
	Error  *RequestError       `json:"error,omitempty"`

	// AudioPlayer.* playback events
	Token                *string `json:"token,omitempty"`
	OffsetInMilliseconds *int64  `json:"offsetInMilliseconds,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// RequestError describes a platform-reported error inside a
// SessionEndedRequest or a playback-failed event.
type RequestError struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

func (r *Request) UnmarshalJSON(data []byte) error {
	type request Request
	var body request
	extra, err := unmarshalExtensible(data, &body)
	if err != nil {
		return err
	}
	*r = Request(body)
	r.Extra = extra
	return nil
}

func (r Request) MarshalJSON() ([]byte, error) {
	type request Request
	return marshalExtensible(request(r), r.Extra)
}

// Session is the platform-managed state for one user interaction.
// Attributes round-trip raw so the skill's own values keep their exact
// JSON representation between turns.
type Session struct {
	New         bool                       `json:"new"`
	SessionID   string                     `json:"sessionId"`
	Application *Application               `json:"application,omitempty"`
	Attributes  map[string]json.RawMessage `json:"attributes,omitempty"`
	User        *User                      `json:"user,omitempty"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID      string       `json:"userId"`
	AccessToken *string      `json:"accessToken,omitempty"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

type Permissions struct {
	ConsentToken *string `json:"consentToken,omitempty"`
}

// SupportedVersion is the protocol version this package implements. The
// platform may bump it non-breakingly; see VersionSupported.
const SupportedVersion = "1.0"

var errMissingField = errors.New("required field is missing")

// ParseRequest deserializes a raw request envelope. Malformed JSON, or
// a missing required field, yields a *DeserializationError carrying the
// offending path. An unknown request type is not an error.
func ParseRequest(data []byte) (*RequestEnvelope, error) {
	var env RequestEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &DeserializationError{Path: "$", Err: err}
	}
	if env.Version == "" {
		return nil, &DeserializationError{Path: "version", Err: errMissingField}
	}
	if env.Request.Type == "" {
		return nil, &DeserializationError{Path: "request.type", Err: errMissingField}
	}
	if env.Request.RequestID == "" {
		return nil, &DeserializationError{Path: "request.requestId", Err: errMissingField}
	}
	return &env, nil
}

// VersionSupported reports whether the envelope carries the protocol
// version this package was written against. A mismatch is worth
// logging by the caller, not failing on.
func (e *RequestEnvelope) VersionSupported() bool {
	return e.Version == SupportedVersion
}

// IntentName returns the intent name of an IntentRequest, or "" for
// any other request type.
func (e *RequestEnvelope) IntentName() string {
	if e.Request.Intent == nil {
		return ""
	}
	return e.Request.Intent.Name
}

// SlotValue returns the filled value of the named slot, or nil when the
// request has no such slot or the slot is unfilled.
func (e *RequestEnvelope) SlotValue(name string) *string {
	s := e.Request.Intent.Slot(name)
	if s == nil {
		return nil
	}
	return s.Value
}

// AttributeString returns the session attribute under key decoded as a
// string. The second return is false when the attribute is absent, the
// session is absent, or the value is not a JSON string.
func (e *RequestEnvelope) AttributeString(key string) (string, bool) {
	if e.Session == nil {
		return "", false
	}
	raw, ok := e.Session.Attributes[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// IsNewSession reports whether this request opened a new session.
func (e *RequestEnvelope) IsNewSession() bool {
	return e.Session != nil && e.Session.New
}
