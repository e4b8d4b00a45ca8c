package alexa

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const intentRequestJSON = `{
	"version": "1.0",
	"session": {
		"new": true,
		"sessionId": "amzn1.echo-api.session.abc123",
		"application": {"applicationId": "amzn1.ask.skill.myappid"},
		"attributes": {"lastSpeech": "Jupiter has the shortest day of all the planets"},
		"user": {"userId": "amzn1.ask.account.theuserid"}
	},
	"context": {
		"System": {
			"application": {"applicationId": "amzn1.ask.skill.myappid"},
			"user": {"userId": "amzn1.ask.account.theuserid"},
			"device": {
				"deviceId": "amzn1.ask.device.superfakedevice",
				"supportedInterfaces": {"AudioPlayer": {}}
			},
			"apiEndpoint": "https://api.amazonalexa.com",
			"apiAccessToken": "53kr14t.k3y.d4t4-otherstuff"
		},
		"AudioPlayer": {"playerActivity": "IDLE"},
		"Viewport": {
			"experiences": [{"arcMinuteWidth": 246, "arcMinuteHeight": 144, "canRotate": false, "canResize": false}],
			"shape": "RECTANGLE",
			"pixelWidth": 1024,
			"pixelHeight": 600,
			"dpi": 160,
			"touch": ["SINGLE"]
		}
	},
	"request": {
		"type": "IntentRequest",
		"requestId": "amzn1.echo-api.request.b8b49fde-4370-423f-bbb0-dc7305b788a0",
		"timestamp": "2018-12-03T00:33:58Z",
		"locale": "en-US",
		"intent": {
			"name": "hello",
			"confirmationStatus": "NONE",
			"slots": {
				"name": {
					"name": "name",
					"value": "bob",
					"confirmationStatus": "NONE",
					"source": "USER",
					"resolutions": {
						"resolutionsPerAuthority": [{
							"authority": "amzn1.er-authority.echo-sdk.names",
							"status": {"code": "ER_SUCCESS_MATCH"},
							"values": [{"value": {"name": "Bob", "id": "BOB"}}]
						}]
					}
				}
			}
		}
	}
}`

func TestParseIntentRequest(t *testing.T) {
	env, err := ParseRequest([]byte(intentRequestJSON))
	require.NoError(t, err)

	assert.Equal(t, "1.0", env.Version)
	assert.True(t, env.VersionSupported())
	assert.Equal(t, RequestIntent, env.Request.Type)
	assert.True(t, env.Request.Type.Known())
	assert.Equal(t, LocaleAmericanEnglish, env.Request.Locale)
	assert.True(t, env.Request.Locale.IsEnglish())
	assert.Equal(t, "hello", env.IntentName())
	assert.False(t, env.Request.Intent.IsBuiltin())
	assert.True(t, env.IsNewSession())

	require.NotNil(t, env.SlotValue("name"))
	assert.Equal(t, "bob", *env.SlotValue("name"))
	assert.Nil(t, env.SlotValue("missing"))

	slot := env.Request.Intent.Slot("name")
	require.NotNil(t, slot)
	require.NotNil(t, slot.Resolutions)
	require.Len(t, slot.Resolutions.ResolutionsPerAuthority, 1)
	perAuth := slot.Resolutions.ResolutionsPerAuthority[0]
	assert.Equal(t, ResolutionMatch, perAuth.Status.Code)
	require.Len(t, perAuth.Values, 1)
	assert.Equal(t, "Bob", perAuth.Values[0].Value.Name)
	assert.Equal(t, "BOB", perAuth.Values[0].Value.ID)

	attr, ok := env.AttributeString("lastSpeech")
	assert.True(t, ok)
	assert.Equal(t, "Jupiter has the shortest day of all the planets", attr)
	_, ok = env.AttributeString("missing")
	assert.False(t, ok)
}

func TestParseContext(t *testing.T) {
	env, err := ParseRequest([]byte(intentRequestJSON))
	require.NoError(t, err)
	require.NotNil(t, env.Context)

	sys := env.Context.System
	require.NotNil(t, sys.APIEndpoint)
	assert.Equal(t, "https://api.amazonalexa.com", *sys.APIEndpoint)
	assert.True(t, sys.Device.SupportsInterface("AudioPlayer"))
	assert.False(t, sys.Device.SupportsInterface("Display"))

	require.NotNil(t, env.Context.AudioPlayer)
	require.NotNil(t, env.Context.AudioPlayer.PlayerActivity)
	assert.Equal(t, PlayerIdle, *env.Context.AudioPlayer.PlayerActivity)

	// Viewport is not modeled; it must survive in Extra.
	require.Contains(t, env.Context.Extra, "Viewport")
}

func TestParseLaunchRequestWithoutSession(t *testing.T) {
	in := `{"version":"1.0","request":{"type":"LaunchRequest","requestId":"r1","timestamp":"2025-01-01T00:00:00Z","locale":"en-US"}}`

	env, err := ParseRequest([]byte(in))
	require.NoError(t, err)

	assert.Equal(t, RequestLaunch, env.Request.Type)
	assert.Equal(t, "r1", env.Request.RequestID)
	assert.Nil(t, env.Session)
	assert.Nil(t, env.Context)
	assert.Nil(t, env.Request.Intent)
	assert.False(t, env.IsNewSession())
}

func TestParseSessionEndedRequest(t *testing.T) {
	in := `{
		"version": "1.0",
		"request": {
			"type": "SessionEndedRequest",
			"requestId": "r2",
			"timestamp": "2025-01-01T00:00:00Z",
			"locale": "en-GB",
			"reason": "ERROR",
			"error": {"type": "INVALID_RESPONSE", "message": "card title missing"}
		}
	}`

	env, err := ParseRequest([]byte(in))
	require.NoError(t, err)

	assert.Equal(t, RequestSessionEnded, env.Request.Type)
	require.NotNil(t, env.Request.Reason)
	assert.Equal(t, SessionEndedError, *env.Request.Reason)
	require.NotNil(t, env.Request.Error)
	assert.Equal(t, "INVALID_RESPONSE", env.Request.Error.Type)
	assert.Equal(t, "card title missing", env.Request.Error.Message)
}

func TestParsePlaybackEvent(t *testing.T) {
	in := `{
		"version": "1.0",
		"request": {
			"type": "AudioPlayer.PlaybackNearlyFinished",
			"requestId": "r3",
			"timestamp": "2025-01-01T00:00:00Z",
			"locale": "en-US",
			"token": "track-42",
			"offsetInMilliseconds": 192000
		}
	}`

	env, err := ParseRequest([]byte(in))
	require.NoError(t, err)

	assert.Equal(t, RequestPlaybackNearlyFinished, env.Request.Type)
	assert.Nil(t, env.Session)
	require.NotNil(t, env.Request.Token)
	assert.Equal(t, "track-42", *env.Request.Token)
	require.NotNil(t, env.Request.OffsetInMilliseconds)
	assert.Equal(t, int64(192000), *env.Request.OffsetInMilliseconds)
}

func TestParseUnknownRequestType(t *testing.T) {
	in := `{
		"version": "1.0",
		"request": {
			"type": "GameEngine.InputHandlerEvent",
			"requestId": "r4",
			"timestamp": "2025-01-01T00:00:00Z",
			"locale": "en-US",
			"events": [{"name": "button_down"}]
		}
	}`

	env, err := ParseRequest([]byte(in))
	require.NoError(t, err)

	assert.Equal(t, RequestType("GameEngine.InputHandlerEvent"), env.Request.Type)
	assert.False(t, env.Request.Type.Known())
	require.Contains(t, env.Request.Extra, "events")
	assert.JSONEq(t, `[{"name":"button_down"}]`, string(env.Request.Extra["events"]))
}

func TestParseRequestErrors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		path string
	}{
		{
			name: "malformed_json",
			in:   `{"version":`,
			path: "$",
		},
		{
			name: "missing_version",
			in:   `{"request":{"type":"LaunchRequest","requestId":"r1"}}`,
			path: "version",
		},
		{
			name: "missing_type",
			in:   `{"version":"1.0","request":{"requestId":"r1"}}`,
			path: "request.type",
		},
		{
			name: "missing_request_id",
			in:   `{"version":"1.0","request":{"type":"LaunchRequest"}}`,
			path: "request.requestId",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRequest([]byte(tc.in))
			require.Error(t, err)

			var dErr *DeserializationError
			require.True(t, errors.As(err, &dErr))
			assert.Equal(t, tc.path, dErr.Path)
		})
	}
}

func TestVersionMismatchIsNotAnError(t *testing.T) {
	in := `{"version":"1.1","request":{"type":"LaunchRequest","requestId":"r1"}}`

	env, err := ParseRequest([]byte(in))
	require.NoError(t, err)
	assert.False(t, env.VersionSupported())
}

func TestRequestRoundTrip(t *testing.T) {
	env, err := ParseRequest([]byte(intentRequestJSON))
	require.NoError(t, err)

	out, err := json.Marshal(env)
	require.NoError(t, err)

	// Unknown fields must survive the full cycle with their values.
	assert.JSONEq(t, intentRequestJSON, string(out))

	// parse(serialize(v)) == v once the captured raw values are in
	// canonical (compact) form.
	reparsed, err := ParseRequest(out)
	require.NoError(t, err)
	out2, err := json.Marshal(reparsed)
	require.NoError(t, err)
	again, err := ParseRequest(out2)
	require.NoError(t, err)
	assert.Equal(t, reparsed, again)
}

func TestRequestBodyExtraRoundTrip(t *testing.T) {
	in := `{"version":"1.0","request":{"type":"LaunchRequest","requestId":"r1","timestamp":"2025-01-01T00:00:00Z","locale":"en-US","shakeIntensity":0.25}}`

	env, err := ParseRequest([]byte(in))
	require.NoError(t, err)
	require.Contains(t, env.Request.Extra, "shakeIntensity")

	out, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestLocaleHelpers(t *testing.T) {
	testCases := []struct {
		locale   Locale
		language string
		english  bool
		french   bool
		spanish  bool
	}{
		{LocaleAmericanEnglish, "en", true, false, false},
		{LocaleBritishEnglish, "en", true, false, false},
		{LocaleCanadianFrench, "fr", false, true, false},
		{LocaleMexicanSpanish, "es", false, false, true},
		{LocaleJapanese, "ja", false, false, false},
		{Locale("xx"), "xx", false, false, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.locale), func(t *testing.T) {
			assert.Equal(t, tc.language, tc.locale.Language())
			assert.Equal(t, tc.english, tc.locale.IsEnglish())
			assert.Equal(t, tc.french, tc.locale.IsFrench())
			assert.Equal(t, tc.spanish, tc.locale.IsSpanish())
		})
	}
}
