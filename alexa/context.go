package alexa

import "encoding/json"

// Context is the device/platform snapshot accompanying a request. The
// platform attaches one state block per interface the device declares
// (AudioPlayer, Display, Viewport, Extensions, ...). Blocks this
// package does not model are captured in Extra and round-trip intact.
type Context struct {
	System      System            `json:"System"`
	AudioPlayer *AudioPlayerState `json:"AudioPlayer,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (c *Context) UnmarshalJSON(data []byte) error {
	type context Context
	var ctx context
	extra, err := unmarshalExtensible(data, &ctx)
	if err != nil {
		return err
	}
	*c = Context(ctx)
	c.Extra = extra
	return nil
}

func (c Context) MarshalJSON() ([]byte, error) {
	type context Context
	return marshalExtensible(context(c), c.Extra)
}

// System identifies the skill, user and device a request comes from,
// plus the API endpoint and token for platform callbacks.
type System struct {
	APIEndpoint    *string      `json:"apiEndpoint,omitempty"`
	APIAccessToken *string      `json:"apiAccessToken,omitempty"`
	Application    *Application `json:"application,omitempty"`
	User           *User        `json:"user,omitempty"`
	Device         *Device      `json:"device,omitempty"`
}

// Device describes the originating device. SupportedInterfaces keys are
// interface names; the values are interface-specific capability objects
// kept raw, since each interface versions its own shape.
type Device struct {
	DeviceID            string                     `json:"deviceId"`
	SupportedInterfaces map[string]json.RawMessage `json:"supportedInterfaces,omitempty"`
}

// SupportsInterface reports whether the device declared the named
// interface (e.g. "AudioPlayer", "Display").
func (d *Device) SupportsInterface(name string) bool {
	if d == nil {
		return false
	}
	_, ok := d.SupportedInterfaces[name]
	return ok
}

// PlayerActivity is the audio player's last known state.
type PlayerActivity string

const (
	PlayerIdle           PlayerActivity = "IDLE"
	PlayerPaused         PlayerActivity = "PAUSED"
	PlayerPlaying        PlayerActivity = "PLAYING"
	PlayerBufferUnderrun PlayerActivity = "BUFFER_UNDERRUN"
	PlayerFinished       PlayerActivity = "FINISHED"
	PlayerStopped        PlayerActivity = "STOPPED"
)

// AudioPlayerState is the AudioPlayer interface block of the context,
// present when the device declares the AudioPlayer interface.
type AudioPlayerState struct {
	Token                *string         `json:"token,omitempty"`
	OffsetInMilliseconds *int64          `json:"offsetInMilliseconds,omitempty"`
	PlayerActivity       *PlayerActivity `json:"playerActivity,omitempty"`
}
