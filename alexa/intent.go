package alexa

// ConfirmationStatus is the platform's dialog confirmation state for an
// intent or a slot.
type ConfirmationStatus string

const (
	ConfirmationNone      ConfirmationStatus = "NONE"
	ConfirmationConfirmed ConfirmationStatus = "CONFIRMED"
	ConfirmationDenied    ConfirmationStatus = "DENIED"
)

// DialogState tracks multi-turn dialogs driven by a dialog model.
type DialogState string

const (
	DialogStarted    DialogState = "STARTED"
	DialogInProgress DialogState = "IN_PROGRESS"
	DialogCompleted  DialogState = "COMPLETED"
)

// Builtin intent names. Custom intents use whatever name the skill's
// interaction model declares.
const (
	IntentHelp         = "AMAZON.HelpIntent"
	IntentCancel       = "AMAZON.CancelIntent"
	IntentFallback     = "AMAZON.FallbackIntent"
	IntentLoopOff      = "AMAZON.LoopOffIntent"
	IntentLoopOn       = "AMAZON.LoopOnIntent"
	IntentNavigateHome = "AMAZON.NavigateHomeIntent"
	IntentNext         = "AMAZON.NextIntent"
	IntentNo           = "AMAZON.NoIntent"
	IntentPause        = "AMAZON.PauseIntent"
	IntentPrevious     = "AMAZON.PreviousIntent"
	IntentRepeat       = "AMAZON.RepeatIntent"
	IntentResume       = "AMAZON.ResumeIntent"
	IntentSelect       = "AMAZON.SelectIntent"
	IntentShuffleOff   = "AMAZON.ShuffleOffIntent"
	IntentShuffleOn    = "AMAZON.ShuffleOnIntent"
	IntentStartOver    = "AMAZON.StartOverIntent"
	IntentStop         = "AMAZON.StopIntent"
	IntentYes          = "AMAZON.YesIntent"
)

// Intent is the recognized user goal for an utterance: a name plus the
// slots the language model filled.
type Intent struct {
	Name               string             `json:"name"`
	ConfirmationStatus ConfirmationStatus `json:"confirmationStatus,omitempty"`
	Slots              map[string]Slot    `json:"slots,omitempty"`
}

// IsBuiltin reports whether the intent is one of the platform's
// AMAZON.* intents rather than a custom one.
func (i *Intent) IsBuiltin() bool {
	return len(i.Name) > 7 && i.Name[:7] == "AMAZON."
}

// Slot returns the named slot, or nil if the intent does not carry it.
func (i *Intent) Slot(name string) *Slot {
	if i == nil {
		return nil
	}
	s, ok := i.Slots[name]
	if !ok {
		return nil
	}
	return &s
}

// Slot is a named fragment of the user's utterance. Value is nil when
// the slot exists in the interaction model but was not filled.
type Slot struct {
	Name               string             `json:"name"`
	Value              *string            `json:"value,omitempty"`
	ConfirmationStatus ConfirmationStatus `json:"confirmationStatus,omitempty"`
	Source             *string            `json:"source,omitempty"`
	Resolutions        *Resolutions       `json:"resolutions,omitempty"`
}

// Resolutions holds entity-resolution results, one entry per authority
// the slot type was resolved against, in platform order.
type Resolutions struct {
	ResolutionsPerAuthority []ResolutionPerAuthority `json:"resolutionsPerAuthority"`
}

type ResolutionPerAuthority struct {
	Authority string            `json:"authority"`
	Status    ResolutionStatus  `json:"status"`
	Values    []ResolutionValue `json:"values,omitempty"`
}

// Resolution status codes published by the platform.
const (
	ResolutionMatch   = "ER_SUCCESS_MATCH"
	ResolutionNoMatch = "ER_SUCCESS_NO_MATCH"
)

type ResolutionStatus struct {
	Code string `json:"code"`
}

type ResolutionValue struct {
	Value ResolvedEntity `json:"value"`
}

type ResolvedEntity struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}
