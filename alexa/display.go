package alexa

import "encoding/json"

// Display interface datatypes, from
// https://developer.amazon.com/en-US/docs/alexa/custom-skills/display-interface-reference.html
// The Display interface itself is deprecated, but Image and friends are
// shared by non-deprecated interfaces like AudioPlayer metadata.

// TemplateType names the display template variants.
type TemplateType string

const (
	BodyTemplate1 TemplateType = "BodyTemplate1"
	BodyTemplate2 TemplateType = "BodyTemplate2"
	BodyTemplate3 TemplateType = "BodyTemplate3"
	BodyTemplate6 TemplateType = "BodyTemplate6"
	BodyTemplate7 TemplateType = "BodyTemplate7"
	ListTemplate1 TemplateType = "ListTemplate1"
	ListTemplate2 TemplateType = "ListTemplate2"
)

// BackButtonBehavior controls the on-screen back button.
type BackButtonBehavior string

const (
	BackButtonVisible BackButtonBehavior = "VISIBLE"
	BackButtonHidden  BackButtonBehavior = "HIDDEN"
)

// RenderTemplateDirective renders a display template on screen-capable
// devices.
type RenderTemplateDirective struct {
	Template Template `json:"template"`
}

// NewRenderTemplateDirective validates and constructs a render-template
// directive.
func NewRenderTemplateDirective(t Template) (*RenderTemplateDirective, error) {
	if t.Type == "" {
		return nil, &InvalidDirectiveError{Type: DirectiveRenderTemplate, Reason: "template type must not be empty"}
	}
	return &RenderTemplateDirective{Template: t}, nil
}

func (d *RenderTemplateDirective) DirectiveType() string { return DirectiveRenderTemplate }

func (d *RenderTemplateDirective) MarshalJSON() ([]byte, error) {
	type render RenderTemplateDirective
	return json.Marshal(struct {
		Type string `json:"type"`
		*render
	}{Type: d.DirectiveType(), render: (*render)(d)})
}

// Template is the content of a RenderTemplate directive. ListItems is
// used by list templates, TextContent and BackgroundImage by body
// templates.
type Template struct {
	Type            TemplateType        `json:"type"`
	Token           string              `json:"token,omitempty"`
	BackButton      *BackButtonBehavior `json:"backButton,omitempty"`
	BackgroundImage *Image              `json:"backgroundImage,omitempty"`
	Title           string              `json:"title,omitempty"`
	TextContent     *TextContent        `json:"textContent,omitempty"`
	ListItems       []ListItem          `json:"listItems,omitempty"`
}

type ListItem struct {
	Token       string       `json:"token,omitempty"`
	Image       *Image       `json:"image,omitempty"`
	TextContent *TextContent `json:"textContent,omitempty"`
}

type TextContent struct {
	PrimaryText   *TextField `json:"primaryText,omitempty"`
	SecondaryText *TextField `json:"secondaryText,omitempty"`
	TertiaryText  *TextField `json:"tertiaryText,omitempty"`
}

// TextFieldType is the markup kind of a display text field.
type TextFieldType string

const (
	TextPlain TextFieldType = "PlainText"
	TextRich  TextFieldType = "RichText"
)

type TextField struct {
	Type TextFieldType `json:"type"`
	Text string        `json:"text"`
}

// PlainTextField is shorthand for a PlainText field.
func PlainTextField(text string) *TextField {
	return &TextField{Type: TextPlain, Text: text}
}

// ImageSize names the platform's discrete image size buckets.
type ImageSize string

const (
	ImageXSmall ImageSize = "X_SMALL"
	ImageSmall  ImageSize = "SMALL"
	ImageMedium ImageSize = "MEDIUM"
	ImageLarge  ImageSize = "LARGE"
	ImageXLarge ImageSize = "X_LARGE"
)

// Image references one picture in several sizes/resolutions.
type Image struct {
	ContentDescription *string         `json:"contentDescription,omitempty"`
	Sources            []ImageInstance `json:"sources"`
}

type ImageInstance struct {
	URL          string     `json:"url"`
	Size         *ImageSize `json:"size,omitempty"`
	WidthPixels  *int       `json:"widthPixels,omitempty"`
	HeightPixels *int       `json:"heightPixels,omitempty"`
}
