package alexa

import "encoding/json"

// Builder assembles a ResponseEnvelope piece by piece. Every mutator
// returns the builder for chaining; Build can be called any number of
// times and always reflects the builder's current state. A builder
// serves one response cycle and is not safe for concurrent mutation.
type Builder struct {
	speech     *Speech
	card       *Card
	reprompt   *Reprompt
	directives []Directive
	endSession *bool
	attributes map[string]json.RawMessage
	attrErr    error
}

// NewResponse returns an empty builder.
func NewResponse() *Builder {
	return &Builder{}
}

// WithSpeech sets plain text output speech.
func (b *Builder) WithSpeech(text string) *Builder {
	b.speech = PlainSpeech(text)
	return b
}

// WithSSML sets SSML output speech.
func (b *Builder) WithSSML(ssml string) *Builder {
	b.speech = SSMLSpeech(ssml)
	return b
}

// WithOutputSpeech sets the output speech directly.
func (b *Builder) WithOutputSpeech(s *Speech) *Builder {
	b.speech = s
	return b
}

// WithSimpleCard attaches a simple title/content card.
func (b *Builder) WithSimpleCard(title, content string) *Builder {
	b.card = SimpleCard(title, content)
	return b
}

// WithStandardCard attaches a standard card.
func (b *Builder) WithStandardCard(title, text string, image *CardImage) *Builder {
	b.card = StandardCard(title, text, image)
	return b
}

// WithCard attaches the given card.
func (b *Builder) WithCard(c *Card) *Builder {
	b.card = c
	return b
}

// WithReprompt sets the reprompt speech.
func (b *Builder) WithReprompt(s *Speech) *Builder {
	if s == nil {
		b.reprompt = nil
		return b
	}
	b.reprompt = &Reprompt{OutputSpeech: *s}
	return b
}

// AddDirective appends a directive. Order is preserved: directives are
// executed by the platform in the order they were added.
func (b *Builder) AddDirective(d Directive) *Builder {
	b.directives = append(b.directives, d)
	return b
}

// ShouldEndSession sets the flag explicitly. If never called the key is
// omitted from the response, which is not the same as false.
func (b *Builder) ShouldEndSession(end bool) *Builder {
	b.endSession = &end
	return b
}

// WithSessionAttribute stores a session attribute readable from the
// next request's session. The value is marshaled once, when set; a
// marshaling failure is reported by Build.
func (b *Builder) WithSessionAttribute(key string, value any) *Builder {
	raw, err := json.Marshal(value)
	if err != nil {
		if b.attrErr == nil {
			b.attrErr = err
		}
		return b
	}
	if b.attributes == nil {
		b.attributes = make(map[string]json.RawMessage)
	}
	b.attributes[key] = raw
	return b
}

// KeepSessionAttributes copies the inbound session's attributes into
// the response, the usual way to carry multi-turn state forward.
func (b *Builder) KeepSessionAttributes(s *Session) *Builder {
	if s == nil {
		return b
	}
	for k, v := range s.Attributes {
		if b.attributes == nil {
			b.attributes = make(map[string]json.RawMessage, len(s.Attributes))
		}
		b.attributes[k] = v
	}
	return b
}

// Build finalizes the envelope with the protocol version stamped.
// Repeated calls on the same builder state return equal values; the
// result does not alias the builder's internal slices or maps.
func (b *Builder) Build() (ResponseEnvelope, error) {
	if b.attrErr != nil {
		return ResponseEnvelope{}, b.attrErr
	}

	env := ResponseEnvelope{
		Version: SupportedVersion,
		Response: Response{
			OutputSpeech: b.speech,
			Card:         b.card,
			Reprompt:     b.reprompt,
		},
	}
	if b.endSession != nil {
		end := *b.endSession
		env.Response.ShouldEndSession = &end
	}
	if len(b.directives) > 0 {
		env.Response.Directives = append([]Directive(nil), b.directives...)
	}
	if len(b.attributes) > 0 {
		attrs := make(map[string]json.RawMessage, len(b.attributes))
		for k, v := range b.attributes {
			attrs[k] = v
		}
		env.SessionAttributes = attrs
	}
	return env, nil
}

// Simple builds a complete single-shot response: a simple card plus
// plain speech, ending the session. Mirrors the most common skill
// reply.
func Simple(title, text string) ResponseEnvelope {
	env, _ := NewResponse().
		WithSimpleCard(title, text).
		WithSpeech(text).
		ShouldEndSession(true).
		Build()
	return env
}

// End builds an empty response that ends the session.
func End() ResponseEnvelope {
	env, _ := NewResponse().ShouldEndSession(true).Build()
	return env
}
