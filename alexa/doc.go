// Package alexa models the request and response envelopes exchanged
// between the Alexa platform and a custom skill, following the
// request/response JSON reference:
// https://developer.amazon.com/docs/custom-skills/request-and-response-json-reference.html
//
// The package is a pure data layer. A transport collaborator (HTTP
// handler, Lambda runtime, test harness) feeds raw bytes to
// ParseRequest, hands the envelope to skill logic, and serializes
// whatever ResponseEnvelope the skill builds:
//
//	env, err := alexa.ParseRequest(body)
//	if err != nil {
//		// malformed request, reject it
//	}
//	resp, err := alexa.NewResponse().
//		WithSpeech("hello world").
//		WithSimpleCard("hello", "hello world").
//		ShouldEndSession(true).
//		Build()
//	if err != nil {
//		// invalid session attribute value
//	}
//	out, err := alexa.SerializeResponse(resp)
//
// The platform schema grows between SDK releases. Structures that the
// platform versions independently (the request body, the context
// interface blocks, directives) keep any fields this package does not
// model and write them back on serialization, so an unknown request
// type or directive kind is representable, never an error.
package alexa
