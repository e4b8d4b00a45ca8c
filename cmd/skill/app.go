package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/jct-tympanon/alexa-go/alexa"
	"github.com/jct-tympanon/alexa-go/internal/logger"
	"github.com/jct-tympanon/alexa-go/internal/store"
)

type app struct {
	store store.Store
}

func newApp(s store.Store) *app {
	return &app{store: s}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))

		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Log.Debug("cannot read request body", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	env, err := alexa.ParseRequest(body)
	if err != nil {
		logger.Log.Debug("cannot parse request envelope", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// the platform may bump the version non-breakingly, log and go on
	if !env.VersionSupported() {
		logger.Log.Info("unexpected envelope version", zap.String("version", env.Version))
	}

	resp, err := a.respond(ctx, env)
	if err != nil {
		logger.Log.Debug("cannot build response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	out, err := alexa.SerializeResponse(resp)
	if err != nil {
		logger.Log.Debug("cannot serialize response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(out); err != nil {
		logger.Log.Debug("error writing response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}

func (a *app) respond(ctx context.Context, env *alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
	switch env.Request.Type {
	case alexa.RequestLaunch:
		return a.greet(ctx, env)
	case alexa.RequestIntent:
		return a.handleIntent(ctx, env)
	case alexa.RequestSessionEnded:
		return alexa.End(), nil
	default:
		logger.Log.Debug("unhandled request type", zap.String("type", string(env.Request.Type)))
		return alexa.End(), nil
	}
}

func (a *app) greet(ctx context.Context, env *alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
	var userID string
	if env.Session != nil && env.Session.User != nil {
		userID = env.Session.User.UserID
	}

	messages, err := a.store.ListMessages(ctx, userID)
	if err != nil {
		return alexa.ResponseEnvelope{}, err
	}

	text := "You have no new messages."
	switch len(messages) {
	case 0:
	case 1:
		text = "You have 1 new message."
	default:
		text = fmt.Sprintf("You have %d new messages.", len(messages))
	}

	return alexa.NewResponse().
		WithSpeech(text).
		WithReprompt(alexa.PlainSpeech("You can say hello to someone, or ask for help.")).
		ShouldEndSession(false).
		Build()
}

func (a *app) handleIntent(_ context.Context, env *alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
	switch env.IntentName() {
	case alexa.IntentHelp:
		return alexa.NewResponse().
			WithSpeech("To say hello, tell me: say hello to someone.").
			ShouldEndSession(false).
			Build()
	case alexa.IntentStop, alexa.IntentCancel:
		return alexa.Simple("Goodbye", "Goodbye."), nil
	case "HelloIntent":
		text := "hello world"
		if name := env.SlotValue("name"); name != nil {
			text = "hello " + *name
		}
		return alexa.Simple("Hello", text), nil
	default:
		return alexa.NewResponse().
			WithSpeech("Sorry, I did not understand that.").
			ShouldEndSession(false).
			Build()
	}
}
