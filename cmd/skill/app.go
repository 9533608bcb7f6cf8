package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/eschizoid/AlexaAskDevoxx/internal/inquiry"
	"github.com/eschizoid/AlexaAskDevoxx/internal/logger"
	"github.com/eschizoid/AlexaAskDevoxx/internal/models"
	"go.uber.org/zap"
)

const apologyText = "Sorry, the Ask Devoxx inquiry service is experiencing a problem. Please try again later."

var errInvalidIntent = errors.New("invalid intent")

type app struct {
	inquirer inquiry.Inquirer
	imageURL string
}

func newApp(inquirer inquiry.Inquirer, imageURL string) *app {
	return &app{
		inquirer: inquirer,
		imageURL: imageURL,
	}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))

		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger.Log.Debug("decoding request")
	var req models.RequestEnvelope
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var reply models.Reply

	switch req.Request.Type {
	case models.TypeLaunchRequest:
		reply = welcomeReply()
	case models.TypeIntentRequest:
		var err error
		reply, err = a.handleIntent(ctx, req.Request.Intent)
		if err != nil {
			logger.Log.Debug("cannot handle intent", zap.Error(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
	case models.TypeSessionEndedRequest:
		// the platform closed the session, nothing may be spoken back
		writeResponse(w, models.ResponseEnvelope{Version: "1.0"})
		return
	default:
		logger.Log.Debug("unsupported request type", zap.String("type", req.Request.Type))
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	writeResponse(w, renderResponse(reply))
}

func (a *app) handleIntent(ctx context.Context, intent models.Intent) (models.Reply, error) {
	switch intent.Name {
	case models.IntentOneShotCommand:
		return a.handleCommand(ctx, intent.Slots[models.SlotCommand].Value), nil
	case models.IntentStop, models.IntentCancel:
		return newTellReply("Goodbye"), nil
	default:
		return models.Reply{}, fmt.Errorf("%w: %q", errInvalidIntent, intent.Name)
	}
}

// handleCommand forwards the spoken command to the inquiry service and turns
// the answer into a tell-type reply with a companion card. Every upstream
// failure ends up as spoken text, never as an error.
func (a *app) handleCommand(ctx context.Context, command string) models.Reply {
	var speech, imageURL string

	if command == "" {
		speech = "Invalid inquiry; " + command
	} else {
		body, err := a.inquirer.Inquire(ctx, command)
		if err != nil {
			logger.Log.Debug("inquiry request failed", zap.Error(err))
			body = ""
		}

		if body == "" {
			speech = apologyText
		} else {
			var resp inquiry.Response
			if err = json.Unmarshal([]byte(body), &resp); err != nil {
				logger.Log.Error("cannot parse inquiry service response", zap.Error(err))
				speech = apologyText
			} else {
				speech = resp.Speech()
				imageURL = a.imageURL
			}
		}
	}

	reply := newTellReply(speech)
	reply.CardTitle = command
	reply.CardBody = speech
	reply.CardImageURL = imageURL
	return reply
}

func welcomeReply() models.Reply {
	return newAskReply(
		"<speak>Welcome to Ask Devoxx. What is your question?</speak>",
		true,
		"You can simply say Ask Devoxx and ask a question like, what is Devoxx U.S. ",
		false,
	)
}

// newAskReply keeps the session open and carries a reprompt for when the user
// stays silent or is misunderstood.
func newAskReply(text string, isOutputSSML bool, repromptText string, isRepromptSSML bool) models.Reply {
	return models.Reply{
		SpeechText:     text,
		SpeechIsSSML:   isOutputSSML,
		RepromptText:   repromptText,
		RepromptIsSSML: isRepromptSSML,
	}
}

func newTellReply(text string) models.Reply {
	return models.Reply{
		SpeechText: text,
		EndSession: true,
	}
}

func renderResponse(reply models.Reply) models.ResponseEnvelope {
	resp := models.Response{
		OutputSpeech:     outputSpeech(reply.SpeechText, reply.SpeechIsSSML),
		ShouldEndSession: reply.EndSession,
	}

	if reply.CardTitle != "" || reply.CardBody != "" {
		card := &models.Card{
			Type:  models.CardTypeStandard,
			Title: reply.CardTitle,
			Text:  reply.CardBody,
		}
		if reply.CardImageURL != "" {
			card.Image = &models.Image{SmallImageURL: reply.CardImageURL}
		}
		resp.Card = card
	}

	if !reply.EndSession {
		resp.Reprompt = &models.Reprompt{
			OutputSpeech: outputSpeech(reply.RepromptText, reply.RepromptIsSSML),
		}
	}

	return models.ResponseEnvelope{
		Version:  "1.0",
		Response: resp,
	}
}

func outputSpeech(text string, ssml bool) *models.OutputSpeech {
	if ssml {
		return &models.OutputSpeech{
			Type: models.SpeechTypeSSML,
			SSML: text,
		}
	}

	return &models.OutputSpeech{
		Type: models.SpeechTypePlainText,
		Text: text,
	}
}

func writeResponse(w http.ResponseWriter, resp models.ResponseEnvelope) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}
