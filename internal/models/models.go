package models

const (
	TypeLaunchRequest       = "LaunchRequest"
	TypeIntentRequest       = "IntentRequest"
	TypeSessionEndedRequest = "SessionEndedRequest"

	IntentOneShotCommand = "OneShotCommandIntent"
	IntentStop           = "AMAZON.StopIntent"
	IntentCancel         = "AMAZON.CancelIntent"

	SlotCommand = "Command"

	SpeechTypePlainText = "PlainText"
	SpeechTypeSSML      = "SSML"

	CardTypeStandard = "Standard"
)

// RequestEnvelope describes an inbound skill request.
// See https://developer.amazon.com/docs/custom-skills/request-and-response-json-reference.html
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

type Session struct {
	New       bool   `json:"new"`
	SessionID string `json:"sessionId"`
	User      User   `json:"user"`
}

type User struct {
	UserID string `json:"userId"`
}

type Request struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
	Intent    Intent `json:"intent"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ResponseEnvelope describes the reply sent back to the platform.
type ResponseEnvelope struct {
	Version  string   `json:"version"`
	Response Response `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	SSML string `json:"ssml,omitempty"`
}

type Card struct {
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
	Image *Image `json:"image,omitempty"`
}

type Image struct {
	SmallImageURL string `json:"smallImageUrl,omitempty"`
	LargeImageURL string `json:"largeImageUrl,omitempty"`
}

type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech"`
}

// Reply is what the intent handlers produce before it is rendered into a
// ResponseEnvelope. A tell-type reply ends the session; an ask-type reply
// keeps it open and carries a reprompt.
type Reply struct {
	SpeechText     string
	SpeechIsSSML   bool
	RepromptText   string
	RepromptIsSSML bool
	CardTitle      string
	CardBody       string
	CardImageURL   string
	EndSession     bool
}
