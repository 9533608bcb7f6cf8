package inquiry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=inquiry.go -destination=mock/mock_inquiry.go -package=mock

// Inquirer fetches the raw inquiry service body for a spoken command.
type Inquirer interface {
	Inquire(ctx context.Context, text string) (string, error)
}

// Response is the payload the inquiry service answers with.
type Response struct {
	ResponseText string     `json:"responseText"`
	Resources    []Resource `json:"resources"`
}

type Resource struct {
	Body string `json:"body"`
}

// Speech flattens the payload into the text to be spoken: the response text
// followed by the bodies of at most the first two resources.
func (r Response) Speech() string {
	text := r.ResponseText
	if len(r.Resources) > 0 {
		text += "\n" + r.Resources[0].Body
	}
	if len(r.Resources) > 1 {
		text += "\n" + r.Resources[1].Body
	}

	if text == "" {
		return "Unable to respond to your inquiry\n"
	}

	return text
}

type Client struct {
	endpoint string
	http     *resty.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     resty.New().SetTimeout(timeout),
	}
}

// Inquire issues a single GET with the command as the text query parameter
// and returns the whole response body. HTTP error statuses are reported as
// errors so callers can treat them like any other network failure.
func (c *Client) Inquire(ctx context.Context, text string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("text", text).
		Get(c.endpoint)
	if err != nil {
		return "", err
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return "", fmt.Errorf("inquiry service answered with status %d", resp.StatusCode())
	}

	return string(resp.Body()), nil
}
