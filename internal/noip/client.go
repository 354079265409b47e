package noip

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/robgonnella/noip-sensor/internal/exception"
	"github.com/robgonnella/noip-sensor/internal/logger"
	"github.com/robgonnella/noip-sensor/internal/status"
)

// DefaultUpdateURL the No-IP dynamic update endpoint
const DefaultUpdateURL = "https://dynupdate.no-ip.com/nic/update"

// DefaultTimeout applied to every outbound request. No-IP itself imposes
// no timeout on the update call; this one exists so a hung request ends as
// a transport error, which leaves the sensor unchanged and keeps polling.
const DefaultTimeout = 30 * time.Second

// limit on how much of a response body we are willing to read
const maxBodySize = 4096

// UnexpectedStatusError returned when the endpoint answers with a non 2xx
// status code and a body we cannot interpret
type UnexpectedStatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s: %q", e.StatusCode, e.URL, e.Body)
}

// Client implements Updater against the No-IP http api
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        logger.Logger
}

// Option configures a Client
type Option func(c *Client)

// WithBaseURL overrides the update endpoint
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the underlying http client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient returns a new No-IP update client sending userAgent with
// every request
func NewClient(userAgent string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultUpdateURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        logger.New(),
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

// Update sends one update request and returns the trimmed response body.
// Non 2xx responses are only treated as errors when their body does not
// carry a recognizable status token, since No-IP answers badauth with 401.
func (c *Client) Update(ctx context.Context, req UpdateRequest) (string, error) {
	query := url.Values{}
	query.Set("hostname", req.Hostname)

	if req.MyIP != "" {
		query.Set("myip", req.MyIP)
	}

	reqURL := c.baseURL + "?" + query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)

	if err != nil {
		return "", err
	}

	httpReq.SetBasicAuth(req.Username, req.Password)
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(httpReq)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))

	if err != nil {
		return "", err
	}

	body := strings.TrimSpace(string(raw))

	c.log.Debug().
		Str("hostname", req.Hostname).
		Int("statusCode", resp.StatusCode).
		Str("response", body).
		Msg("update response")

	if body == "" {
		return "", fmt.Errorf("%s: %w", req.Hostname, exception.ErrEmptyResponse)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		token, _ := status.Split(body)

		if !status.Token(token).Known() {
			return "", &UnexpectedStatusError{
				URL:        c.baseURL,
				StatusCode: resp.StatusCode,
				Body:       body,
			}
		}
	}

	return body, nil
}
