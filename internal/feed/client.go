package feed

import (
	"context"
	"fmt"
	"time"

	"boxscore/internal/config"
	"boxscore/internal/constants"
	"boxscore/internal/domain"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// Client reads one sport's game document from its fixed upstream URL.
type Client struct {
	urls      map[domain.Sport]string
	client    *fasthttp.Client
	userAgent string
	logger    zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		urls: cfg.FeedURLs(),
		client: &fasthttp.Client{
			MaxConnsPerHost:     32,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		userAgent: "boxscore/1.0",
		logger:    logger,
	}
}

// Fetch performs a single GET for sport. It never retries.
func (c *Client) Fetch(ctx context.Context, sport domain.Sport) (*Document, error) {
	url, ok := c.urls[sport]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSport, sport)
	}

	start := time.Now()
	body, err := c.get(ctx, url)
	if err != nil {
		c.logger.Warn().Err(err).Str("sport", string(sport)).Str("url", url).Msg("feed request failed")
		return nil, err
	}

	doc, err := Decode(sport, body)
	if err != nil {
		c.logger.Warn().Err(err).Str("sport", string(sport)).Msg("feed document rejected")
		return nil, err
	}

	c.logger.Debug().
		Str("sport", string(sport)).
		Int("bytes", len(body)).
		Dur("took", time.Since(start)).
		Msg("feed fetched")
	return doc, nil
}

// Close drops idle upstream connections. The client stays usable.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.DoTimeout(req, resp, constants.ExternalAPITimeout)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: status %d from %s", domain.ErrNetwork, resp.StatusCode(), url)
	}

	body, err := resp.BodyUncompressed()
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", domain.ErrMalformedResponse, err)
	}

	// resp is returned to the pool on exit, so the body must be copied out.
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}
