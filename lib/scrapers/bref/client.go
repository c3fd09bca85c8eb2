package bref

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"

	"brstats/lib/options"
	"brstats/lib/telemetry"
)

const BaseURL = "https://www.baseball-reference.com"

// ErrRateLimited means the site returned 429. Callers doing batch work
// stop on it immediately instead of burning the remaining requests.
var ErrRateLimited = fmt.Errorf("rate limited by the site")

// Document is a fetched page: the request path that produced it plus
// the raw body. Extractors validate the path before parsing so a
// document can also be constructed from a file and fed in directly.
type Document struct {
	Path string
	Body []byte
}

func (d *Document) Parse() (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(d.Body))
}

// Client fetches pages with the spacing the site's rate limit
// requires. All requests share one pacer, so concurrent callers still
// come out serialized.
type Client struct {
	http *resty.Client
	opts *options.Options

	mu   sync.Mutex
	last time.Time
}

func NewClient(opts *options.Options) *Client {
	settings := opts.Current()

	client := resty.New()
	client.SetBaseURL(BaseURL)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Duration(settings.TimeoutLimit) * time.Second)
	client.SetRetryCount(settings.MaxRetries)
	client.AddRetryCondition(func(res *resty.Response, err error) bool {
		if res != nil && res.StatusCode() == 429 {
			return false
		}
		return err != nil || (res != nil && res.StatusCode() >= 500)
	})

	telemetry.InstrumentResty(client, "scrapers/bref/http")

	return &Client{http: client, opts: opts}
}

// pause blocks until the configured buffer has elapsed since the last
// request.
func (c *Client) pause(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	buffer := time.Duration(c.opts.Current().RequestBuffer * float64(time.Second))
	wait := time.Until(c.last.Add(buffer))
	if wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	c.last = time.Now()
	return nil
}

// GetPage fetches one path.
func (c *Client) GetPage(ctx context.Context, path string) (*Document, error) {
	ctx, span := tracer.Start(ctx, "client:GetPage")
	defer span.End()

	err := c.pause(ctx)
	if err != nil {
		return nil, err
	}

	c.opts.PrintPage("fetching page", "path", path)

	res, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch page")
		return nil, err
	}
	if res.StatusCode() == 429 {
		span.SetStatus(codes.Error, "rate limited")
		return nil, ErrRateLimited
	}
	if res.StatusCode() != 200 {
		err := fmt.Errorf("unexpected status %d for %s", res.StatusCode(), path)
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	return &Document{Path: path, Body: res.Body()}, nil
}
