package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/wdcheck/internal/config"
	"github.com/GlebRadaev/wdcheck/internal/dto"
	"github.com/GlebRadaev/wdcheck/internal/endpoints"
	"github.com/GlebRadaev/wdcheck/pkg/clients"
)

const (
	HeaderContentType = "Content-Type"
	HeaderAccessKey   = "access-key"

	contentTypeJSON = "application/json"
)

var ErrDecodeResponse = errors.New("response body is not valid JSON")

// Options describe a single call. Headers override the defaults key by key; OmitHeaders drops
// defaults entirely, which is how a request without an access key is built.
type Options struct {
	Method      string
	Body        []byte
	Headers     map[string]string
	OmitHeaders []string
}

type Client struct {
	client    clients.HTTPClientI
	endpoints endpoints.Endpoints
	accessKey string
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		client:    client,
		endpoints: endpoints.New(cfg.APIBaseURL),
		accessKey: cfg.AccessKey,
	}
}

func (c *Client) Endpoints() endpoints.Endpoints {
	return c.endpoints
}

func (c *Client) headers(opts Options) http.Header {
	h := http.Header{}
	h.Set(HeaderContentType, contentTypeJSON)
	h.Set(HeaderAccessKey, c.accessKey)

	for _, key := range opts.OmitHeaders {
		h.Del(key)
	}
	for key, value := range opts.Headers {
		h.Set(key, value)
	}
	return h
}

// FetchAPI sends the request and decodes the JSON body into out. The status code is only
// logged: the service reports outcomes in the body.
func (c *Client) FetchAPI(ctx context.Context, endpointURL string, opts Options, out any) error {
	method := opts.Method
	if method == "" {
		method = http.MethodPost
	}

	var body io.Reader = http.NoBody
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpointURL, body)
	if err != nil {
		return fmt.Errorf("can't build request: %w", err)
	}
	req.Header = c.headers(opts)

	statusCode, respBody, err := c.client.Send(req)
	if err != nil {
		zap.L().Error("request failed", zap.String("method", method), zap.String("url", endpointURL), zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, endpointURL, err)
	}
	zap.L().Debug("response received",
		zap.String("url", endpointURL),
		zap.Int("status", statusCode),
		zap.ByteString("body", respBody),
	)

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return nil
}

// CreateWithdrawal posts payload to the create endpoint. Strings and byte slices are sent as is,
// anything else is JSON encoded. A body already set in opts takes precedence.
func (c *Client) CreateWithdrawal(ctx context.Context, payload any, opts Options) (*dto.Response, error) {
	if opts.Body == nil {
		switch p := payload.(type) {
		case []byte:
			opts.Body = p
		case string:
			opts.Body = []byte(p)
		default:
			encoded, err := json.Marshal(p)
			if err != nil {
				return nil, fmt.Errorf("can't encode payload: %w", err)
			}
			opts.Body = encoded
		}
	}
	opts.Method = http.MethodPost

	var resp dto.Response
	if err := c.FetchAPI(ctx, c.endpoints.Create, opts, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
