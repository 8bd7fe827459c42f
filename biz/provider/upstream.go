package provider

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"time"

	"moodmate/be/biz/util/metrics"

	"github.com/cloudwego/hertz/pkg/app/client"
	hertzerrors "github.com/cloudwego/hertz/pkg/common/errors"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/tidwall/gjson"
)

const DefaultTimeout = 5 * time.Second

// NewHTTPClient builds the client shared by every provider.
func NewHTTPClient() (*client.Client, error) {
	return client.NewClient(
		client.WithDialTimeout(DefaultTimeout),
		client.WithMaxConnsPerHost(64),
	)
}

func timeoutOf(ms int) time.Duration {
	if ms <= 0 {
		return DefaultTimeout
	}
	return time.Duration(ms) * time.Millisecond
}

type upstream struct {
	name     string
	endpoint string
	timeout  time.Duration
	cli      *client.Client
	metrics  *metrics.Metrics
}

func withQuery(endpoint string, query url.Values) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// do performs req and returns the body of a 2xx JSON response.
func (u *upstream) do(ctx context.Context, req *protocol.Request) ([]byte, error) {
	res := protocol.AcquireResponse()
	defer protocol.ReleaseResponse(res)

	if err := u.cli.DoTimeout(ctx, req, res, u.timeout); err != nil {
		kind := KindTransport
		if isTimeout(err) {
			kind = KindTimeout
		}
		return nil, u.fail(ctx, &Error{Provider: u.name, Kind: kind, Err: err})
	}

	if status := res.StatusCode(); status < 200 || status > 299 {
		return nil, u.fail(ctx, &Error{Provider: u.name, Kind: KindBadStatus, Status: status})
	}

	body := append([]byte(nil), res.Body()...)
	if !gjson.ValidBytes(body) {
		return nil, u.fail(ctx, &Error{Provider: u.name, Kind: KindMalformed, Err: errors.New("body is not json")})
	}
	return body, nil
}

func (u *upstream) malformed(ctx context.Context, reason string) error {
	return u.fail(ctx, &Error{Provider: u.name, Kind: KindMalformed, Err: errors.New(reason)})
}

func (u *upstream) fail(ctx context.Context, e *Error) error {
	hlog.CtxWarnf(ctx, "upstream %s call failed, kind=%s status=%d err=%v", e.Provider, e.Kind, e.Status, e.Err)
	u.metrics.UpstreamFailure(e.Provider, e.Kind.String())
	return e
}

func isTimeout(err error) bool {
	if errors.Is(err, hertzerrors.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	// dialers report timeouts as plain errors
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}
