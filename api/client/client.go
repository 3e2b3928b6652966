package client

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/39C-wallenstein/torn-api/api"
	"github.com/39C-wallenstein/torn-api/api/http"
	"github.com/39C-wallenstein/torn-api/cache"
	"github.com/39C-wallenstein/torn-api/config"
	"github.com/39C-wallenstein/torn-api/history"
	"github.com/google/uuid"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=callermocks_test.go -package=client_test github.com/39C-wallenstein/torn-api/api/http Caller
//go:generate mockgen -destination=historymocks_test.go -package=client_test github.com/39C-wallenstein/torn-api/history Store
//go:generate mockgen -destination=timermocks_test.go -package=client_test github.com/39C-wallenstein/torn-api/api/client Timer

const errMissingAPIKey = "missing API key: set %s or add api_key to the config file"

type Timer interface {
	Now() time.Time
}

type RealTime struct {
}

func (r *RealTime) Now() time.Time {
	return time.Now()
}

// Client issues requests against the Torn API. It throttles itself to
// the configured request budget, serves repeated lookups from an
// optional cache and records requests in an optional history journal.
type Client struct {
	Config  config.Config
	caller  http.Caller
	cache   *cache.Cache
	history history.Store
	timer   Timer
	limiter *limiter.Limiter
}

func New(callerFactory http.CallerFactory, cfg config.Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf(errMissingAPIKey, cfg.APIKeyEnvVarName())
	}

	caller, err := callerFactory(cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{
		Config: cfg,
		caller: caller,
		timer:  &RealTime{},
	}

	if cfg.RateLimit > 0 {
		c.limiter = limiter.New(memory.NewStore(), limiter.Rate{
			Period: time.Minute,
			Limit:  int64(cfg.RateLimit),
		})
	}

	return c, nil
}

func (c *Client) WithCache(ca *cache.Cache) *Client {
	c.cache = ca
	return c
}

func (c *Client) WithHistory(hs history.Store) *Client {
	c.history = hs
	return c
}

func (c *Client) WithTimer(t Timer) *Client {
	c.timer = t
	return c
}

// send runs one request end to end: throttle, cache lookup, network
// call, envelope check, cache fill and history record.
func (c *Client) send(ctx context.Context, r request) (*api.Response, error) {
	endpoint := c.buildURL(r)
	c.printRequestDebugInfo(endpoint)

	if err := c.throttle(ctx); err != nil {
		return nil, err
	}

	if c.cache != nil {
		if body, err := c.cache.Lookup(endpoint); err == nil && body != nil {
			if parsed, parseErr := api.ParseResponse(body); parseErr == nil {
				c.printResponseDebugInfo(body)
				c.recordHistory(r)
				return parsed, nil
			}
		}
	}

	body, err := c.caller.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	c.printResponseDebugInfo(body)

	parsed, err := api.ParseResponse(body)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Store(endpoint, parsed.Raw()); err != nil {
			zap.S().Debugf("failed to cache response: %v", err)
		}
	}

	c.recordHistory(r)

	return parsed, nil
}

// throttle blocks until the limiter grants a slot. Requests beyond the
// per minute budget wait for the window to reset instead of failing.
func (c *Client) throttle(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}

	key := hashKey(c.Config.APIKey)
	for {
		lctx, err := c.limiter.Get(ctx, key)
		if err != nil {
			return err
		}
		if !lctx.Reached {
			return nil
		}

		wait := time.Until(time.Unix(lctx.Reset, 0))
		if wait < 0 {
			wait = 0
		}
		zap.S().Debugf("request budget spent, waiting %s for the window to reset", wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (c *Client) recordHistory(r request) {
	if c.history == nil || c.Config.OmitHistory {
		return
	}

	entries, err := c.history.Read()
	if err != nil {
		entries = nil
	}

	var targetID int64
	if r.id != "" {
		targetID, _ = strconv.ParseInt(r.id, 10, 64)
	}

	entries = append(entries, history.Entry{
		ID:         uuid.NewString(),
		Category:   r.category,
		TargetID:   targetID,
		Selections: append([]string(nil), r.selections...),
		Timestamp:  c.timer.Now(),
	})

	if len(entries) > history.MaxEntries {
		entries = entries[len(entries)-history.MaxEntries:]
	}

	if err := c.history.Write(entries); err != nil {
		zap.S().Debugf("failed to record history: %v", err)
	}
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
