package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/39C-wallenstein/torn-api/api/faction"
	"github.com/39C-wallenstein/torn-api/api/key"
	"github.com/39C-wallenstein/torn-api/api/market"
	"github.com/39C-wallenstein/torn-api/api/torn"
	"github.com/39C-wallenstein/torn-api/api/user"
)

// request carries everything that goes into a single API call. The id
// stays empty when no target was set, which asks the API to use the key
// owner as the target.
type request struct {
	category   string
	id         string
	selections []string
	from       *time.Time
	to         *time.Time
	limit      int
	comment    string
}

// buildURL renders the endpoint for a request. The query parameters
// keep a fixed order so that equal requests always produce equal URLs,
// which is what the cache keys on.
func (c *Client) buildURL(r request) string {
	var sb strings.Builder

	sb.WriteString(c.Config.URL)
	sb.WriteString("/")
	sb.WriteString(r.category)
	sb.WriteString("/")
	sb.WriteString(r.id)
	sb.WriteString("?selections=")
	sb.WriteString(strings.Join(r.selections, ","))
	sb.WriteString("&key=")
	sb.WriteString(c.Config.APIKey)

	if r.from != nil {
		sb.WriteString("&from=")
		sb.WriteString(strconv.FormatInt(r.from.Unix(), 10))
	}
	if r.to != nil {
		sb.WriteString("&to=")
		sb.WriteString(strconv.FormatInt(r.to.Unix(), 10))
	}
	if r.limit > 0 {
		sb.WriteString("&limit=")
		sb.WriteString(strconv.Itoa(r.limit))
	}

	comment := r.comment
	if comment == "" {
		comment = c.Config.Comment
	}
	if comment != "" {
		sb.WriteString("&comment=")
		sb.WriteString(url.QueryEscape(comment))
	}

	return sb.String()
}

// UserRequest queries the user section. Without an ID the API reports
// on the key owner.
type UserRequest struct {
	client  *Client
	request request
}

func (c *Client) User() *UserRequest {
	return &UserRequest{client: c, request: request{category: user.Category}}
}

func (u *UserRequest) ID(id int64) *UserRequest {
	u.request.id = strconv.FormatInt(id, 10)
	return u
}

func (u *UserRequest) Selections(selections ...user.Selection) *UserRequest {
	for _, s := range selections {
		u.request.selections = append(u.request.selections, s.String())
	}
	return u
}

func (u *UserRequest) From(from time.Time) *UserRequest {
	u.request.from = &from
	return u
}

func (u *UserRequest) To(to time.Time) *UserRequest {
	u.request.to = &to
	return u
}

func (u *UserRequest) Limit(limit int) *UserRequest {
	u.request.limit = limit
	return u
}

func (u *UserRequest) Comment(comment string) *UserRequest {
	u.request.comment = comment
	return u
}

func (u *UserRequest) Send(ctx context.Context) (user.Response, error) {
	parsed, err := u.client.send(ctx, u.request)
	if err != nil {
		return user.Response{}, err
	}
	return user.Response{Response: parsed}, nil
}

// FactionRequest queries the faction section. Without an ID the API
// reports on the key owner's faction.
type FactionRequest struct {
	client  *Client
	request request
}

func (c *Client) Faction() *FactionRequest {
	return &FactionRequest{client: c, request: request{category: faction.Category}}
}

func (f *FactionRequest) ID(id int64) *FactionRequest {
	f.request.id = strconv.FormatInt(id, 10)
	return f
}

func (f *FactionRequest) Selections(selections ...faction.Selection) *FactionRequest {
	for _, s := range selections {
		f.request.selections = append(f.request.selections, s.String())
	}
	return f
}

func (f *FactionRequest) From(from time.Time) *FactionRequest {
	f.request.from = &from
	return f
}

func (f *FactionRequest) To(to time.Time) *FactionRequest {
	f.request.to = &to
	return f
}

func (f *FactionRequest) Limit(limit int) *FactionRequest {
	f.request.limit = limit
	return f
}

func (f *FactionRequest) Comment(comment string) *FactionRequest {
	f.request.comment = comment
	return f
}

func (f *FactionRequest) Send(ctx context.Context) (faction.Response, error) {
	parsed, err := f.client.send(ctx, f.request)
	if err != nil {
		return faction.Response{}, err
	}
	return faction.Response{Response: parsed}, nil
}

// TornRequest queries the torn section for city wide data. The ID
// narrows some selections to a single record, the items catalog for
// example to a single item.
type TornRequest struct {
	client  *Client
	request request
}

func (c *Client) Torn() *TornRequest {
	return &TornRequest{client: c, request: request{category: torn.Category}}
}

func (t *TornRequest) ID(id int64) *TornRequest {
	t.request.id = strconv.FormatInt(id, 10)
	return t
}

func (t *TornRequest) Selections(selections ...torn.Selection) *TornRequest {
	for _, s := range selections {
		t.request.selections = append(t.request.selections, s.String())
	}
	return t
}

func (t *TornRequest) From(from time.Time) *TornRequest {
	t.request.from = &from
	return t
}

func (t *TornRequest) To(to time.Time) *TornRequest {
	t.request.to = &to
	return t
}

func (t *TornRequest) Limit(limit int) *TornRequest {
	t.request.limit = limit
	return t
}

func (t *TornRequest) Comment(comment string) *TornRequest {
	t.request.comment = comment
	return t
}

func (t *TornRequest) Send(ctx context.Context) (torn.Response, error) {
	parsed, err := t.client.send(ctx, t.request)
	if err != nil {
		return torn.Response{}, err
	}
	return torn.Response{Response: parsed}, nil
}

// MarketRequest queries the market section. The ID names the item the
// bazaar and itemmarket selections list offers for.
type MarketRequest struct {
	client  *Client
	request request
}

func (c *Client) Market() *MarketRequest {
	return &MarketRequest{client: c, request: request{category: market.Category}}
}

func (m *MarketRequest) ID(id int64) *MarketRequest {
	m.request.id = strconv.FormatInt(id, 10)
	return m
}

func (m *MarketRequest) Selections(selections ...market.Selection) *MarketRequest {
	for _, s := range selections {
		m.request.selections = append(m.request.selections, s.String())
	}
	return m
}

func (m *MarketRequest) Comment(comment string) *MarketRequest {
	m.request.comment = comment
	return m
}

func (m *MarketRequest) Send(ctx context.Context) (market.Response, error) {
	parsed, err := m.client.send(ctx, m.request)
	if err != nil {
		return market.Response{}, err
	}
	return market.Response{Response: parsed}, nil
}

// KeyRequest queries the key section, which reports on the key making
// the request.
type KeyRequest struct {
	client  *Client
	request request
}

func (c *Client) Key() *KeyRequest {
	return &KeyRequest{client: c, request: request{category: key.Category}}
}

func (k *KeyRequest) Selections(selections ...key.Selection) *KeyRequest {
	for _, s := range selections {
		k.request.selections = append(k.request.selections, s.String())
	}
	return k
}

func (k *KeyRequest) Comment(comment string) *KeyRequest {
	k.request.comment = comment
	return k
}

func (k *KeyRequest) Send(ctx context.Context) (key.Response, error) {
	parsed, err := k.client.send(ctx, k.request)
	if err != nil {
		return key.Response{}, err
	}
	return key.Response{Response: parsed}, nil
}
