package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/39C-wallenstein/torn-api/config"
	"go.uber.org/zap"
	"golang.org/x/net/proxy"
)

// configureProxy wires the configured proxy into the transport. A SOCKS5
// proxy takes precedence over HTTP proxies.
func configureProxy(transport *http.Transport, cfg config.Config) error {
	if cfg.SOCKS5Proxy != "" {
		return configureSOCKS5Proxy(transport, cfg.SOCKS5Proxy)
	}

	if cfg.HTTPProxy == "" && cfg.HTTPSProxy == "" {
		return nil
	}

	transport.Proxy = func(req *http.Request) (*url.URL, error) {
		return proxyURL(req, cfg)
	}

	return nil
}

func configureSOCKS5Proxy(transport *http.Transport, socks5URL string) error {
	proxyAddr, err := url.Parse(socks5URL)
	if err != nil {
		return fmt.Errorf("failed to parse socks5 proxy url: %w", err)
	}

	var auth *proxy.Auth
	if proxyAddr.User != nil {
		password, _ := proxyAddr.User.Password()
		auth = &proxy.Auth{
			User:     proxyAddr.User.Username(),
			Password: password,
		}
	}

	dialer, err := proxy.SOCKS5("tcp", proxyAddr.Host, auth, proxy.Direct)
	if err != nil {
		return fmt.Errorf("failed to create socks5 dialer: %w", err)
	}

	zap.S().Debugf("routing requests through socks5 proxy %s", maskProxyURL(socks5URL))

	if contextDialer, ok := dialer.(proxy.ContextDialer); ok {
		transport.DialContext = contextDialer.DialContext
	} else {
		transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		}
	}

	return nil
}

func proxyURL(req *http.Request, cfg config.Config) (*url.URL, error) {
	if shouldBypassProxy(req.URL.Host, cfg.NoProxy) {
		return nil, nil
	}

	var rawURL string
	if req.URL.Scheme == "https" && cfg.HTTPSProxy != "" {
		rawURL = cfg.HTTPSProxy
	} else if cfg.HTTPProxy != "" {
		rawURL = cfg.HTTPProxy
	}

	if rawURL == "" {
		return nil, nil
	}

	return url.Parse(rawURL)
}

// shouldBypassProxy reports whether host matches an entry of the comma
// separated no proxy list. Entries match exactly, as a leading-dot
// suffix, or as a parent domain; "*" matches everything.
func shouldBypassProxy(host, noProxy string) bool {
	if noProxy == "" {
		return false
	}

	hostOnly, _, err := net.SplitHostPort(host)
	if err != nil {
		hostOnly = host
	}
	hostOnly = strings.ToLower(hostOnly)

	for _, pattern := range strings.Split(noProxy, ",") {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		if pattern == "" {
			continue
		}

		if pattern == "*" || hostOnly == pattern {
			return true
		}

		if strings.HasPrefix(pattern, ".") && strings.HasSuffix(hostOnly, pattern) {
			return true
		}

		if strings.HasSuffix(hostOnly, "."+pattern) {
			return true
		}
	}

	return false
}

// maskProxyURL hides credentials in a proxy URL before it is logged.
func maskProxyURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "****")
		}
	}

	return parsed.String()
}
