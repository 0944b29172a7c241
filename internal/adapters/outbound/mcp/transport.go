package mcp

import (
	"fmt"
	"io"
	"net/url"
	"os/exec"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	stdioSchemePrefix = "stdio://"
	sseSchemePrefix   = "sse://"
	httpHintType      = "http"
	sseHintType       = "sse"
)

// transportBuilder is overridden in tests to connect to in-memory servers.
var transportBuilder = buildTransport

// buildTransport turns a server spec into an MCP client transport:
//
//	stdio://<command> [args]  child process over stdin/stdout (also the default for bare commands)
//	sse://host/path           SSE, https assumed when no scheme is given
//	http+sse://host/path      SSE over http
//	http+stream://host/path   streamable HTTP (also http, json and streamable hints)
//	http(s)://host/path       streamable HTTP
//
// stderr receives the child process stderr for stdio transports.
func buildTransport(spec string, stderr io.Writer) (mcpsdk.Transport, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("transport spec is empty")
	}

	lowered := strings.ToLower(spec)
	switch {
	case strings.HasPrefix(lowered, stdioSchemePrefix):
		return buildStdioTransport(spec[len(stdioSchemePrefix):], stderr)
	case strings.HasPrefix(lowered, sseSchemePrefix):
		endpoint, err := normalizeHTTPURL(spec[len(sseSchemePrefix):], true)
		if err != nil {
			return nil, fmt.Errorf("invalid SSE endpoint: %w", err)
		}
		return &mcpsdk.SSEClientTransport{Endpoint: endpoint}, nil
	}

	kind, endpoint, matched, err := parseHTTPFamilySpec(spec)
	if err != nil {
		return nil, err
	}
	if matched {
		if kind == sseHintType {
			return &mcpsdk.SSEClientTransport{Endpoint: endpoint}, nil
		}
		return &mcpsdk.StreamableClientTransport{Endpoint: endpoint}, nil
	}

	if strings.HasPrefix(lowered, "http://") || strings.HasPrefix(lowered, "https://") {
		endpoint, err := normalizeHTTPURL(spec, false)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP endpoint: %w", err)
		}
		return &mcpsdk.StreamableClientTransport{Endpoint: endpoint}, nil
	}

	return buildStdioTransport(spec, stderr)
}

func buildStdioTransport(cmdSpec string, stderr io.Writer) (mcpsdk.Transport, error) {
	parts := strings.Fields(cmdSpec)
	if len(parts) == 0 {
		return nil, fmt.Errorf("stdio command is empty")
	}
	// #nosec G204 -- the command comes from MCP_SERVER configuration
	command := exec.Command(parts[0], parts[1:]...)
	command.Stderr = stderr
	return &mcpsdk.CommandTransport{Command: command}, nil
}

// parseHTTPFamilySpec handles "http+<hint>://" and "https+<hint>://" specs.
func parseHTTPFamilySpec(spec string) (kind string, endpoint string, matched bool, err error) {
	u, parseErr := url.Parse(spec)
	if parseErr != nil || u.Scheme == "" {
		return "", "", false, nil
	}
	base, hint, hasHint := strings.Cut(strings.ToLower(u.Scheme), "+")
	if !hasHint || (base != "http" && base != "https") {
		return "", "", false, nil
	}

	switch hint {
	case "sse":
		kind = sseHintType
	case "stream", "streamable", "http", "json":
		kind = httpHintType
	default:
		return "", "", true, fmt.Errorf("unsupported HTTP transport hint %q", hint)
	}

	normalized := *u
	normalized.Scheme = base
	endpoint, err = normalizeHTTPURL(normalized.String(), false)
	if err != nil {
		return "", "", true, fmt.Errorf("invalid %s endpoint: %w", kind, err)
	}
	return kind, endpoint, true, nil
}

func normalizeHTTPURL(raw string, allowSchemeGuess bool) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("endpoint is empty")
	}
	if allowSchemeGuess && !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("missing host")
	}
	parsed.Scheme = scheme
	return parsed.String(), nil
}
