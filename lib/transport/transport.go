// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/vessel-sh/vessel/lib/codec"
	"github.com/vessel-sh/vessel/lib/result"
	"github.com/vessel-sh/vessel/lib/settings"
	"github.com/vessel-sh/vessel/lib/sign"
)

// ResponseTimeout bounds one full call round trip. Remote operations
// may be long-running builds, so this deliberately overrides the much
// shorter ambient HTTP client defaults.
const ResponseTimeout = 15 * time.Minute

// installCookieName is the cookie carrying the install identifier.
// Protocol constant shared with the server.
const installCookieName = "NSTACKINSTANCEID"

// MissingCredentials is the fixed message returned when no auth secret
// is configured. Returned before any network I/O: malformed local state
// must never generate a round trip.
const MissingCredentials = "Missing or invalid credentials. Please run 'vessel server set' to configure your connection."

// Call pairs a remote endpoint name with the argument type it accepts
// and the result type it returns. Descriptors are package-level
// constants defined once per operation (see lib/api); the name is
// stable across interoperating client and server versions and is never
// derived from user input.
type Call[A, B any] struct {
	// Name is the endpoint path segment under the server base URL.
	Name string
}

// NewCall returns the descriptor for one remote operation.
func NewCall[A, B any](name string) Call[A, B] {
	return Call[A, B]{Name: name}
}

// Client executes calls against one Vessel server. Constructed once per
// process invocation; the settings it captures are immutable for the
// life of the process. Safe to reuse across sequential calls — the CLI
// never issues two concurrently.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authKey    string
	installID  string
}

// New builds a Client from loaded settings. When the
// danger_skip_tls_verify setting is enabled, certificate validation is
// disabled for all calls and a warning is logged so the weakness is
// visible on every invocation, not buried in a config file.
func New(loaded *settings.Settings, logger *slog.Logger) *Client {
	httpTransport := http.DefaultTransport.(*http.Transport).Clone()
	if loaded.DangerSkipTLSVerify {
		httpTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		logger.Warn("TLS certificate validation is disabled (danger_skip_tls_verify); the server's identity is not verified",
			"server", loaded.BaseURL())
	}
	return &Client{
		httpClient: &http.Client{Transport: httpTransport},
		baseURL:    loaded.BaseURL(),
		authKey:    loaded.AuthKey,
		installID:  loaded.InstallID,
	}
}

// NewForTesting builds a Client with a custom round tripper. Tests use
// this to point calls at an httptest server or at a recording double.
func NewForTesting(roundTripper http.RoundTripper, loaded *settings.Settings) *Client {
	return &Client{
		httpClient: &http.Client{Transport: roundTripper},
		baseURL:    loaded.BaseURL(),
		authKey:    loaded.AuthKey,
		installID:  loaded.InstallID,
	}
}

// replyEnvelope is the wire shape of a 200 response body: either the
// server-reported error text or the raw encoded result value. Integer
// keys, like every wire type.
type replyEnvelope struct {
	Err   *string          `cbor:"1,keyasint,omitempty"`
	Value codec.RawMessage `cbor:"2,keyasint,omitempty"`
}

// Invoke executes one remote call and unifies every failure mode into
// the returned Result. It never panics and never reports failure
// through any channel other than the Result: transport faults
// (connection refused, TLS, DNS, the 15-minute timeout) become
// ClientError, undecodable responses become ClientError, and anything
// the server itself reported becomes ServerError.
//
// A package-level function rather than a method because Go methods
// cannot introduce type parameters.
func Invoke[A, B any](ctx context.Context, client *Client, call Call[A, B], argument A) result.Result[B] {
	if client.authKey == "" {
		return result.ClientError[B](MissingCredentials)
	}

	body, err := codec.Marshal(argument)
	if err != nil {
		return result.ClientError[B]("Cannot encode argument: " + err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, ResponseTimeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+call.Name, bytes.NewReader(body))
	if err != nil {
		return result.ClientError[B]("Exception sending HTTP request: " + err.Error())
	}
	request.Header.Set("Content-Type", "application/cbor")
	if client.installID != "" {
		request.AddCookie(&http.Cookie{Name: installCookieName, Value: client.installID})
	}
	// Signing is the last mutation before dispatch: the MAC covers the
	// method, path, and body exactly as sent.
	sign.Request(request, body, client.authKey)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return result.ClientError[B]("Exception sending HTTP request: " + err.Error())
	}
	defer response.Body.Close()

	// The business-level success/failure distinction lives inside the
	// 200 body. Any other status is the server's own fatal or protocol
	// error; its status line is the whole message.
	if response.StatusCode != http.StatusOK {
		return result.ServerError[B](response.Status)
	}

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return result.ClientError[B]("Exception sending HTTP request: " + err.Error())
	}

	var reply replyEnvelope
	if err := codec.Unmarshal(responseBody, &reply); err != nil {
		return result.ClientError[B]("Cannot decode return value: " + err.Error())
	}
	if reply.Err != nil {
		return result.ServerError[B](*reply.Err)
	}

	var value B
	if err := codec.Unmarshal(reply.Value, &value); err != nil {
		return result.ClientError[B]("Cannot decode return value: " + err.Error())
	}
	return result.Success(value)
}
