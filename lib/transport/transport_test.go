// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vessel-sh/vessel/lib/codec"
	"github.com/vessel-sh/vessel/lib/result"
	"github.com/vessel-sh/vessel/lib/settings"
	"github.com/vessel-sh/vessel/lib/sign"
)

// renderFor renders an echo result the way the dispatcher would,
// with a formatter that is never expected to run.
func renderFor(res result.Result[echoReply]) string {
	return result.Format(res, func(echoReply) string { return "unexpected success" })
}

// echoParams / echoReply are the argument and result types of the test
// endpoint. Shapes mirror real wire types: integer struct keys.
type echoParams struct {
	Text string `cbor:"1,keyasint"`
}

type echoReply struct {
	Text string `cbor:"2,keyasint"`
}

var echoCall = NewCall[echoParams, echoReply]("echo")

// configured returns settings with credentials present, pointing at the
// default address. Tests swap the transport, so the address is inert.
func configured() *settings.Settings {
	loaded := settings.Default()
	loaded.AuthKey = "test-secret"
	loaded.InstallID = "d3a56a36-0f6f-4b8c-9b8e-52a6cf8c3f21"
	return loaded
}

// testServerTransport rewrites every request to target an httptest
// server, regardless of the URL the client composed.
type testServerTransport struct {
	server *httptest.Server
}

func (transport *testServerTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	request.URL.Scheme = "http"
	request.URL.Host = transport.server.Listener.Addr().String()
	return http.DefaultTransport.RoundTrip(request)
}

// testClient builds a Client whose calls land on handler.
func testClient(t *testing.T, loaded *settings.Settings, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewForTesting(&testServerTransport{server: server}, loaded)
}

// writeReply encodes a success envelope carrying value.
func writeReply(t *testing.T, writer http.ResponseWriter, value any) {
	t.Helper()
	raw, err := codec.Marshal(value)
	if err != nil {
		t.Fatalf("encoding reply value: %v", err)
	}
	body, err := codec.Marshal(replyEnvelope{Value: raw})
	if err != nil {
		t.Fatalf("encoding reply envelope: %v", err)
	}
	writer.Write(body)
}

// writeErrorReply encodes an error envelope carrying message.
func writeErrorReply(t *testing.T, writer http.ResponseWriter, message string) {
	t.Helper()
	body, err := codec.Marshal(replyEnvelope{Err: &message})
	if err != nil {
		t.Fatalf("encoding error envelope: %v", err)
	}
	writer.Write(body)
}

func TestInvokeSuccess(t *testing.T) {
	t.Parallel()

	client := testClient(t, configured(), http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", request.Method)
		}
		if request.URL.Path != "/echo" {
			t.Errorf("path = %s, want /echo", request.URL.Path)
		}
		var params echoParams
		raw, err := io.ReadAll(request.Body)
		if err != nil {
			t.Fatalf("reading request body: %v", err)
		}
		if err := codec.Unmarshal(raw, &params); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		writeReply(t, writer, echoReply{Text: params.Text})
	}))

	res := Invoke(context.Background(), client, echoCall, echoParams{Text: "ping"})
	value, ok := res.Value()
	if !ok {
		t.Fatalf("Invoke returned non-success: %s", res.Message())
	}
	if value.Text != "ping" {
		t.Errorf("reply text = %q, want ping", value.Text)
	}
}

func TestInvokeServerReportedError(t *testing.T) {
	t.Parallel()

	client := testClient(t, configured(), http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeErrorReply(t, writer, "module not found: demo/fibonacci")
	}))

	res := Invoke(context.Background(), client, echoCall, echoParams{Text: "ping"})
	if res.IsSuccess() {
		t.Fatal("Invoke succeeded on a server-reported error")
	}
	if res.Message() != "module not found: demo/fibonacci" {
		t.Errorf("message = %q, want the server's text verbatim", res.Message())
	}
	// Server-reported, not client-side: the rendered form must use the
	// "returned from" prefix.
	rendered := renderFor(res)
	if !strings.HasPrefix(rendered, "An error was returned from the Vessel server:") {
		t.Errorf("rendered = %q, want the server-error prefix", rendered)
	}
}

func TestInvokeNonOKStatusIsServerError(t *testing.T) {
	t.Parallel()

	client := testClient(t, configured(), http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "down for maintenance", http.StatusServiceUnavailable)
	}))

	res := Invoke(context.Background(), client, echoCall, echoParams{})
	if res.IsSuccess() {
		t.Fatal("Invoke succeeded on a 503")
	}
	if !strings.Contains(res.Message(), "503") {
		t.Errorf("message = %q, want the status line with 503", res.Message())
	}
	rendered := renderFor(res)
	if !strings.HasPrefix(rendered, "An error was returned from the Vessel server:") {
		t.Errorf("rendered = %q, want the server-error prefix", rendered)
	}
}

func TestInvokeGarbageBodyIsDecodeClientError(t *testing.T) {
	t.Parallel()

	client := testClient(t, configured(), http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte("this is not CBOR at all -------"))
	}))

	res := Invoke(context.Background(), client, echoCall, echoParams{})
	if res.IsSuccess() {
		t.Fatal("Invoke succeeded on a garbage body")
	}
	if !strings.HasPrefix(res.Message(), "Cannot decode return value: ") {
		t.Errorf("message = %q, want the decode-failure prefix", res.Message())
	}
}

func TestInvokeTransportFaultIsClientError(t *testing.T) {
	t.Parallel()

	// A server that is already closed: every round trip fails with a
	// connection error before any HTTP response exists.
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := NewForTesting(&testServerTransport{server: server}, configured())

	res := Invoke(context.Background(), client, echoCall, echoParams{})
	if res.IsSuccess() {
		t.Fatal("Invoke succeeded against a closed server")
	}
	if !strings.HasPrefix(res.Message(), "Exception sending HTTP request: ") {
		t.Errorf("message = %q, want the transport-fault prefix", res.Message())
	}
}

func TestInvokeTLSFailureIsClientError(t *testing.T) {
	t.Parallel()

	// A TLS server reached without trusting its certificate and with
	// verification enabled: the handshake fails inside Do.
	server := httptest.NewTLSServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	loaded := configured()
	loaded.Server.Host = "127.0.0.1"
	client := &Client{
		httpClient: &http.Client{},
		baseURL:    server.URL + "/",
		authKey:    loaded.AuthKey,
	}

	res := Invoke(context.Background(), client, echoCall, echoParams{})
	if res.IsSuccess() {
		t.Fatal("Invoke succeeded despite an untrusted certificate")
	}
	if !strings.HasPrefix(res.Message(), "Exception sending HTTP request: ") {
		t.Errorf("message = %q, want the transport-fault prefix", res.Message())
	}
}

// countingTransport records round trips without performing any.
type countingTransport struct {
	calls int
}

func (transport *countingTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	transport.calls++
	return nil, context.DeadlineExceeded
}

func TestInvokeMissingCredentialsFailsFast(t *testing.T) {
	t.Parallel()

	recorder := &countingTransport{}
	loaded := settings.Default() // no AuthKey
	loaded.InstallID = "d3a56a36-0f6f-4b8c-9b8e-52a6cf8c3f21"
	client := NewForTesting(recorder, loaded)

	res := Invoke(context.Background(), client, echoCall, echoParams{})
	if res.IsSuccess() {
		t.Fatal("Invoke succeeded without credentials")
	}
	if res.Message() != MissingCredentials {
		t.Errorf("message = %q, want the fixed missing-credentials text", res.Message())
	}
	if recorder.calls != 0 {
		t.Errorf("performed %d network round trips without credentials, want 0", recorder.calls)
	}
}

// inspectingTransport captures the request for header and deadline
// assertions, then reports a transport fault so no response is needed.
type inspectingTransport struct {
	request *http.Request
}

func (transport *inspectingTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	transport.request = request
	return nil, context.DeadlineExceeded
}

func TestInvokeRequestCarriesInstallCookieAndSignature(t *testing.T) {
	t.Parallel()

	recorder := &inspectingTransport{}
	loaded := configured()
	client := NewForTesting(recorder, loaded)

	Invoke(context.Background(), client, echoCall, echoParams{Text: "ping"})
	if recorder.request == nil {
		t.Fatal("no request reached the transport")
	}

	cookie, err := recorder.request.Cookie("NSTACKINSTANCEID")
	if err != nil {
		t.Fatalf("install cookie missing: %v", err)
	}
	if cookie.Value != loaded.InstallID {
		t.Errorf("install cookie = %q, want %q", cookie.Value, loaded.InstallID)
	}

	body, err := codec.Marshal(echoParams{Text: "ping"})
	if err != nil {
		t.Fatalf("encoding expected body: %v", err)
	}
	signature := recorder.request.Header.Get(sign.HeaderSignature)
	if signature == "" {
		t.Fatal("signature header missing")
	}
	if !sign.Verify(http.MethodPost, "/echo", body, loaded.AuthKey, signature) {
		t.Error("signature does not verify over the sent method, path, and body")
	}
}

func TestInvokeOmitsCookieWithoutInstallID(t *testing.T) {
	t.Parallel()

	recorder := &inspectingTransport{}
	loaded := configured()
	loaded.InstallID = ""
	client := NewForTesting(recorder, loaded)

	Invoke(context.Background(), client, echoCall, echoParams{})
	if recorder.request == nil {
		t.Fatal("no request reached the transport")
	}
	if _, err := recorder.request.Cookie("NSTACKINSTANCEID"); err == nil {
		t.Error("install cookie present despite no configured install id")
	}
}

func TestInvokeAppliesResponseTimeout(t *testing.T) {
	t.Parallel()

	recorder := &inspectingTransport{}
	client := NewForTesting(recorder, configured())

	before := time.Now()
	Invoke(context.Background(), client, echoCall, echoParams{})
	if recorder.request == nil {
		t.Fatal("no request reached the transport")
	}

	deadline, ok := recorder.request.Context().Deadline()
	if !ok {
		t.Fatal("request context has no deadline")
	}
	remaining := deadline.Sub(before)
	if remaining > ResponseTimeout || remaining < ResponseTimeout-time.Minute {
		t.Errorf("deadline %v from now, want about %v", remaining, ResponseTimeout)
	}
}

func TestInvokeEmptyArgumentStillPosts(t *testing.T) {
	t.Parallel()

	type unit struct{}
	gcCall := NewCall[unit, []string]("gc")

	client := testClient(t, configured(), http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPost {
			t.Errorf("method = %s, want POST even for argument-less calls", request.Method)
		}
		if request.ContentLength == 0 {
			t.Error("argument-less call posted an empty body, want an encoded unit value")
		}
		writeReply(t, writer, []string{"demo/old-build"})
	}))

	res := Invoke(context.Background(), client, gcCall, unit{})
	removed, ok := res.Value()
	if !ok {
		t.Fatalf("Invoke returned non-success: %s", res.Message())
	}
	if len(removed) != 1 || removed[0] != "demo/old-build" {
		t.Errorf("removed = %v, want [demo/old-build]", removed)
	}
}
