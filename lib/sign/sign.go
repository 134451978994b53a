// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

// Package sign computes the request signature the Vessel server's auth
// scheme requires. The signature is a keyed BLAKE3 MAC over the parts
// of the request the server replays on verification: method, URL path,
// and body. Signing is deterministic given its inputs — the same
// request signed with the same secret always carries the same header.
package sign

import (
	"encoding/hex"
	"net/http"

	"github.com/zeebo/blake3"
)

// Signature headers attached to every authenticated request. These are
// protocol constants; changing them breaks every deployed server.
const (
	// HeaderSignature carries the hex-encoded MAC.
	HeaderSignature = "X-Vessel-Signature"

	// HeaderScheme names the MAC construction so the scheme can be
	// rotated without an ambiguous transition window.
	HeaderScheme = "X-Vessel-Signature-Scheme"

	// Scheme is the only construction this client emits.
	Scheme = "blake3-keyed-v1"
)

// keyContext is the BLAKE3 key-derivation context separating request
// MACs from any other use of the same auth secret. Fixed constant;
// changing it invalidates every existing secret.
const keyContext = "vessel.sign.request.v1"

// Request signs request in place. body must be the exact bytes of the
// request's body; the caller passes them separately because the
// request's Body reader must stay unread for the HTTP round trip.
// Signing must be the last mutation before dispatch — the MAC covers
// the method and path as sent.
func Request(request *http.Request, body []byte, secret string) {
	request.Header.Set(HeaderScheme, Scheme)
	request.Header.Set(HeaderSignature, hex.EncodeToString(mac(request.Method, request.URL.Path, body, secret)))
}

// Verify recomputes the MAC for the given request parts and compares it
// to signatureHex. Used by tests standing in for the server; the real
// verification lives server-side.
func Verify(method, path string, body []byte, secret, signatureHex string) bool {
	return hex.EncodeToString(mac(method, path, body, secret)) == signatureHex
}

// mac computes the keyed MAC over method, path, and body. Each part is
// length-prefix-free but separated by a byte (0x00) that cannot appear
// in a method or URL path, so distinct part boundaries cannot collide.
func mac(method, path string, body []byte, secret string) []byte {
	var key [32]byte
	blake3.DeriveKey(keyContext, []byte(secret), key[:])

	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		// NewKeyed only fails for a key that is not 32 bytes.
		panic("sign: BLAKE3 keyed MAC initialization failed: " + err.Error())
	}
	hasher.Write([]byte(method))
	hasher.Write([]byte{0})
	hasher.Write([]byte(path))
	hasher.Write([]byte{0})
	hasher.Write(body)
	return hasher.Sum(nil)
}
