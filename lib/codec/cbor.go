// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer encoding,
// no indefinite-length items. The same logical value always encodes to
// the same bytes, so identical requests are byte-identical on the wire
// and indistinguishable to server-side deduplication and logging.
var encMode cbor.EncMode

// decMode is the CBOR decoder. Unknown fields are ignored so an older
// client can decode replies from a newer server.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// The wire protocol only ever uses string or integer map keys.
		// When the decode target is any (e.g. free-form log metadata),
		// pick map[string]any rather than the CBOR default
		// map[interface{}]interface{}, which nothing downstream can
		// consume. Struct field decoding is unaffected.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v. The returned error carries the
// decoder's diagnostic text; it is never a panic.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// RawMessage is a raw encoded CBOR value. The reply envelope uses it to
// delay decoding the call-specific payload until the call's result type
// is known. Type alias so consumers import only lib/codec, not
// fxamacker/cbor directly.
type RawMessage = cbor.RawMessage
