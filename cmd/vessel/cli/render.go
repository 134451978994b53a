// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"

	"github.com/vessel-sh/vessel/lib/result"
	"github.com/vessel-sh/vessel/lib/settings"
	"github.com/vessel-sh/vessel/lib/transport"
)

// Connect loads the persisted settings and builds the transport client
// for one command. Settings are read exactly once here; everything the
// transport needs travels inside the returned client.
func Connect(logger *slog.Logger) (*transport.Client, error) {
	loaded, err := settings.Load()
	if err != nil {
		return nil, err
	}
	return transport.New(loaded, logger), nil
}

// Render prints a call's outcome and converts a non-success outcome
// into a handled non-zero exit. The formatter runs only on Success;
// both error variants render their fixed prefix plus the carried
// message. This is the whole of the dispatcher's success/error path.
func Render[T any](res result.Result[T], formatter func(T) string) error {
	fmt.Println(result.Format(res, formatter))
	if !res.IsSuccess() {
		return &ExitError{Code: 1}
	}
	return nil
}
