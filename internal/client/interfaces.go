// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Prompter reads interactive input. Password input is masked.
type Prompter interface {
	Password(ctx context.Context, label string) (string, error)
	Text(ctx context.Context, label, initial string) (string, error)
}

// Clipboard is the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}
