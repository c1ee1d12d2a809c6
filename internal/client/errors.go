package client

import "errors"

var (
	// ErrPasswordMismatch is returned by change-pwd when the confirmation
	// differs from the new password.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrClipboardUnavailable is returned by view --copy when the system has
	// no usable clipboard.
	ErrClipboardUnavailable = errors.New("clipboard is not available on this system")
)
