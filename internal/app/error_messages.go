// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings shared by the HTTP
// handlers and middleware.
//
// For server-side failures the wrapped error is logged and only the message
// reaches the response body.
package app

const (
	// MsgUserNotFound is returned when the requested user does not exist.
	MsgUserNotFound = "user not found"

	// MsgDatabaseError is returned for any failure of the remote user store,
	// including a commit whose outcome could not be confirmed.
	MsgDatabaseError = "database error"

	// MsgPasswordError is returned when a password could not be hashed or
	// verified.
	MsgPasswordError = "password processing failed"

	// MsgMalformedResponse is returned when the remote store answered with a
	// body that does not match the user schema.
	MsgMalformedResponse = "unexpected response from the user store"

	MsgSignedOut = "Successfully signed out"
)
