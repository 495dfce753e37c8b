// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound client of the REST datastore that
// holds user records.
//
// The primary abstraction is [RemoteStore], which decouples the repository
// from the underlying HTTP protocol. The package ships a PostgREST-style
// implementation ([NewHTTPRemoteStore]) built on resty.
//
// No retries are performed here: a single failed call is reported upward
// immediately. Transport failures wrap [ErrTransport]; responses with a
// non-2xx status are returned as [*StatusError], which matches
// [ErrRemoteStatus] under [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-bff/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines the calls the repository makes against the remote
// collection and its transaction-control RPC endpoints. Every call attaches
// the API key header.
type RemoteStore interface {
	// List fetches the rows of the collection matching all filters
	// (no filters means every row).
	List(ctx context.Context, filters ...Filter) (Response, error)

	// GetByID fetches the rows whose id equals id (zero or one row).
	GetByID(ctx context.Context, id uuid.UUID) (Response, error)

	// Insert creates entity inside transaction tx and asks the store to
	// return the created representation.
	Insert(ctx context.Context, tx models.TransactionHandle, entity any) (Response, error)

	// Patch applies fields to the row identified by id inside transaction tx
	// and asks the store to return the updated representation.
	Patch(ctx context.Context, tx models.TransactionHandle, id uuid.UUID, fields any) (Response, error)

	// Remove deletes the row identified by id inside transaction tx.
	Remove(ctx context.Context, tx models.TransactionHandle, id uuid.UUID) (Response, error)

	// RPC invokes the named remote procedure with a JSON payload.
	RPC(ctx context.Context, name string, payload any) (Response, error)
}

// Response is the raw outcome of a successful remote call.
type Response struct {
	StatusCode int
	Body       []byte
}
