// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-bff/internal/config"
	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/utils"
	"github.com/MKhiriev/go-user-bff/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Header names and values of the PostgREST-style wire protocol.
const (
	HeaderAPIKey        = "apikey"
	HeaderTransactionID = "Transaction-Id"
	HeaderPrefer        = "Prefer"

	PreferRepresentation = "return=representation"
	PreferCommit         = "tx=commit"
)

// Filter is a single "column=eq.value" query condition.
type Filter struct {
	Column string
	Value  string
}

// Eq builds an equality filter.
func Eq(column, value string) Filter {
	return Filter{Column: column, Value: value}
}

type httpRemoteStore struct {
	client   *utils.HTTPClient
	resource string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs the HTTP implementation of [RemoteStore].
// It normalises and validates remoteCfg.URL, joins it with RESTPath, and
// configures the underlying client with the API key header and the per-call
// timeout.
//
// Returns an error if the URL is empty or cannot be parsed.
func NewHTTPRemoteStore(remoteCfg config.Remote, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(remoteCfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote store url: %w", err)
	}

	restPath := "/" + strings.Trim(remoteCfg.RESTPath, "/")
	if restPath == "/" {
		restPath = ""
	}

	client := utils.NewHTTPClient(baseURL+restPath, remoteCfg.RequestTimeout, map[string]string{
		HeaderAPIKey: remoteCfg.APIKey,
	})

	return &httpRemoteStore{
		client:   client,
		resource: strings.Trim(remoteCfg.Resource, "/"),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [RemoteStore]. GET /<resource>?<column>=eq.<value>...
func (h *httpRemoteStore) List(ctx context.Context, filters ...Filter) (Response, error) {
	req := h.client.R()
	for _, f := range filters {
		req.SetQueryParam(f.Column, "eq."+f.Value)
	}

	return h.do(ctx, req, http.MethodGet, h.collectionPath())
}

// GetByID implements [RemoteStore]. GET /<resource>?id=eq.<id>
func (h *httpRemoteStore) GetByID(ctx context.Context, id uuid.UUID) (Response, error) {
	return h.List(ctx, Eq("id", id.String()))
}

// Insert implements [RemoteStore]. POST /<resource> tagged with the
// transaction handle and "Prefer: return=representation".
func (h *httpRemoteStore) Insert(ctx context.Context, tx models.TransactionHandle, entity any) (Response, error) {
	req := h.client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader(HeaderTransactionID, tx.ID).
		SetHeader(HeaderPrefer, PreferRepresentation).
		SetBody(entity)

	return h.do(ctx, req, http.MethodPost, h.collectionPath())
}

// Patch implements [RemoteStore]. PATCH /<resource>?id=eq.<id> tagged with
// the transaction handle, asking for the updated representation.
func (h *httpRemoteStore) Patch(ctx context.Context, tx models.TransactionHandle, id uuid.UUID, fields any) (Response, error) {
	req := h.client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader(HeaderTransactionID, tx.ID).
		SetQueryParam("id", "eq."+id.String()).
		SetBody(fields)
	// two Prefer lines, not one comma-joined value
	req.Header.Add(HeaderPrefer, PreferCommit)
	req.Header.Add(HeaderPrefer, PreferRepresentation)

	return h.do(ctx, req, http.MethodPatch, h.collectionPath())
}

// Remove implements [RemoteStore]. DELETE /<resource>?id=eq.<id> tagged with
// the transaction handle.
func (h *httpRemoteStore) Remove(ctx context.Context, tx models.TransactionHandle, id uuid.UUID) (Response, error) {
	req := h.client.R().
		SetHeader(HeaderTransactionID, tx.ID).
		SetHeader(HeaderPrefer, PreferCommit).
		SetQueryParam("id", "eq."+id.String())

	return h.do(ctx, req, http.MethodDelete, h.collectionPath())
}

// RPC implements [RemoteStore]. POST /rpc/<name> with a JSON payload;
// a nil payload is sent as "{}".
func (h *httpRemoteStore) RPC(ctx context.Context, name string, payload any) (Response, error) {
	if payload == nil {
		payload = struct{}{}
	}

	req := h.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload)

	return h.do(ctx, req, http.MethodPost, "/rpc/"+url.PathEscape(name))
}

func (h *httpRemoteStore) collectionPath() string {
	return "/" + h.resource
}

func (h *httpRemoteStore) do(ctx context.Context, req *resty.Request, method, path string) (Response, error) {
	start := time.Now()
	resp, err := req.SetContext(ctx).Execute(method, path)
	duration := time.Since(start)

	if err != nil {
		h.logger.Debug().
			Err(err).
			Str("method", method).
			Str("path", path).
			Dur("duration", duration).
			Msg("remote store call failed")
		return Response{}, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", duration).
		Msg("remote store call")

	response := Response{StatusCode: resp.StatusCode(), Body: resp.Body()}
	if err = mapHTTPError(resp); err != nil {
		return response, err
	}

	return response, nil
}
