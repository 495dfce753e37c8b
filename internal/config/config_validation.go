// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. The remote store URL, its API key
// and the token signing key are required.
func (cfg *StructuredConfig) validate() error {
	if cfg.Remote.URL == "" || cfg.Remote.APIKey == "" {
		return ErrInvalidRemoteConfigs
	}

	u, err := url.Parse(cfg.Remote.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: remote url must include scheme and host", ErrInvalidRemoteConfigs)
	}

	if cfg.Remote.CommitRetryCount() < 0 || cfg.Remote.RequestTimeout < 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost must be within [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RateLimit < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
