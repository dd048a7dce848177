// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/staff-portal/internal/config"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/utils"
	"github.com/MKhiriev/staff-portal/models"
)

// OTPTypeEmail is the verification type of the sign-up confirmation link.
const OTPTypeEmail = "email"

const (
	signUpPath = "/auth/v1/signup"
	tokenPath  = "/auth/v1/token"
	logoutPath = "/auth/v1/logout"
	verifyPath = "/auth/v1/verify"
)

type goTrueIdentityProvider struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewIdentityProvider constructs the GoTrue REST implementation of
// [IdentityProvider]. Every request carries backendCfg.Key as the "apikey"
// header and as the default bearer token, and is bounded by
// backendCfg.RequestTimeout.
//
// Returns an error if backendCfg.URL cannot be parsed as a valid URL.
func NewIdentityProvider(backendCfg config.Backend, logger *logger.Logger) (IdentityProvider, error) {
	client, err := utils.NewBackendClient(backendCfg.URL, backendCfg.Key, backendCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("identity provider: %w", err)
	}

	return &goTrueIdentityProvider{client: client, logger: logger}, nil
}

type signUpRequest struct {
	Email    string                 `json:"email"`
	Password string                 `json:"password"`
	Data     models.AccountMetadata `json:"data"`
}

// signUpResponse covers both provider answers: a bare user object when
// email confirmation is required, and a full session when it is not.
type signUpResponse struct {
	models.Account
	AccessToken string          `json:"access_token"`
	User        *models.Account `json:"user"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
	Type  string `json:"type"`
}

// SignUp implements [IdentityProvider]. It POSTs the credentials and
// metadata to POST /auth/v1/signup.
func (g *goTrueIdentityProvider) SignUp(ctx context.Context, email, password string, metadata models.AccountMetadata) (models.Account, error) {
	var result signUpResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(signUpRequest{Email: email, Password: password, Data: metadata}).
		SetResult(&result).
		Post(signUpPath)
	if err != nil {
		return models.Account{}, fmt.Errorf("sign up request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	if result.User != nil && !result.User.IsEmpty() {
		return *result.User, nil
	}
	if !result.Account.IsEmpty() {
		return result.Account, nil
	}
	if result.AccessToken != "" {
		if id, err := utils.AccountIDFromAccessToken(result.AccessToken); err == nil {
			return models.Account{ID: id, Email: email}, nil
		}
	}

	g.logger.Debug().Str("email", email).Msg("sign up returned no user")
	return models.Account{}, nil
}

// SignIn implements [IdentityProvider]. It POSTs the credentials to
// POST /auth/v1/token?grant_type=password. When the response body lacks the
// user id it is taken from the "sub" claim of the access token.
func (g *goTrueIdentityProvider) SignIn(ctx context.Context, email, password string) (models.AuthSession, error) {
	var session models.AuthSession

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(credentialsRequest{Email: email, Password: password}).
		SetResult(&session).
		Post(tokenPath)
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthSession{}, err
	}

	if session.User.IsEmpty() {
		id, err := utils.AccountIDFromAccessToken(session.AccessToken)
		if err != nil {
			return models.AuthSession{}, fmt.Errorf("sign in returned no user: %w", err)
		}
		session.User.ID = id
		if session.User.Email == "" {
			session.User.Email = email
		}
	}

	return session, nil
}

// SignOut implements [IdentityProvider]. It POSTs to POST /auth/v1/logout
// authorised with the user's access token instead of the API key.
func (g *goTrueIdentityProvider) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return errors.New("sign out: empty access token")
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Post(logoutPath)
	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}

	return mapHTTPError(resp)
}

// VerifyOTP implements [IdentityProvider]. It POSTs the token to
// POST /auth/v1/verify.
func (g *goTrueIdentityProvider) VerifyOTP(ctx context.Context, email, token, otpType string) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(verifyRequest{Email: email, Token: token, Type: otpType}).
		Post(verifyPath)
	if err != nil {
		return fmt.Errorf("verify otp request: %w", err)
	}

	return mapHTTPError(resp)
}
