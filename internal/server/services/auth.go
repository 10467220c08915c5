// Package services contains server-side business logic. This file implements
// AuthService, which handles account registration and login and defines the
// response contract returned to the transport layer.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/cryptox"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/notifications"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
)

// Response is the uniform result of every auth operation: an HTTP-style
// status code, a caller-facing message, and, for successful logins, the
// bearer token. Collaborator error detail never appears here.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// Canonical response messages. The 401 message is shared by the "unknown
// username" and "wrong password" outcomes so the two are indistinguishable
// to a caller.
const (
	MsgRegistered         = "New user registered"
	MsgUsernameExists     = "username already exists"
	MsgInternalError      = "internal server error"
	MsgLoggedIn           = "You are logged in"
	MsgInvalidCredentials = "Please check your username and password"
)

// AuthService orchestrates registration and login over four collaborators:
// the credential store, the password hasher, the token issuer, and the
// notification dispatcher.
type AuthService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	hasher                cryptox.PasswordHasher
	dispatcher            notifications.Dispatcher
	logger                logging.Logger
	jwtSecret             []byte
	bcryptCost            int
	tokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories, the hashing
// and dispatch collaborators, and server config. The signing secret is
// captured here; nothing reads it from ambient state later.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher cryptox.PasswordHasher,
	dispatcher notifications.Dispatcher, logger logging.Logger, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                    db,
		repomanager:           m,
		hasher:                hasher,
		dispatcher:            dispatcher,
		logger:                logger.With("module", "auth_service"),
		jwtSecret:             []byte(cfg.SecretKey),
		bcryptCost:            cfg.BcryptCost,
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

func internalErrorResponse() *Response {
	return &Response{Status: 500, Message: MsgInternalError}
}

// Register creates a new account for the given identity.
//
// The sequencing is: existence check, hash, insert, createdBy backfill,
// notification dispatch. The two write steps are intentionally separate and
// not transactional: if the backfill or the dispatch fails, the inserted row
// stays behind and the caller gets a 500, so a bare retry after a 500 is
// unsafe without a fresh existence check.
//
// Every internal failure is translated into a 500 Response here; Register
// never reports an error through a second channel.
func (s *AuthService) Register(ctx context.Context, email, username, password, role string) *Response {

	repo := s.repomanager.Credentials(s.db)

	_, err := repo.FindByUsername(ctx, username)
	if err == nil {
		s.logger.Info(ctx, "username already exists", "username", username)
		return &Response{Status: 400, Message: MsgUsernameExists}
	}
	if !errors.Is(err, common.ErrNotFound) {
		s.logger.Error(ctx, "error in register: lookup failed", "error", err)
		return internalErrorResponse()
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "error in register: hashing failed", "error", err)
		return internalErrorResponse()
	}

	cred := &models.Credential{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}

	created, err := repo.Create(ctx, cred)
	if err != nil {
		s.logger.Error(ctx, "error in register: insert failed", "error", err)
		return internalErrorResponse()
	}

	if err := repo.SetCreatedBy(ctx, created.UserID, created.UserID); err != nil {
		s.logger.Error(ctx, "error in register: createdBy backfill failed", "error", err)
		return internalErrorResponse()
	}

	// Awaited, but only the error is looked at; the dispatch result body is
	// deliberately ignored.
	if err := s.dispatcher.Send(ctx, notifications.AccountRegisteredEmail(email, username)); err != nil {
		s.logger.Error(ctx, "error in register: notification dispatch failed", "error", err)
		return internalErrorResponse()
	}

	s.logger.Info(ctx, "New user registered", "username", username)
	return &Response{Status: 201, Message: MsgRegistered}
}

// Login verifies the credentials and, on success, mints a bearer token
// embedding {user_id, username, role}.
//
// Business outcomes (200, 401) come back as Response values. Infrastructure
// failure is logged and surfaced as common.ErrInternal instead of a 500
// value; the transport layer maps it at its own boundary. This asymmetry
// with Register is kept on purpose.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Response, error) {

	repo := s.repomanager.Credentials(s.db)

	cred, err := repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Info(ctx, "invalid username or password", "username", username)
			return &Response{Status: 401, Message: MsgInvalidCredentials}, nil
		}
		s.logger.Error(ctx, "error in login: lookup failed", "error", err)
		return nil, common.ErrInternal
	}

	if !s.hasher.Verify(password, cred.PasswordHash) {
		s.logger.Info(ctx, "invalid username or password", "username", username)
		return &Response{Status: 401, Message: MsgInvalidCredentials}, nil
	}

	token, err := auth.GenerateToken(auth.SessionClaim{
		UserID:   cred.UserID,
		Username: cred.Username,
		Role:     cred.Role,
	}, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "error in login: token signing failed", "error", err)
		return nil, common.ErrInternal
	}

	s.logger.Info(ctx, "user logged in", "username", username)
	return &Response{Status: 200, Message: MsgLoggedIn, Token: token}, nil
}
