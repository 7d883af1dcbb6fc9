// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-riot-switcher/internal/config"
	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/internal/utils"
	"github.com/MKhiriev/go-riot-switcher/models"
	"golang.org/x/net/http/httpguts"
)

// Header names of the assembled [models.AuthSession].
const (
	HeaderAuthorization   = "Authorization"
	HeaderEntitlementsJWT = "X-Riot-Entitlements-JWT"
	HeaderClientVersion   = "X-Riot-ClientVersion"
	HeaderClientPlatform  = "X-Riot-ClientPlatform"
	HeaderContentType     = "Content-Type"

	contentTypeJSON = "application/json"
)

// entitlementResponse is the local entitlement endpoint payload. The local
// service answers in camelCase; snake_case is accepted as well.
type entitlementResponse struct {
	AccessToken      string `json:"accessToken"`
	AccessTokenSnake string `json:"access_token"`
	Token            string `json:"token"`
}

func (r entitlementResponse) accessToken() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.AccessTokenSnake
}

type versionResponse struct {
	Data struct {
		RiotClientVersion      string `json:"riotClientVersion"`
		RiotClientVersionSnake string `json:"riot_client_version"`
	} `json:"data"`
}

func (r versionResponse) version() string {
	if r.Data.RiotClientVersion != "" {
		return r.Data.RiotClientVersion
	}
	return r.Data.RiotClientVersionSnake
}

type localSessionAuthenticator struct {
	lockfile LockFileReader
	local    *utils.HTTPClient
	public   *utils.HTTPClient

	localHost       string
	basicAuthUser   string
	entitlementPath string
	versionURL      string
	clientPlatform  string

	logger *logger.Logger
}

// NewSessionAuthenticator constructs the lock file based
// [SessionAuthenticator]. The local entitlement call uses a loopback client
// with certificate verification disabled; the public version lookup uses a
// regular client.
func NewSessionAuthenticator(lockfile LockFileReader, cfg config.ClientAdapter, log *logger.Logger) SessionAuthenticator {
	return &localSessionAuthenticator{
		lockfile:        lockfile,
		local:           utils.NewLoopbackHTTPClient(cfg.RequestTimeout),
		public:          utils.NewHTTPClient(cfg.RequestTimeout),
		localHost:       cfg.LocalHost,
		basicAuthUser:   cfg.BasicAuthUser,
		entitlementPath: cfg.EntitlementPath,
		versionURL:      cfg.VersionURL,
		clientPlatform:  cfg.ClientPlatform,
		logger:          log,
	}
}

func (a *localSessionAuthenticator) Authenticate(ctx context.Context) (models.AuthSession, error) {
	creds, err := a.lockfile.Locate(ctx)
	if err != nil {
		return models.AuthSession{}, err
	}

	basic := BasicAuthHeader(a.basicAuthUser, creds.Password)
	if !httpguts.ValidHeaderFieldValue(basic) {
		return models.AuthSession{}, fmt.Errorf("%w: basic authorization", ErrHeaderConstruction)
	}

	entitlement, err := a.requestEntitlement(ctx, creds.Port, basic)
	if err != nil {
		return models.AuthSession{}, err
	}

	version, err := a.requestClientVersion(ctx)
	if err != nil {
		return models.AuthSession{}, err
	}

	session, err := buildSession(entitlement.accessToken(), entitlement.Token, version, a.clientPlatform)
	if err != nil {
		return models.AuthSession{}, err
	}

	a.logger.Debug().
		Str("func", "localSessionAuthenticator.Authenticate").
		Str("subject", session.Subject).
		Str("client_version", version).
		Msg("authenticated against local client")

	return session, nil
}

func (a *localSessionAuthenticator) requestEntitlement(ctx context.Context, port int, basic string) (entitlementResponse, error) {
	url := "https://" + net.JoinHostPort(a.localHost, strconv.Itoa(port)) + a.entitlementPath

	resp, err := a.local.R().
		SetContext(ctx).
		SetHeader(HeaderAuthorization, basic).
		Get(url)
	if err != nil {
		a.logger.Err(err).Str("func", "localSessionAuthenticator.requestEntitlement").Msg("entitlement request failed")
		return entitlementResponse{}, fmt.Errorf("%w: entitlement request: %w", ErrNetworkFailure, err)
	}
	if err = mapHTTPError(resp); err != nil {
		a.logger.Warn().Str("func", "localSessionAuthenticator.requestEntitlement").Int("status", resp.StatusCode()).Msg("entitlement rejected")
		return entitlementResponse{}, err
	}

	var out entitlementResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return entitlementResponse{}, fmt.Errorf("%w: decode entitlement response: %w", ErrEncoding, err)
	}
	if out.accessToken() == "" || out.Token == "" {
		return entitlementResponse{}, fmt.Errorf("%w: entitlement response is missing tokens", ErrEncoding)
	}

	return out, nil
}

func (a *localSessionAuthenticator) requestClientVersion(ctx context.Context) (string, error) {
	resp, err := a.public.R().
		SetContext(ctx).
		Get(a.versionURL)
	if err != nil {
		a.logger.Err(err).Str("func", "localSessionAuthenticator.requestClientVersion").Msg("version request failed")
		return "", fmt.Errorf("%w: version request: %w", ErrNetworkFailure, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out versionResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("%w: decode version response: %w", ErrEncoding, err)
	}
	if out.version() == "" {
		return "", fmt.Errorf("%w: version response is missing riotClientVersion", ErrEncoding)
	}

	return out.version(), nil
}

// BasicAuthHeader returns "Basic " followed by base64 of "user:password".
func BasicAuthHeader(user, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password))
}

// buildSession assembles the canonical header set in a fixed order and
// rejects any value that is not a legal header value.
func buildSession(accessToken, entitlementJWT, clientVersion, clientPlatform string) (models.AuthSession, error) {
	headers := []models.Header{
		{Name: HeaderAuthorization, Value: "Bearer " + accessToken},
		{Name: HeaderEntitlementsJWT, Value: entitlementJWT},
		{Name: HeaderClientVersion, Value: clientVersion},
		{Name: HeaderClientPlatform, Value: clientPlatform},
		{Name: HeaderContentType, Value: contentTypeJSON},
	}
	for _, h := range headers {
		if strings.TrimSpace(h.Value) == "" || !httpguts.ValidHeaderFieldValue(h.Value) {
			return models.AuthSession{}, fmt.Errorf("%w: %s", ErrHeaderConstruction, h.Name)
		}
	}

	// Opaque tokens simply leave the subject empty.
	subject, _ := utils.SubjectFromUnverifiedJWT(accessToken)

	return models.AuthSession{Headers: headers, Subject: subject}, nil
}
