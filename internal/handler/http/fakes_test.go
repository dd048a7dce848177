// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/staff-portal/internal/config"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/service"
	"github.com/MKhiriev/staff-portal/internal/session"
	"github.com/MKhiriev/staff-portal/models"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	register     func(ctx context.Context, form models.RegistrationForm) error
	login        func(ctx context.Context, credentials models.Credentials) (models.SessionState, error)
	adminLogin   func(ctx context.Context, credentials models.Credentials) (models.SessionState, error)
	confirmEmail func(ctx context.Context, email, token string) error
	logout       func(ctx context.Context, state models.SessionState)
}

func (f *fakeAuthService) Register(ctx context.Context, form models.RegistrationForm) error {
	if f.register == nil {
		return nil
	}
	return f.register(ctx, form)
}

func (f *fakeAuthService) Login(ctx context.Context, credentials models.Credentials) (models.SessionState, error) {
	if f.login == nil {
		return models.SessionState{}, service.ErrLoginFailed
	}
	return f.login(ctx, credentials)
}

func (f *fakeAuthService) AdminLogin(ctx context.Context, credentials models.Credentials) (models.SessionState, error) {
	if f.adminLogin == nil {
		return models.SessionState{}, service.ErrLoginFailed
	}
	return f.adminLogin(ctx, credentials)
}

func (f *fakeAuthService) ConfirmEmail(ctx context.Context, email, token string) error {
	if f.confirmEmail == nil {
		return nil
	}
	return f.confirmEmail(ctx, email, token)
}

func (f *fakeAuthService) Logout(ctx context.Context, state models.SessionState) {
	if f.logout != nil {
		f.logout(ctx, state)
	}
}

type fakeProfileService struct {
	getOwnProfessional func(ctx context.Context, id string) (*models.ProfessionalRecord, error)
	updateOwnProfile   func(ctx context.Context, state models.SessionState, form models.ProfileForm) (models.SessionState, error)
	saveProfessional   func(ctx context.Context, id string, form models.ProfessionalForm) (bool, error)
}

func (f *fakeProfileService) GetOwnProfessional(ctx context.Context, id string) (*models.ProfessionalRecord, error) {
	if f.getOwnProfessional == nil {
		return nil, nil
	}
	return f.getOwnProfessional(ctx, id)
}

func (f *fakeProfileService) UpdateOwnProfile(ctx context.Context, state models.SessionState, form models.ProfileForm) (models.SessionState, error) {
	if f.updateOwnProfile == nil {
		return state, nil
	}
	return f.updateOwnProfile(ctx, state, form)
}

func (f *fakeProfileService) SaveProfessional(ctx context.Context, id string, form models.ProfessionalForm) (bool, error) {
	if f.saveProfessional == nil {
		return false, nil
	}
	return f.saveProfessional(ctx, id, form)
}

type fakeAdminService struct {
	requireAdmin       func(ctx context.Context, id string) error
	listProfessionals  func(ctx context.Context) []models.ProfessionalView
	editProfessional   func(ctx context.Context, targetID string, form models.AdminEditForm) error
	deleteProfessional func(ctx context.Context, targetID string) error
}

func (f *fakeAdminService) RequireAdmin(ctx context.Context, id string) error {
	if f.requireAdmin == nil {
		return service.ErrAccessDenied
	}
	return f.requireAdmin(ctx, id)
}

func (f *fakeAdminService) ListProfessionals(ctx context.Context) []models.ProfessionalView {
	if f.listProfessionals == nil {
		return []models.ProfessionalView{}
	}
	return f.listProfessionals(ctx)
}

func (f *fakeAdminService) EditProfessional(ctx context.Context, targetID string, form models.AdminEditForm) error {
	if f.editProfessional == nil {
		return nil
	}
	return f.editProfessional(ctx, targetID, form)
}

func (f *fakeAdminService) DeleteProfessional(ctx context.Context, targetID string) error {
	if f.deleteProfessional == nil {
		return nil
	}
	return f.deleteProfessional(ctx, targetID)
}

func (f *fakeAdminService) SetAdmin(context.Context, string, bool) error {
	return nil
}

type fakeVersionService struct {
	version string
}

func (f *fakeVersionService) Version(context.Context) string {
	return f.version
}

// testPortal bundles the router with the fakes behind it.
type testPortal struct {
	router   http.Handler
	sessions *session.Manager
	auth     *fakeAuthService
	profile  *fakeProfileService
	admin    *fakeAdminService
}

func newTestPortal(t *testing.T) *testPortal {
	t.Helper()

	p := &testPortal{
		auth:    &fakeAuthService{},
		profile: &fakeProfileService{},
		admin:   &fakeAdminService{},
	}
	p.sessions = session.NewManager(session.NewMemoryStore(), config.Session{MaxAge: time.Hour}, "test-secret", logger.Nop())

	services := &service.Services{
		AuthService:    p.auth,
		ProfileService: p.profile,
		AdminService:   p.admin,
		VersionService: &fakeVersionService{version: "1.2.3"},
	}
	p.router = NewHandler(services, p.sessions, logger.Nop()).Init()

	return p
}

// browser replays the cookies it received, keeping the last one per name.
type browser struct {
	t       *testing.T
	portal  *testPortal
	cookies map[string]*http.Cookie
}

func (p *testPortal) browser(t *testing.T) *browser {
	return &browser{t: t, portal: p, cookies: map[string]*http.Cookie{}}
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, target, nil)
}

func (b *browser) post(target string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return b.do(http.MethodPost, target, form)
}

func (b *browser) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	b.portal.router.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}

	return rec
}

// follow asserts a redirect to location and returns the page it points to.
func (b *browser) follow(rec *httptest.ResponseRecorder, location string) *httptest.ResponseRecorder {
	b.t.Helper()

	require.Equal(b.t, http.StatusFound, rec.Code)
	require.Equal(b.t, location, rec.Header().Get("Location"))

	return b.get(location)
}

// signIn logs the browser in as state through POST /login.
func (b *browser) signIn(state models.SessionState) {
	b.t.Helper()

	previous := b.portal.auth.login
	b.portal.auth.login = func(context.Context, models.Credentials) (models.SessionState, error) {
		return state, nil
	}
	defer func() { b.portal.auth.login = previous }()

	rec := b.post("/login", url.Values{"email": {state.Email}, "password": {"pw"}})
	require.Equal(b.t, http.StatusFound, rec.Code)
}

func employee() models.SessionState {
	return models.SessionState{
		ID:          "user-1",
		Email:       "ana@example.com",
		Name:        "Ana",
		NationalID:  "123",
		Confirmed:   true,
		AccessToken: "access-token",
	}
}

func administrator() models.SessionState {
	state := employee()
	state.ID = "admin-1"
	state.Email = "boss@example.com"
	state.Name = "Boss"
	state.IsAdmin = true
	return state
}
