package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmsadmin/src/core/domain"
	"lmsadmin/src/core/ports"
	"lmsadmin/src/infra/config"
	"lmsadmin/src/infra/repo"
)

type stubTenantRepo struct {
	tenants []domain.Tenant
	taken   map[string]bool
	nextID  int64
}

func (s *stubTenantRepo) Health(ctx context.Context) error { return nil }

func (s *stubTenantRepo) List(ctx context.Context) ([]domain.Tenant, error) {
	return s.tenants, nil
}

func (s *stubTenantRepo) Create(ctx context.Context, nt domain.NewTenant) (*domain.Tenant, error) {
	if s.taken == nil {
		s.taken = map[string]bool{}
	}
	if s.taken[nt.Domain] {
		return nil, domain.NewConflictError("domain already registered")
	}
	s.taken[nt.Domain] = true
	s.nextID++

	tenant := domain.Tenant{
		ID:           s.nextID,
		BusinessName: nt.BusinessName,
		Domain:       nt.Domain,
		Status:       nt.Status,
		CreatedAt:    time.Now().UTC(),
	}
	s.tenants = append([]domain.Tenant{tenant}, s.tenants...)
	return &tenant, nil
}

type stubAuthGateway struct {
	session *ports.AdminSession
	err     error
}

func (s *stubAuthGateway) Login(ctx context.Context, creds ports.AdminCredentials) (*ports.AdminSession, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func newTestServer(t *testing.T, auth ports.AuthGateway) *Server {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Server.ShutdownTimeout = time.Second
	cfg.Log.Level = "error"
	cfg.Storage = config.StorageConfig{
		CourseDocument: filepath.Join(dir, "courses.json"),
		ImageDir:       filepath.Join(dir, "images"),
		ImageBaseURL:   "/images",
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	courses := repo.NewCourseStore(cfg.Storage, log)

	if auth == nil {
		auth = &stubAuthGateway{session: &ports.AdminSession{Token: "t-1"}}
	}

	return New(cfg, log, Deps{
		Tenants: &stubTenantRepo{},
		Courses: courses,
		Auth:    auth,
	})
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateTenant_ValidationFailure(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/admin/tenants", `{"status":"banned"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Message, "businessName is required.")
	assert.Contains(t, body.Error.Message, "domain is required.")
	assert.Contains(t, body.Error.Message, "status must be one of")
}

func TestCreateTenant_Success(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/admin/tenants",
		`{"businessName":" Acme ","domain":"ACME.io"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data domain.Tenant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Acme", body.Data.BusinessName)
	assert.Equal(t, "acme.io", body.Data.Domain)
	assert.Equal(t, domain.TenantActive, body.Data.Status)
	assert.NotZero(t, body.Data.ID)
}

func TestCreateTenant_DuplicateDomainConflicts(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/admin/tenants",
		`{"businessName":"Acme","domain":"acme.io"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/admin/tenants",
		`{"businessName":"Other","domain":"acme.io"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListTenants_WrapsData(t *testing.T) {
	srv := newTestServer(t, nil)

	doJSON(t, srv, http.MethodPost, "/admin/tenants",
		`{"businessName":"Acme","domain":"acme.io"}`)

	rec := doJSON(t, srv, http.MethodGet, "/admin/tenants", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []domain.Tenant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "acme.io", body.Data[0].Domain)
}

func TestCreateCourse_DefaultsAndOrdering(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/admin/courses", `{"title":"First"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data domain.Course `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, domain.LevelBeginner, created.Data.Level)
	assert.Equal(t, domain.CourseDraft, created.Data.Status)
	assert.Equal(t, []string{}, created.Data.InstructorIDs)
	assert.Equal(t, created.Data.CreatedAt, created.Data.UpdatedAt)

	rec = doJSON(t, srv, http.MethodPost, "/admin/courses", `{"title":"Second"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/admin/courses", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Data []domain.Course `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 2)
	assert.Equal(t, "Second", listed.Data[0].Title)
	assert.Equal(t, "First", listed.Data[1].Title)
}

func TestCreateCourse_NoValidation(t *testing.T) {
	srv := newTestServer(t, nil)

	// An empty payload is accepted as-is; courses are not validated the
	// way tenants are.
	rec := doJSON(t, srv, http.MethodPost, "/admin/courses", `{}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUploadCourseImage(t *testing.T) {
	srv := newTestServer(t, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "banner.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/courses/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data domain.CourseImage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Data.Filename, "banner.png")
	assert.True(t, strings.HasPrefix(body.Data.URL, "/images/"))
}

func TestAdminLogin_Success(t *testing.T) {
	srv := newTestServer(t, &stubAuthGateway{session: &ports.AdminSession{Token: "jwt-123"}})

	rec := doJSON(t, srv, http.MethodPost, "/admin/login",
		`{"email":"admin@acme.io","password":"secret","tenantId":"1","businessName":"Acme"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data ports.AdminSession `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "jwt-123", body.Data.Token)
}

func TestAdminLogin_Unauthorized(t *testing.T) {
	srv := newTestServer(t, &stubAuthGateway{err: domain.NewUnauthorizedError("invalid credentials")})

	rec := doJSON(t, srv, http.MethodPost, "/admin/login",
		`{"email":"admin@acme.io","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLogin_MissingFields(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/admin/login", `{"email":"admin@acme.io"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownRouteReturnsEnvelope(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}
