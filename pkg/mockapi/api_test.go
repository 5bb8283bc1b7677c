package mockapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wintryx/progressmaker/pkg/apierror"
	"github.com/wintryx/progressmaker/pkg/dashboard"
	"github.com/wintryx/progressmaker/pkg/forms"
	"github.com/wintryx/progressmaker/pkg/logger"
	"github.com/wintryx/progressmaker/pkg/mockapi"
)

func newAPI(t *testing.T, opts ...mockapi.Option) *mockapi.API {
	t.Helper()

	api, err := mockapi.New(append([]mockapi.Option{
		mockapi.WithLatency(0),
		mockapi.WithLogger(logger.Discard()),
	}, opts...)...)
	require.NoError(t, err)
	return api
}

func serve(t *testing.T, h http.Handler, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierror.Error {
	t.Helper()

	var body apierror.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDashboardItems(t *testing.T) {
	t.Parallel()

	h := newAPI(t).Handler()

	rec := serve(t, h, http.MethodGet, "/api/dashboard/items", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var items []dashboard.ItemDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 20)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "20", items[19].ID)
	for _, item := range items {
		assert.True(t, strings.HasPrefix(item.Title, "Feature: "), item.Title)
		assert.Contains(t, []string{"todo", "in-progress", "done"}, item.Status)
		assert.GreaterOrEqual(t, item.Progress, 0)
		assert.LessOrEqual(t, item.Progress, 100)
	}

	rec = serve(t, h, http.MethodGet, "/api/dashboard/items/3", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var item dashboard.ItemDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, items[2], item)

	rec = serve(t, h, http.MethodGet, "/api/dashboard/items/404", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierror.CodeNotFound, decodeError(t, rec).Code)
}

func TestDashboardItems_DebugUnauthorized(t *testing.T) {
	t.Parallel()

	rec := serve(t, newAPI(t).Handler(), http.MethodGet, "/api/dashboard/items?debug=DASHBOARD_UNAUTHORIZED", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t,
		`{"status":401,"message":"Session expired. Please log in again.","code":"DASHBOARD_UNAUTHORIZED"}`,
		rec.Body.String(),
	)
}

func TestDebugEndpoints(t *testing.T) {
	t.Parallel()

	h := newAPI(t).Handler()

	tests := []struct {
		path     string
		status   int
		wantBody string
	}{
		{
			path:     "/api/debug/error",
			status:   http.StatusInternalServerError,
			wantBody: `{"status":500,"message":"Simulated API failure for debugging purposes.","code":"DASHBOARD_ITEMS_LOAD_FAILED"}`,
		},
		{
			path:     "/api/debug/unauthorized",
			status:   http.StatusUnauthorized,
			wantBody: `{"status":401,"message":"Session expired. Please log in again.","code":"AUTH_UNAUTHORIZED"}`,
		},
		{
			path:     "/api/debug/success",
			status:   http.StatusOK,
			wantBody: `{"status":200,"message":"Simulated success notification."}`,
		},
		{
			path:     "/api/nowhere",
			status:   http.StatusNotFound,
			wantBody: `{"status":404,"message":"Resource not found.","code":"NOT_FOUND"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			rec := serve(t, h, http.MethodGet, tt.path, nil, "")
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestForms(t *testing.T) {
	t.Parallel()

	h := newAPI(t).Handler()

	rec := serve(t, h, http.MethodGet, "/api/forms/user-profile", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cfg forms.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, "user-profile", cfg.ID)
	require.Len(t, cfg.Fields, 9)

	keys := make([]string, 0, len(cfg.Fields))
	for _, f := range cfg.Fields {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"username", "email", "phone", "role", "notifications", "newsletter", "gender", "avatar", "internalId"}, keys)

	role, ok := cfg.Field("role")
	require.True(t, ok)
	assert.Equal(t, forms.FieldSelect, role.Type)
	assert.Len(t, role.Options, 3)

	internal, ok := cfg.Field("internalId")
	require.True(t, ok)
	assert.False(t, internal.Editable())

	rec = serve(t, h, http.MethodGet, "/api/forms/unknown", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitForm(t *testing.T) {
	t.Parallel()

	h := newAPI(t).Handler()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		body := `{"username":"jane","email":"jane@example.com","role":"admin"}`
		rec := serve(t, h, http.MethodPost, "/api/forms/user-profile/submit", strings.NewReader(body), "application/json")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Profile updated successfully!"}`, rec.Body.String())
	})

	t.Run("validation errors", func(t *testing.T) {
		t.Parallel()

		body := `{"username":"jo","email":"not-an-email"}`
		rec := serve(t, h, http.MethodPost, "/api/forms/user-profile/submit", strings.NewReader(body), "application/json")
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		apiErr := decodeError(t, rec)
		assert.Equal(t, apierror.CodeValidation, apiErr.Code)
		assert.Equal(t, []string{"Username must be at least 3 characters."}, apiErr.Errors["username"])
		assert.Equal(t, []string{"Please enter a valid email address."}, apiErr.Errors["email"])
		assert.Equal(t, []string{"Role is required."}, apiErr.Errors["role"])
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, h, http.MethodPost, "/api/forms/user-profile/submit", strings.NewReader("{"), "application/json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apierror.CodeBadRequest, decodeError(t, rec).Code)
	})
}

func TestUpload(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	h := newAPI(t, mockapi.WithClock(func() time.Time { return now })).Handler()

	rec := serve(t, h, http.MethodPost, "/api/upload", nil, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var res mockapi.UploadResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.ID)
	assert.Contains(t, res.URL, res.ID)
	assert.Equal(t, mockapi.DefaultUploadFilename, res.Filename)
	assert.True(t, now.Equal(res.Timestamp))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	rec = serve(t, h, http.MethodPost, "/api/upload", &buf, mw.FormDataContentType())
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "avatar.png", res.Filename)
}

func TestBasePath(t *testing.T) {
	t.Parallel()

	api := newAPI(t, mockapi.WithBasePath("/"))
	assert.Empty(t, api.BasePath())

	rec := serve(t, api.Handler(), http.MethodGet, "/debug/success", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	api = newAPI(t, mockapi.WithBasePath("v1/"))
	assert.Equal(t, "/v1", api.BasePath())
	rec = serve(t, api.Handler(), http.MethodGet, "/v1/debug/success", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTransport(t *testing.T) {
	t.Parallel()

	client := &http.Client{Transport: mockapi.Transport(newAPI(t).Handler())}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://mock.local/api/debug/error", nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	n := apierror.Normalize(apierror.FromResponse(resp), "")
	assert.Equal(t, mockapi.SimulatedErrorMessage, n.Message)
	assert.Equal(t, apierror.CodeDashboardItemsLoadFailed, n.Code)
}

func TestTransport_CancelledDuringLatency(t *testing.T) {
	t.Parallel()

	client := &http.Client{Transport: mockapi.Transport(newAPI(t, mockapi.WithLatency(time.Minute)).Handler())}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://mock.local/api/debug/success", nil)
	require.NoError(t, err)
	_, err = client.Do(req)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
