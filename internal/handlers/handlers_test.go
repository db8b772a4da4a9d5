package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fawzia2025/cb-care-live/domain/catalog"
	"github.com/Fawzia2025/cb-care-live/domain/contact"
	"github.com/Fawzia2025/cb-care-live/domain/recommend"
	"github.com/Fawzia2025/cb-care-live/internal/config"
	"github.com/Fawzia2025/cb-care-live/internal/session"
	"github.com/Fawzia2025/cb-care-live/internal/viewstate"
)

type fakeRecommender struct {
	mu      sync.Mutex
	result  viewstate.Result
	inputs  []string
	ctxErrs []error
}

func (f *fakeRecommender) Recommend(ctx context.Context, needs string) viewstate.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, needs)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	return f.result
}

// blockingSubmitter holds each Submit until release is closed
type blockingSubmitter struct {
	result  viewstate.Result
	started chan struct{}
	release chan struct{}

	mu      sync.Mutex
	calls   int
	ctxErrs []error
}

func (b *blockingSubmitter) Submit(ctx context.Context, _ contact.Submission) viewstate.Result {
	b.mu.Lock()
	b.calls++
	b.ctxErrs = append(b.ctxErrs, ctx.Err())
	b.mu.Unlock()

	if b.started != nil {
		b.started <- struct{}{}
	}
	if b.release != nil {
		<-b.release
	}
	return b.result
}

type testSite struct {
	server *httptest.Server
	client *http.Client
	store  *session.Store
	rec    *fakeRecommender
	sub    *blockingSubmitter
}

func newTestRouter(t *testing.T, rec *fakeRecommender, sub *blockingSubmitter) (chi.Router, *session.Store) {
	t.Helper()

	cfg := &config.Config{
		Session: config.SessionConfig{CookieName: "cbc_session", TTL: time.Hour},
		Site:    config.SiteConfig{Name: "Central Bridge Care", Phone: "0121 000 0000"},
	}
	cat, err := catalog.Load()
	require.NoError(t, err)

	store := session.NewStore(cfg, slog.Default())
	h := New(cfg.Site, store, cat, rec, sub, slog.Default())
	r := chi.NewRouter()
	RegisterRoutes(r, h)
	return r, store
}

func newTestSite(t *testing.T, rec *fakeRecommender, sub *blockingSubmitter) *testSite {
	t.Helper()

	r, store := newTestRouter(t, rec, sub)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testSite{
		server: srv,
		client: &http.Client{Jar: jar},
		store:  store,
		rec:    rec,
		sub:    sub,
	}
}

func (s *testSite) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := s.client.Get(s.server.URL + path)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func (s *testSite) postForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := s.client.PostForm(s.server.URL+path, form)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func (s *testSite) postJSON(t *testing.T, path, body string) (*http.Response, string) {
	t.Helper()
	resp, err := s.client.Post(s.server.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestLandingPage(t *testing.T) {
	site := newTestSite(t, &fakeRecommender{}, &blockingSubmitter{})

	resp, body := site.get(t, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "Central Bridge Care")
	assert.Contains(t, body, `data-view="list"`)
	assert.Contains(t, body, "Alternatively, call us directly:")
	assert.Contains(t, body, "All rights reserved.")

	// read-only visits leave no session behind
	assert.Empty(t, resp.Header.Values("Set-Cookie"))
	assert.Equal(t, 0, site.store.Len())
}

func TestLandingPage_SessionStartsOnFirstAction(t *testing.T) {
	site := newTestSite(t, &fakeRecommender{}, &blockingSubmitter{})

	site.get(t, "/")
	site.get(t, "/")
	require.Equal(t, 0, site.store.Len())

	_, body := site.postForm(t, "/menu/toggle", nil)
	assert.Contains(t, body, `id="mobile-menu"`)
	assert.Equal(t, 1, site.store.Len())

	_, body = site.get(t, "/")
	assert.Contains(t, body, `id="mobile-menu"`, "later visits render the stored state")
	assert.Equal(t, 1, site.store.Len())
}

func TestServices_SelectThenBack(t *testing.T) {
	site := newTestSite(t, &fakeRecommender{}, &blockingSubmitter{})

	resp, body := site.postForm(t, "/services/dementia-care", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `data-view="detail"`)
	assert.Contains(t, body, "complexities of dementia")

	_, body = site.postForm(t, "/services/back", nil)
	assert.Contains(t, body, `data-view="list"`)
	assert.NotContains(t, body, `data-view="detail"`)
}

func TestServices_UnknownSlug(t *testing.T) {
	site := newTestSite(t, &fakeRecommender{}, &blockingSubmitter{})

	resp, body := site.postForm(t, "/services/knitting-club", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, `"code":"not_found"`)
	assert.Contains(t, body, `"message":"service 'knitting-club' not found"`)
	assert.Equal(t, 0, site.store.Len())
}

func TestMenu_ToggleAndClose(t *testing.T) {
	site := newTestSite(t, &fakeRecommender{}, &blockingSubmitter{})

	_, body := site.postForm(t, "/menu/toggle", nil)
	assert.Contains(t, body, `id="mobile-menu"`)

	_, body = site.postForm(t, "/menu/close", url.Values{"target": {"#about"}})
	assert.NotContains(t, body, `id="mobile-menu"`)
}

func TestCloseMenu_RedirectTarget(t *testing.T) {
	site := newTestSite(t, &fakeRecommender{}, &blockingSubmitter{})
	site.client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

	resp, _ := site.postForm(t, "/menu/close", url.Values{"target": {"#services"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/#services", resp.Header.Get("Location"))

	resp, _ = site.postForm(t, "/menu/close", url.Values{"target": {"https://evil.example"}})
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestRecommendation_Form(t *testing.T) {
	rec := &fakeRecommender{result: viewstate.Success("**Companionship** would suit your mum.")}
	site := newTestSite(t, rec, &blockingSubmitter{})

	_, body := site.postForm(t, "/recommendation", url.Values{"needs": {"lonely mum"}})

	assert.Equal(t, []string{"lonely mum"}, rec.inputs)
	assert.Contains(t, body, "Our Recommendation:")
	assert.Contains(t, body, "<strong>Companionship</strong> would suit your mum.")
	assert.Contains(t, body, ">lonely mum</textarea>")
}

func TestRecommendation_FormFailure(t *testing.T) {
	rec := &fakeRecommender{result: viewstate.Failure(recommend.ErrorMessage)}
	site := newTestSite(t, rec, &blockingSubmitter{})

	_, body := site.postForm(t, "/recommendation", url.Values{"needs": {""}})

	assert.Equal(t, []string{""}, rec.inputs, "empty input is forwarded")
	assert.Contains(t, body, "There was an error getting a recommendation. Please try again later.")
	assert.Contains(t, body, "Get Recommendation")
	assert.NotContains(t, body, "Generating...</button>")
}

func TestRecommendation_API(t *testing.T) {
	rec := &fakeRecommender{result: viewstate.Success("X")}
	site := newTestSite(t, rec, &blockingSubmitter{})

	resp, body := site.postJSON(t, "/api/recommendation", `{"needs":"night care"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got RecommendationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, RecommendationResponse{State: "succeeded", Text: "X"}, got)
}

func TestRecommendation_APIBadJSON(t *testing.T) {
	site := newTestSite(t, &fakeRecommender{}, &blockingSubmitter{})

	resp, body := site.postJSON(t, "/api/recommendation", `{"needs":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, `"code":"bad_request"`)
}

func TestContact_FormSuccessClearsFields(t *testing.T) {
	sub := &blockingSubmitter{result: viewstate.Success(contact.SuccessMessage)}
	site := newTestSite(t, &fakeRecommender{}, sub)

	_, body := site.postForm(t, "/contact", url.Values{
		"name": {"Jane"}, "email": {"jane@example.com"}, "message": {"Hello there"},
	})

	assert.Contains(t, body, "Message sent successfully!")
	assert.NotContains(t, body, `value="Jane"`)
	assert.NotContains(t, body, "Hello there")
}

func TestContact_FormFailurePreservesFields(t *testing.T) {
	sub := &blockingSubmitter{result: viewstate.Failure(contact.FailureMessage)}
	site := newTestSite(t, &fakeRecommender{}, sub)

	_, body := site.postForm(t, "/contact", url.Values{
		"name": {"Jane"}, "email": {"jane@example.com"}, "message": {"Hello there"},
	})

	assert.Contains(t, body, "Failed to send message. Please try again later.")
	assert.Contains(t, body, `value="Jane"`)
	assert.Contains(t, body, `value="jane@example.com"`)
	assert.Contains(t, body, ">Hello there</textarea>")
}

func TestContact_APITriggerInertWhilePending(t *testing.T) {
	sub := &blockingSubmitter{
		result:  viewstate.Success(contact.SuccessMessage),
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	site := newTestSite(t, &fakeRecommender{}, sub)

	// establish the session cookie first so both calls share it
	site.postForm(t, "/services/back", nil)

	type outcome struct {
		status int
		body   string
	}
	first := make(chan outcome, 1)
	go func() {
		resp, err := site.client.Post(site.server.URL+"/api/contact", "application/json",
			strings.NewReader(`{"name":"Jane","email":"jane@example.com","message":"Hi"}`))
		if err != nil {
			first <- outcome{}
			return
		}
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		first <- outcome{resp.StatusCode, string(b)}
	}()

	select {
	case <-sub.started:
	case <-time.After(5 * time.Second):
		t.Fatal("first submission never reached the relay")
	}

	resp, body := site.postJSON(t, "/api/contact", `{"name":"Jane","email":"jane@example.com","message":"Hi"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, `"code":"submission_in_progress"`)

	// the page shows the pending trigger as disabled
	_, page := site.get(t, "/")
	assert.Contains(t, page, "disabled>Sending...</button>")

	close(sub.release)
	got := <-first
	assert.Equal(t, http.StatusOK, got.status)

	var res ContactResponse
	require.NoError(t, json.Unmarshal([]byte(got.body), &res))
	assert.Equal(t, ContactResponse{State: "succeeded", Message: contact.SuccessMessage}, res)

	sub.mu.Lock()
	assert.Equal(t, 1, sub.calls)
	sub.mu.Unlock()
}

func TestContact_FormTriggerInertWhilePending(t *testing.T) {
	sub := &blockingSubmitter{
		result:  viewstate.Failure(contact.FailureMessage),
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	site := newTestSite(t, &fakeRecommender{}, sub)

	site.postForm(t, "/services/back", nil)

	first := make(chan string, 1)
	go func() {
		resp, err := site.client.PostForm(site.server.URL+"/contact", url.Values{
			"name": {"Jane"}, "email": {"jane@example.com"}, "message": {"Hello there"},
		})
		if err != nil {
			first <- ""
			return
		}
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		first <- string(b)
	}()

	select {
	case <-sub.started:
	case <-time.After(5 * time.Second):
		t.Fatal("first submission never reached the relay")
	}

	resp, body := site.postForm(t, "/contact", url.Values{
		"name": {"Bob"}, "email": {"bob@example.com"}, "message": {"Second try"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "disabled>Sending...</button>")
	assert.Contains(t, body, `value="Jane"`)
	assert.NotContains(t, body, `value="Bob"`)

	close(sub.release)
	page := <-first
	assert.Contains(t, page, "Failed to send message. Please try again later.")
	assert.Contains(t, page, `value="Jane"`)

	sub.mu.Lock()
	assert.Equal(t, 1, sub.calls)
	sub.mu.Unlock()
}

func TestExternalCalls_SurviveClientCancel(t *testing.T) {
	rec := &fakeRecommender{result: viewstate.Success("X")}
	sub := &blockingSubmitter{result: viewstate.Success(contact.SuccessMessage)}
	r, _ := newTestRouter(t, rec, sub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name        string
		path        string
		contentType string
		body        string
	}{
		{"recommendation form", "/recommendation", "application/x-www-form-urlencoded", "needs=night+care"},
		{"recommendation api", "/api/recommendation", "application/json", `{"needs":"night care"}`},
		{"contact form", "/contact", "application/x-www-form-urlencoded", "name=Jane&email=jane%40example.com&message=Hi"},
		{"contact api", "/api/contact", "application/json", `{"name":"Jane","email":"jane@example.com","message":"Hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body)).WithContext(ctx)
			req.Header.Set("Content-Type", tt.contentType)
			r.ServeHTTP(httptest.NewRecorder(), req)
		})
	}

	require.Len(t, rec.ctxErrs, 2)
	require.Len(t, sub.ctxErrs, 2)
	for _, err := range append(rec.ctxErrs, sub.ctxErrs...) {
		assert.NoError(t, err)
	}
}

func TestAPIServices(t *testing.T) {
	site := newTestSite(t, &fakeRecommender{}, &blockingSubmitter{})

	resp, body := site.get(t, "/api/services")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got ServicesResponse
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	require.Len(t, got.Services, 12)
	assert.Equal(t, "personal-care", got.Services[0].Slug)
}

func TestHealth(t *testing.T) {
	site := newTestSite(t, &fakeRecommender{}, &blockingSubmitter{})

	resp, body := site.get(t, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}
