package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"currimon_backend/internals/configs"
)

func testClient(baseURL string, retries int) *HTTPClient {
	return NewHTTPClient(&configs.Config{
		ExtractorBaseURL: baseURL,
		ExtractorTimeout: 2 * time.Second,
		ExtractorRetries: retries,
	})
}

func TestAddCurriculumSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/add-curriculum" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %s", ct)
		}
		w.Write([]byte(`{"type":"success","message":"Curriculum added"}`))
	}))
	defer srv.Close()

	res, err := testClient(srv.URL, 0).AddCurriculum(context.Background(), Request{Code: "C1"})
	if err != nil {
		t.Fatalf("AddCurriculum: %v", err)
	}
	if res.Type != "success" || res.Message != "Curriculum added" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestAddCurriculumRetriesOn5xx(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"type":"success","message":"ok"}`))
	}))
	defer srv.Close()

	res, err := testClient(srv.URL, 2).AddCurriculum(context.Background(), Request{Code: "C1"})
	if err != nil {
		t.Fatalf("AddCurriculum: %v", err)
	}
	if res.Type != "success" {
		t.Fatalf("unexpected result %+v", res)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
}

func TestAddCurriculumExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL, 1).AddCurriculum(context.Background(), Request{}); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
}

func TestAddCurriculumNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("<html>nope</html>"))
	}))
	defer srv.Close()

	res, err := testClient(srv.URL, 0).AddCurriculum(context.Background(), Request{})
	if err != nil {
		t.Fatalf("AddCurriculum: %v", err)
	}
	if res.Type != "error" || res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected relayed generic error, got %+v", res)
	}
}
