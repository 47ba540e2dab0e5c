package assistant_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskpad/internal/backend/assistant"
	"taskpad/internal/service"
)

func TestClient_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/a@b.com/chat" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Message != "what is on my list?" {
			t.Errorf("unexpected message %q", body.Message)
		}
		json.NewEncoder(w).Encode(map[string]string{"response": "Two tasks remain."})
	}))
	defer srv.Close()

	c := assistant.New(srv.URL, 0, nil)
	reply, err := c.Send(context.Background(), "a@b.com", "what is on my list?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Two tasks remain." {
		t.Errorf("expected assistant reply, got %q", reply)
	}
}

func TestClient_SendEscapesIdentity(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	}))
	defer srv.Close()

	c := assistant.New(srv.URL, 0, nil)
	if _, err := c.Send(context.Background(), "user/../../etc", "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/user%2F..%2F..%2Fetc/chat" {
		t.Errorf("identity was not escaped in the path: %q", gotPath)
	}
}

func TestClient_SendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := assistant.New(srv.URL, 0, nil)
	_, err := c.Send(context.Background(), "a@b.com", "hi")

	var reqErr *service.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *service.RequestError, got %T (%v)", err, err)
	}
	if reqErr.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", reqErr.Status)
	}
}

func TestClient_SendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := assistant.New(url, 0, nil)
	_, err := c.Send(context.Background(), "a@b.com", "hi")

	var reqErr *service.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *service.RequestError, got %T (%v)", err, err)
	}
	if reqErr.Message != "assistant service unreachable" {
		t.Errorf("unexpected message %q", reqErr.Message)
	}
}
