package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPGetterInvalidURL(t *testing.T) {
	g := NewHTTPGetter(nil)
	_, err := g.Get(context.Background(), "not a url")
	if err == nil {
		t.Fatal("expected an error for an invalid URL")
	}
	var fe *Error
	if !errors.As(err, &fe) || fe.Kind != KindInvalidURL {
		t.Errorf("expected KindInvalidURL, got %v", err)
	}
}

func TestHTTPGetterSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	g := NewHTTPGetter(srv.Client())
	body, err := g.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(body) != "<html><body>ok</body></html>" {
		t.Errorf("body = %q", body)
	}
}

func TestHTTPGetterNonUTF8Body(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0xff, 0xfe, 0xfd})
	}))
	defer srv.Close()

	g := NewHTTPGetter(srv.Client())
	_, err := g.Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected a decoding error for a non-UTF-8 body")
	}
	var fe *Error
	if !errors.As(err, &fe) || fe.Kind != KindDecodingFailed {
		t.Errorf("expected KindDecodingFailed, got %v", err)
	}
}

func TestHTTPGetterNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := NewHTTPGetter(srv.Client())
	_, err := g.Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}
