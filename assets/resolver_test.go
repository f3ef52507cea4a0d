package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
)

var pngStub = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 1, 2, 3}

func TestResolveDataURI(t *testing.T) {
	ref := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngStub)

	got, err := NewResolver().Resolve(context.Background(), ref)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !bytes.Equal(got, pngStub) {
		t.Errorf("Resolve() = %v, want %v", got, pngStub)
	}
}

func TestResolveBareBase64(t *testing.T) {
	ref := base64.StdEncoding.EncodeToString([]byte("payload"))

	got, err := NewResolver().Resolve(context.Background(), ref)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("Resolve() = %q", got)
	}
}

func TestResolveFetchesURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngStub)
	}))
	defer srv.Close()

	got, err := NewResolver().Resolve(context.Background(), srv.URL+"/logo.png")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !bytes.Equal(got, pngStub) {
		t.Errorf("Resolve() returned %d bytes, want %d", len(got), len(pngStub))
	}
}

func TestResolveFetchErrorOnStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewResolver().Resolve(context.Background(), srv.URL+"/missing.png")
	if err == nil {
		t.Fatal("Resolve() succeeded on 404")
	}
	if !IsFetch(err) {
		t.Errorf("error %v is not a FetchError", err)
	}
	if IsDecode(err) {
		t.Errorf("error %v should not be a DecodeError", err)
	}
}

func TestResolveFetchErrorOnDeadServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := NewResolver().Resolve(context.Background(), srv.URL)
	if !IsFetch(err) {
		t.Errorf("error %v is not a FetchError", err)
	}
}

func TestResolveDecodeErrors(t *testing.T) {
	r := NewResolver()

	for _, ref := range []string{
		"",
		"data:image/png;base64",        // no payload separator
		"data:image/png;base64,???###", // invalid base64
		"not base64 at all!!",
	} {
		_, err := r.Resolve(context.Background(), ref)
		if err == nil {
			t.Errorf("Resolve(%q) succeeded", ref)
			continue
		}
		if !IsDecode(err) {
			t.Errorf("Resolve(%q) error %v is not a DecodeError", ref, err)
		}
	}
}

func TestMediaType(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"data:image/png;base64,abcd", "image/png"},
		{"data:image/jpeg,abcd", "image/jpeg"},
		{"https://example.com/a.png", ""},
		{"data:nocomma", ""},
	}
	for _, tt := range tests {
		if got := MediaType(tt.ref); got != tt.want {
			t.Errorf("MediaType(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestResolveAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(r.URL.Path))
	}))
	defer srv.Close()

	good := srv.URL + "/good"
	bad := srv.URL + "/bad"
	inline := "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("inline"))

	// Duplicates and empties are tolerated.
	refs := []string{good, bad, inline, good, ""}
	results := NewResolver().ResolveAll(context.Background(), refs)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if res := results[good]; res.Err != nil || string(res.Data) != "/good" {
		t.Errorf("good ref: data=%q err=%v", res.Data, res.Err)
	}
	if res := results[bad]; !IsFetch(res.Err) {
		t.Errorf("bad ref: err = %v, want FetchError", res.Err)
	}
	if res := results[inline]; res.Err != nil || string(res.Data) != "inline" {
		t.Errorf("inline ref: data=%q err=%v", res.Data, res.Err)
	}
}
