package imagegen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIClientEdit(t *testing.T) {
	generated := []byte("generated-png-bytes")
	var gotPrompt, gotModel, gotSize, gotN string
	var gotImage []byte
	var gotImageType string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header: %s", got)
		}
		if r.URL.Path != "/images/edits" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotPrompt = r.FormValue("prompt")
		gotModel = r.FormValue("model")
		gotSize = r.FormValue("size")
		gotN = r.FormValue("n")
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("read image part: %v", err)
		}
		defer file.Close()
		gotImageType = header.Header.Get("Content-Type")
		gotImage, _ = io.ReadAll(file)

		resp := editResponse{}
		resp.Data = append(resp.Data, struct {
			B64JSON string `json:"b64_json"`
			URL     string `json:"url"`
		}{B64JSON: base64.StdEncoding.EncodeToString(generated)})
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	client := NewOpenAIClient(OpenAIOptions{APIKey: "test-key", BaseURL: ts.URL})
	blobs, err := client.Edit(context.Background(), EditRequest{
		Prompt:   "render the product",
		ImagePNG: []byte{0x89, 0x50, 0x4e, 0x47},
		Size:     "1024x1024",
		N:        1,
	})
	if err != nil {
		t.Fatalf("Edit() error: %v", err)
	}
	if len(blobs) != 1 || string(blobs[0]) != string(generated) {
		t.Fatalf("Edit() blobs mismatch: %d entries", len(blobs))
	}
	if gotPrompt != "render the product" {
		t.Fatalf("prompt mismatch: %q", gotPrompt)
	}
	if gotModel != "gpt-image-1" {
		t.Fatalf("model mismatch: %q", gotModel)
	}
	if gotSize != "1024x1024" {
		t.Fatalf("size mismatch: %q", gotSize)
	}
	if gotN != "1" {
		t.Fatalf("n mismatch: %q", gotN)
	}
	if gotImageType != "image/png" {
		t.Fatalf("image part content type mismatch: %q", gotImageType)
	}
	if string(gotImage) != string([]byte{0x89, 0x50, 0x4e, 0x47}) {
		t.Fatalf("image bytes not transmitted: %v", gotImage)
	}
}

func TestOpenAIClientMissingKey(t *testing.T) {
	client := NewOpenAIClient(OpenAIOptions{})
	if _, err := client.Edit(context.Background(), EditRequest{ImagePNG: []byte{1}}); err == nil {
		t.Fatalf("expected error when api key missing")
	}
}

func TestOpenAIClientServiceError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"content policy violation","type":"invalid_request_error"}}`))
	}))
	defer ts.Close()

	client := NewOpenAIClient(OpenAIOptions{APIKey: "test-key", BaseURL: ts.URL})
	_, err := client.Edit(context.Background(), EditRequest{Prompt: "p", ImagePNG: []byte{1}})
	if err == nil {
		t.Fatalf("expected error from failing provider")
	}
	if got := err.Error(); got != "openai error: content policy violation" {
		t.Fatalf("unexpected error text: %q", got)
	}
}

func TestOpenAIClientEmptyData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer ts.Close()

	client := NewOpenAIClient(OpenAIOptions{APIKey: "test-key", BaseURL: ts.URL})
	if _, err := client.Edit(context.Background(), EditRequest{Prompt: "p", ImagePNG: []byte{1}}); err == nil {
		t.Fatalf("expected error for empty data array")
	}
}

func TestOpenAIClientMalformedPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"b64_json":"%%%not-base64%%%"}]}`))
	}))
	defer ts.Close()

	client := NewOpenAIClient(OpenAIOptions{APIKey: "test-key", BaseURL: ts.URL})
	if _, err := client.Edit(context.Background(), EditRequest{Prompt: "p", ImagePNG: []byte{1}}); err == nil {
		t.Fatalf("expected error for undecodable payload")
	}
}
