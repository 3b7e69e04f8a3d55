package imagegen

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"sketchstudio/internal/domain"
)

type fakeEditor struct {
	lastReq EditRequest
	calls   int
	blobs   [][]byte
	err     error
}

func (f *fakeEditor) Edit(ctx context.Context, req EditRequest) ([][]byte, error) {
	f.calls++
	f.lastReq = req
	return f.blobs, f.err
}

func TestSubmitMissingImage(t *testing.T) {
	editor := &fakeEditor{}
	svc := NewService(editor, "1024x1024", zerolog.Nop())

	_, err := svc.Submit(context.Background(), nil, "text")
	if !errors.Is(err, domain.ErrMissingImage) {
		t.Fatalf("Submit() error = %v, want ErrMissingImage", err)
	}
	if editor.calls != 0 {
		t.Fatalf("provider was called %d times for a missing image", editor.calls)
	}
}

func TestSubmitUndecodableImage(t *testing.T) {
	editor := &fakeEditor{}
	svc := NewService(editor, "1024x1024", zerolog.Nop())

	_, err := svc.Submit(context.Background(), []byte("not an image"), "")
	if !errors.Is(err, domain.ErrDecodeImage) {
		t.Fatalf("Submit() error = %v, want ErrDecodeImage", err)
	}
	if editor.calls != 0 {
		t.Fatalf("provider was called %d times for an undecodable image", editor.calls)
	}
}

func TestSubmitComposesRequest(t *testing.T) {
	editor := &fakeEditor{blobs: [][]byte{[]byte("out")}}
	svc := NewService(editor, "1024x1024", zerolog.Nop())

	blobs, err := svc.Submit(context.Background(), encodePNG(t), "  make it blue  ")
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if len(blobs) != 1 || string(blobs[0]) != "out" {
		t.Fatalf("Submit() blobs mismatch: %#v", blobs)
	}
	if editor.lastReq.Prompt != BasePrompt+"\n\n추가 지시문: make it blue" {
		t.Fatalf("prompt mismatch: %q", editor.lastReq.Prompt)
	}
	if editor.lastReq.Size != "1024x1024" || editor.lastReq.N != 1 {
		t.Fatalf("request mismatch: size=%q n=%d", editor.lastReq.Size, editor.lastReq.N)
	}
	if editor.lastReq.Filename != "image.png" {
		t.Fatalf("filename mismatch: %q", editor.lastReq.Filename)
	}
	if len(editor.lastReq.ImagePNG) == 0 {
		t.Fatalf("normalized image missing from request")
	}
}

func TestSubmitEmptyDirectiveUsesBasePromptVerbatim(t *testing.T) {
	editor := &fakeEditor{blobs: [][]byte{[]byte("out")}}
	svc := NewService(editor, "", zerolog.Nop())

	if _, err := svc.Submit(context.Background(), encodePNG(t), "   "); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if editor.lastReq.Prompt != BasePrompt {
		t.Fatalf("prompt = %q, want base prompt verbatim", editor.lastReq.Prompt)
	}
}

func TestSubmitWrapsProviderError(t *testing.T) {
	editor := &fakeEditor{err: errors.New("connection reset")}
	svc := NewService(editor, "1024x1024", zerolog.Nop())

	_, err := svc.Submit(context.Background(), encodePNG(t), "")
	var genErr *domain.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Submit() error = %v, want *domain.GenerationError", err)
	}
	if genErr.Reason() != "connection reset" {
		t.Fatalf("Reason() = %q, want underlying message", genErr.Reason())
	}
}

func TestSubmitRejectsEmptyProviderResult(t *testing.T) {
	editor := &fakeEditor{blobs: [][]byte{}}
	svc := NewService(editor, "1024x1024", zerolog.Nop())

	_, err := svc.Submit(context.Background(), encodePNG(t), "")
	var genErr *domain.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Submit() error = %v, want *domain.GenerationError", err)
	}
}
