package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"
)

// OpenAIOptions configures the images/edits client.
type OpenAIOptions struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// OpenAIClient calls the OpenAI image edit endpoint. One request carries the
// normalized sketch plus the composed prompt and yields base64 image payloads.
type OpenAIClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	model      string
}

// NewOpenAIClient builds a client with defaults suitable for gpt-image-1.
func NewOpenAIClient(opts OpenAIOptions) *OpenAIClient {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "https://api.openai.com/v1"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "gpt-image-1"
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 180 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &OpenAIClient{
		httpClient: client,
		baseURL:    base,
		token:      strings.TrimSpace(opts.APIKey),
		model:      model,
	}
}

type editResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
		URL     string `json:"url"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// Edit submits one edit request and returns the decoded image blobs in the
// order the service produced them.
func (c *OpenAIClient) Edit(ctx context.Context, req EditRequest) ([][]byte, error) {
	if c == nil {
		return nil, errors.New("openai client not configured")
	}
	if c.token == "" {
		return nil, errors.New("openai: API key is missing")
	}
	if len(req.ImagePNG) == 0 {
		return nil, errors.New("openai: image payload required")
	}

	filename := strings.TrimSpace(req.Filename)
	if filename == "" {
		filename = "image.png"
	}
	n := req.N
	if n <= 0 {
		n = 1
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fields := map[string]string{
		"model":  c.model,
		"prompt": req.Prompt,
		"n":      strconv.Itoa(n),
	}
	if size := strings.TrimSpace(req.Size); size != "" {
		fields["size"] = size
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("openai: encode field %s: %w", name, err)
		}
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("openai: encode image part: %w", err)
	}
	if _, err := part.Write(req.ImagePNG); err != nil {
		return nil, fmt.Errorf("openai: write image part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("openai: finalize payload: %w", err)
	}

	endpoint := c.baseURL + "/images/edits"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out editResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 256<<20)).Decode(&out); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("openai: http %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("openai: decode response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		if out.Error != nil && out.Error.Message != "" {
			return nil, fmt.Errorf("openai error: %s", out.Error.Message)
		}
		return nil, fmt.Errorf("openai: http %d", resp.StatusCode)
	}
	if len(out.Data) == 0 {
		if out.Error != nil && out.Error.Message != "" {
			return nil, fmt.Errorf("openai error: %s", out.Error.Message)
		}
		return nil, errors.New("openai: empty response")
	}

	blobs := make([][]byte, 0, len(out.Data))
	for i, item := range out.Data {
		if strings.TrimSpace(item.B64JSON) == "" {
			return nil, fmt.Errorf("openai: result %d has no image payload", i+1)
		}
		blob, err := base64.StdEncoding.DecodeString(item.B64JSON)
		if err != nil {
			return nil, fmt.Errorf("openai: decode result %d: %w", i+1, err)
		}
		blobs = append(blobs, blob)
	}
	return blobs, nil
}

var _ Editor = (*OpenAIClient)(nil)
