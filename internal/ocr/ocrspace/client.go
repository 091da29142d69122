// Package ocrspace is a client for the OCR.space parse/image API.
package ocrspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"spamlens/internal/config"
	"spamlens/internal/domain"
	"spamlens/internal/port"
)

const (
	apiURL        = "https://api.ocr.space/parse/image"
	fileFieldName = "filename"
)

// Client implements port.OCRClient against OCR.space.
type Client struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewClient creates an OCR.space client from config. A zero timeout leaves
// the call bounded only by the request context.
func NewClient(cfg *config.OCRConfig) *Client {
	return newClient(cfg, cfg.Endpoint)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.OCRConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.OCRConfig, endpoint string) *Client {
	if endpoint == "" {
		endpoint = apiURL
	}
	return &Client{
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: time.Duration(cfg.TimeoutSecs) * time.Second},
	}
}

func (c *Client) Submit(ctx context.Context, in port.OCRRequest) (*port.OCRResult, error) {
	if c.apiKey == "" {
		return nil, domain.ErrOCRUnavailable
	}

	body, contentType, err := buildForm(in, c.apiKey)
	if err != nil {
		return nil, fmt.Errorf("building form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling ocr.space API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ocr.space API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	return parseResponse(respBody)
}

func buildForm(in port.OCRRequest, apiKey string) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fileFieldName, in.FileName))
	h.Set("Content-Type", in.MimeType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(in.Image); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("apikey", apiKey); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("language", in.Language); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// messages decodes a field the API sends either as a string or a list of strings.
type messages []string

func (m *messages) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		if one != "" {
			*m = messages{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("unexpected message format: %s", truncate(string(b), 100))
	}
	*m = many
	return nil
}

func (m messages) String() string {
	return strings.Join(m, "; ")
}

// apiResponse models the OCR.space parse/image response.
type apiResponse struct {
	ParsedResults []struct {
		ParsedText        string   `json:"ParsedText"`
		FileParseExitCode int      `json:"FileParseExitCode"`
		ErrorMessage      messages `json:"ErrorMessage"`
	} `json:"ParsedResults"`
	OCRExitCode           int      `json:"OCRExitCode"`
	IsErroredOnProcessing bool     `json:"IsErroredOnProcessing"`
	ErrorMessage          messages `json:"ErrorMessage"`
	ErrorDetails          messages `json:"ErrorDetails"`
}

func parseResponse(body []byte) (*port.OCRResult, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w (raw: %s)", err, truncate(string(body), 500))
	}

	out := &port.OCRResult{
		IsErroredOnProcessing: resp.IsErroredOnProcessing,
		ErrorMessage:          resp.ErrorMessage.String(),
		ErrorDetails:          resp.ErrorDetails.String(),
	}
	for _, r := range resp.ParsedResults {
		out.ParsedTexts = append(out.ParsedTexts, r.ParsedText)
	}
	return out, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
