package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
	"github.com/capsloque-org/ResumeBuilder/internal/editor"
	"github.com/capsloque-org/ResumeBuilder/internal/model"
	"github.com/capsloque-org/ResumeBuilder/internal/usecase"
)

// Client talks to the resume service on behalf of one user. It implements
// usecase.RemoteStore, so an out-of-process editor can synchronize against
// the service.
type Client struct {
	BaseURL    string
	HTTP       *http.Client
	UserHeader string
	UserID     string
	Attempts   int
	Backoff    time.Duration
}

func New(baseURL, userID string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTP:       &http.Client{Timeout: 60 * time.Second},
		UserHeader: "X-User-ID",
		UserID:     userID,
		Attempts:   3,
		Backoff:    time.Second,
	}
}

// NewFromEnv reads RESUME_API_URL and RESUME_USER_ID.
func NewFromEnv() *Client {
	base := os.Getenv("RESUME_API_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	return New(base, os.Getenv("RESUME_USER_ID"))
}

// StatusError is a non-2xx answer of the service.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return "resume service returned status " + strconv.Itoa(e.Code)
	}
	return fmt.Sprintf("resume service returned status %d: %s", e.Code, e.Message)
}

// Load fetches the stored document. A null document is usecase.ErrNotFound.
func (c *Client) Load(ctx context.Context) ([]byte, error) {
	var out model.LoadResponse
	if err := c.call(ctx, http.MethodGet, "/api/resume", nil, &out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 || string(out.Data) == "null" {
		return nil, usecase.ErrNotFound
	}
	return out.Data, nil
}

func (c *Client) Save(ctx context.Context, req model.SaveRequest) error {
	var out model.SaveResponse
	if err := c.call(ctx, http.MethodPost, "/api/resume", req, &out); err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("resume service did not confirm the save")
	}
	return nil
}

func (c *Client) Templates(ctx context.Context) ([]domain.TemplateInfo, error) {
	var out []domain.TemplateInfo
	err := c.call(ctx, http.MethodGet, "/api/templates", nil, &out)
	return out, err
}

// EditorDocument is the editor view of the session document.
type EditorDocument struct {
	Document domain.Resume  `json:"document"`
	Status   usecase.Status `json:"status"`
}

// Dispatch applies one action in the user's server-side editing session.
func (c *Client) Dispatch(ctx context.Context, a editor.Action) (EditorDocument, error) {
	body, err := editor.EncodeAction(a)
	if err != nil {
		return EditorDocument{}, err
	}
	var out EditorDocument
	err = c.call(ctx, http.MethodPost, "/api/editor/actions", json.RawMessage(body), &out)
	return out, err
}

func (c *Client) Document(ctx context.Context) (EditorDocument, error) {
	var out EditorDocument
	err := c.call(ctx, http.MethodGet, "/api/editor/document", nil, &out)
	return out, err
}

// SaveNow triggers the explicit save of the editing session.
func (c *Client) SaveNow(ctx context.Context) (usecase.Status, error) {
	var out usecase.Status
	err := c.call(ctx, http.MethodPost, "/api/editor/save", nil, &out)
	return out, err
}

func (c *Client) Preview(ctx context.Context, zoom float64) (string, error) {
	b, err := c.raw(ctx, "/preview?zoom="+strconv.FormatFloat(zoom, 'f', -1, 64))
	return string(b), err
}

func (c *Client) ExportPDF(ctx context.Context) ([]byte, error) {
	return c.raw(ctx, "/export.pdf")
}

func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = b
	}
	resp, err := c.doWithRetry(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, rb)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(rb, out)
}

func (c *Client) raw(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.doWithRetry(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode, rb)
	}
	return rb, nil
}

func statusError(code int, body []byte) error {
	var e model.ErrorResponse
	_ = json.Unmarshal(body, &e)
	return &StatusError{Code: code, Message: e.Error}
}

// doWithRetry retries transport failures and gateway errors with
// exponential backoff.
func (c *Client) doWithRetry(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	attempts := c.Attempts
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		var rd io.Reader
		if body != nil {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
		if err != nil {
			return nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.UserID != "" {
			req.Header.Set(c.UserHeader, c.UserID)
		}

		resp, err := c.HTTP.Do(req)
		if err == nil && !retryable(resp.StatusCode) {
			return resp, nil
		}
		if err == nil {
			lastErr = &StatusError{Code: resp.StatusCode}
			if i == attempts-1 {
				return resp, nil
			}
			resp.Body.Close()
		} else {
			lastErr = err
		}
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * c.Backoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func retryable(code int) bool {
	return code == http.StatusBadGateway || code == http.StatusServiceUnavailable || code == http.StatusGatewayTimeout
}
