package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// A missing scheme in cfg.HTTPAddress defaults to http.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.SignupResponse, error) {
	var out models.SignupResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		SetResult(&out).
		Post("/api/users")
	if err != nil {
		return models.SignupResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignupResponse{}, err
	}

	h.SetToken(out.Token)
	h.logger.Debug().Int64("user_id", out.UserID).Msg("registered")
	return out, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&out).
		Post("/api/users/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(out.Token)
	h.logger.Debug().Int64("user_id", out.UserIdentity).Str("expires_in", out.ExpiresIn).Msg("logged in")
	return out, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/users/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	var out models.DocumentResponse

	resp, err := h.authedRequest(ctx).
		SetBody(doc).
		SetResult(&out).
		Post("/api/documents")
	if err != nil {
		return models.Document{}, fmt.Errorf("create document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return out.Document, nil
}

func (h *httpServerAdapter) ListDocuments(ctx context.Context, page models.PageRequest) ([]models.DocumentListItem, models.Pagination, error) {
	var out models.DocumentsResponse

	req := h.authedRequest(ctx).SetResult(&out)
	if page.Offset > 0 {
		req.SetQueryParam("offset", strconv.Itoa(page.Offset))
	}
	if page.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(page.Limit))
	}

	resp, err := req.Get("/api/documents")
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, models.Pagination{}, err
	}

	var pagination models.Pagination
	if out.Pagination != nil {
		pagination = *out.Pagination
	}
	return out.Documents, pagination, nil
}

func (h *httpServerAdapter) GetDocument(ctx context.Context, id int64) (models.Document, error) {
	var out models.DocumentResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&out).
		Get(documentPath(id))
	if err != nil {
		return models.Document{}, fmt.Errorf("get document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return out.Document, nil
}

func (h *httpServerAdapter) UpdateDocument(ctx context.Context, id int64, update models.DocumentUpdate) (models.Document, error) {
	var out models.DocumentResponse

	resp, err := h.authedRequest(ctx).
		SetBody(update).
		SetResult(&out).
		Put(documentPath(id))
	if err != nil {
		return models.Document{}, fmt.Errorf("update document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return out.Document, nil
}

func (h *httpServerAdapter) DeleteDocument(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(documentPath(id))
	if err != nil {
		return fmt.Errorf("delete document request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) SearchDocuments(ctx context.Context, query string) ([]models.DocumentListItem, error) {
	var out models.DocumentsResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("q", query).
		SetResult(&out).
		Get("/api/search/documents")
	if err != nil {
		return nil, fmt.Errorf("search documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out.Documents, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func documentPath(id int64) string {
	return "/api/documents/" + strconv.FormatInt(id, 10)
}
