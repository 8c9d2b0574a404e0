// Package api is the HTTP/JSON client for the remote admin API. It owns
// endpoint paths, bearer-token attachment, and the mapping from transport
// and status failures to the shared error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marketadmin/internal/domain"
	apperrors "marketadmin/internal/errors"
)

// Credentials supplies the bearer token for protected calls and is cleared
// when the server reports the session invalid.
type Credentials interface {
	Token() string
	Clear() error
}

type Client struct {
	baseURL string
	http    *http.Client
	creds   Credentials
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, creds Credentials, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		logger:  logger,
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token string `json:"token"`
}

// SignIn exchanges admin credentials for a bearer token. Storing the token
// is the caller's concern.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	var resp signInResponse
	err := c.do(ctx, http.MethodPost, "/admin/auth/signin", signInRequest{Email: email, Password: password}, &resp, false)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.do(ctx, http.MethodGet, "/admin/category/get-all-categories", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, draft domain.CategoryDraft) (domain.Category, error) {
	var out domain.Category
	err := c.do(ctx, http.MethodPost, "/admin/category/add-category", draft, &out, true)
	return out, err
}

func (c *Client) UpdateCategory(ctx context.Context, id string, draft domain.CategoryDraft) (domain.Category, error) {
	var out domain.Category
	err := c.do(ctx, http.MethodPut, "/admin/category/update-category/"+url.PathEscape(id), draft, &out, true)
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/category/remove-category/"+url.PathEscape(id), nil, nil, true)
}

// ListProducts hits the public catalog listing; no token required.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/product/get-all", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, draft domain.ProductDraft) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, http.MethodPost, "/product/add", draft, &out, false)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, id string, draft domain.ProductDraft) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, http.MethodPut, "/product/update/"+url.PathEscape(id), draft, &out, true)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/product/delete/"+url.PathEscape(id), nil, nil, true)
}

// ListOrders returns the detailed listing, including the server-side total
// used by the dashboard counters.
func (c *Client) ListOrders(ctx context.Context) (domain.OrderList, error) {
	var out domain.OrderList
	err := c.do(ctx, http.MethodGet, "/admin/order/get-all-details", nil, &out, true)
	return out, err
}

func (c *Client) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, http.MethodGet, "/admin/order/get-one/"+url.PathEscape(id), nil, &out, true)
	return out, err
}

type updateStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	return c.do(ctx, http.MethodPut, "/admin/order/update-status/"+url.PathEscape(id), updateStatusRequest{Status: status}, nil, true)
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	requestID := uuid.NewString()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternalError("encoding request body", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return apperrors.NewInternalError("building request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token := c.creds.Token()
		if token == "" {
			return apperrors.NewUnauthorizedError("not signed in")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("request failed",
			zap.String("requestId", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return apperrors.NewRequestError(0, "sending request", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		zap.String("requestId", requestID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode >= 400 {
		return c.statusError(resp, authed)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperrors.NewInternalError("decoding response body", err)
		}
	}
	return nil
}

func (c *Client) statusError(resp *http.Response, authed bool) error {
	var remote errorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&remote)
	message := remote.Message
	if message == "" {
		message = remote.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// the credential is no longer good; forget it so the next action
		// forces a fresh sign-in
		if authed {
			if err := c.creds.Clear(); err != nil {
				c.logger.Warn("clearing session after 401", zap.Error(err))
			}
		}
		if message == "" {
			message = "unauthorized"
		}
		return apperrors.NewUnauthorizedError(message)
	case http.StatusNotFound:
		if message == "" {
			message = "not found"
		}
		return apperrors.NewNotFoundError(message)
	default:
		if message == "" {
			message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return apperrors.NewRequestError(resp.StatusCode, message, nil)
	}
}
