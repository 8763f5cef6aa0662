// Package client реализует HTTP-клиент API каталога активностей.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"activity-signup-service/internal/model"
)

// Client — клиент API. Базовый адрес задаётся конфигурацией;
// таймауты и повторные попытки остаются на совести переданного http.Client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New создаёт клиент API. Если httpClient равен nil, используется http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// APIError — ошибка, о которой сообщил сервер: HTTP-статус вне 2xx
// и необязательное поле detail из тела ответа.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error реализует интерфейс error для APIError.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// FetchActivities запрашивает полный каталог активностей.
// Порядок элементов соответствует порядку ключей JSON-объекта в ответе.
// Статус-код не проверяется: успехом считается любой ответ,
// тело которого разбирается как каталог.
func (c *Client) FetchActivities(ctx context.Context) (model.ActivityList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch activities: %w", err)
	}
	defer resp.Body.Close()

	list, err := decodeActivities(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return list, nil
}

// Signup записывает участника на активность и возвращает сообщение сервера.
// При статусе вне 2xx возвращает *APIError с полем detail, если оно было в теле.
func (c *Client) Signup(ctx context.Context, activityName, email string) (string, error) {
	return c.sendAction(ctx, http.MethodPost, activityName, "signup", email)
}

// Unregister снимает участника с активности. Контракт тот же, что у Signup.
func (c *Client) Unregister(ctx context.Context, activityName, email string) (string, error) {
	return c.sendAction(ctx, http.MethodDelete, activityName, "unregister", email)
}

func (c *Client) sendAction(ctx context.Context, method, activityName, action, email string) (string, error) {
	// имя активности кодируется как сегмент пути, email — как query-параметр
	u := c.baseURL + "/activities/" + url.PathEscape(activityName) + "/" + action +
		"?email=" + url.QueryEscape(email)

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", action, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	// Тело разбирается независимо от статуса, но только по возможности:
	// статус в диапазоне 2xx — успех при любом теле, message и detail
	// в этом случае просто остаются пустыми.
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	_ = json.Unmarshal(data, &body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Detail: body.Detail}
	}
	return body.Message, nil
}
