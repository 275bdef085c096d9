package app

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avc-dev/link-shortener/internal/config"
	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const (
	testWait = 2 * time.Second
	testTick = 10 * time.Millisecond
)

// newTestServer поднимает полный HTTP стек поверх in-memory хранилища
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.NewDefaultConfig()
	app := &App{config: cfg, logger: zaptest.NewLogger(t)}
	require.NoError(t, app.initDependencies(t.Context()))
	t.Cleanup(app.Close)

	srv := httptest.NewServer(newRouter(app.handler, app.authService, app.logger))
	t.Cleanup(srv.Close)

	return srv
}

// newTestClient клиент с кукой и без автоматических редиректов
func newTestClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func doRequest(t *testing.T, client *http.Client, method, url, body string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(data)
}

func TestRouter_ShortenRedirectDelete(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient(t)

	// Создание
	resp, shortURL := doRequest(t, client, http.MethodPost, srv.URL+"/", "https://example.com/page")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	code := shortURL[strings.LastIndex(shortURL, "/")+1:]

	// Переход
	resp, _ = doRequest(t, client, http.MethodGet, srv.URL+"/"+code, "")
	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "https://example.com/page", resp.Header.Get("Location"))

	resp, body := doRequest(t, client, http.MethodGet, srv.URL+"/api/urls/"+code+"/visit", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"redirect_to":"https://example.com/page"}`, body)

	resp, body = doRequest(t, client, http.MethodGet, srv.URL+"/api/urls/"+code, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var info model.LinkResponse
	require.NoError(t, json.Unmarshal([]byte(body), &info))
	assert.Equal(t, int64(2), info.VisitCount)

	// Ссылки пользователя
	resp, body = doRequest(t, client, http.MethodGet, srv.URL+"/api/user/urls", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, code)

	// Анонимный клиент без куки получает 401
	resp, _ = doRequest(t, newTestClient(t), http.MethodGet, srv.URL+"/api/user/urls", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Деактивация
	resp, _ = doRequest(t, client, http.MethodDelete, srv.URL+"/api/user/urls", `["`+code+`"]`)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	require.Eventually(t, func() bool {
		resp, _ := doRequest(t, client, http.MethodGet, srv.URL+"/"+code, "")
		return resp.StatusCode == http.StatusNotFound
	}, testWait, testTick)

	resp, _ = doRequest(t, client, http.MethodGet, srv.URL+"/api/urls/"+code, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_Errors(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient(t)

	resp, _ := doRequest(t, client, http.MethodGet, srv.URL+"/zzzzzz", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, client, http.MethodPost, srv.URL+"/", "not a url")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, client, http.MethodPost, srv.URL+"/api/shorten", `{"url":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, client, http.MethodGet, srv.URL+"/ping", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_BatchAndStats(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient(t)

	batch := `[{"correlation_id":"a","original_url":"https://a.example.com"},{"correlation_id":"b","original_url":"https://b.example.com"}]`
	resp, body := doRequest(t, client, http.MethodPost, srv.URL+"/api/shorten/batch", batch)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var items []model.BatchShortenResponse
	require.NoError(t, json.Unmarshal([]byte(body), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].CorrelationID)
	assert.NotEqual(t, items[0].ShortURL, items[1].ShortURL)

	resp, body = doRequest(t, client, http.MethodGet, srv.URL+"/api/user/stats", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats model.StatsResponse
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.Equal(t, 2, stats.TotalLinks)
	assert.Equal(t, 2, stats.ActiveLinks)

	resp, body = doRequest(t, client, http.MethodGet, srv.URL+"/api/urls/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var public []model.LinkResponse
	require.NoError(t, json.Unmarshal([]byte(body), &public))
	assert.Len(t, public, 2)
}

func TestRouter_GzipRequest(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"url":"https://example.com"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, srv.URL+"/api/shorten", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")

	// Транспорт без прозрачной распаковки, чтобы проверить сжатие ответа
	client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	var out model.ShortenResponse
	require.NoError(t, json.NewDecoder(zr).Decode(&out))
	assert.True(t, strings.HasPrefix(out.Result, "http://localhost:8080/"))
}
