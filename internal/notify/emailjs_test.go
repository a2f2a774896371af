package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmailJSConfig(baseURL string) EmailJSConfig {
	return EmailJSConfig{
		ServiceID:  "service_norte",
		TemplateID: "template_contato",
		PublicKey:  "pk_123",
		BaseURL:    baseURL,
	}
}

func TestEmailJSClient_Send(t *testing.T) {
	var got emailJSRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	client := NewEmailJSClient(testEmailJSConfig(server.URL), nil)
	err := client.Send(context.Background(), map[string]string{"name": "Ana", "email": "ana@padaria.com"})
	require.NoError(t, err)

	assert.Equal(t, "service_norte", got.ServiceID)
	assert.Equal(t, "template_contato", got.TemplateID)
	assert.Equal(t, "pk_123", got.UserID)
	assert.Equal(t, "Ana", got.TemplateParams["name"])
}

func TestEmailJSClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The Public Key is invalid", http.StatusBadRequest)
	}))
	defer server.Close()

	err := NewEmailJSClient(testEmailJSConfig(server.URL), nil).Send(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestEmailJSClient_NotConfigured(t *testing.T) {
	cfg := testEmailJSConfig("http://127.0.0.1:1")
	cfg.PublicKey = ""
	client := NewEmailJSClient(cfg, nil)
	assert.False(t, client.Configured())
	assert.ErrorIs(t, client.Send(context.Background(), nil), ErrEmailJSNotConfigured)
}

func TestEmailJSClient_DefaultBaseURL(t *testing.T) {
	client := NewEmailJSClient(EmailJSConfig{}, nil)
	assert.Equal(t, DefaultEmailJSBaseURL, client.cfg.BaseURL)
}
