package monitor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProber_Probe(t *testing.T) {
	t.Run("returns status body and latency for a healthy page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("<html>hello</html>"))
		}))
		defer server.Close()

		p := NewProber(5 * time.Second)
		res, err := p.Probe(context.Background(), server.URL)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "<html>hello</html>", res.Body)
		assert.GreaterOrEqual(t, res.ResponseTime, int64(0))
	})

	t.Run("server error status is still a successful probe", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("boom"))
		}))
		defer server.Close()

		p := NewProber(5 * time.Second)
		res, err := p.Probe(context.Background(), server.URL)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
		assert.Equal(t, "boom", res.Body)
	})

	t.Run("connection refused returns an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		p := NewProber(5 * time.Second)
		_, err := p.Probe(context.Background(), url)
		assert.Error(t, err)
	})

	t.Run("slow server trips the probe timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer server.Close()

		p := NewProber(50 * time.Millisecond)
		_, err := p.Probe(context.Background(), server.URL)
		assert.Error(t, err)
	})

	t.Run("invalid url returns an error", func(t *testing.T) {
		p := NewProber(time.Second)
		_, err := p.Probe(context.Background(), "://not-a-url")
		assert.Error(t, err)
	})
}
