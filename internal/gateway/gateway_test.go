package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocklink-lite/internal/credentials"
	"stocklink-lite/internal/domain"
)

func storeWith(t *testing.T, sess domain.Session) credentials.Store {
	s, err := credentials.OpenSQLite(":memory:")
	require.NoError(t, err)
	if !sess.IsEmpty() {
		require.NoError(t, s.Set(context.Background(), sess))
	}
	return s
}

func TestGet_AttachesHeaders(t *testing.T) {
	var gotAuth, gotType, gotTrace string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotTrace = r.Header.Get("X-Trace-Id")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, storeWith(t, domain.Session{AccessToken: "T1", RefreshToken: "R1"}), time.Second)
	_, err := c.Get(context.Background(), "/user/balance")
	require.NoError(t, err)

	assert.Equal(t, "Bearer T1", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.NotEmpty(t, gotTrace)
}

func TestGet_NoSession_FailsFastWithoutNetworkCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	c := New(srv.URL, storeWith(t, domain.Session{}), time.Second)
	_, err := c.Get(context.Background(), "/user/balance")

	assert.ErrorIs(t, err, ErrNoSession)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestGetPublic_SendsNoAuthorization(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, storeWith(t, domain.Session{}), time.Second)
	_, err := c.GetPublic(context.Background(), "/companies/ipo")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestErrorMessage_FromMessageField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, storeWith(t, domain.Session{AccessToken: "T1", RefreshToken: "R1"}), time.Second)
	_, err := c.Get(context.Background(), "/user/balance")

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "not found", httpErr.Message)
}

func TestErrorMessage_FromNestedErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"insufficient funds"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, storeWith(t, domain.Session{AccessToken: "T1", RefreshToken: "R1"}), time.Second)
	_, err := c.Post(context.Background(), "/companies/stock/buy", map[string]int{"companyId": 1, "quantity": 2})

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "insufficient funds", httpErr.Message)
}

func TestErrorMessage_GenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	}))
	defer srv.Close()

	c := New(srv.URL, storeWith(t, domain.Session{AccessToken: "T1", RefreshToken: "R1"}), time.Second)
	_, err := c.Get(context.Background(), "/user/balance")

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "Request failed", httpErr.Message)
}

func TestUnauthorized_IsPlainHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid or expired token"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, storeWith(t, domain.Session{AccessToken: "stale", RefreshToken: "stale"}), time.Second)
	_, err := c.Get(context.Background(), "/user/balance")

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Equal(t, "Invalid or expired token", httpErr.Message)
}

func TestContextCancellation_AbortsRequest(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := New(srv.URL, storeWith(t, domain.Session{AccessToken: "T1", RefreshToken: "R1"}), 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := c.Get(ctx, "/user/balance")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
