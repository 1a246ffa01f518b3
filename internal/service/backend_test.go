package service

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-admin-go/internal/apitest"
	"github.com/noah-isme/campus-admin-go/pkg/rest"
)

// newBackend starts the in-process backend and returns a client wired to it.
func newBackend(t *testing.T) *rest.Client {
	t.Helper()

	server, err := apitest.NewServer()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	client, err := rest.New(rest.Config{
		BaseURL:       server.URL(),
		SessionCookie: "test-session",
		Timeout:       5 * time.Second,
	}, zerolog.Nop())
	require.NoError(t, err)
	return client
}
