package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMissingTokensFailsBeforeAnyRequest(t *testing.T) {
	out, err := runCommand(t)
	require.Error(t, err)
	assert.Contains(t, out, "source token is required")
}

func TestInvalidLanguageRejected(t *testing.T) {
	out, err := runCommand(t,
		"--source-token", "s",
		"--target-token", "t",
		"--source-language", "de",
	)
	require.Error(t, err)
	assert.Contains(t, out, "source language must be one of")
}

func TestDryRunAgainstFakeService(t *testing.T) {
	posts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts++
			w.WriteHeader(http.StatusCreated)
			return
		}
		io.WriteString(w, `{"externalTimes":[
			{"id":"a","title":"one","timeSeconds":1800,"type":"watching","date":"2025-01-01"},
			{"id":"b","title":"two","timeSeconds":1800,"type":"listening","date":"2025-01-02"}
		]}`)
	}))
	defer srv.Close()

	out, err := runCommand(t,
		"--source-token", "src",
		"--target-token", "tgt",
		"--base-url", srv.URL,
	)
	require.NoError(t, err)

	assert.Equal(t, 0, posts, "dry run must not mutate the target")
	assert.Contains(t, out, "Running in DRY RUN mode")
	assert.Contains(t, out, "Found 2 time entries")
	assert.Contains(t, out, "Total time: 1.00 hours (3600 seconds)")
}

func TestExecuteAgainstFakeService(t *testing.T) {
	var created []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			assert.Equal(t, "fr", r.URL.Query().Get("language"))
			assert.Equal(t, "Bearer tgt", r.Header.Get("Authorization"))
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			created = append(created, payload)
			w.WriteHeader(http.StatusCreated)
			return
		}
		assert.Equal(t, "Bearer src", r.Header.Get("Authorization"))
		io.WriteString(w, `{"externalTimes":[
			{"id":"a","title":"one","timeSeconds":600,"type":"watching","date":"2025-01-01"},
			{"id":"b","title":"two","timeSeconds":900,"type":"listening","date":"2025-01-02"}
		]}`)
	}))
	defer srv.Close()

	out, err := runCommand(t,
		"--source-token", "src",
		"--target-token", "tgt",
		"--base-url", srv.URL,
		"--execute",
	)
	require.NoError(t, err)

	require.Len(t, created, 2)
	for _, payload := range created {
		assert.NotEmpty(t, payload["idempotencyKey"])
		assert.NotContains(t, payload, "id", "source id must not be forwarded")
	}
	assert.NotContains(t, out, "DRY RUN")
	assert.Contains(t, out, "Migration complete!")
	assert.Contains(t, out, "Successfully migrated: 2")
	assert.Contains(t, out, "Errors: 0")
}
