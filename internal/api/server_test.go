package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, "")
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestCreateMatchRequestValidation(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, "")
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/match-requests", "application/json", strings.NewReader(`{"query":"analyst"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/match-requests", "application/json", strings.NewReader(`not json`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetMatchRequestInvalidID(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, "")
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/match-requests/not-a-uuid")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInterviewQuestionValidation(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, "")
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/interviews/question", "application/json", strings.NewReader(`{"job":{}}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"python", "sql"}, splitCSV("python, sql"))
	assert.Nil(t, splitCSV("  "))
	assert.Nil(t, splitCSV(""))
}
