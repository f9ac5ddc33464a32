package api

import (
	"bytes"
	"database/sql"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerlens/internal/database"
	"careerlens/internal/resume"
)

func multipartResume(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("resume body"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadResumeRequiresFileField(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, "")
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	body, contentType := multipartResume(t, "attachment", "resume.pdf")
	resp, err := http.Post(srv.URL+"/api/seekers/abc/resume", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadResumeRejectsUnsupportedType(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, "")
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	body, contentType := multipartResume(t, "file", "resume.exe")
	resp, err := http.Post(srv.URL+"/api/seekers/abc/resume", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadResumeRejectsNonMultipart(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, "")
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/seekers/abc/resume", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestResumeMime(t *testing.T) {
	cases := []struct {
		filename string
		want     string
		ok       bool
	}{
		{"cv.pdf", resume.MimePDF, true},
		{"CV.PDF", resume.MimePDF, true},
		{"cv.docx", resume.MimeDocx, true},
		{"cv.txt", resume.MimeText, true},
		{"cv.exe", "", false},
		{"cv", "", false},
	}
	for _, tc := range cases {
		got, err := resumeMime(tc.filename)
		if tc.ok {
			require.NoError(t, err, tc.filename)
			assert.Equal(t, tc.want, got, tc.filename)
		} else {
			assert.Error(t, err, tc.filename)
		}
	}
}

func TestSimpleMatchInvalidJobID(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, "")
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/seekers/abc/jobs/not-a-uuid/simple-match")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetMatchDetailInvalidJobID(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, "")
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/seekers/abc/matches/not-a-hash")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSalaryBands(t *testing.T) {
	rows := []database.MatchedJob{
		{SalaryMin: sql.NullFloat64{Float64: 18000, Valid: true}, SalaryMax: sql.NullFloat64{Float64: 20000, Valid: true}},
		{SalaryMin: sql.NullFloat64{Float64: 30000, Valid: true}, SalaryMax: sql.NullFloat64{Float64: 40000, Valid: true}},
		{SalaryMin: sql.NullFloat64{Float64: 90000, Valid: true}, SalaryMax: sql.NullFloat64{Float64: 110000, Valid: true}},
		{},
	}
	bands := salaryBands(rows)
	assert.Equal(t, 1, bands["Below 20K"])
	assert.Equal(t, 1, bands["20K-40K"])
	assert.Equal(t, 1, bands["80K+"])
	assert.Equal(t, 1, bands["Not specified"])
}
