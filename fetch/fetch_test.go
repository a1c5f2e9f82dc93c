package fetch

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedFetch struct {
	url    string
	status int
	err    error
}

type fakeRecorder struct {
	fetches []recordedFetch
}

func (r *fakeRecorder) Record(url string, status int, fetchErr error) {
	r.fetches = append(r.fetches, recordedFetch{url, status, fetchErr})
}

// TestGet_Success verifies a plain 200 returns the body
func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>hello</html>")
	}))
	defer srv.Close()

	c := NewClient(0)
	body, err := c.Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "<html>hello</html>", string(body))
}

// TestGet_SendsUserAgent verifies the browser user agent is set
func TestGet_SendsUserAgent(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	c := NewClient(0)
	_, err := c.Get(srv.URL)
	require.NoError(t, err)
	assert.Contains(t, gotAgent, "Mozilla/5.0")
}

// TestGet_NonOKStatus verifies non-2xx statuses fail with a FetchError
func TestGet_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(0)
	_, err := c.Get(srv.URL)
	require.Error(t, err)

	var ferr *FetchError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, http.StatusNotFound, ferr.StatusCode)
	assert.Equal(t, srv.URL, ferr.URL)
}

// TestGet_FollowsRedirect verifies a redirect chain is followed to the body
func TestGet_FollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/middle", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/middle", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/end", http.StatusFound)
	})
	mux.HandleFunc("/end", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "arrived")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(0)
	body, err := c.Get(srv.URL + "/start")
	require.NoError(t, err)
	assert.Equal(t, "arrived", string(body))
}

// TestGet_RedirectLoop verifies the redirect cap surfaces ErrTooManyRedirects
func TestGet_RedirectLoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	}))
	defer srv.Close()

	c := NewClient(0)
	_, err := c.Get(srv.URL + "/loop")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManyRedirects))
}

// TestGet_RecordsOutcomes verifies the recorder sees successes and failures
func TestGet_RecordsOutcomes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "fine")
	})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	rec := &fakeRecorder{}
	c := NewClient(0)
	c.SetRecorder(rec)

	_, err := c.Get(srv.URL + "/ok")
	require.NoError(t, err)
	_, err = c.Get(srv.URL + "/gone")
	require.Error(t, err)

	require.Len(t, rec.fetches, 2)
	assert.Equal(t, srv.URL+"/ok", rec.fetches[0].url)
	assert.Equal(t, http.StatusOK, rec.fetches[0].status)
	assert.NoError(t, rec.fetches[0].err)
	assert.Equal(t, http.StatusGone, rec.fetches[1].status)
	assert.Error(t, rec.fetches[1].err)
}

// TestDocument_ParsesHTML verifies the goquery document helper
func TestDocument_ParsesHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><h1 id="title">Adamantine Shield</h1></body></html>`)
	}))
	defer srv.Close()

	c := NewClient(0)
	doc, err := c.Document(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Adamantine Shield", doc.Find("#title").Text())
}
