package httpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okvist/espalier/internal/demo"
	"github.com/okvist/espalier/internal/httpapi"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	m, reg, err := demo.New("door")
	require.NoError(t, err)

	ts := httptest.NewServer(httpapi.NewHandler(m, reg, slogt.New(t)))
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func postJSON(t *testing.T, url, body string, v any) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestServer_Health(t *testing.T) {
	ts := newServer(t)

	var body map[string]string
	resp := getJSON(t, ts.URL+"/healthz", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestServer_State(t *testing.T) {
	ts := newServer(t)

	var body struct {
		InstanceID string `json:"instance_id"`
		State      string `json:"state"`
	}
	resp := getJSON(t, ts.URL+"/state", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Closed", body.State)
	assert.NotEmpty(t, body.InstanceID)
}

func TestServer_Dispatch(t *testing.T) {
	ts := newServer(t)

	var body struct {
		Event string `json:"event"`
		State string `json:"state"`
	}
	resp := postJSON(t, ts.URL+"/dispatch", `{"event":"open"}`, &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "open", body.Event)
	assert.Equal(t, "Open", body.State)

	// Unhandled events succeed and leave the state alone.
	resp = postJSON(t, ts.URL+"/dispatch", `{"event":"open"}`, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Open", body.State)
}

func TestServer_DispatchErrors(t *testing.T) {
	ts := newServer(t)

	resp := postJSON(t, ts.URL+"/dispatch", `{`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/dispatch", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody struct {
		Error string `json:"error"`
	}
	resp = postJSON(t, ts.URL+"/dispatch", `{"event":"slam"}`, &errBody)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, errBody.Error, `unknown event "slam"`)
}

func TestServer_Graph(t *testing.T) {
	ts := newServer(t)

	resp, err := http.Get(ts.URL + "/graph")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "stateDiagram-v2")
	assert.Contains(t, string(body), "Closed --> Open: OpenDoor")
}
