package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horacekj/pda-emulator/internal/httpapi"
	"github.com/horacekj/pda-emulator/pkg/adapters/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(httpapi.NewHandler(memory.NewStore()))
	t.Cleanup(srv.Close)
	return srv
}

func putJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func balancedPayload() map[string]any {
	return map[string]any{
		"states":               []string{"q0", "q1"},
		"input_alphabet":       []string{"(", ")"},
		"stack_alphabet":       []string{"Z", "P"},
		"initial_state":        "q0",
		"initial_stack_symbol": "Z",
		"accepting_states":     []string{"q1"},
		"transitions": map[string]any{
			"q0": map[string]any{
				"(": []any{map[string]any{
					"Z": map[string]any{"next": "q0", "push": []string{"Z", "P"}},
					"P": map[string]any{"next": "q0", "push": []string{"P", "P"}},
				}},
				")": []any{map[string]any{
					"P": map[string]any{"next": "q0", "push": []string{}},
				}},
				"": []any{map[string]any{
					"Z": map[string]any{"next": "q1", "push": []string{"Z"}},
				}},
			},
		},
	}
}

func TestServer_PutAndAccept(t *testing.T) {
	srv := newTestServer(t)

	resp := putJSON(t, srv.URL+"/machines/balanced", balancedPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	for input, want := range map[string]bool{
		"(())": true,
		"":     true,
		"(":    false,
		")(":   false,
	} {
		body, err := json.Marshal(map[string]string{"input": input})
		require.NoError(t, err)

		resp, err := http.Post(srv.URL+"/machines/balanced/accept", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Accepted bool `json:"accepted"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		resp.Body.Close()

		assert.Equal(t, want, result.Accepted, "input %q", input)
	}
}

func TestServer_PutInvalidDefinition(t *testing.T) {
	srv := newTestServer(t)

	payload := balancedPayload()
	payload["initial_state"] = "ghost"

	resp := putJSON(t, srv.URL+"/machines/broken", payload)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_AcceptUnknownMachine(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/machines/nope/accept", "application/json",
		bytes.NewReader([]byte(`{"input":""}`)))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_AcceptInvalidSymbolPolicyError(t *testing.T) {
	srv := newTestServer(t)

	payload := balancedPayload()
	payload["unknown_input"] = "error"
	resp := putJSON(t, srv.URL+"/machines/strict-input", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Post(srv.URL+"/machines/strict-input/accept", "application/json",
		bytes.NewReader([]byte(`{"input":"x"}`)))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestServer_ListGetDelete(t *testing.T) {
	srv := newTestServer(t)

	resp := putJSON(t, srv.URL+"/machines/balanced", balancedPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/machines")
	require.NoError(t, err)
	var list struct {
		Machines []string `json:"machines"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	assert.Contains(t, list.Machines, "balanced")

	resp, err = http.Get(srv.URL + "/machines/balanced")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/machines/balanced", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/machines/balanced")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestServer_MetricsExposed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
