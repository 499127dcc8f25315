package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const failing = `<?xml version="1.0" encoding="UTF-8"?>
<resultset>
  <summary><status>FAIL</status></summary>
  <results>
    <result>
      <resultType>Error</resultType>
      <lineNum>1</lineNum><columnNum>1</columnNum>
      <errorMsg>Document language not identified.</errorMsg>
      <repair>Add lang.</repair>
    </result>
  </results>
</resultset>`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func fakeService(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "good" {
			_, _ = w.Write([]byte("Invalid web service ID"))
			return
		}
		_, _ = w.Write([]byte(failing))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("ACHECKER_ENDPOINT", srv.URL)
	t.Setenv("ACHECKER_RETRIES", "1")
	t.Setenv("ACHECKER_ID", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("ENV", "test")

	return srv
}

func TestCheck_JSON(t *testing.T) {
	fakeService(t)

	out, _, err := run(t, "check", "--id", "good", "--format", "json", "http://example.com")

	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "FAIL", got["status"])
	require.Len(t, got["errors"], 1)
}

func TestCheck_UsesConfiguredID(t *testing.T) {
	fakeService(t)
	t.Setenv("ACHECKER_ID", "good")

	out, _, err := run(t, "check", "--color", "off", "http://example.com", "http://example.org")

	require.NoError(t, err)
	require.Contains(t, out, "URI: http://example.com (WCAG2-AA)")
	require.Contains(t, out, "URI: http://example.org (WCAG2-AA)")
	require.True(t, strings.Index(out, "example.com") < strings.Index(out, "example.org"))
	require.Contains(t, out, "The page does not declare its language.")
}

func TestCheck_ReportsFailures(t *testing.T) {
	fakeService(t)

	_, stderr, err := run(t, "check", "--id", "good", "-o", "json", "not-a-url", "http://example.com")

	require.ErrorIs(t, err, errChecksFailed)
	require.Contains(t, stderr, "not-a-url: invalid URL supplied")

	_, stderr, err = run(t, "check", "--id", "bad", "http://example.com")

	require.ErrorIs(t, err, errChecksFailed)
	require.Contains(t, stderr, "invalid web service ID")
}

func TestCheck_RequiresArgs(t *testing.T) {
	_, _, err := run(t, "check")

	require.Error(t, err)
}

func TestGuides(t *testing.T) {
	out, _, err := run(t, "guides")

	require.NoError(t, err)
	require.Contains(t, out, "* WCAG2-AA")
	require.Contains(t, out, "  508")
}
