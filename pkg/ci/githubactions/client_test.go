package githubactions_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"autobuilder/pkg/ci"
	"autobuilder/pkg/ci/githubactions"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/serrors"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) //nolint: gochecknoglobals

func newTestClient(t *testing.T, mux *http.ServeMux) *githubactions.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := githubactions.New(srv.Client(), srv.URL, "default-token",
		githubactions.WithRunLookup(2, time.Millisecond),
		githubactions.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	return c
}

func setRate(w http.ResponseWriter, remaining int) {
	w.Header().Set("X-RateLimit-Limit", "5000")
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(now.Add(time.Hour).Unix(), 10))
}

func TestMapStatus(t *testing.T) {
	require.Equal(t, domain.BuildStatusPending, githubactions.MapStatus("queued", ""))
	require.Equal(t, domain.BuildStatusPending, githubactions.MapStatus("waiting", ""))
	require.Equal(t, domain.BuildStatusRunning, githubactions.MapStatus("in_progress", ""))
	require.Equal(t, domain.BuildStatusSuccess, githubactions.MapStatus("completed", "success"))
	require.Equal(t, domain.BuildStatusSuccess, githubactions.MapStatus("completed", "skipped"))
	require.Equal(t, domain.BuildStatusCancelled, githubactions.MapStatus("completed", "cancelled"))
	require.Equal(t, domain.BuildStatusTimeout, githubactions.MapStatus("completed", "timed_out"))
	require.Equal(t, domain.BuildStatusFailed, githubactions.MapStatus("completed", "failure"))
	require.Equal(t, domain.BuildStatusFailed, githubactions.MapStatus("completed", "startup_failure"))
}

func TestClient_Trigger(t *testing.T) {
	lists := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/acme/app/actions/workflows/ci.yml/dispatches", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer integration-token", r.Header.Get("Authorization"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "feature", body["ref"])
		setRate(w, 4999)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /repos/acme/app/actions/workflows/ci.yml/runs", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "feature", r.URL.Query().Get("branch"))
		require.Equal(t, "workflow_dispatch", r.URL.Query().Get("event"))
		lists++
		setRate(w, 4998)
		if lists == 1 {
			// only an old run is visible right after the dispatch
			fmt.Fprintf(w, `{"total_count":1,"workflow_runs":[{"id":1,"created_at":%q}]}`,
				now.Add(-time.Hour).Format(time.RFC3339))

			return
		}
		fmt.Fprintf(w, `{"total_count":1,"workflow_runs":[{"id":77,"html_url":"https://github.com/acme/app/actions/runs/77","created_at":%q}]}`,
			now.Format(time.RFC3339))
	})
	c := newTestClient(t, mux)

	run, rl, err := c.Trigger(context.Background(), ci.TriggerRequest{
		Repository: "acme/app",
		Branch:     "feature",
		Config:     map[string]any{"workflow": "ci.yml"},
		Token:      "integration-token",
	})
	require.NoError(t, err)
	require.Equal(t, "77", run.ID)
	require.Equal(t, "https://github.com/acme/app/actions/runs/77", run.URL)
	require.Equal(t, 4998, rl.Remaining)
	require.Equal(t, 5000, rl.Limit)
	require.Equal(t, 2, lists)
}

func TestClient_Trigger_runNeverShowsUp(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/acme/app/actions/workflows/build.yml/dispatches", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /repos/acme/app/actions/workflows/build.yml/runs", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"total_count":0,"workflow_runs":[]}`))
	})
	c := newTestClient(t, mux)

	_, _, err := c.Trigger(context.Background(), ci.TriggerRequest{Repository: "acme/app", Branch: "main"})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_Trigger_errors(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())
	_, _, err := c.Trigger(context.Background(), ci.TriggerRequest{Repository: "not-a-repo"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/acme/app/actions/workflows/build.yml/dispatches", func(w http.ResponseWriter, _ *http.Request) {
		setRate(w, 0)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	})
	mux.HandleFunc("POST /repos/acme/missing/actions/workflows/build.yml/dispatches", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})
	c = newTestClient(t, mux)

	_, rl, err := c.Trigger(context.Background(), ci.TriggerRequest{Repository: "acme/app", Branch: "main"})
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Equal(t, 0, rl.Remaining)

	_, _, err = c.Trigger(context.Background(), ci.TriggerRequest{Repository: "acme/missing", Branch: "main"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestClient_Status(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/app/actions/runs/77", func(w http.ResponseWriter, _ *http.Request) {
		setRate(w, 10)
		fmt.Fprintf(w, `{"id":77,"status":"completed","conclusion":"failure","html_url":"u",
			"run_started_at":%q,"updated_at":%q}`,
			now.Format(time.RFC3339), now.Add(90*time.Second).Format(time.RFC3339))
	})
	c := newTestClient(t, mux)

	st, rl, err := c.Status(context.Background(), ci.RunRef{ID: "77", Repository: "acme/app"})
	require.NoError(t, err)
	require.Equal(t, domain.BuildStatusFailed, st.Status)
	require.Equal(t, "completed", st.Raw)
	require.Equal(t, "failure", st.Conclusion)
	require.Equal(t, 90*time.Second, st.FinishedAt.Sub(st.StartedAt))
	require.Equal(t, 10, rl.Remaining)

	_, _, err = c.Status(context.Background(), ci.RunRef{ID: "abc", Repository: "acme/app"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_Logs(t *testing.T) {
	var archive bytes.Buffer
	zw := zip.NewWriter(&archive)
	for name, content := range map[string]string{
		"2_build.txt":   "Gradle sync failed",
		"1_setup.txt":   "setting up\n",
		"build/raw.bin": "ignored",
	} {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	mux := http.NewServeMux()
	var srvURL string
	mux.HandleFunc("GET /repos/acme/app/actions/runs/77/logs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, srvURL+"/archive.zip", http.StatusFound)
	})
	mux.HandleFunc("GET /archive.zip", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(archive.Bytes())
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	srvURL = srv.URL

	c, err := githubactions.New(srv.Client(), srv.URL, "t")
	require.NoError(t, err)

	logs, err := c.Logs(context.Background(), ci.RunRef{ID: "77", Repository: "acme/app"})
	require.NoError(t, err)
	require.Equal(t, "== 1_setup.txt ==\nsetting up\n== 2_build.txt ==\nGradle sync failed\n", logs)
}

func TestClient_Ping(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))

			return
		}
		_, _ = w.Write([]byte(`{"login":"bot"}`))
	})
	c := newTestClient(t, mux)

	require.NoError(t, c.Ping(context.Background(), "good"))
	require.ErrorIs(t, c.Ping(context.Background(), "bad"), serrors.ErrUnauthorized)
}
