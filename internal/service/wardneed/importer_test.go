package wardneed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanzad/sanzad-backend/internal/pkg/store/storetest"
)

const indexPage = `<html><body>
	<a class="sector-link" href="/sectors/roads">roads</a>
	<a class="sector-link" href="/sectors/health">health</a>
	<a href="/about">about</a>
</body></html>`

const roadsPage = `<html><body><table class="needs">
	<thead><tr><th>Ward</th><th>County</th><th>Score</th></tr></thead>
	<tbody>
		<tr><td>Kibra</td><td>Nairobi</td><td>90</td></tr>
		<tr><td>Mathare</td><td>Nairobi</td><td>85,5</td></tr>
	</tbody>
</table></body></html>`

const healthPage = `<html><body><table class="needs">
	<tbody>
		<tr><td>Westlands</td><td>Nairobi</td><td>30.25</td></tr>
	</tbody>
</table></body></html>`

func needsSite(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(indexPage))
	})
	mux.HandleFunc("/sectors/roads", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(roadsPage))
	})
	mux.HandleFunc("/sectors/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(healthPage))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestImportFromURL(t *testing.T) {
	srv := needsSite(t)
	mem := storetest.NewInMemory()
	svc := NewService(mem)

	imported, err := svc.ImportFromURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, imported, 3)

	roads, err := svc.ListBySector(context.Background(), "roads")
	require.NoError(t, err)
	require.Len(t, roads, 2)
	assert.Equal(t, "Kibra", roads[0].Ward)
	assert.Equal(t, 90.0, roads[0].Score)
	// comma decimals in published tables parse too
	assert.Equal(t, 85.5, roads[1].Score)

	health, err := svc.ListBySector(context.Background(), "health")
	require.NoError(t, err)
	require.Len(t, health, 1)
	assert.Equal(t, 30.25, health[0].Score)
	require.NotNil(t, health[0].DataSource)
	assert.NotEmpty(t, *health[0].DataSource)
}

func TestImportFromURLNoSectorLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>nothing here</body></html>`))
	}))
	defer srv.Close()

	svc := NewService(storetest.NewInMemory())
	_, err := svc.ImportFromURL(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "no sector links")
}

func TestImportFromURLBadScore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<a class="sector-link" href="/s">roads</a>`))
	})
	mux.HandleFunc("/s", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<table class="needs"><tbody><tr><td>Kibra</td><td>Nairobi</td><td>n/a</td></tr></tbody></table>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc := NewService(storetest.NewInMemory())
	_, err := svc.ImportFromURL(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "parse score")
}

func TestParseScore(t *testing.T) {
	cases := map[string]float64{
		"90":       90,
		"  85.5 ":  85.5,
		"85,5":     85.5,
		"1 234,56": 1234.56,
	}
	for in, want := range cases {
		got, err := parseScore(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := parseScore("n/a")
	assert.Error(t, err)
}
