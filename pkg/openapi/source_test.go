package openapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-jobform/pkg/openapi"
)

func TestParseSource(t *testing.T) {
	src, err := openapi.ParseSource("https://api.example.com/openapi.yaml")
	if err != nil || src.Kind() != openapi.SourceKindURL {
		t.Fatalf("expected url source, got %v, %v", src, err)
	}
	src, err = openapi.ParseSource("./contract/../contract/applications.yaml")
	if err != nil || src.Kind() != openapi.SourceKindFile || src.Location() != "contract/applications.yaml" {
		t.Fatalf("expected cleaned file source, got %v, %v", src, err)
	}
	if _, err := openapi.ParseSource("  "); err == nil {
		t.Fatalf("expected error for empty source")
	}
	if _, err := openapi.SourceFromURL("ftp://example.com/doc"); err == nil {
		t.Fatalf("expected error for non-http url")
	}
}

func TestLoadContractFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.yaml")
	if err := os.WriteFile(path, openapi.ContractDocument(), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	contract, err := openapi.LoadContractFrom(context.Background(), openapi.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if contract.Operation().Path != "/applications" {
		t.Fatalf("unexpected operation %+v", contract.Operation())
	}
}

func TestLoadContractFromFS(t *testing.T) {
	files := fstest.MapFS{"api/contract.yaml": {Data: openapi.ContractDocument()}}
	if _, err := openapi.LoadContractFrom(context.Background(), openapi.SourceFromFS(files, "api/contract.yaml")); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := openapi.LoadContractFrom(context.Background(), openapi.SourceFromFS(files, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadContractFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openapi.yaml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(openapi.ContractDocument())
	}))
	defer srv.Close()

	src, err := openapi.SourceFromURL(srv.URL + "/openapi.yaml")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if _, err := openapi.LoadContractFrom(context.Background(), src, openapi.WithHTTPClient(srv.Client())); err != nil {
		t.Fatalf("load: %v", err)
	}

	missing, _ := openapi.SourceFromURL(srv.URL + "/missing.yaml")
	if _, err := openapi.LoadContractFrom(context.Background(), missing, openapi.WithHTTPClient(srv.Client())); err == nil {
		t.Fatalf("expected error for 404")
	}
}
