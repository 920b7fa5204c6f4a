package drivepath_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const folderMime = "application/vnd.google-apps.folder"

var (
	byNameQuery   = regexp.MustCompile(`^name = '(.*)' and '(.*)' in parents and trashed = false$`)
	byParentQuery = regexp.MustCompile(`^'(.*)' in parents and trashed = false$`)
)

// fakeDrive serves the files.get and files.list endpoints of the Drive API from memory.
type fakeDrive struct {
	files []*drive.File
}

func (d *fakeDrive) get(id string) *drive.File {
	for _, f := range d.files {
		if f.Id == id {
			return f
		}
	}
	return nil
}

func (d *fakeDrive) children(parentID, name string, byName bool) []*drive.File {
	children := []*drive.File{}
	for _, f := range d.files {
		if byName && f.Name != name {
			continue
		}
		for _, p := range f.Parents {
			if p == parentID {
				children = append(children, f)
				break
			}
		}
	}
	return children
}

func (d *fakeDrive) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /files/{id}", func(w http.ResponseWriter, r *http.Request) {
		f := d.get(r.PathValue("id"))
		if f == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":404,"message":"File not found"}}`))
			return
		}
		writeJSON(w, f)
	})
	mux.HandleFunc("GET /files", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		var files []*drive.File
		if m := byNameQuery.FindStringSubmatch(q); m != nil {
			files = d.children(m[2], unescape(m[1]), true)
		} else if m := byParentQuery.FindStringSubmatch(q); m != nil {
			files = d.children(m[1], "", false)
		} else {
			http.Error(w, "unsupported query: "+q, http.StatusBadRequest)
			return
		}
		writeJSON(w, &drive.FileList{Files: files})
	})
	return mux
}

func unescape(s string) string {
	s = strings.ReplaceAll(s, `\'`, "'")
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newFakeService(t *testing.T, files ...*drive.File) *drive.Service {
	t.Helper()

	srv := httptest.NewServer((&fakeDrive{files: files}).handler())
	t.Cleanup(srv.Close)

	service, err := drive.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return service
}

func folder(id, name string, parents ...string) *drive.File {
	return &drive.File{Id: id, Name: name, MimeType: folderMime, Parents: parents, ModifiedTime: "2024-01-15T10:30:00Z"}
}

func file(id, name string, parents ...string) *drive.File {
	return &drive.File{Id: id, Name: name, MimeType: "text/plain", Size: 512, Parents: parents, ModifiedTime: "2024-01-15T10:30:00Z"}
}
