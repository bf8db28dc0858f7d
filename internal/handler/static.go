package handler

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

// StaticHandler serves files from the static content directory and falls
// back to the 404 page for everything else.
type StaticHandler struct {
	root fs.FS
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{
		root: os.DirFS(dir),
	}
}

func (h *StaticHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if fs.ValidPath(name) && name != "." {
		info, err := fs.Stat(h.root, name)
		if err == nil && !info.IsDir() {
			http.ServeFileFS(w, r, h.root, name)
			return
		}
	}

	notFound(w, r)
}
