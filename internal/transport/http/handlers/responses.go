package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/inkwell-press/inkwell/internal/apperr"
)

func respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	e := apperr.From(err)
	if e.Kind == apperr.KindInternal || e.Kind == apperr.KindStorage {
		slog.Error(op, "err", err)
	}
	render.Status(r, e.StatusCode)
	render.JSON(w, r, e)
}

// readFormFile pulls an uploaded file's bytes and name out of a multipart
// form. A missing field returns empty values, not an error; the services
// decide whether the file was required.
func readFormFile(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}
