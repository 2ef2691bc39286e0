package export

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"sqlgateway/pkg/dbconn"
	"sqlgateway/pkg/req"
	"sqlgateway/pkg/res"
)

type ControllerDeps struct {
	*Service
}

type Controller struct {
	*Service
}

func NewController(router *http.ServeMux, deps ControllerDeps) *Controller {
	c := &Controller{Service: deps.Service}
	router.Handle("POST /download", c.Download())
	return c
}

func (c *Controller) Download() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := req.HandleBody[DownloadRequest](&w, r)
		if err != nil {
			return
		}

		if body.Delimiter == "" {
			body.Delimiter = ","
		}
		if body.Format == "" {
			body.Format = "csv"
		}

		if err := body.Credentials.Validate(); err != nil {
			res.Json(w, map[string]any{"detail": err.Error()}, http.StatusBadRequest)
			return
		}
		if body.Query == "" {
			res.Json(w, map[string]any{"detail": "QUERY is required"}, http.StatusBadRequest)
			return
		}
		if _, err := delimiterRune(body.Delimiter); err != nil {
			res.Json(w, map[string]any{"detail": err.Error()}, http.StatusBadRequest)
			return
		}
		if err := validateFormat(body.Format); err != nil {
			res.Json(w, map[string]any{"detail": err.Error()}, http.StatusBadRequest)
			return
		}

		file, err := c.Service.Download(r.Context(), body)
		if err != nil {
			var connErr *dbconn.ConnectError
			if errors.As(err, &connErr) {
				res.Json(w, map[string]any{"detail": err.Error()}, http.StatusBadRequest)
				return
			}
			log.Printf("export failed: %v", err)
			res.Json(w, map[string]any{"detail": "Export Error: " + err.Error()}, http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+file.Name)
		w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(file.Data)
	}
}
