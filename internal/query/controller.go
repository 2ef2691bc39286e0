package query

import (
	"errors"
	"log"
	"net/http"

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
	router.Handle("POST /execute-sql", c.Run())
	return c
}

func (c *Controller) Run() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := req.HandleBody[RunRequest](&w, r)
		if err != nil {
			return
		}

		if err := body.Credentials.Validate(); err != nil {
			res.Json(w, map[string]any{"detail": err.Error()}, http.StatusBadRequest)
			return
		}
		if body.Query == "" {
			res.Json(w, map[string]any{"detail": "QUERY is required"}, http.StatusBadRequest)
			return
		}

		records, err := c.Service.Run(r.Context(), body)
		if err != nil {
			var connErr *dbconn.ConnectError
			if errors.As(err, &connErr) {
				res.Json(w, map[string]any{"detail": err.Error()}, http.StatusBadRequest)
				return
			}
			log.Printf("query failed: %v", err)
			res.Json(w, map[string]any{"detail": err.Error()}, http.StatusInternalServerError)
			return
		}

		res.Json(w, RunResponse{Data: records}, http.StatusOK)
	}
}
