package connection

import (
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
	router.Handle("POST /test-connection", c.Test())
	return c
}

func (c *Controller) Test() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := req.HandleBody[dbconn.Credentials](&w, r)
		if err != nil {
			return
		}

		if err := body.Validate(); err != nil {
			res.Json(w, map[string]any{"detail": err.Error()}, http.StatusBadRequest)
			return
		}

		if err := c.Service.Test(r.Context(), body); err != nil {
			res.Json(w, map[string]any{"detail": err.Error()}, http.StatusBadRequest)
			return
		}

		res.Json(w, TestResponse{Status: "success", Message: "connected"}, http.StatusOK)
	}
}
