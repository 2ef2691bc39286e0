package query

import "sqlgateway/pkg/dbconn"

type RunRequest struct {
	dbconn.Credentials
	Query string `json:"QUERY"`
}

type RunResponse struct {
	Data []map[string]any `json:"data"`
}
