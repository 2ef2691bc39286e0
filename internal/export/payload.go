package export

import "sqlgateway/pkg/dbconn"

type DownloadRequest struct {
	dbconn.Credentials
	Query     string `json:"QUERY"`
	Delimiter string `json:"DELIMITER"`
	Format    string `json:"FORMAT"`
}

// File is a fully materialized export, ready to stream to the client.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}
