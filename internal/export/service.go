package export

import (
	"context"
	"time"

	"sqlgateway/configs"
	"sqlgateway/pkg/dbconn"
)

const (
	filenameBase     = "query_export"
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Service struct {
	repo    *Repository
	open    dbconn.OpenFunc
	timeout time.Duration
}

func NewService(repo *Repository, conf *configs.Config) *Service {
	return &Service{
		repo:    repo,
		open:    dbconn.Open,
		timeout: conf.QueryTimeout,
	}
}

// Download executes the query and serializes the result set in the
// requested format. FORMAT "excel" produces a workbook; everything else is
// delimiter-separated text named after the format itself.
func (s *Service) Download(ctx context.Context, req *DownloadRequest) (*File, error) {
	db, err := s.open(ctx, &req.Credentials)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	rs, err := s.repo.Run(ctx, db, req.Query)
	if err != nil {
		return nil, err
	}

	if req.Format == "excel" {
		data, err := writeWorkbook(rs)
		if err != nil {
			return nil, err
		}
		return &File{
			Name:        filenameBase + ".xlsx",
			ContentType: excelContentType,
			Data:        data,
		}, nil
	}

	delim, err := delimiterRune(req.Delimiter)
	if err != nil {
		return nil, err
	}
	data, err := writeDelimited(rs, delim)
	if err != nil {
		return nil, err
	}

	contentType := "text/plain"
	if req.Format == "csv" {
		contentType = "text/csv"
	}
	return &File{
		Name:        filenameBase + "." + req.Format,
		ContentType: contentType,
		Data:        data,
	}, nil
}
