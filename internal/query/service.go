package query

import (
	"context"
	"time"

	"sqlgateway/configs"
	"sqlgateway/pkg/dbconn"
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

// Run opens a connection for this request, executes the query and returns
// the rows as JSON-ready records. The connection is closed before returning.
func (s *Service) Run(ctx context.Context, req *RunRequest) ([]map[string]any, error) {
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

	return rs.Records(), nil
}
