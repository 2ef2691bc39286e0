package connection

import (
	"context"

	"sqlgateway/pkg/dbconn"
)

type Service struct {
	open dbconn.OpenFunc
}

func NewService() *Service {
	return &Service{open: dbconn.Open}
}

// Test opens a connection with the supplied credentials and closes it right
// away. A nil error means the database accepted the login.
func (s *Service) Test(ctx context.Context, creds *dbconn.Credentials) error {
	db, err := s.open(ctx, creds)
	if err != nil {
		return err
	}
	return db.Close()
}
