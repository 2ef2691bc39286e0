package connection

type TestResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
