package handler

import (
	"net/http"
	"sync"

	"kwagala/config"
	"kwagala/di"
	"kwagala/shared/logger"
)

var (
	once    sync.Once
	service http.Handler
)

// Handler is the serverless entrypoint. The service graph is built on the first request.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		service = di.InitializeService().Handler()
	})

	service.ServeHTTP(w, r)
}
