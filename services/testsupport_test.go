package services

import (
	"io"
	"net/http/httptest"
	"time"

	"github.com/sirupsen/logrus"

	"cakmak-pos/upstream"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testClient(srv *httptest.Server) *upstream.Client {
	return upstream.NewClient(srv.URL, 5*time.Second, quietLogger())
}
