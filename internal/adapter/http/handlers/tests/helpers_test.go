package tests

import (
	"net/http"
	"net/http/httptest"

	"github.com/jongwon/todo-app/pkg/translator"
)

func newUnauthenticatedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
