package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
	query   map[string]string
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest выполняет запрос к роутеру в обход сети. Тело ответа нужно закрыть.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{
		headers: make(map[string]string),
		query:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(&options)
	}

	request := httptest.NewRequest(args.Method, args.URL, args.Body)
	if args.Body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	if len(options.query) > 0 {
		q := request.URL.Query()
		for k, v := range options.query {
			q.Set(k, v)
		}
		request.URL.RawQuery = q.Encode()
	}

	recorder := httptest.NewRecorder()

	args.Router.ServeHTTP(recorder, request)

	return recorder.Result(), nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}

func WithQuery(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.query[name] = value
	}
}
