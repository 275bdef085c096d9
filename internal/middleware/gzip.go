package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// compressibleTypes ответы этих типов сжимаются, если клиент поддерживает gzip
var compressibleTypes = map[string]struct{}{
	"application/json": {},
	"text/html":        {},
	"text/plain":       {},
}

// gzipBodyReader распаковывает тело запроса и закрывает исходное тело вместе с собой
type gzipBodyReader struct {
	src io.ReadCloser
	*gzip.Reader
}

func newGzipBodyReader(src io.ReadCloser) (*gzipBodyReader, error) {
	zr, err := gzip.NewReader(src)
	if err != nil {
		return nil, err
	}
	return &gzipBodyReader{src: src, Reader: zr}, nil
}

func (r *gzipBodyReader) Close() error {
	if err := r.Reader.Close(); err != nil {
		return err
	}
	return r.src.Close()
}

// shouldCompress проверяет Content-Type без параметров
func shouldCompress(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	_, ok := compressibleTypes[strings.ToLower(strings.TrimSpace(mediaType))]
	return ok
}

// gzipResponseWriter решает о сжатии при записи заголовка.
// gzip.Writer берётся из пула только когда ответ действительно сжимается
type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	w.Header().Add("Vary", "Accept-Encoding")

	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices &&
		statusCode != http.StatusNoContent && shouldCompress(w.Header().Get("Content-Type")) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")

		w.zw = gzipWriterPool.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if w.zw != nil {
		return w.zw.Write(data)
	}

	return w.ResponseWriter.Write(data)
}

func (w *gzipResponseWriter) Close() error {
	if w.zw == nil {
		return nil
	}

	err := w.zw.Close()
	w.zw.Reset(io.Discard)
	gzipWriterPool.Put(w.zw)
	w.zw = nil

	return err
}

// GzipMiddleware распаковывает gzip запросы и сжимает ответы для клиентов с Accept-Encoding: gzip
func GzipMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				body, err := newGzipBodyReader(r.Body)
				if err != nil {
					logger.Error("Failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("method", r.Method),
					)
					http.Error(w, "Failed to decompress request body", http.StatusBadRequest)
					return
				}
				defer func() {
					if err := body.Close(); err != nil {
						logger.Warn("Failed to close gzip request body", zap.Error(err))
					}
				}()
				r.Body = body
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer func() {
				if err := gw.Close(); err != nil {
					logger.Error("Failed to close gzip writer",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
				}
			}()

			next.ServeHTTP(gw, r)
		})
	}
}
