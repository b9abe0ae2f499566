package s3

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeObject struct {
	data        []byte
	contentType string
	filename    string
}

// fakeS3 отвечает на path-style запросы одного бакета так же, как MinIO:
// HEAD/PUT бакета, PUT/GET/HEAD объекта, NoSuchKey в XML.
type fakeS3 struct {
	bucket string

	mu         sync.Mutex
	created    bool
	bucketPuts int
	objects    map[string]fakeObject
	puts       []http.Header
}

func newFakeS3(t *testing.T, bucket string, created bool) (*fakeS3, *httptest.Server) {
	t.Helper()
	f := &fakeS3{bucket: bucket, created: created, objects: map[string]fakeObject{}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeS3) object(key string) (fakeObject, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.objects[key]
	return o, ok
}

func (f *fakeS3) state() (created bool, bucketPuts int, puts []http.Header) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created, f.bucketPuts, append([]http.Header(nil), f.puts...)
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	bucket, key, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if bucket != f.bucket {
		writeS3Error(w, http.StatusNotFound, "NoSuchBucket", r.URL.Path)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if key == "" {
		switch r.Method {
		case http.MethodHead:
			if !f.created {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
		case http.MethodPut:
			_, _ = io.Copy(io.Discard, r.Body)
			f.created = true
			f.bucketPuts++
			w.WriteHeader(http.StatusOK)
		default:
			writeS3Error(w, http.StatusNotImplemented, "NotImplemented", r.URL.Path)
		}
		return
	}

	switch r.Method {
	case http.MethodPut:
		data, err := readPayload(r)
		if err != nil {
			writeS3Error(w, http.StatusBadRequest, "IncompleteBody", err.Error())
			return
		}
		f.objects[key] = fakeObject{
			data:        data,
			contentType: r.Header.Get("Content-Type"),
			filename:    r.Header.Get("X-Amz-Meta-Filename"),
		}
		f.puts = append(f.puts, r.Header.Clone())
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet, http.MethodHead:
		o, ok := f.objects[key]
		if !ok {
			writeS3Error(w, http.StatusNotFound, "NoSuchKey", r.URL.Path)
			return
		}
		h := w.Header()
		h.Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		h.Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		h.Set("Content-Type", o.contentType)
		h.Set("Content-Length", strconv.Itoa(len(o.data)))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(o.data)
		}
	default:
		writeS3Error(w, http.StatusNotImplemented, "NotImplemented", r.URL.Path)
	}
}

// readPayload снимает aws-chunked обёртку, которую minio-go добавляет
// к PUT по http (streaming signature v4).
func readPayload(r *http.Request) ([]byte, error) {
	if !strings.HasPrefix(r.Header.Get("X-Amz-Content-Sha256"), "STREAMING-") {
		return io.ReadAll(r.Body)
	}
	br := bufio.NewReader(r.Body)
	var out bytes.Buffer
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("chunk header: %w", err)
		}
		sizeHex, _, _ := strings.Cut(strings.TrimRight(line, "\r\n"), ";")
		n, err := strconv.ParseInt(sizeHex, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("chunk size %q: %w", sizeHex, err)
		}
		if n == 0 {
			return out.Bytes(), nil
		}
		if _, err := io.CopyN(&out, br, n); err != nil {
			return nil, fmt.Errorf("chunk body: %w", err)
		}
		if _, err := br.Discard(2); err != nil {
			return nil, fmt.Errorf("chunk trailer: %w", err)
		}
	}
}

func writeS3Error(w http.ResponseWriter, status int, code, resource string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>%s</Code><Message>%s</Message><Resource>%s</Resource><RequestId>fake</RequestId></Error>`,
		code, code, resource)
}
