// Package output delivers the bytes of a response to where the user asked for them.
package output

import (
	"context"
	"io"
	"os"
	"strings"

	"cc-curl/application/util/uri"
	iolib "cc-curl/lib/io"

	"github.com/pkg/errors"
)

// Sink receives the whole output in a single call.
type Sink interface {
	Put(ctx context.Context, data []byte) error
}

// S3ClientFunc creates the client used for s3:// targets.
type S3ClientFunc func(ctx context.Context) (PutObjectAPI, error)

// Open resolves target into a sink.
// An empty target or "-" is stdout, "s3://bucket/key" an object and anything else a file path.
func Open(ctx context.Context, target string, stdout io.Writer, newS3Client S3ClientFunc) (Sink, error) {
	switch {
	case target == "" || target == "-":
		return &Writer{W: stdout}, nil
	case strings.HasPrefix(target, "s3://"):
		bucket, key, err := parseS3Target(target)
		if err != nil {
			return nil, err
		}

		client, err := newS3Client(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "creating s3 client")
		}

		return &S3{Client: client, Bucket: bucket, Key: key}, nil
	default:
		return &File{Path: target}, nil
	}
}

func parseS3Target(target string) (bucket, key string, err error) {
	u, err := uri.Parse(target)
	if err != nil {
		return "", "", errors.Wrap(err, "parsing s3 target")
	}

	bucket, key = u.Host(), strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", errors.Errorf("s3 target needs both bucket and key: %s", target)
	}

	return bucket, key, nil
}

type Writer struct {
	W io.Writer
}

func (w *Writer) Put(_ context.Context, data []byte) error {
	if _, err := iolib.WriteFull(w.W, data); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}

type File struct {
	Path string
}

func (f *File) Put(_ context.Context, data []byte) error {
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", f.Path)
	}
	return nil
}
