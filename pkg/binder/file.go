package binder

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"reflect"
	"strings"
)

// FileUpload is an uploaded file read fully into memory.
type FileUpload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// File creates a binder for multipart/form-data uploads. Struct fields tagged
// `file:"name"` of type FileUpload or *FileUpload receive the first file sent
// under that form field. Requests of other media types are reported as
// ErrBinderNotApplicable so that another binder can take over.
//
//	type uploadRequest struct {
//		Image *binder.FileUpload `file:"image"`
//	}
func File(opts ...Option) func(r *http.Request, v any) error {
	o := newOptions(opts)

	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected multipart/form-data", ErrMissingContentType)
		}
		if mediaType(contentType) != "multipart/form-data" {
			return ErrBinderNotApplicable
		}

		_, params, err := mime.ParseMediaType(contentType)
		if err != nil || params["boundary"] == "" {
			return fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a non-nil pointer to struct", ErrFailedToParseForm)
		}

		r.Body = http.MaxBytesReader(nil, r.Body, o.maxBodySize)
		if err := r.ParseMultipartForm(o.maxBodySize); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return fmt.Errorf("%w: max %d bytes", ErrRequestTooLarge, o.maxBodySize)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}

		rv = rv.Elem()
		rt := rv.Type()
		for i := range rv.NumField() {
			field := rv.Field(i)
			tag := rt.Field(i).Tag.Get("file")
			if tag == "" || tag == "-" || !field.CanSet() {
				continue
			}

			headers := r.MultipartForm.File[tag]
			if len(headers) == 0 {
				continue
			}

			upload, err := readFileHeader(headers[0])
			if err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrFailedToParseForm, rt.Field(i).Name, err)
			}
			if err := setUpload(field, upload); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrFailedToParseForm, rt.Field(i).Name, err)
			}
		}

		return nil
	}
}

var fileUploadType = reflect.TypeOf(FileUpload{})

func setUpload(field reflect.Value, upload *FileUpload) error {
	switch field.Type() {
	case fileUploadType:
		field.Set(reflect.ValueOf(*upload))
	case reflect.PointerTo(fileUploadType):
		field.Set(reflect.ValueOf(upload))
	default:
		return fmt.Errorf("unsupported type for file field: %s", field.Type())
	}
	return nil
}

func readFileHeader(fh *multipart.FileHeader) (*FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	ct := fh.Header.Get("Content-Type")
	if ct != "" {
		ct = mediaType(ct)
	}

	return &FileUpload{
		Filename:    sanitizeFilename(fh.Filename),
		ContentType: ct,
		Content:     content,
	}, nil
}

// sanitizeFilename strips directory components and null bytes.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")
	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		return "unnamed"
	}
	return filename
}
