package utilities

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var timeType = reflect.TypeOf(time.Time{})

// DecodeBody fills dst from a JSON body or from the text fields of a multipart form.
// The parsed form is returned so the caller can collect its files; it is nil for JSON.
func DecodeBody(c *gin.Context, dst interface{}) (*multipart.Form, bool) {
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil, DecodeJSON(c, dst)
	}

	form, err := c.MultipartForm()
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			UploadFailed(c, err)
			return nil, false
		}
		Fail(c, http.StatusBadRequest, KindInvalidFormat, "Data formulir tidak valid", err)
		return nil, false
	}
	if err := DecodeForm(form, dst); err != nil {
		Fail(c, http.StatusBadRequest, KindInvalidFormat, "Format data tidak valid", err)
		return nil, false
	}
	return form, true
}

// DecodeForm maps text fields named after dst's json tags into dst.
// Strings are taken verbatim, dates accept YYYY-MM-DD and any other kind is read as JSON.
func DecodeForm(form *multipart.Form, dst interface{}) error {
	t := reflect.TypeOf(dst)
	if t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return errors.New("form target must be a pointer to struct")
	}

	values := map[string]interface{}{}
	if err := collectFormFields(form, t.Elem(), values); err != nil {
		return err
	}
	b, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func collectFormFields(form *multipart.Form, t reflect.Type, values map[string]interface{}) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if f.Anonymous && name == "" {
			if err := collectFormFields(form, f.Type, values); err != nil {
				return err
			}
			continue
		}
		if name == "" || name == "-" || !f.IsExported() {
			continue
		}
		raw, ok := form.Value[name]
		if !ok || len(raw) == 0 {
			continue
		}
		v, err := formValue(f.Type, strings.TrimSpace(raw[0]))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		values[name] = v
	}
	return nil
}

func formValue(t reflect.Type, raw string) (interface{}, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch {
	case t.Kind() == reflect.String:
		return raw, nil
	case t == timeType:
		if raw == "" {
			return nil, nil
		}
		d, err := ParseDate(raw)
		if err != nil {
			return nil, err
		}
		return d.Format(time.RFC3339), nil
	case raw == "":
		return nil, nil
	case !json.Valid([]byte(raw)):
		return nil, fmt.Errorf("%q is not a valid %s", raw, t.Kind())
	default:
		return json.RawMessage(raw), nil
	}
}
