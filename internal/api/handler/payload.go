package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

// maxMultipartMemory is the in-memory budget for parsed multipart forms; larger
// files spill to temporary files.
const maxMultipartMemory = 32 << 20

// payload reads request fields uniformly from a JSON body, a multipart form
// or an urlencoded form. The dashboard sends multipart when images are
// attached and JSON otherwise.
type payload struct {
	json  map[string]json.RawMessage
	form  url.Values
	files map[string][]*multipart.FileHeader
}

func readPayload(c echo.Context) (*payload, error) {
	req := c.Request()
	ctype := req.Header.Get(echo.HeaderContentType)

	switch {
	case strings.HasPrefix(ctype, echo.MIMEApplicationJSON):
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		p := &payload{json: map[string]json.RawMessage{}}
		if len(bytes.TrimSpace(body)) == 0 {
			return p, nil
		}
		if err := json.Unmarshal(body, &p.json); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		return p, nil

	case strings.HasPrefix(ctype, echo.MIMEMultipartForm):
		if err := req.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
		}
		return &payload{form: req.MultipartForm.Value, files: req.MultipartForm.File}, nil

	case strings.HasPrefix(ctype, echo.MIMEApplicationForm):
		if err := req.ParseForm(); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form")
		}
		return &payload{form: req.PostForm}, nil
	}

	return &payload{}, nil
}

// raw returns the JSON value stored under key, ignoring nulls.
func (p *payload) raw(key string) (json.RawMessage, bool) {
	v, ok := p.json[key]
	if !ok || string(bytes.TrimSpace(v)) == "null" {
		return nil, false
	}
	return v, true
}

// str returns the field as a string, or nil when it was not sent. JSON
// numbers and booleans are returned in their literal form.
func (p *payload) str(key string) *string {
	if v, ok := p.raw(key); ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			s = string(bytes.TrimSpace(v))
		}
		return &s
	}
	if vs, ok := p.form[key]; ok && len(vs) > 0 {
		s := vs[0]
		return &s
	}
	return nil
}

// text returns the field or "" when absent.
func (p *payload) text(key string) string {
	if s := p.str(key); s != nil {
		return *s
	}
	return ""
}

// first returns the first of keys that was sent.
func (p *payload) first(keys ...string) *string {
	for _, k := range keys {
		if s := p.str(k); s != nil {
			return s
		}
	}
	return nil
}

// localized reads a bilingual field sent as a {en, ar} JSON object, as a
// JSON-encoded string of that object, or as key[en]/key[ar] form fields.
// Either language may be nil when it was not sent.
func (p *payload) localized(key string) (en, ar *string) {
	var obj struct {
		EN *string `json:"en"`
		AR *string `json:"ar"`
	}
	if v, ok := p.raw(key); ok {
		if err := json.Unmarshal(v, &obj); err == nil {
			return obj.EN, obj.AR
		}
	}
	if s := p.str(key); s != nil && json.Unmarshal([]byte(*s), &obj) == nil {
		return obj.EN, obj.AR
	}
	return p.str(key + "[en]"), p.str(key + "[ar]")
}

// techList reads a tech stack sent as an array, a JSON array string or a
// comma-separated string. ok is false when the field was not sent.
func (p *payload) techList(key string) (tech []string, ok bool) {
	if v, found := p.raw(key); found {
		var list []string
		if err := json.Unmarshal(v, &list); err == nil {
			return cleanList(list), true
		}
	}
	if vs, found := p.form[key]; found && len(vs) > 1 {
		return cleanList(vs), true
	}
	s := p.str(key)
	if s == nil {
		return nil, false
	}
	return ParseTech(*s), true
}

// ParseTech splits a tech stack given as a JSON array string or a
// comma-separated list. Blank entries are dropped.
func ParseTech(s string) []string {
	var list []string
	if err := json.Unmarshal([]byte(s), &list); err == nil {
		return cleanList(list)
	}
	return cleanList(strings.Split(s, ","))
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// flag reads a boolean sent as a JSON bool or as a string, where only
// "true" counts as true. nil means the field was not sent.
func (p *payload) flag(key string) *bool {
	if v, ok := p.raw(key); ok {
		var b bool
		if err := json.Unmarshal(v, &b); err == nil {
			return &b
		}
	}
	s := p.str(key)
	if s == nil {
		return nil
	}
	b := strings.TrimSpace(*s) == "true"
	return &b
}

// integer reads a whole number. ok is false when the field was not sent;
// err is set when it was sent but is not an integer.
func (p *payload) integer(key string) (n int64, ok bool, err error) {
	if v, found := p.raw(key); found {
		if err := json.Unmarshal(v, &n); err == nil {
			return n, true, nil
		}
	}
	s := p.str(key)
	if s == nil {
		return 0, false, nil
	}
	n, err = strconv.ParseInt(strings.TrimSpace(*s), 10, 64)
	return n, true, err
}

// upload returns the first file sent under field, or nil.
func (p *payload) upload(field string) *ports.Upload {
	files := p.uploads(field)
	if len(files) == 0 {
		return nil
	}
	return &files[0]
}

// uploads returns every file sent under field.
func (p *payload) uploads(field string) []ports.Upload {
	headers := p.files[field]
	out := make([]ports.Upload, 0, len(headers))
	for _, fh := range headers {
		out = append(out, toUpload(fh))
	}
	return out
}

func toUpload(fh *multipart.FileHeader) ports.Upload {
	return ports.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
