package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
)

type APIResponse interface {
	Print() error
	Err() error
}

var _ APIResponse = &TypedAPIResponse[struct{}]{}

type TypedAPIResponse[TBody any] struct {
	StatusCode int   `json:"statusCode"`
	Body       TBody `json:"body"`
	Error      error `json:"error"`
}

func NewTypedAPIResponse[TBody any](resp *http.Response, err error) *TypedAPIResponse[TBody] {
	apiRes := TypedAPIResponse[TBody]{
		Error: err,
	}
	if resp == nil {
		return &apiRes
	}

	apiRes.StatusCode = resp.StatusCode
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		apiRes.Error = errors.Wrap(err, "failed to read response body")
		return &apiRes
	}

	switch strings.Split(resp.Header.Get("Content-Type"), ";")[0] {
	case "application/json":
		var body TBody
		if err := json.Unmarshal(out, &body); err != nil {
			apiRes.Error = errors.Wrap(err, "failed to decode response body")
			return &apiRes
		}
		apiRes.Body = body
	case "text/plain":
		apiRes.Error = fmt.Errorf("%s", strings.TrimSpace(string(out)))
	default:
		apiRes.Error = fmt.Errorf("unknown content type %s", strings.Split(resp.Header.Get("Content-Type"), ";")[0])
	}

	return &apiRes
}

func (resp *TypedAPIResponse[TBody]) Err() error {
	return resp.Error
}

func (resp *TypedAPIResponse[TBody]) Print() error {
	if resp.Error != nil {
		fmt.Println(resp.Error.Error())
		return nil
	}

	jsonBody, err := json.Marshal(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal body as JSON")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, jsonBody, "", "    "); err != nil {
		return err
	}

	fmt.Println(string(pretty.Color(buf.Bytes(), nil)))
	return nil
}
