package test

import (
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

func bodyString(resp *http.Response) string {
	body := resp.Body
	defer body.Close()

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return "[!] error: failed to read response body: " + err.Error()
	}

	return string(bodyBytes)
}

func bodyJSON(resp *http.Response) *gjson.Result {
	body := gjson.Parse(bodyString(resp))
	return &body
}
