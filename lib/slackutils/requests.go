package slackutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/graytonio/slackmoji/lib/config"
)

const slackAPI = "https://slack.com/api/"

// RawSlackRequestJSON calls an API method the slack client does not wrap,
// sending body as JSON. It returns the response body and status code.
func RawSlackRequestJSON(ctx context.Context, method string, path string, body any, query map[string]string) ([]byte, int, error) {
	reqUrl, err := url.JoinPath(slackAPI, path)
	if err != nil {
		return nil, -1, err
	}

	var reqBody io.Reader
	if body != nil {
		bodyData, err := json.Marshal(body)
		if err != nil {
			return nil, -1, err
		}
		reqBody = bytes.NewBuffer(bodyData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqUrl, reqBody)
	if err != nil {
		return nil, -1, err
	}

	q := req.URL.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", config.SlackToken()))

	logrus.WithField("method", method).WithField("path", path).Debug("sending raw slack request")
	resp, err := config.SlackHTTPClient.Do(req)
	if err != nil {
		return nil, -1, errors.Wrapf(err, "request to %s failed", path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, -1, err
	}

	return respBody, resp.StatusCode, nil
}
