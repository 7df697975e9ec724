package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previewkit/tme"
	"github.com/previewkit/tme/mock"
	"github.com/previewkit/tme/resolve"
)

func testDeps(t *testing.T, fetcher *mock.Fetcher, extractor *mock.Extractor) (*Dependencies, *bytes.Buffer) {
	t.Helper()
	var stdout bytes.Buffer
	return &Dependencies{
		Ctx:      context.Background(),
		Stdout:   &stdout,
		Stderr:   &bytes.Buffer{},
		Resolver: resolve.NewResolver(fetcher, extractor),
	}, &stdout
}

func TestGetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints a single record as JSON", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractProfileFn: func(html string) (*tme.Resource, error) {
				return &tme.Resource{Bot: &tme.Bot{Type: "bot", Username: "roundifyrobot"}}, nil
			},
		}
		deps, stdout := testDeps(t, fetcher, extractor)

		cmd := &GetCmd{Inputs: []string{"roundifyrobot"}}
		require.NoError(t, cmd.Run(deps))

		var body map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &body))
		assert.Equal(t, "bot", body["type"])
		assert.Equal(t, "roundifyrobot", body["username"])
	})

	t.Run("prints the error shape and fails for a private invite", func(t *testing.T) {
		t.Parallel()

		deps, stdout := testDeps(t, &mock.Fetcher{}, &mock.Extractor{})

		cmd := &GetCmd{Inputs: []string{"+abcd"}}
		err := cmd.Run(deps)
		require.Error(t, err)

		var body tme.ErrorResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &body))
		assert.Equal(t, "private_group", body.Type)
	})

	t.Run("prints an array for multiple inputs, mixing records and errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractProfileFn: func(html string) (*tme.Resource, error) {
				return &tme.Resource{Channel: &tme.Channel{Type: "channel"}}, nil
			},
		}
		deps, stdout := testDeps(t, fetcher, extractor)

		cmd := &GetCmd{Inputs: []string{"one", "+invite"}}
		err := cmd.Run(deps)
		require.Error(t, err) // one of the inputs failed

		var body []map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, "channel", body[0]["type"])
		assert.Equal(t, "private_group", body[1]["type"])
	})
}
