/*
Copyright © 2024 paul <paul@denknerd.org>
*/
package main

import (
	"fmt"
	"net/http"
	"os/exec"
	"strings"

	"github.com/toothbrush/canvas-link-finder/canvas"
	"gopkg.in/dnaeon/go-vcr.v3/cassette"
	"gopkg.in/dnaeon/go-vcr.v3/recorder"
)

// resolveToken prefers --auth-token-cmd; otherwise the token is looked up by --server-type in the
// credentials file (or $CANVAS_API_CRED).
func resolveToken() (string, error) {
	if len(AuthTokenCmd) > 0 {
		tokenCmdOutput, err := exec.Command(AuthTokenCmd[0], AuthTokenCmd[1:]...).Output()
		if err != nil {
			return "", fmt.Errorf("couldn't execute auth-token-cmd '%v': %w", AuthTokenCmd, err)
		}
		return strings.TrimSpace(strings.Split(string(tokenCmdOutput), "\n")[0]), nil
	}

	if ServerType == "" {
		return "", fmt.Errorf("please provide --auth-token-cmd, or --server-type to pick a token from your credentials")
	}

	creds, err := canvas.LoadCredentials(CredentialsFile)
	if err != nil {
		return "", fmt.Errorf("API credentials were not found: %w", err)
	}
	return creds.Token(ServerType)
}

// newAPI builds the Canvas client.  With withVCR set, traffic is recorded to (and replayed from) a
// local cassette; stop must be called once done so the cassette gets saved.
func newAPI(withVCR bool) (api *canvas.API, stop func() error, err error) {
	stop = func() error { return nil }

	token, err := resolveToken()
	if err != nil {
		return nil, stop, err
	}

	api, err = canvas.NewAPI(ServerURL, token)
	if err != nil {
		return nil, stop, fmt.Errorf("couldn't instantiate Canvas API: %w", err)
	}
	api.Timeout = Timeout
	api.Client.Timeout = Timeout

	if !withVCR {
		return api, stop, nil
	}

	opts := &recorder.Options{
		CassetteName:       "fixtures/canvas-link-finder",
		Mode:               recorder.ModeReplayWithNewEpisodes,
		SkipRequestLatency: true,
		RealTransport:      http.DefaultTransport,
	}
	r, err := recorder.NewWithOptions(opts)
	if err != nil {
		return nil, stop, fmt.Errorf("couldn't set up go-vcr recording: %w", err)
	}

	// Tokens have no business in a cassette.
	hook := func(i *cassette.Interaction) error {
		delete(i.Request.Headers, "Authorization")
		return nil
	}
	r.AddHook(hook, recorder.AfterCaptureHook)
	r.SetReplayableInteractions(true)

	vcrClient := r.GetDefaultClient()
	vcrClient.Timeout = Timeout
	api.Client = vcrClient

	debugLog("Recording Canvas traffic to %s.yaml\n", opts.CassetteName)

	return api, r.Stop, nil
}
