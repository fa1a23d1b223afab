// Package testhelpers provides reusable test utilities for the GuessLab test
// suites: httpmock setup, advisor endpoint responders, and digest fixtures.
package testhelpers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jarcoal/httpmock"

	"github.com/p1xelfault/guesslab/lib/advisor"
)

// AdvisorTestURL is the base URL advisor clients under test should be built with.
const AdvisorTestURL = "https://advisor.test"

// generateContentPattern matches any generateContent call against the test URL.
const generateContentPattern = `=~^https://advisor\.test/v1beta/models/.*:generateContent`

// SetupHTTPMock initializes httpmock, activates it, and returns a cleanup function.
// This ensures consistent setup/teardown across tests.
func SetupHTTPMock() func() {
	httpmock.Activate()

	return func() {
		httpmock.DeactivateAndReset()
	}
}

// Wire shape of a successful generateContent response.
type (
	generateContentBody struct {
		Candidates []candidateBody `json:"candidates"`
	}

	candidateBody struct {
		Content contentBody `json:"content"`
	}

	contentBody struct {
		Parts []partBody `json:"parts"`
	}

	partBody struct {
		Text string `json:"text"`
	}
)

// textResponse wraps raw text into the generateContent response shape.
func textResponse(text string) generateContentBody {
	return generateContentBody{
		Candidates: []candidateBody{
			{Content: contentBody{Parts: []partBody{{Text: text}}}},
		},
	}
}

// mustMarshal marshals v to JSON or panics in tests if it fails.
func mustMarshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return string(b)
}

// MockAdvisorSuccess registers a responder that answers the structured
// analysis prompt with the given analysis and the candidate prompt with the
// given candidate lines. The two prompts hit the same endpoint, so the
// responder dispatches on the prompt text.
func MockAdvisorSuccess(analysis advisor.Analysis, candidates []string) {
	analysisText := mustMarshal(analysis)
	candidatesText := strings.Join(candidates, "\n")

	httpmock.RegisterResponder(http.MethodPost, generateContentPattern,
		func(req *http.Request) (*http.Response, error) {
			prompt, err := io.ReadAll(req.Body)
			if err != nil {
				return httpmock.NewStringResponse(http.StatusBadRequest, ""), nil
			}

			text := candidatesText
			if strings.Contains(string(prompt), "Respond in JSON format") {
				text = analysisText
			}

			return httpmock.NewJsonResponse(http.StatusOK, textResponse(text))
		})
}

// MockAdvisorGarbage registers a responder whose analysis text is unparseable
// prose, to exercise the default-analysis fallback.
func MockAdvisorGarbage(candidates []string) {
	candidatesText := strings.Join(candidates, "\n")

	httpmock.RegisterResponder(http.MethodPost, generateContentPattern,
		func(req *http.Request) (*http.Response, error) {
			prompt, err := io.ReadAll(req.Body)
			if err != nil {
				return httpmock.NewStringResponse(http.StatusBadRequest, ""), nil
			}

			text := candidatesText
			if strings.Contains(string(prompt), "Respond in JSON format") {
				text = "I cannot comply with structured output today."
			}

			return httpmock.NewJsonResponse(http.StatusOK, textResponse(text))
		})
}

// MockAdvisorUnavailable registers a responder that fails every call with a
// 503, simulating an unreachable service.
func MockAdvisorUnavailable() {
	httpmock.RegisterResponder(http.MethodPost, generateContentPattern,
		httpmock.NewStringResponder(http.StatusServiceUnavailable, "overloaded"))
}

// AdvisorCallCount returns how many calls reached the mocked advisor endpoint.
// httpmock records a regexp-matched request under both the responder key and
// the exact URL key, so summing GetCallCountInfo would count each call twice;
// GetTotalCallCount counts each request once.
func AdvisorCallCount() int {
	return httpmock.GetTotalCallCount()
}
