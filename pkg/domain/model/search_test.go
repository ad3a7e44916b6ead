package model_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/reposcore/pkg/domain/model"
)

func ptr(s string) *string {
	return &s
}

func TestValidateCreated(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "plain date", input: "2023-01-15", valid: true},
		{name: "greater than", input: ">2023-01-15", valid: true},
		{name: "less than", input: "<2023-01-15", valid: true},
		{name: "greater or equal", input: ">=2023-01-15", valid: true},
		{name: "less or equal", input: "<=2023-01-15", valid: true},
		{name: "range", input: "2023-01-15..2023-01-30", valid: true},
		{name: "slash separated", input: "2023/01/15", valid: false},
		{name: "not a date", input: "invalid-date", valid: false},
		{name: "single digit month and day", input: "2023-1-1", valid: false},
		{name: "reversed operator", input: "=>2023-01-15", valid: false},
		{name: "range with slash", input: "2023-01-15..2023/01/30", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := model.ValidateCreated(tc.input)
			if tc.valid {
				gt.NoError(t, err)
				return
			}

			var apiErr *model.APIError
			gt.True(t, errors.As(err, &apiErr))
			gt.V(t, apiErr.StatusCode).Equal(http.StatusBadRequest)
			gt.V(t, apiErr.ErrorCode).Equal(model.ErrorCodeBadRequest)
			gt.V(t, apiErr.Message).Equal(model.MsgInvalidCreated)
		})
	}
}

func TestParsePage(t *testing.T) {
	t.Run("valid positive numbers", func(t *testing.T) {
		gt.V(t, gt.R1(model.ParsePage("1")).NoError(t)).Equal(1)
		gt.V(t, gt.R1(model.ParsePage("100")).NoError(t)).Equal(100)
	})

	for _, input := range []string{"0", "-5", "abc", "1.5", "10abc", "", " 1"} {
		t.Run("reject "+input, func(t *testing.T) {
			_, err := model.ParsePage(input)
			var apiErr *model.APIError
			gt.True(t, errors.As(err, &apiErr))
			gt.V(t, apiErr.ErrorCode).Equal(model.ErrorCodeBadRequest)
			gt.V(t, apiErr.Message).Equal(model.MsgInvalidPage)
		})
	}
}

func TestSanitizeLanguage(t *testing.T) {
	t.Run("removes characters outside the allow list", func(t *testing.T) {
		gt.V(t, model.SanitizeLanguage("javascript' OR 1=1--")).Equal("javascript OR 11--")
		gt.V(t, model.SanitizeLanguage("java<script>alert(1)</script>")).Equal("javascriptalert1script")
		gt.V(t, model.SanitizeLanguage("python; DROP TABLE users;")).Equal("python DROP TABLE users")
	})

	t.Run("keeps allowed symbols and spaces", func(t *testing.T) {
		for _, lang := range []string{"C++", "C#", "Objective-C", "F#", "Type Script", "typescript", ""} {
			gt.V(t, model.SanitizeLanguage(lang)).Equal(lang)
		}
	})
}

func TestSearchParamsQuery(t *testing.T) {
	testCases := []struct {
		name   string
		params model.SearchParams
		expect string
	}{
		{name: "empty", params: model.SearchParams{}, expect: ""},
		{name: "language only", params: model.SearchParams{Language: "go"}, expect: "language:go"},
		{name: "created only", params: model.SearchParams{Created: ptr(">2024-01-01")}, expect: "created:>2024-01-01"},
		{
			name:   "both joined by single space",
			params: model.SearchParams{Language: " rust ", Created: ptr("2024-01-01..2024-02-01")},
			expect: "language:rust created:2024-01-01..2024-02-01",
		},
		{name: "language is sanitized", params: model.SearchParams{Language: "go;"}, expect: "language:go"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, tc.params.Query()).Equal(tc.expect)
		})
	}
}

func TestSearchParamsFromQuery(t *testing.T) {
	t.Run("no parameters", func(t *testing.T) {
		params := gt.R1(model.SearchParamsFromQuery(url.Values{})).NoError(t)
		gt.V(t, params.Language).Equal("")
		gt.True(t, params.Created == nil)
		gt.V(t, params.Page).Equal(0)
	})

	t.Run("all parameters", func(t *testing.T) {
		q := url.Values{
			"language": {"C++<>"},
			"created":  {">=2024-01-01"},
			"page":     {"3"},
		}
		params := gt.R1(model.SearchParamsFromQuery(q)).NoError(t)
		gt.V(t, params.Language).Equal("C++")
		gt.V(t, *params.Created).Equal(">=2024-01-01")
		gt.V(t, params.Page).Equal(3)
	})

	t.Run("invalid created", func(t *testing.T) {
		_, err := model.SearchParamsFromQuery(url.Values{"created": {"2023/10/26"}})
		gt.Error(t, err)
	})

	t.Run("empty created is rejected", func(t *testing.T) {
		_, err := model.SearchParamsFromQuery(url.Values{"created": {""}})
		gt.Error(t, err)
	})

	t.Run("invalid page", func(t *testing.T) {
		_, err := model.SearchParamsFromQuery(url.Values{"page": {"0"}})
		gt.Error(t, err)
	})
}
