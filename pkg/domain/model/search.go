package model

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/m-mizutani/reposcore/pkg/domain/types"
)

const (
	MsgInvalidCreated = "Invalid 'created' parameter. Must be in 'yyyy-mm-dd' format, or a range like '>yyyy-mm-dd', '<yyyy-mm-dd', or 'yyyy-mm-dd..yyyy-mm-dd'."
	MsgInvalidPage    = "Invalid 'page' parameter. Must be a positive number."
)

var (
	ptnValidCreated      = regexp.MustCompile(`^([<>]=?)?\d{4}-\d{2}-\d{2}(\.\.\d{4}-\d{2}-\d{2})?$`)
	ptnPageNumber        = regexp.MustCompile(`^\d+$`)
	ptnLanguageForbidden = regexp.MustCompile(`[^a-zA-Z0-9\s+#-]`)
)

// SearchParams is a validated set of repository search qualifiers. Page 0 means "not specified".
type SearchParams struct {
	Language string
	Created  *string
	Page     int
}

// SearchParamsFromQuery builds SearchParams from inbound query parameters. A
// parameter that is present but empty is validated as given.
func SearchParamsFromQuery(q url.Values) (*SearchParams, error) {
	params := &SearchParams{
		Language: SanitizeLanguage(q.Get("language")),
	}

	if q.Has("created") {
		created := q.Get("created")
		params.Created = &created
	}

	if q.Has("page") {
		page, err := ParsePage(q.Get("page"))
		if err != nil {
			return nil, err
		}
		params.Page = page
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}

func (x *SearchParams) Validate() error {
	if x.Created != nil {
		if err := ValidateCreated(*x.Created); err != nil {
			return err
		}
	}
	if x.Page < 0 {
		return NewBadRequestError(MsgInvalidPage)
	}
	return nil
}

// Query builds the upstream search qualifier string, e.g. "language:go created:>2024-01-01".
func (x *SearchParams) Query() string {
	var parts []string
	if lang := strings.TrimSpace(SanitizeLanguage(x.Language)); lang != "" {
		parts = append(parts, "language:"+lang)
	}
	if x.Created != nil && *x.Created != "" {
		parts = append(parts, "created:"+*x.Created)
	}
	return strings.Join(parts, " ")
}

// ValidateCreated checks a created qualifier such as "2023-01-15", ">=2023-01-15" or
// "2023-01-15..2023-01-30".
func ValidateCreated(created string) error {
	if !ptnValidCreated.MatchString(created) {
		return NewBadRequestError(MsgInvalidCreated, WithDetails(map[string]any{"created": created}))
	}
	return nil
}

// ParsePage parses a positive page number.
func ParsePage(page string) (int, error) {
	if !ptnPageNumber.MatchString(page) {
		return 0, NewBadRequestError(MsgInvalidPage, WithDetails(map[string]any{"page": page}))
	}

	n, err := strconv.Atoi(page)
	if err != nil || n <= 0 {
		return 0, NewBadRequestError(MsgInvalidPage, WithDetails(map[string]any{"page": page}))
	}

	return n, nil
}

// SanitizeLanguage removes every character except letters, digits, whitespace, '+', '#' and '-'.
func SanitizeLanguage(language string) string {
	return ptnLanguageForbidden.ReplaceAllString(language, "")
}

// SearchResponse is the envelope of both search and aggregate responses
type SearchResponse struct {
	RequestID types.RequestID     `json:"requestId"`
	Data      []*ScoredRepository `json:"data"`
	Error     string              `json:"error,omitempty"`
}
