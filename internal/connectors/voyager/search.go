package voyager

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
	"github.com/custodia-labs/tenure-cli/internal/logger"
)

// searchResponse mirrors the slice of the search payload the connector
// consumes. The endpoint nests the result clusters two levels deep.
type searchResponse struct {
	Data struct {
		Data struct {
			SearchDashClustersByAll struct {
				Elements []struct {
					Items []searchItem `json:"items"`
				} `json:"elements"`
			} `json:"searchDashClustersByAll"`
		} `json:"data"`
	} `json:"data"`
}

type searchItem struct {
	Item struct {
		EntityResult string `json:"*entityResult"`
	} `json:"item"`
}

// Search yields identifiers for results [start, end) lazily. Pages are
// requested sequentially; a failed page is reported on the error
// channel and the search continues with the next page, leaving the
// abort decision to the caller. Both channels close when the range is
// exhausted, a page comes back short, or ctx is cancelled.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery, start, end int) (<-chan domain.ProfileID, <-chan error) {
	ids := make(chan domain.ProfileID)
	errs := make(chan error, 1)

	go func() {
		defer close(ids)
		defer close(errs)

		yielded := 0
		for offset := start; offset < end; offset += c.cfg.PageSize {
			page, err := c.searchPage(ctx, query, offset)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				select {
				case errs <- err:
				case <-ctx.Done():
					return
				}
				continue
			}

			logger.Debug("search page offset=%d returned %d results", offset, len(page))

			for _, id := range page {
				if start+yielded >= end {
					return
				}
				select {
				case ids <- id:
					yielded++
				case <-ctx.Done():
					return
				}
			}

			if len(page) < c.cfg.PageSize {
				// Short page: source exhausted.
				return
			}
		}
	}()

	return ids, errs
}

// searchPage requests one page of people results at the given offset.
func (c *Client) searchPage(ctx context.Context, query domain.SearchQuery, offset int) ([]domain.ProfileID, error) {
	reqURL := c.cfg.BaseURL + "/voyager/api/graphql?variables=" +
		searchVariables(query, offset, c.cfg.PageSize) +
		"&queryId=voyagerSearchDashClusters." + c.cfg.SearchQueryID

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.linkedin.normalized+json+2.1")

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			URL:        reqURL,
		}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	elements := payload.Data.Data.SearchDashClustersByAll.Elements
	if len(elements) == 0 {
		return nil, nil
	}

	var page []domain.ProfileID
	for _, item := range elements[0].Items {
		if id := extractProfileID(item.Item.EntityResult); id != "" {
			page = append(page, domain.ProfileID(id))
		}
	}
	return page, nil
}

// searchVariables builds the GraphQL variables string for one page.
// Only person-type results are requested; past-company and school
// filters are appended when set.
func searchVariables(query domain.SearchQuery, offset, count int) string {
	filters := "(key:resultType,value:List(PEOPLE))"
	if query.SchoolID != "" {
		filters += ",(key:schoolFilter,value:List(" + query.SchoolID + "))"
	}
	if query.PastCompanyID != "" {
		filters += ",(key:pastCompany,value:List(" + query.PastCompanyID + "))"
	}

	keywords := ""
	if query.Keywords != "" {
		keywords = "keywords:" + url.QueryEscape(query.Keywords) + ","
	}

	return fmt.Sprintf(
		"(start:%d,count:%d,origin:FACETED_SEARCH,query:(%sflagshipSearchIntent:SEARCH_SRP,queryParameters:List(%s),includeFiltersInResponse:false))",
		offset, count, keywords, filters)
}

// extractProfileID pulls the profile identifier out of an entity result
// URN. The id sits in the seventh colon-separated field, before any
// comma-separated trailer.
func extractProfileID(entityResult string) string {
	parts := strings.Split(entityResult, ":")
	if len(parts) < 7 {
		return ""
	}
	id, _, _ := strings.Cut(parts[6], ",")
	return id
}
