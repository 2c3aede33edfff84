package response

import (
	"gather-venues/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type LandingSearchResponse struct {
	View     string   `json:"view"`
	City     string   `json:"city"`
	Types    []string `json:"types"`
	MinPrice int      `json:"minPrice"`
	MaxPrice int      `json:"maxPrice"`
}

func FromSearchResultView(rm *queries.SearchResultView) *LandingSearchResponse {
	resp := &LandingSearchResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}
