package models

import "strconv"

const (
	DefaultDisplaySize = 100
	DefaultPage        = 1
)

// TransactionFilters carries the search parameters supported by the
// ledger list endpoint. Zero values are omitted from the query string.
type TransactionFilters struct {
	Reference   string `json:"reference" query:"reference"`
	Email       string `json:"email" query:"email"`
	State       string `json:"state" query:"state"`
	CardBrand   string `json:"card_brand" query:"card_brand"`
	FromDate    string `json:"from_date" query:"from_date" validate:"omitempty,iso8601"`
	ToDate      string `json:"to_date" query:"to_date" validate:"omitempty,iso8601"`
	Page        int    `json:"page" query:"page"`
	DisplaySize int    `json:"display_size" query:"display_size"`
}

// ToQueryParams flattens the filters into ledger query parameters.
func (f TransactionFilters) ToQueryParams() map[string]string {
	params := map[string]string{}

	add := func(key, value string) {
		if value != "" {
			params[key] = value
		}
	}

	add("reference", f.Reference)
	add("email", f.Email)
	add("state", f.State)
	add("card_brand", f.CardBrand)
	add("from_date", f.FromDate)
	add("to_date", f.ToDate)

	page := f.Page
	if page <= 0 {
		page = DefaultPage
	}
	params["page"] = strconv.Itoa(page)

	displaySize := f.DisplaySize
	if displaySize <= 0 {
		displaySize = DefaultDisplaySize
	}
	params["display_size"] = strconv.Itoa(displaySize)

	return params
}
