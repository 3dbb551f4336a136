package dto

import "kwagala/shared/constant"

// QueryParams orders a repository listing. Zero values leave the order to the database.
type QueryParams struct {
	SortBy  string
	SortDir string
}

// Newest orders by creation time, latest first.
func Newest() QueryParams {
	return QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}
}
