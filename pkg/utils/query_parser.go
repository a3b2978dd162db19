package utils

import (
	"net/url"
	"strconv"
	"strings"

	"inventory-system/pkg/types"
)

const (
	DefaultLimit = 200
	MaxLimit     = 500
)

// ParseFilterFromQuery разбирает search/sort/filter[...]/limit/offset/page.
func ParseFilterFromQuery(values url.Values) types.Filter {
	filter := types.Filter{
		Sort:   make(map[string]string),
		Filter: make(map[string]interface{}),
		Limit:  DefaultLimit,
		Offset: 0,
		Page:   1,
	}

	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			filterKey := key[7 : len(key)-1]
			if strings.Contains(vals[0], ",") {
				filter.Filter[filterKey] = strings.Split(vals[0], ",")
			} else {
				filter.Filter[filterKey] = vals[0]
			}
		}
		if strings.HasPrefix(key, "sort[") && strings.HasSuffix(key, "]") {
			sortKey := key[5 : len(key)-1]
			order := strings.ToLower(vals[0])
			if order == "asc" || order == "desc" {
				filter.Sort[sortKey] = order
			}
		}
	}

	if search := values.Get("search"); search != "" {
		filter.Search = search
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.ParseUint(limitStr, 10, 64); err == nil && l > 0 {
			if l > MaxLimit {
				l = MaxLimit
			}
			filter.Limit = l
		}
	}
	if offsetStr := values.Get("offset"); offsetStr != "" {
		if o, err := strconv.ParseUint(offsetStr, 10, 64); err == nil {
			filter.Offset = o
			if filter.Limit > 0 {
				filter.Page = (o / filter.Limit) + 1
			}
		}
	}
	// page имеет приоритет только если offset не задан
	if pageStr := values.Get("page"); pageStr != "" && filter.Offset == 0 {
		if p, err := strconv.ParseUint(pageStr, 10, 64); err == nil && p > 0 {
			filter.Page = p
			filter.Offset = (p - 1) * filter.Limit
		}
	}

	if wp := values.Get("withPagination"); wp == "true" || wp == "1" {
		filter.WithPagination = true
	}

	return filter
}

// ParseUint64Slice конвертирует строки в числа, пропуская мусор.
func ParseUint64Slice(strs []string) ([]uint64, error) {
	out := make([]uint64, 0, len(strs))
	for _, s := range strs {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
