package types

// Filter - параметры списочных запросов: поиск, фильтры, пагинация.
// http://localhost:8080/api/equipment?search=hp&filter[status_id]=1&limit=10&offset=0
type Filter struct {
	Search         string                 `json:"search,omitempty"`
	Sort           map[string]string      `json:"sort,omitempty"`
	Filter         map[string]interface{} `json:"filter,omitempty"`
	Limit          uint64                 `json:"limit"`
	Offset         uint64                 `json:"offset"`
	Page           uint64                 `json:"page"`
	WithPagination bool                   `json:"with_pagination"`
}

type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
}
