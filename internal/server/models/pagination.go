package models

// Pagination is a 1-based page window.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Offset returns the number of records skipped before the page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// ListMeta describes a page of results.
type ListMeta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	LastPage int `json:"lastPage"`
}

// LastPage returns ceil(total / limit).
func LastPage(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// UserList is one page of users.findAll.
type UserList struct {
	Meta ListMeta       `json:"meta"`
	Data []*UserProfile `json:"data"`
}
