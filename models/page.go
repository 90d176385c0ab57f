package models

// Page is one page of a server-side paginated collection, mirroring the
// Spring Data page envelope the API emits.
//
// Invariants (server-guaranteed, relied upon by the client):
//   - 0 <= Number < TotalPages whenever TotalElements > 0;
//   - len(Content) <= Size.
type Page[T any] struct {
	// Content holds the items of this page, in server order.
	Content []T `json:"content"`

	// TotalElements is the size of the whole collection across all pages.
	TotalElements int64 `json:"totalElements"`

	// TotalPages is the number of pages at the current page size.
	TotalPages int `json:"totalPages"`

	// Size is the requested page size; Content may be shorter on the
	// last page.
	Size int `json:"size"`

	// Number is the zero-based index of this page.
	Number int `json:"number"`

	First bool `json:"first"`
	Last  bool `json:"last"`
}

// IsEmpty reports whether the page carries no items.
func (p Page[T]) IsEmpty() bool {
	return len(p.Content) == 0
}
