package cache

import "fmt"

type Prefix string

const (
	// CachedPage holds the last fetched body of a resource.
	CachedPage Prefix = "cache"
	// AccessCount holds the number of access attempts for a resource.
	AccessCount Prefix = "count"
)

// Key joins the prefix and id with a colon. The id is not escaped.
func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
