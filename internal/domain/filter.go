package domain

// TaskFilter restricts task listings. A nil field is a no-op predicate:
// the mandatory user scope is always applied, optional filters are added
// conjunctively on top.
type TaskFilter struct {
	Topic *string
}

// TopicFilter restricts the derived topic listing.
type TopicFilter struct {
	Category *string
}
