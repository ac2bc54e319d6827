package ports

// Symbol is one declared element in a listing: its name and a short kind
// tag ("func", "class", "trait", ...). Listings contain each (name, kind)
// pair at most once, in first-seen order.
type Symbol struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}
