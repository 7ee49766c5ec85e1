package filters

// PlayerListParams are the query parameters for the player listing.
type PlayerListParams struct {
	Name   string `form:"name"`
	MaxMMR int    `form:"max_mmr"`
}

// PlayerListFilter is the repository facing filter.
type PlayerListFilter struct {
	Name   string
	MaxMMR int
}

// AsFilter converts the bound query parameters into the repository filter.
func (q *PlayerListParams) AsFilter() *PlayerListFilter {
	return &PlayerListFilter{
		Name:   q.Name,
		MaxMMR: q.MaxMMR,
	}
}
