package repository

// ListBySalaryOptions holds the parameters for the salary-ordered lookup.
type ListBySalaryOptions struct {
	Direction   string // "asc" or "desc"; anything else is treated as desc
	TitleFilter string // optional case-insensitive title substring
	Limit       int
}

// ListByRecencyOptions holds the parameters for the recency lookup.
type ListByRecencyOptions struct {
	TitleFilter string
	Limit       int
}
