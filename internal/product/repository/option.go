package repository

// FindProductsOptions parameterizes a structured catalog query.
type FindProductsOptions struct {
	Filter Filter
	Limit  int
}

// ListProductsOptions parameterizes a full catalog scan.
type ListProductsOptions struct {
	Offset int
	Limit  int
}

// SearchProductsOptions parameterizes similarity search.
type SearchProductsOptions struct {
	Query string
	Limit int
}
