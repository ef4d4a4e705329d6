package domain

import "errors"

// News errors
var (
	ErrNewsNotFound = errors.New("news not found")
)

// Scrape query errors
var (
	ErrInvalidDateFilter = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInfoNotFound      = errors.New("tournament info not found")
)
