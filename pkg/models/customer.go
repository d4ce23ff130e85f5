package models

import "time"

// CustomerInfo is the subject being screened. It is built by the caller and
// treated as read-only for the duration of a filter call.
type CustomerInfo struct {
	CustomerID  string     `json:"customer_id,omitempty"`
	Name        string     `json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Nationality string     `json:"nationality,omitempty"`
}

// WatchlistEntry is a single sanctioned individual or entity record from an
// external list source (OFAC, UN, EU, ...). Entries are supplied per filter
// call by a watchlist provider and never mutated by the screening core.
type WatchlistEntry struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Aliases     []string   `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" yaml:"date_of_birth,omitempty"`
	Nationality string     `json:"nationality,omitempty" yaml:"nationality,omitempty"`
	ListSource  string     `json:"list_source,omitempty" yaml:"list_source,omitempty"`
	EntryType   string     `json:"entry_type,omitempty" yaml:"entry_type,omitempty"`
}
