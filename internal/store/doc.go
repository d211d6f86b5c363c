// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the service layer, so question and category rules stay independent of
// the database in use.
package store
