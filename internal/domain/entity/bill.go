package entity

import "time"

// Bill is one invoice issued against a factory. Totals are never persisted:
// they are recomputed from the current BillItem rows on every read.
// GSTPercent is a flat rate in [0,100]; CreatedAt scopes the bill to a
// reporting period.
type Bill struct {
	ID         string
	FactoryID  string
	GSTEnabled bool
	GSTPercent int
	CreatedAt  time.Time
}

// BillItem is one line entry of a bill. Total is always Quantity*Rate at the
// time the item was written, never independently settable. Items are owned
// exclusively by their bill and replaced wholesale on update.
type BillItem struct {
	ID       string
	BillID   string
	ItemName string
	Quantity int64
	Rate     int64 // minor currency units
	Total    int64
}
