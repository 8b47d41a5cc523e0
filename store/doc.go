// Package store persists analysis results to SQLite through database/sql
// and the cgo-free modernc.org/sqlite driver.
//
// Four table shapes are written, all created with CREATE TABLE IF NOT
// EXISTS:
//
//	edgelist tables: SRC INT, DST INT, WEIGHT REAL         (all NOT NULL)
//	distance tables: SRC INT, DST INT, INFO_DIST REAL, NET_DIST INT
//	S_average:       NET_ID TEXT, GAMMA REAL, avg_s REAL
//	L_neighborhood_reduction_average: NET_ID TEXT, L INT, avg_lnr REAL
//
// Inserts run inside a single transaction per call; the sink is
// single-writer, so parallel regions hand their results to one goroutine
// before anything touches the database. LoadEdgeList reverses the edgelist
// sink for round-trips.
//
// Caller-chosen table names are interpolated into DDL (SQLite cannot bind
// identifiers), so they are validated against a strict identifier pattern
// first; ErrBadTableName rejects anything else.
package store
