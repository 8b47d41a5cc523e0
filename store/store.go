package store

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"sort"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/LivelyCarpet87/network-locality-exploration/edgelist"
	"github.com/LivelyCarpet87/network-locality-exploration/geodesic"
)

// ErrBadTableName rejects table names outside the identifier pattern.
var ErrBadTableName = errors.New("store: invalid table name")

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	return db, nil
}

func checkTableName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrBadTableName, name)
	}
	return nil
}

// SaveEdgeList writes el's forward edges into table, creating it when
// absent. One row per physical weight, inside one transaction.
func SaveEdgeList(db *sql.DB, table string, el *edgelist.EdgeList) error {
	if err := checkTableName(table); err != nil {
		return err
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		SRC    INT  NOT NULL,
		DST    INT  NOT NULL,
		WEIGHT REAL NOT NULL)`, table)
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("store: create table %s: %w", table, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (SRC,DST,WEIGHT) VALUES (?,?,?)", table))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("store: prepare insert into %s: %w", table, err)
	}
	for _, e := range el.Edges() {
		if _, err := stmt.Exec(e.Src, e.Dest, e.Weight); err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("store: insert into %s: %w", table, err)
		}
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit %s: %w", table, err)
	}
	return nil
}

// LoadEdgeList reads an edgelist table back into a container with the given
// directionality. The edge multiset round-trips; insertion order follows
// rowid order, which SaveEdgeList wrote deterministically.
func LoadEdgeList(db *sql.DB, table string, directional bool) (*edgelist.EdgeList, error) {
	if err := checkTableName(table); err != nil {
		return nil, err
	}
	rows, err := db.Query(fmt.Sprintf("SELECT SRC, DST, WEIGHT FROM %s", table))
	if err != nil {
		return nil, fmt.Errorf("store: select from %s: %w", table, err)
	}
	defer rows.Close()

	el := edgelist.New(directional)
	for rows.Next() {
		var src, dest int
		var weight float64
		if err := rows.Scan(&src, &dest, &weight); err != nil {
			return nil, fmt.Errorf("store: scan %s: %w", table, err)
		}
		el.InsertEdge(src, dest, weight)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate %s: %w", table, err)
	}
	return el, nil
}

// SaveDistances writes a distance-between-vertices mapping into table: one
// row per (src, dest) pair, sources and destinations ascending.
func SaveDistances(db *sql.DB, table string, dbv geodesic.DistanceBetweenVertices) error {
	if err := checkTableName(table); err != nil {
		return err
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		SRC       INT  NOT NULL,
		DST       INT  NOT NULL,
		INFO_DIST REAL NOT NULL,
		NET_DIST  INT  NOT NULL)`, table)
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("store: create table %s: %w", table, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (SRC,DST,INFO_DIST,NET_DIST) VALUES (?,?,?,?)", table))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("store: prepare insert into %s: %w", table, err)
	}
	for _, src := range sortedSources(dbv) {
		dtv := dbv[src]
		for _, dest := range sortedDests(dtv) {
			dp := dtv[dest]
			if _, err := stmt.Exec(src, dest, dp.InfoDistance, dp.NetDistance); err != nil {
				stmt.Close()
				tx.Rollback()
				return fmt.Errorf("store: insert into %s: %w", table, err)
			}
		}
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit %s: %w", table, err)
	}
	return nil
}

// SaveSAverage records one S_avg(γ) result under netID.
func SaveSAverage(db *sql.DB, netID string, gamma, avgS float64) error {
	ddl := `CREATE TABLE IF NOT EXISTS S_average (
		NET_ID TEXT NOT NULL,
		GAMMA  REAL NOT NULL,
		avg_s  REAL NOT NULL)`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("store: create table S_average: %w", err)
	}
	if _, err := db.Exec("INSERT INTO S_average (NET_ID,GAMMA,avg_s) VALUES (?,?,?)", netID, gamma, avgS); err != nil {
		return fmt.Errorf("store: insert into S_average: %w", err)
	}
	return nil
}

// SaveReductionAverage records one L-neighborhood reduction average under
// netID.
func SaveReductionAverage(db *sql.DB, netID string, l int, avgLNR float64) error {
	ddl := `CREATE TABLE IF NOT EXISTS L_neighborhood_reduction_average (
		NET_ID  TEXT NOT NULL,
		L       INT  NOT NULL,
		avg_lnr REAL NOT NULL)`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("store: create table L_neighborhood_reduction_average: %w", err)
	}
	if _, err := db.Exec("INSERT INTO L_neighborhood_reduction_average (NET_ID,L,avg_lnr) VALUES (?,?,?)", netID, l, avgLNR); err != nil {
		return fmt.Errorf("store: insert into L_neighborhood_reduction_average: %w", err)
	}
	return nil
}

func sortedSources(dbv geodesic.DistanceBetweenVertices) []int {
	keys := make([]int, 0, len(dbv))
	for k := range dbv {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedDests(dtv geodesic.DistanceToVertices) []int {
	keys := make([]int, 0, len(dtv))
	for k := range dtv {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
