package mysqldb

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

const maxNameLength = 64

var sequence atomic.Int64

// Database is a scratch database created for one test case.
type Database struct {
	// DB is connected to the scratch database.
	DB *sql.DB
	// Name of the scratch database.
	Name string

	server *sql.DB
}

// Open creates a new scratch database on the server described by s.
func Open(s Settings) (*Database, error) {
	name := fmt.Sprintf("%s_%d_%d", s.Prefix, os.Getpid(), sequence.Add(1))
	if !validName(name) {
		return nil, errors.Errorf("mysqldb: invalid database name %q", name)
	}

	server, err := openServer(s)
	if err != nil {
		return nil, err
	}

	if _, err := server.Exec("CREATE DATABASE `" + name + "`"); err != nil {
		server.Close()
		return nil, errors.Wrapf(err, "mysqldb: creating %s", name)
	}

	db, err := sql.Open("mysql", s.DSN(name))
	if err != nil {
		dropDatabase(server, name)
		server.Close()
		return nil, errors.Wrapf(err, "mysqldb: connecting to %s", name)
	}

	return &Database{DB: db, Name: name, server: server}, nil
}

func openServer(s Settings) (*sql.DB, error) {
	server, err := sql.Open("mysql", s.DSN(""))
	if err != nil {
		return nil, errors.Wrap(err, "mysqldb: connecting to server")
	}
	if err := server.Ping(); err != nil {
		server.Close()
		return nil, errors.Wrap(err, "mysqldb: pinging server")
	}
	return server, nil
}

// Close drops the scratch database and closes both connections.
func (d *Database) Close() error {
	if d == nil || d.server == nil {
		return nil
	}
	d.DB.Close()
	err := dropDatabase(d.server, d.Name)
	d.server.Close()
	d.server = nil
	return err
}

// Exists reports whether the scratch database is still present on the server.
func (d *Database) Exists() (bool, error) {
	if d.server == nil {
		return false, nil
	}
	return databaseExists(d.server, d.Name)
}

func databaseExists(db *sql.DB, name string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	err := db.QueryRow(query, name).Scan(&exists)
	return exists, err
}

func dropDatabase(db *sql.DB, name string) error {
	_, err := db.Exec("DROP DATABASE IF EXISTS `" + name + "`")
	return errors.Wrapf(err, "mysqldb: dropping %s", name)
}

// validName accepts identifiers that are safe to splice into a backquoted
// statement.
func validName(name string) bool {
	if name == "" || len(name) > maxNameLength {
		return false
	}
	return strings.IndexFunc(name, func(r rune) bool {
		return !(r == '_' || r == '$' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	}) < 0
}
