package mysqldb

import (
	"ytf/unit"
)

// EnvFile is the dotenv file Fixture loads before reading the environment.
var EnvFile = ".env"

// Fixture provides a scratch database to a suite fixture that embeds it.
type Fixture struct {
	*Database
}

// SetUp creates the scratch database. Failing to do so fails the case.
func (f *Fixture) SetUp() {
	s, err := LoadSettings(EnvFile)
	if err != nil {
		unit.Fail(err)
	}
	db, err := Open(s)
	if err != nil {
		unit.Fail(err)
	}
	f.Database = db
}

// TearDown drops the scratch database.
func (f *Fixture) TearDown() {
	if err := f.Database.Close(); err != nil {
		unit.Fail(err)
	}
}
