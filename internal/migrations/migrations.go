// Package migrations хранит SQL-схему, вшитую в бинарник:
// миграции доступны независимо от рабочей директории процесса.
package migrations

import _ "embed"

//go:embed 001_init.up.sql
var Up string

//go:embed 001_init.down.sql
var Down string
