package taskhub

import "embed"

// Migrations holds the embedded goose migration files. The migrate command
// and integration tests apply them through goose.SetBaseFS.
//
//go:embed migrations/*.sql
var Migrations embed.FS
