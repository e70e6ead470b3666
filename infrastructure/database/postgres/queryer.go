package postgres

import "database/sql"

// Queryer abstrai a execução de comandos SQL, satisfeita tanto por *sql.DB
// quanto por *sql.Tx, permitindo que repositórios rodem dentro ou fora de
// uma transação
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
