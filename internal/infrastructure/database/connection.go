package database

import (
	"context"

	"gorm.io/gorm"
)

// Chave de contexto que marca uma sessão já configurada.
type timezoneKey struct{}

// setTimezone força UTC na sessão antes das consultas. As colunas legadas
// são TIMESTAMP sem timezone; sem isso, processos em fusos diferentes
// gravariam instantes inconsistentes.
func setTimezone() func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if _, ok := db.Statement.Context.Value(timezoneKey{}).(bool); ok {
			return // evita recursão do callback sobre o próprio Exec
		}
		ctx := context.WithValue(db.Statement.Context, timezoneKey{}, true)
		db.WithContext(ctx).Exec("SET timezone = 'UTC'")
	}
}

// RegisterCallbacks registra os callbacks de sessão no GORM.
func RegisterCallbacks(db *gorm.DB) {
	db.Callback().Query().Before("gorm:query").Register("set_timezone_before_query", setTimezone())
}
