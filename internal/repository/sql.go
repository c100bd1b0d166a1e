package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"moodvenue/internal/interfaces"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// placeholders returns "$from, $from+1, ..." for count parameters.
func placeholders(from, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(parts, ", ")
}

// assignments turns a column list into "col = $n, ..." starting at parameter from.
func assignments(columns string, from int) string {
	cols := strings.Split(columns, ",")
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = fmt.Sprintf("%s = $%d", strings.TrimSpace(col), from+i)
	}
	return strings.Join(parts, ", ")
}

func expectAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

// translateError maps unique violations from either driver to ErrConflict.
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%w: %s", interfaces.ErrConflict, pqErr.Message)
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("%w: %s", interfaces.ErrConflict, sqliteErr.Error())
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-folded LIKE operand matching s literally. Use it with ESCAPE '\'.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
