package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// ErrForeignKeyViolation wraps a postgres 23503 so callers can log a
// dangling reference without parsing driver error text.
var ErrForeignKeyViolation = errors.New("referenced row does not exist")

// updateField is one mutable column in a partial update. An empty value
// means "keep the stored value"; there is no way to clear a column to
// empty/null through this path. cast names the SQL type a non-empty value
// is cast to, and is left blank for text columns.
type updateField struct {
	column string
	value  string
	cast   string
}

// buildPartialUpdate produces the single UPDATE statement shared by every
// entity's update operation:
//
//	UPDATE <table> SET col = COALESCE(NULLIF($1, '')::cast, col), ... WHERE <key> = $n
//
// Each field falls back to its stored value when the candidate is empty.
// The statement is scoped by primary-key equality only; matching zero rows
// is a no-op, not an error.
func buildPartialUpdate(table, keyColumn string, key int, fields []updateField) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(table)
	sb.WriteString(" SET ")

	args := make([]interface{}, 0, len(fields)+1)
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		if f.cast != "" {
			fmt.Fprintf(&sb, "%s = COALESCE(NULLIF($%d, '')::%s, %s)", f.column, i+1, f.cast, f.column)
		} else {
			fmt.Fprintf(&sb, "%s = COALESCE(NULLIF($%d, ''), %s)", f.column, i+1, f.column)
		}
		args = append(args, f.value)
	}

	fmt.Fprintf(&sb, " WHERE %s = $%d", keyColumn, len(fields)+1)
	args = append(args, key)

	return sb.String(), args
}

// translateError maps foreign-key violations to ErrForeignKeyViolation and
// leaves every other error untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return fmt.Errorf("%w (constraint %s)", ErrForeignKeyViolation, pqErr.Constraint)
	}
	return err
}
