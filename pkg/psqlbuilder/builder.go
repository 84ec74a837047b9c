package psqlbuilder

import "github.com/Masterminds/squirrel"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select creates a SELECT builder with $N placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return psql.Select(columns...)
}

// Insert creates an INSERT builder with $N placeholders.
func Insert(table string) squirrel.InsertBuilder {
	return psql.Insert(table)
}

// Update creates an UPDATE builder with $N placeholders.
func Update(table string) squirrel.UpdateBuilder {
	return psql.Update(table)
}

// Delete creates a DELETE builder with $N placeholders.
func Delete(table string) squirrel.DeleteBuilder {
	return psql.Delete(table)
}
