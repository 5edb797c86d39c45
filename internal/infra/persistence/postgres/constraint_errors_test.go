package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	t.Parallel()

	unique := errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")
	fk := &pgconn.PgError{Code: "23503"}
	check := &pgconn.PgError{Code: "23514"}

	tests := []struct {
		name   string
		err    error
		unique bool
		fk     bool
		check  bool
	}{
		{name: "wrapped unique violation", err: unique, unique: true},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "foreign key", err: fk, fk: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, fk: true},
		{name: "check", err: check, check: true},
		{name: "unrelated", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.fk, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
