package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/entity/expense"
	"max.ks1230/expense-bot/internal/logger"
)

const expensesTable = "expenses"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type config interface {
	Host() string
	Port() int
	Username() string
	Password() string
	Database() string
	SSLMode() string
	MaxOpenConns() int
}

type PostgresStorage struct {
	db  *sql.DB
	dsn string
}

// NewPostgresStorage opens the pool and checks connectivity. Calendar dates of
// created_at are computed in loc.
func NewPostgresStorage(ctx context.Context, config config, loc *time.Location) (*PostgresStorage, error) {
	dsn := buildDSN(config, loc)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if n := config.MaxOpenConns(); n > 0 {
		db.SetMaxOpenConns(n)
		db.SetMaxIdleConns(n)
	}
	if err = db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db: db, dsn: dsn}, nil
}

func buildDSN(config config, loc *time.Location) string {
	q := url.Values{}
	q.Set("sslmode", config.SSLMode())
	if loc != nil {
		q.Set("timezone", loc.String())
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(config.Username(), config.Password()),
		Host:     fmt.Sprintf("%s:%d", config.Host(), config.Port()),
		Path:     "/" + config.Database(),
		RawQuery: q.Encode(),
	}
	return u.String()
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func (s *PostgresStorage) SaveExpense(ctx context.Context, rec expense.Record) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "saveExpense")
	defer span.Finish()

	query := psql.Insert(expensesTable).
		Columns("user_id", "category", "amount", "description").
		Values(rec.UserID, rec.Category, rec.Amount, rec.Description)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		return errors.Wrap(err, "save expense")
	}
	return nil
}

func (s *PostgresStorage) DeleteUserExpenses(ctx context.Context, userID string) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "deleteUserExpenses")
	defer span.Finish()

	query := psql.Delete(expensesTable).
		Where(sq.Eq{"user_id": userID})

	return s.execDelete(ctx, span, query, "delete expenses")
}

// DeleteUserExpensesMatching removes the user's expenses whose description
// contains keyword, ignoring case. Wildcards in keyword match literally.
func (s *PostgresStorage) DeleteUserExpensesMatching(ctx context.Context, userID, keyword string) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "deleteUserExpensesMatching")
	defer span.Finish()

	query := psql.Delete(expensesTable).
		Where(sq.Eq{"user_id": userID}).
		Where("description ILIKE ?", "%"+likeEscaper.Replace(keyword)+"%")

	return s.execDelete(ctx, span, query, "delete matching expenses")
}

func (s *PostgresStorage) execDelete(ctx context.Context, span opentracing.Span, query sq.DeleteBuilder, op string) (int64, error) {
	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		return 0, errors.Wrap(err, op)
	}
	n, err := res.RowsAffected()
	if err != nil {
		ext.Error.Set(span, true)
		return 0, errors.Wrap(err, op)
	}
	return n, nil
}

func (s *PostgresStorage) SumExpenses(ctx context.Context, userID string, period expense.Period) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "sumExpenses")
	defer span.Finish()
	span.SetTag("period", period.String())

	query := psql.Select("COALESCE(SUM(amount), 0)::bigint").
		From(expensesTable).
		Where(periodFilter(userID, period))

	var total int64
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&total)
	if err != nil {
		ext.Error.Set(span, true)
		return 0, errors.Wrap(err, "sum expenses")
	}
	return total, nil
}

func (s *PostgresStorage) SumExpensesByCategory(ctx context.Context, userID string, period expense.Period) ([]expense.CategoryTotal, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "sumExpensesByCategory")
	defer span.Finish()
	span.SetTag("period", period.String())

	query := psql.Select("category", "SUM(amount)::bigint").
		From(expensesTable).
		Where(periodFilter(userID, period)).
		GroupBy("category").
		OrderBy("category")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, "sum expenses by category")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Warn("error closing rows", zap.Error(rowErr))
		}
	}()

	totals := make([]expense.CategoryTotal, 0)
	for rows.Next() {
		var t expense.CategoryTotal
		if err = rows.Scan(&t.Category, &t.Amount); err != nil {
			ext.Error.Set(span, true)
			return nil, errors.Wrap(err, "sum expenses by category")
		}
		totals = append(totals, t)
	}
	if err = rows.Err(); err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, "sum expenses by category")
	}
	return totals, nil
}

func periodFilter(userID string, period expense.Period) sq.And {
	filter := sq.And{
		sq.Eq{"user_id": userID},
		sq.Expr("created_at::date >= ?::date", period.FromDate()),
	}
	if period.Bounded() {
		filter = append(filter, sq.Expr("created_at::date <= ?::date", period.ToDate()))
	}
	return filter
}
