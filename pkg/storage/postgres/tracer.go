package postgres

import (
	"context"
	"journal/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type queryStartKey struct{}

type queryStart struct {
	sql   string
	start time.Time
}

// SlowQueryTracer logs queries slower than Threshold at warn level, and every
// query at debug level when the context logger has debug enabled.
type SlowQueryTracer struct {
	Threshold time.Duration
}

var _ pgx.QueryTracer = SlowQueryTracer{}

func (t SlowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{sql: data.SQL, start: time.Now()})
}

func (t SlowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	qs, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}
	elapsed := time.Since(qs.start)

	fields := []zap.Field{
		zap.String("sql", qs.sql),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", data.CommandTag.RowsAffected()),
	}
	if data.Err != nil {
		fields = append(fields, zap.Error(data.Err))
	}

	switch {
	case t.Threshold > 0 && elapsed >= t.Threshold:
		logger.Warn(ctx, "slow query", fields...)
	case logger.IsDebug(ctx):
		logger.Debug(ctx, "query", fields...)
	}
}
