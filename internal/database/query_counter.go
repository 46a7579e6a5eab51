package database

import (
	"context"
	"sync/atomic"
	"time"

	"gorm.io/gorm/logger"
)

// QueryCounter is a GORM logger that counts every executed SQL statement
// while delegating output to a wrapped logger.
//
// The counter is what turns "this endpoint runs fewer queries" from a claim
// in a log into an assertable number: tests snapshot the count around a read
// strategy and check the bound the strategy promises.
type QueryCounter struct {
	base  logger.Interface
	count *int64
}

// NewQueryCounter wraps base with statement counting
func NewQueryCounter(base logger.Interface) *QueryCounter {
	return &QueryCounter{base: base, count: new(int64)}
}

// LogMode returns a copy at the given level sharing the same counter.
// GORM sessions call this, so the count must live behind the pointer.
func (qc *QueryCounter) LogMode(level logger.LogLevel) logger.Interface {
	return &QueryCounter{base: qc.base.LogMode(level), count: qc.count}
}

// Info delegates to the wrapped logger
func (qc *QueryCounter) Info(ctx context.Context, msg string, args ...interface{}) {
	qc.base.Info(ctx, msg, args...)
}

// Warn delegates to the wrapped logger
func (qc *QueryCounter) Warn(ctx context.Context, msg string, args ...interface{}) {
	qc.base.Warn(ctx, msg, args...)
}

// Error delegates to the wrapped logger
func (qc *QueryCounter) Error(ctx context.Context, msg string, args ...interface{}) {
	qc.base.Error(ctx, msg, args...)
}

// Trace counts the statement and delegates. GORM invokes Trace once per
// executed statement regardless of log level.
func (qc *QueryCounter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	atomic.AddInt64(qc.count, 1)
	qc.base.Trace(ctx, begin, fc, err)
}

// Count returns the number of statements executed since the last Reset
func (qc *QueryCounter) Count() int64 {
	return atomic.LoadInt64(qc.count)
}

// Reset zeroes the statement count
func (qc *QueryCounter) Reset() {
	atomic.StoreInt64(qc.count, 0)
}
