// internal/app/features/assignments/handler.go
package assignments

import (
	uierrors "github.com/dalemusser/coursedesk/internal/app/features/errors"
	"github.com/dalemusser/coursedesk/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the assignments admin screen
// (list with aggregate counts, create, delete).
//
// It is constructed once at startup in bootstrap, using the shared Mongo
// database handle and logger.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
}

// NewHandler constructs a Handler bound to the given Mongo database and
// logger.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		ErrLog:   errLog,
		AuditLog: audit,
	}
}
