package numeric

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var pkgLogger atomic.Pointer[zap.Logger]

func init() {
	pkgLogger.Store(zap.NewNop())
}

// SetLogger replaces the logger used by the package for diagnostics.
// By default nothing is logged.
// A nil logger restores the default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	pkgLogger.Store(l.Named("numeric"))
}

func logger() *zap.Logger {
	return pkgLogger.Load()
}
