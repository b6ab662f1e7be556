package log

import (
	// Stdlib
	"strings"

	// Vendor
	"go.uber.org/zap"
)

// zapBackend emits one JSON record per log line, which is what CI log
// collectors expect when versionify runs inside a deployment pipeline.
type zapBackend struct {
	logger *zap.SugaredLogger
}

func newZapBackend() (backend, error) {
	logger, err := zap.NewProduction(zap.WithCaller(false))
	if err != nil {
		return nil, err
	}
	return &zapBackend{logger.Sugar()}, nil
}

func (b *zapBackend) Write(tag, msg string) {
	switch tag {
	case tagFail:
		b.logger.Errorw(msg, "tag", tag)
	case tagWarn, tagRollback:
		b.logger.Warnw(msg, "tag", tag)
	case tagNone:
		b.logger.Infow(strings.TrimSpace(msg))
	default:
		b.logger.Infow(msg, "tag", tag)
	}
}

func (b *zapBackend) Raw(msg string) {
	if msg = strings.TrimSpace(msg); msg != "" {
		b.logger.Info(msg)
	}
}

func (b *zapBackend) Sync() {
	b.logger.Sync()
}
