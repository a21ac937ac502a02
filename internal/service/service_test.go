package service

import (
	"context"
	"errors"
	"io"
	"time"

	"copygen/internal/errs"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// flakyGenerator 对指定主题返回失败, 其余使用模板生成
type flakyGenerator struct {
	*TemplateGenerator
	failTopics map[string]bool
}

func (g *flakyGenerator) GenerateBlog(ctx context.Context, topic, category string) (*BlogContent, error) {
	if g.failTopics[topic] {
		return nil, errs.Wrap(errs.ErrGenerationFailed, "生成博客失败", errors.New("upstream timeout"))
	}
	return g.TemplateGenerator.GenerateBlog(ctx, topic, category)
}
