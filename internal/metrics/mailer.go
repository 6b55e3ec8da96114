package metrics

import (
	"context"

	"github.com/limbo/starhealth/pkg/mailer"
)

type CodeMailer interface {
	SendCode(ctx context.Context, to string, purpose mailer.Purpose, code string) error
}

type countingMailer struct {
	next      CodeMailer
	collector MetricsCollector
}

// CountCodes wraps next so every delivered code is counted by purpose.
func CountCodes(next CodeMailer, collector MetricsCollector) CodeMailer {
	return &countingMailer{next: next, collector: collector}
}

func (cm *countingMailer) SendCode(ctx context.Context, to string, purpose mailer.Purpose, code string) error {
	if err := cm.next.SendCode(ctx, to, purpose, code); err != nil {
		return err
	}
	cm.collector.RecordCodeSent(string(purpose))
	return nil
}
