// services/refresher.go
package services

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Refresher keeps the table cards and the summary bar current on a
// long-running terminal, standing in for the page-navigation refreshes a
// browser front end gets for free.
type Refresher struct {
	cron       *cron.Cron
	reconciler *Reconciler
	summary    *SummaryService
	log        *logrus.Logger
}

func NewRefresher(reconciler *Reconciler, summary *SummaryService, log *logrus.Logger) *Refresher {
	return &Refresher{cron: cron.New(), reconciler: reconciler, summary: summary, log: log}
}

// Start schedules the periodic refresh. Spec is a cron spec such as
// "@every 30s".
func (r *Refresher) Start(spec string) error {
	_, err := r.cron.AddFunc(spec, func() {
		ctx := context.Background()
		r.reconciler.RefreshAllSummaries(ctx)
		r.summary.Refresh(ctx)
	})
	if err != nil {
		return err
	}
	r.cron.Start()
	r.log.WithField("spec", spec).Info("background refresher started")
	return nil
}

func (r *Refresher) Stop() {
	r.cron.Stop()
}
