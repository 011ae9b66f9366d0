package mq

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/geoirb/checklist-updater/internal/checklist"
	"github.com/geoirb/checklist-updater/internal/kafka"
)

// Notify about update result.
type Notify func(rep checklist.Report, err error)

type reportServe struct {
	transport *ReportTransport
	publish   kafka.Publish
	logger    log.Logger
}

func (s *reportServe) Handle(rep checklist.Report, err error) {
	logger := log.WithPrefix(s.logger, "method", "Notify", "run_id", rep.RunID)

	message, err := s.transport.EncodeReport(rep, err)
	if err != nil {
		level.Warn(logger).Log("msg", "encode report", "err", err)
		return
	}
	if err = s.publish(message); err != nil {
		level.Warn(logger).Log("msg", "publish report", "err", err)
		return
	}
	level.Info(logger).Log("msg", "report published")
}

// NewReportHandler publishes update results, failures are only logged.
func NewReportHandler(
	transport *ReportTransport,
	publish kafka.Publish,
	logger log.Logger,
) Notify {
	s := &reportServe{
		transport: transport,
		publish:   publish,
		logger:    logger,
	}

	return s.Handle
}
