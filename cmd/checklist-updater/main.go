package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/geoirb/checklist-updater/internal/checklist"
	"github.com/geoirb/checklist-updater/internal/checklist/mq"
	"github.com/geoirb/checklist-updater/internal/kafka"
	"github.com/geoirb/checklist-updater/internal/path"
	"github.com/geoirb/checklist-updater/internal/payload"
	"github.com/geoirb/checklist-updater/internal/response"
	"github.com/geoirb/checklist-updater/internal/xlsx"
)

type configuration struct {
	WorkbookDir  string `envconfig:"WORKBOOK_DIR" default:"data"`
	WorkbookName string `envconfig:"WORKBOOK_NAME" default:"スポーツコーダ監視作業履歴.xlsx"`
	BackupDir    string `envconfig:"BACKUP_DIR"`

	CPUAlertThreshold float64 `envconfig:"CPU_ALERT_THRESHOLD" default:"80"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"logfmt"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	MQBrokers   []string `envconfig:"MQ_BROKERS"`
	ReportTopic string   `envconfig:"REPORT_TOPIC" default:"checklist-report"`
}

const (
	prefixCfg   = ""
	serviceName = "checklist-updater"
)

var (
	errLogFormat = errors.New("unknown log format")
	errLogLevel  = errors.New("unknown log level")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	err := newRootCmd(os.Stdout).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var workbook string

	cmd := &cobra.Command{
		Use:   "checklist-updater <json-string-or-file-path>",
		Short: "Fill monitoring checklist workbook from json payload",
		Long: `checklist-updater writes a server monitoring checklist (FT server status, disk free space,
CPU/memory usage, lamp counts and SC machine metrics) to fixed cells of the work history workbook.
The argument is a path to a json file or json text itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), out, args[0], workbook)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.Flags().StringVar(&workbook, "workbook", "", "Workbook path (default: $WORKBOOK_DIR/$WORKBOOK_NAME)")
	return cmd
}

func run(ctx context.Context, out io.Writer, arg, workbook string) error {
	var cfg configuration
	if err := envconfig.Process(prefixCfg, &cfg); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	logger, err := newLogger(out, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}

	checklistPayload, source, err := payload.Load(arg)
	if err != nil {
		level.Error(logger).Log("msg", "payload", "err", err)
		return err
	}
	level.Info(logger).Log("msg", "payload loaded", "source", source)

	path, err := path.NewBuilder(
		cfg.WorkbookDir,
		cfg.WorkbookName,
		cfg.BackupDir,
		uuid.New().String,
	)
	if err != nil {
		level.Error(logger).Log("msg", "path init", "err", err)
		return err
	}

	svc := checklist.NewService(
		path,
		openWorkbook,
		time.Now,
		cfg.CPUAlertThreshold,
		logger,
	)

	notify := func(checklist.Report, error) {}
	if len(cfg.MQBrokers) > 0 {
		mqKafka, err := kafka.NewMessageQueue(cfg.MQBrokers)
		if err != nil {
			level.Warn(logger).Log("msg", "kafka init", "brokers", fmt.Sprint(cfg.MQBrokers), "err", err)
		} else {
			defer mqKafka.Shutdown()
			notify = mq.NewReportHandler(
				mq.NewReportTransport(
					response.Build,
				),
				mqKafka.NewPublish(cfg.ReportTopic),
				logger,
			)
		}
	}

	rep, err := svc.Update(ctx, checklist.Request{
		RunID:    uuid.New().String(),
		Workbook: workbook,
		Payload:  checklistPayload,
	})
	notify(rep, err)
	return err
}

func openWorkbook(path string) (checklist.Workbook, error) {
	w, err := xlsx.Open(path)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func newLogger(w io.Writer, format, lvl string) (logger log.Logger, err error) {
	switch format {
	case "logfmt":
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	case "json":
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	default:
		err = fmt.Errorf("%w: %s", errLogFormat, format)
		return
	}

	var option level.Option
	switch lvl {
	case "debug":
		option = level.AllowDebug()
	case "info":
		option = level.AllowInfo()
	case "warn":
		option = level.AllowWarn()
	case "error":
		option = level.AllowError()
	default:
		err = fmt.Errorf("%w: %s", errLogLevel, lvl)
		return
	}

	logger = level.NewFilter(logger, option)
	logger = log.WithPrefix(logger, "service", serviceName)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return
}
