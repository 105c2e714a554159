package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"

	"github.com/geoirb/go-mailmerge/internal/batch"
	"github.com/geoirb/go-mailmerge/internal/docx"
	"github.com/geoirb/go-mailmerge/internal/emailjs"
	"github.com/geoirb/go-mailmerge/internal/filename"
	"github.com/geoirb/go-mailmerge/internal/kafka"
	"github.com/geoirb/go-mailmerge/internal/merge"
	"github.com/geoirb/go-mailmerge/internal/merge/mq"
	"github.com/geoirb/go-mailmerge/internal/parser"
	"github.com/geoirb/go-mailmerge/internal/path"
	"github.com/geoirb/go-mailmerge/internal/placeholder"
	"github.com/geoirb/go-mailmerge/internal/response"
	"github.com/geoirb/go-mailmerge/internal/rowrange"
	"github.com/geoirb/go-mailmerge/internal/xlsx"
)

type configuration struct {
	MQHost string `envconfig:"MQ_HOST" default:"localhost"`
	MQPort int    `envconfig:"MQ_PORT" default:"9093"`

	TemplateDir string `envconfig:"TEMPLATE_DIR" default:"/template"`
	DatasetDir  string `envconfig:"DATASET_DIR" default:"/dataset"`
	OutputDir   string `envconfig:"OUTPUT_DIR" default:"/output"`

	EmailJSURL string `envconfig:"EMAILJS_URL" default:"https://api.emailjs.com/api/v1.0/email/send"`

	InspectTopicRequest  string `envconfig:"INSPECT_TOPIC_REQUEST" default:"merge-inspect-request"`
	GenerateTopicRequest string `envconfig:"GENERATE_TOPIC_REQUEST" default:"merge-generate-request"`
	EmailTopicRequest    string `envconfig:"EMAIL_TOPIC_REQUEST" default:"merge-email-request"`
	TopicResponse        string `envconfig:"TOPIC_RESPONSE" default:"merge-response"`
}

const (
	prefixCfg   = ""
	serviceName = "mailmerge"
)

func main() {
	logger := log.NewJSONLogger(log.NewSyncWriter(os.Stdout))
	logger = log.WithPrefix(logger, "service", serviceName)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	var cfg configuration
	if err := envconfig.Process(prefixCfg, &cfg); err != nil {
		level.Error(logger).Log("msg", "configuration", "err", err)
		os.Exit(1)
	}

	level.Info(logger).Log("msg", "initialization")

	path, err := path.NewBuilder(
		cfg.TemplateDir,
		cfg.DatasetDir,
		cfg.OutputDir,
		uuid.New().String,
	)
	if err != nil {
		level.Error(logger).Log("msg", "path init", "err", err)
		os.Exit(1)
	}

	parser, err := parser.New()
	if err != nil {
		level.Error(logger).Log("msg", "parser init", "err", err)
		os.Exit(1)
	}

	renderer, err := docx.New()
	if err != nil {
		level.Error(logger).Log("msg", "docx init", "err", err)
		os.Exit(1)
	}

	extractor, err := placeholder.New()
	if err != nil {
		level.Error(logger).Log("msg", "placeholder init", "err", err)
		os.Exit(1)
	}

	namer, err := filename.New()
	if err != nil {
		level.Error(logger).Log("msg", "filename init", "err", err)
		os.Exit(1)
	}

	svc := merge.NewService(
		path,
		parser,
		renderer,
		extractor,
		xlsx.NewFacade(),
		rowrange.New(),
		batch.NewEngine(renderer, namer, logger),
		emailjs.NewSender(cfg.EmailJSURL, http.DefaultClient),
		logger,
	)

	address := fmt.Sprintf("%s:%d", cfg.MQHost, cfg.MQPort)
	mqKafka, err := kafka.NewMessageQueue(
		[]string{address},
	)
	if err != nil {
		level.Error(logger).Log("msg", "kafka init", "address", address, "err", err)
		os.Exit(1)
	}

	publish := mqKafka.NewPublish(cfg.TopicResponse)
	handlers := map[string]kafka.Handler{
		cfg.InspectTopicRequest:  mq.NewInspectHandler(svc, mq.NewInspectTransport(response.Build), publish),
		cfg.GenerateTopicRequest: mq.NewGenerateHandler(svc, mq.NewGenerateTransport(response.Build), publish),
		cfg.EmailTopicRequest:    mq.NewEmailHandler(svc, mq.NewEmailTransport(response.Build), publish),
	}
	for topic, handler := range handlers {
		if err = mqKafka.Consume(topic, handler); err != nil {
			level.Error(logger).Log("msg", "kafka consume", "topic", topic, "err", err)
			os.Exit(1)
		}
	}

	go func() {
		level.Info(logger).Log("msg", "kafka listener turn on")
		mqKafka.ListenAndServe()
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGINT)
	level.Info(logger).Log("msg", "received signal", "signal", <-c)

	level.Info(logger).Log("msg", "kafka listener shutdown")
	mqKafka.Shutdown()
	level.Info(logger).Log("msg", "stop service")
}
