package main

import (
	"context"
	"fmt"

	"github.com/Jumpaku/go-elempath"
	"github.com/Jumpaku/go-elempath/drivepath"
	"github.com/Jumpaku/go-elempath/elempathmust"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

type config struct {
	RootID   string `envconfig:"ROOT_ID" required:"true"`
	Find     string `envconfig:"FIND" default:"/"`
	From     string `envconfig:"FROM"`
	To       string `envconfig:"TO"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func newResolver(ctx context.Context, factory *elempath.Factory, logger logrus.FieldLogger) *drivepath.Resolver {
	client, err := google.DefaultClient(ctx,
		drive.DriveReadonlyScope,
	)
	if err != nil {
		logger.WithError(err).Fatal("failed to create drive client")
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		logger.WithError(err).Fatal("failed to create drive service")
	}
	return drivepath.New(driveService, factory, drivepath.WithLogger(logger))
}

func main() {
	logger := logrus.New()

	var cfg config
	if err := envconfig.Process("elempath", &cfg); err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Fatal("invalid log level")
	}
	logger.SetLevel(level)

	ctx := context.Background()
	factory := elempath.NewFactory()
	resolver := newResolver(ctx, factory, logger)
	rootID := drivepath.FileID(cfg.RootID)

	// walk through the directory structure
	err = resolver.Walk(ctx, rootID, func(path elempath.Path, info drivepath.FileInfo) error {
		fmt.Printf("%s (ID: %s)\n", path, info.ID)
		return nil
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to walk")
	}

	// resolve a path to get FileInfo
	found, err := resolver.Find(ctx, rootID, elempathmust.Parse(factory, cfg.Find))
	if err != nil {
		logger.WithError(err).Fatal("failed to find")
	}
	for _, info := range found {
		logger.WithFields(logrus.Fields{"path": cfg.Find, "id": info.ID}).Info("resolved")
	}

	// relative path between two files
	if cfg.From != "" && cfg.To != "" {
		rel, err := resolver.Rel(ctx, drivepath.FileID(cfg.From), drivepath.FileID(cfg.To))
		if err != nil {
			logger.WithError(err).Fatal("failed to relativize")
		}
		fmt.Printf("%s -> %s: %s\n", cfg.From, cfg.To, rel)
	}
}
