package main

import (
	"context"
	"errors"
	"os"
	"path"

	"github.com/efuentes/discover/cli/commands"
	app_info "github.com/efuentes/discover/internal/app-info"
	"github.com/efuentes/discover/internal/config"
	"github.com/efuentes/discover/internal/device"
	"github.com/efuentes/discover/internal/discovery"
	"github.com/efuentes/discover/internal/logger"
	"github.com/efuentes/discover/internal/notification"
	"github.com/efuentes/discover/internal/report"
	"github.com/efuentes/discover/internal/scanner"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

/**
 * Main entry point for all commands
 * Here we setup runtime paths via viper and assemble the discovery service
 */

func setRunTimeConfig() (string, error) {
	userHomeDir, err := os.UserHomeDir()

	if err != nil {
		return "", err
	}

	configDir := path.Join(userHomeDir, ".config", app_info.NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return "", err
	}

	configFile := path.Join(configDir, app_info.NAME+".yml")

	logFile := path.Join(configDir, app_info.NAME+".log")

	userCacheDir, err := os.UserCacheDir()

	if err != nil {
		return "", err
	}

	cacheDir := path.Join(userCacheDir, app_info.NAME)

	if err := os.MkdirAll(cacheDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return "", err
	}

	dbFile := path.Join(cacheDir, app_info.NAME+".db")

	reportDir := path.Join(cacheDir, "reports")

	// share location of files and directories globally using viper
	viper.Set("log-file", logFile)
	viper.Set("config-dir", configDir)
	viper.Set("config-file", configFile)
	viper.Set("cache-dir", cacheDir)
	viper.Set("database-file", dbFile)
	viper.Set("report-dir", reportDir)

	return configFile, nil
}

// getSqliteDbConnection creates and returns a sqlite database connection
func getSqliteDbConnection(dbFile string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&device.DeviceModel{}); err != nil {
		return nil, err
	}

	return db, nil
}

// getProber returns the configured Prober implementation
func getProber(conf config.Config) scanner.Prober {
	if conf.Discovery.Scanner == "nmap" {
		return scanner.NewNmapProber()
	}

	return scanner.NewNetProber(os.Geteuid() == 0)
}

// getNotifier returns the configured Notifier implementation
func getNotifier(conf config.Config) discovery.Notifier {
	if conf.Discovery.Notify.Email {
		return notification.NewSMTPNotifier(conf.Discovery.Notify.SMTP)
	}

	return notification.NewConsoleNotifier(os.Stdout)
}

// Entry point for the cli
func main() {
	log := logger.New()

	configFile, err := setRunTimeConfig()

	if err != nil {
		log.Fatal().Err(err).Msg("failed to set runtime config")
	}

	conf, err := config.New(configFile)

	if err != nil {
		conf, err = config.Default()

		if err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}

		// first run: persist defaults so users have a file to edit
		if err := config.Write(*conf); err != nil {
			log.Warn().Err(err).Msg("failed to write default config")
		}
	}

	dbFile := viper.Get("database-file").(string)

	db, err := getSqliteDbConnection(dbFile)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	deviceRepo := device.NewSqliteRepo(db)

	probeScanner := scanner.NewProbeScanner(*conf, getProber(*conf))

	reportDir := viper.Get("report-dir").(string)

	discoveryService := discovery.NewDiscoveryService(
		*conf,
		probeScanner,
		deviceRepo,
		getNotifier(*conf),
		report.NewGenerator(reportDir),
	)

	// Get the "root" cobra cli command
	cmd := commands.Root(&commands.CommandProps{
		Conf:    *conf,
		Service: discoveryService,
	})

	// Allows "grepping" of command output
	cmd.SetOutput(os.Stdout)

	// execute the cobra command and exit with error code if necessary
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
