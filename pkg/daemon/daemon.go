package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"phased/pkg/config"
	"phased/pkg/phasechange"
)

var (
	conf config.Config

	calcMu sync.RWMutex
	calc   *phasechange.Calculator
)

func setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.Use(countRequests())
	router.GET("/", getRoot)
	router.GET("/health", getHealth)
	router.GET("/phase-change-diagram", getPhaseChangeDiagram)
	router.GET("/constants", getConstants)
	router.GET("/version", getVersion)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// currentCalculator returns the calculator built from the last good config.
// It is replaced wholesale on reload, so readers always see a fully derived
// parameter set.
func currentCalculator() *phasechange.Calculator {
	calcMu.RLock()
	defer calcMu.RUnlock()
	return calc
}

// rebuildCalculator derives parameters from the current config and swaps the
// calculator in. On a degenerate curve the old calculator stays.
func rebuildCalculator() error {
	c, err := phasechange.NewCalculator(conf.Curve())
	if err != nil {
		return err
	}

	calcMu.Lock()
	calc = c
	calcMu.Unlock()
	return nil
}

// Run starts the daemon and blocks until SIGINT/SIGTERM. listenAddr, when
// non-empty, overrides the port from the environment and the config file.
func Run(configPath string, listenAddr string) error {
	router := setupRoutes()

	var err error
	conf, err = config.NewFile(configPath)
	if err != nil {
		logrus.Fatalf("failed to parse config during startup: %v", err)
	}

	// A degenerate calibration must keep the daemon from serving at all.
	if err := rebuildCalculator(); err != nil {
		return err
	}
	logrus.Infof("calibration parameters derived: %+v", currentCalculator().Parameters())

	if listenAddr == "" {
		port := conf.Port()
		if p, ok, err := config.PortFromEnv(); err != nil {
			return err
		} else if ok {
			port = p
		}
		listenAddr = net.JoinHostPort("", strconv.Itoa(port))
	}

	// Receive SIGHUP to reload config
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGHUP)
		for range sigc {
			err := conf.Load()
			if err != nil {
				logrus.Errorf("failed to reload config: %v", err)
				continue
			}
			if err := rebuildCalculator(); err != nil {
				logrus.Errorf("reloaded config has a degenerate calibration, keeping previous parameters: %v", err)
				continue
			}
			logrus.Infof("config reloaded, parameters: %+v", currentCalculator().Parameters())
		}
	}()

	srv := &http.Server{
		Handler: router,
	}

	l, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	go func() {
		logrus.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	// Handle common process-killing signals, so we can gracefully shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	// Wait for a SIGINT or SIGTERM:
	sig := <-sigc
	logrus.Infof("caught signal \"%s\": shutting down.", sig)

	logrus.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = srv.Shutdown(ctx)
	if err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}
	cancel()

	logrus.Info("exiting")
	return nil
}
