package bootstrap

import (
	"fmt"
	"io"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"http_peek/inspect"
	"http_peek/internal/config"
	"http_peek/internal/version"
	"http_peek/server"
	"http_peek/types"
)

type Bootstrap struct {
	Config     config.Config
	ErrChan    chan error
	SignalChan chan os.Signal
}

func New(conf config.Config) *Bootstrap {
	return &Bootstrap{
		Config:     conf,
		ErrChan:    make(chan error, 5),
		SignalChan: make(chan os.Signal, 1),
	}
}

func startPprof(pprofPort string, errChan chan<- error) {
	pprofAddr := fmt.Sprintf("localhost:%s", pprofPort)
	log.Printf("Starting pprof server on http://%s/debug/pprof/", pprofAddr)
	if err := http.ListenAndServe(pprofAddr, nil); err != nil {
		errChan <- fmt.Errorf("pprof server error: %v", err)
	}
}

func (b *Bootstrap) Run() error {
	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)

	if b.Config.PprofEnabled() {
		go startPprof(b.Config.PprofPort(), b.ErrChan)
	}

	if b.Config.Mode() == types.ServerModeWATCH {
		return b.runWatch()
	}
	return b.runProxy()
}

func (b *Bootstrap) runProxy() error {
	srv, err := server.New(b.Config)
	if err != nil {
		return fmt.Errorf("failed to start proxy: %w", err)
	}

	go func() {
		srv.Start()
		b.ErrChan <- fmt.Errorf("proxy stopped")
	}()

	log.Println(version.GetVersion())

	select {
	case err = <-b.ErrChan:
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		log.Printf("Received signal %s, initiating graceful shutdown", sig)
		return srv.Close()
	}
}

func (b *Bootstrap) runWatch() error {
	ins := inspect.New()

	srv, err := server.New(b.Config, ins)
	if err != nil {
		return fmt.Errorf("failed to start proxy: %w", err)
	}

	go srv.Start()
	defer func() {
		if cerr := srv.Close(); cerr != nil {
			log.Printf("failed to close proxy: %s", cerr)
		}
	}()

	// The UI owns the terminal from here on.
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stdout)

	return ins.Run()
}
