package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Run serves handler on addr until a signal arrives on shutdown or the listener fails.
// In-flight requests get shutdownTimeout to drain before connections are closed.
func Run(addr string, handler http.Handler, shutdown chan os.Signal) error {
	server := http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, ctx := errgroup.WithContext(context.Background())

	// Start the service listening for requests.
	g.Go(func() error {
		log.Printf("listening on %s", addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%w : starting server", err)
		}

		return nil
	})

	// Blocking until shutdown is requested or the listener gave up.
	g.Go(func() error {
		select {
		case <-ctx.Done():
			return nil

		case sig := <-shutdown:
			log.Printf("%v : start shutdown", sig)

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			// Asking listener to shutdown and load shed.
			err := server.Shutdown(ctx)
			if err != nil {
				log.Printf("graceful shutdown did not complete: %v", err)

				err = server.Close()
			}

			// Log the status of this shutdown.
			switch {
			case sig == syscall.SIGSTOP:
				return errors.New("integrity issue caused shutdown")
			case err != nil:
				return fmt.Errorf("could not stop server gracefully: %w", err)
			}

			return nil
		}
	})

	return g.Wait()
}
