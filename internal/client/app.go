package client

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/atotto/clipboard"
)

// App is the notes CLI. One App serves one process invocation.
type App struct {
	auth  service.ClientAuthService
	notes service.ClientNoteService

	server VersionSource
	build  models.AppBuildInfo

	in  io.Reader
	out io.Writer

	// seams replaced in tests
	readLine   func(prompt string) (string, error)
	readSecret func(prompt string) (string, error)
	copyText   func(text string) error

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, server VersionSource, build models.AppBuildInfo, logger *logger.Logger) *App {
	a := &App{
		auth:     services.AuthService,
		notes:    services.NoteService,
		server:   server,
		build:    build,
		in:       os.Stdin,
		out:      os.Stdout,
		copyText: clipboard.WriteAll,
		logger:   logger,
	}

	p := newPrompter(os.Stdin, os.Stderr)
	a.readLine = p.readLine
	a.readSecret = p.readSecret

	return a
}

// Run executes args (without the program name).
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.Command()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.logger.Debug().Err(err).Strs("args", args).Msg("command failed")
	}
	return err
}
