package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/service"
	"github.com/MKhiriev/beichen-observer/models"
)

// Connector builds the client services once the global flags are known.
// configPath is empty when neither --config nor BEICHEN_CONFIG is set.
type Connector func(ctx context.Context, configPath string) (*service.ClientServices, error)

var errMissingID = errors.New("record id is required")

type App struct {
	connect  Connector
	services *service.ClientServices

	in      io.Reader
	render  renderer
	version string

	logger *logger.Logger
}

func NewApp(connect Connector, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		connect: connect,
		in:      in,
		render:  renderer{out: out},
		logger:  logger,
	}
}

// SetVersion sets the text printed by --version.
func (a *App) SetVersion(version string) {
	a.version = version
}

func (a *App) Run(ctx context.Context, args []string) error {
	return a.command().Run(ctx, args)
}

func (a *App) command() *cli.Command {
	return &cli.Command{
		Name:    "beichen",
		Usage:   "Daily observations and duty reports of Beichen kindergarten",
		Version: a.version,
		Writer:  a.render.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a JSON or YAML config file",
				Sources: cli.EnvVars("BEICHEN_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			recordCommand(a, "observations", []string{"obs"}, "Daily observations",
				func(s *service.ClientServices) service.ClientRecordService[models.DisplayObservation] {
					return s.ObservationService
				},
				a.render.observations),
			recordCommand(a, "duty-reports", []string{"duty"}, "Duty reports",
				func(s *service.ClientServices) service.ClientRecordService[models.DisplayDutyReport] {
					return s.DutyReportService
				},
				a.render.dutyReports),
			{
				Name:  "reference",
				Usage: "Show campuses, classes, teachers and leaders",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					services, err := a.servicesFor(ctx, cmd)
					if err != nil {
						return err
					}
					snapshot, err := services.ReferenceService.Load(ctx)
					if err != nil {
						return err
					}
					a.render.references(snapshot)
					return nil
				},
			},
			{
				Name:  "login",
				Usage: "Log in again with the configured account",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					services, err := a.servicesFor(ctx, cmd)
					if err != nil {
						return err
					}
					if err = services.AuthService.Login(ctx); err != nil {
						return err
					}
					a.render.message("logged in")
					return nil
				},
			},
			{
				Name:  "logout",
				Usage: "Forget the stored access token",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					services, err := a.servicesFor(ctx, cmd)
					if err != nil {
						return err
					}
					if err = services.AuthService.Logout(ctx); err != nil {
						return err
					}
					a.render.message("logged out")
					return nil
				},
			},
		},
	}
}

// servicesFor connects on first use.
func (a *App) servicesFor(ctx context.Context, cmd *cli.Command) (*service.ClientServices, error) {
	if a.services != nil {
		return a.services, nil
	}

	services, err := a.connect(ctx, cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("error starting client: %w", err)
	}
	a.services = services
	a.logger.Debug().Str("command", cmd.Name).Msg("client services are ready")
	return services, nil
}

// recordCommand builds the list/show/create/update/delete subcommands of one
// record kind.
func recordCommand[D any](
	a *App,
	name string,
	aliases []string,
	usage string,
	pick func(*service.ClientServices) service.ClientRecordService[D],
	list func([]D),
) *cli.Command {
	recordService := func(ctx context.Context, cmd *cli.Command) (service.ClientRecordService[D], error) {
		services, err := a.servicesFor(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return pick(services), nil
	}

	return &cli.Command{
		Name:    name,
		Aliases: aliases,
		Usage:   usage,
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List every record, newest first",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					svc, err := recordService(ctx, cmd)
					if err != nil {
						return err
					}
					records, err := svc.List(ctx)
					if err != nil {
						return err
					}
					list(records)
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "Show one record",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := idArg(cmd)
					if err != nil {
						return err
					}
					svc, err := recordService(ctx, cmd)
					if err != nil {
						return err
					}
					record, err := svc.Get(ctx, id)
					if err != nil {
						return err
					}
					return a.render.record(fmt.Sprintf("%s %s", name, id), record)
				},
			},
			{
				Name:  "create",
				Usage: "Create a record from a display-format JSON file",
				Flags: []cli.Flag{fileFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					record, err := readRecord[D](a.in, cmd.String("file"))
					if err != nil {
						return err
					}
					svc, err := recordService(ctx, cmd)
					if err != nil {
						return err
					}
					id, err := svc.Create(ctx, record)
					if err != nil {
						return err
					}
					a.render.message("created %s", id)
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "Replace a record with a display-format JSON file",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{fileFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := idArg(cmd)
					if err != nil {
						return err
					}
					record, err := readRecord[D](a.in, cmd.String("file"))
					if err != nil {
						return err
					}
					svc, err := recordService(ctx, cmd)
					if err != nil {
						return err
					}
					if _, err = svc.Update(ctx, id, record); err != nil {
						return err
					}
					a.render.message("updated %s", id)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a record",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := idArg(cmd)
					if err != nil {
						return err
					}
					svc, err := recordService(ctx, cmd)
					if err != nil {
						return err
					}
					if err = svc.Delete(ctx, id); err != nil {
						return err
					}
					a.render.message("deleted %s", id)
					return nil
				},
			},
		},
	}
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "Display-format JSON file, - for stdin",
		Required: true,
	}
}

func idArg(cmd *cli.Command) (models.ID, error) {
	id := cmd.Args().First()
	if id == "" {
		return "", errMissingID
	}
	return models.ID(id), nil
}

func readRecord[D any](stdin io.Reader, path string) (D, error) {
	var record D

	var src io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return record, fmt.Errorf("error opening record file: %w", err)
		}
		defer f.Close()
		src = f
	}

	if err := json.NewDecoder(src).Decode(&record); err != nil {
		return record, fmt.Errorf("error decoding record file: %w", err)
	}
	return record, nil
}
