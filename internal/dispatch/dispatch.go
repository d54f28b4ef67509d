package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/advisor-tools/advisor/internal/command"
	"github.com/advisor-tools/advisor/internal/httpexec"
	"github.com/advisor-tools/advisor/internal/registry"
	"github.com/advisor-tools/advisor/internal/render"
)

// ErrUnsupportedCommand means the parsed command has no wired network
// operation. No request is attempted for these.
var ErrUnsupportedCommand = errors.New("unsupported command")

// Lightweight calls answer fast or not at all; listings may carry a larger
// payload and get more headroom.
const (
	healthTimeout = 1 * time.Second
	listTimeout   = 5 * time.Second
)

// Dispatcher executes commands against advisor instances.
type Dispatcher struct {
	exec *httpexec.Client
}

// New creates a Dispatcher backed by the given executor.
func New(exec *httpexec.Client) *Dispatcher {
	return &Dispatcher{exec: exec}
}

// Run executes cmd against inst and returns the user-facing payload. The
// switch is total over the command variants; adding a variant without a case
// here shows up as an unsupported-command failure, never as a silent no-op.
func (d *Dispatcher) Run(ctx context.Context, inst registry.Instance, cmd command.Command) (string, error) {
	switch c := cmd.(type) {
	case command.Healthcheck:
		body, err := d.exec.Execute(ctx, inst.Location+"/healthcheck", httpexec.None, healthTimeout)
		if err != nil {
			return "", err
		}
		return render.Health(body), nil

	case command.ShowPeople:
		body, err := d.exec.Execute(ctx, inst.Location+"/admin/people", inst.Auth(), listTimeout)
		if err != nil {
			return "", err
		}
		return render.PeopleTable(body)

	case command.ShowQuestionnaires:
		return "", unsupported("show questionnaires")
	case command.DeletePerson:
		return "", unsupported("delete person")
	case command.CreatePerson:
		return "", unsupported("create person")
	case command.AddPersonToQuestionnaire:
		return "", unsupported("add person to questionnaire")
	case command.RemovePersonFromQuestionnaire:
		return "", unsupported("remove person from questionnaire")

	case command.Unrecognized:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCommand, strings.Join(c.Raw, " "))

	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedCommand, cmd)
	}
}

// unsupported flags a command variant the server API does not expose an
// endpoint for yet.
func unsupported(name string) error {
	return fmt.Errorf("%w: %s has no remote endpoint yet", ErrUnsupportedCommand, name)
}
