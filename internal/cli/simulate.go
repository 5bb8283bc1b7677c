package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wintryx/progressmaker/pkg/apiclient"
	"github.com/wintryx/progressmaker/pkg/apierror"
	"github.com/wintryx/progressmaker/pkg/async"
	"github.com/wintryx/progressmaker/pkg/config"
	"github.com/wintryx/progressmaker/pkg/dashboard"
	"github.com/wintryx/progressmaker/pkg/forms"
	"github.com/wintryx/progressmaker/pkg/mockapi"
	"github.com/wintryx/progressmaker/pkg/notifications"
	"github.com/wintryx/progressmaker/pkg/notifications/console"
	"github.com/wintryx/progressmaker/pkg/requestid"
	"github.com/wintryx/progressmaker/svc/auth"
	"github.com/wintryx/progressmaker/svc/playground"
)

const (
	scenarioError          = "error"
	scenarioUnauthorized   = "unauthorized"
	scenarioNotification   = "notification"
	scenarioDashboard      = "dashboard"
	scenarioDashboardError = "dashboard-error"
	scenarioDashboardAuth  = "dashboard-unauthorized"
	scenarioForm           = "form"

	demoFormID = "user-profile"
)

var (
	scenarios = []string{
		scenarioError, scenarioUnauthorized, scenarioNotification,
		scenarioDashboard, scenarioDashboardError, scenarioDashboardAuth, scenarioForm,
	}

	ErrUnknownScenario = errors.New("unknown scenario")
)

type simulateOptions struct {
	message string
	typ     string
	baseURL string
	latency time.Duration
	burst   int
	width   int
	plain   bool
}

func newSimulateCmd() *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:       "simulate <" + strings.Join(scenarios, "|") + ">",
		Short:     "Run a notification scenario and print the resulting toasts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: scenarios,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(scenarios, args[0]) {
				return fmt.Errorf("%w %q, expected one of %s", ErrUnknownScenario, args[0], strings.Join(scenarios, ", "))
			}
			typ, err := notifications.ParseType(opts.typ)
			if err != nil {
				return err
			}

			var app AppConfig
			if err := config.Load(&app); err != nil {
				return err
			}
			if app.LogLevel == "" {
				app.LogLevel = "warn"
			}
			log := newLogger(app, cmd.ErrOrStderr())

			presenter := console.New(cmd.OutOrStdout(), console.WithErase(!opts.plain), console.WithWidth(opts.width))
			notifier := notifications.NewService(presenter, notifications.WithLogger(log))

			base, baseURL, err := opts.backend(log)
			if err != nil {
				return err
			}
			api := apiclient.New(baseURL, notifier.Client(notifications.WithBase(requestid.Transport{Base: base})))

			session := auth.NewSession(auth.WithLogger(log))
			if err := session.Login(auth.User{ID: "demo", Name: "Demo user"}); err != nil {
				return err
			}

			s := simulation{
				scenario:   args[0],
				message:    opts.message,
				typ:        typ,
				playground: playground.New(api, notifier, session, playground.WithLogger(log)),
				dashboard:  dashboard.New(api, notifier, dashboard.WithLogger(log)),
				forms:      forms.New(api, notifier, forms.WithLogger(log)),
				session:    session,
			}

			runs := make([]int, max(opts.burst, 1))
			_, err = async.Map(cmd.Context(), runs, len(runs), func(ctx context.Context, _ int) (struct{}, error) {
				return struct{}{}, s.run(requestid.WithContext(ctx, newRunID()))
			})
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.message, "message", "m", "", "custom toast message")
	f.StringVarP(&opts.typ, "type", "t", "success", "notification type for the notification scenario")
	f.StringVar(&opts.baseURL, "base-url", "", "use a running backend, e.g. http://localhost:8080/api")
	f.DurationVar(&opts.latency, "latency", 300*time.Millisecond, "simulated latency of the in-process backend")
	f.IntVar(&opts.burst, "burst", 1, "number of concurrent runs")
	f.IntVar(&opts.width, "width", 64, "toast width in cells")
	f.BoolVar(&opts.plain, "plain", false, "print toasts one after another without erasing")
	return cmd
}

// backend returns the transport and base URL of the backend to talk to.
// Without --base-url the mock backend runs in-process.
func (o simulateOptions) backend(log *slog.Logger) (http.RoundTripper, string, error) {
	if o.baseURL != "" {
		return http.DefaultTransport, o.baseURL, nil
	}
	api, err := mockapi.New(mockapi.WithLatency(o.latency), mockapi.WithLogger(log))
	if err != nil {
		return nil, "", err
	}
	return mockapi.Transport(api.Handler()), "http://mockapi.local" + api.BasePath(), nil
}

type simulation struct {
	scenario   string
	message    string
	typ        notifications.Type
	playground *playground.Service
	dashboard  *dashboard.Client
	forms      *forms.Client
	session    *auth.Session
}

// run executes one scenario. Failures the scenario provokes on purpose are
// not errors.
func (s simulation) run(ctx context.Context) error {
	switch s.scenario {
	case scenarioError:
		_, err := s.playground.SimulateError(ctx, s.message)
		return err
	case scenarioUnauthorized:
		_, err := s.playground.SimulateUnauthorized(ctx, s.message)
		return err
	case scenarioNotification:
		_, err := s.playground.SimulateNotification(ctx, s.message, s.typ)
		return err
	case scenarioDashboard:
		items, err := s.dashboard.EnsureLoaded(ctx)
		if err != nil {
			return err
		}
		if len(items) > 0 {
			if _, err := s.dashboard.Item(ctx, items[0].ID); err != nil {
				return err
			}
		}
		_, err = s.dashboard.Refresh(ctx)
		return err
	case scenarioDashboardError:
		// The backend always fails here; the toast is the outcome.
		if err := s.dashboard.TriggerError(ctx); err != nil && apierror.Normalize(err, "").Status == 0 {
			return err
		}
		return nil
	case scenarioDashboardAuth:
		_, err := s.dashboard.LoadUnauthorized(ctx)
		if err == nil {
			return nil
		}
		if !apierror.Normalize(err, "").Unauthorized() {
			return err
		}
		return s.session.Logout(ctx)
	case scenarioForm:
		cfg, err := s.forms.Load(ctx, demoFormID)
		if err != nil {
			return err
		}
		values := cfg.Defaults()
		values["username"] = "demo"
		values["email"] = "demo@example.com"
		_, err = s.forms.Submit(ctx, values)
		return err
	default:
		return fmt.Errorf("%w %q", ErrUnknownScenario, s.scenario)
	}
}

func newRunID() string {
	return "sim-" + uuid.NewString()
}
