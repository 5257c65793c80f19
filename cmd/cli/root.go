package main

import (
	"context"
	"fmt"
	"os"

	"nivlek-client/internal/app/config"
	"nivlek-client/internal/app/contracts"
	"nivlek-client/internal/app/drivers/database"
	"nivlek-client/internal/app/drivers/logger"
	"nivlek-client/internal/app/services/admin"
	"nivlek-client/internal/app/services/auth"
	"nivlek-client/internal/app/services/core/appointments"
	"nivlek-client/internal/app/services/core/dashboard"
	"nivlek-client/internal/app/services/core/medications"
	"nivlek-client/internal/app/services/core/patients"
	"nivlek-client/internal/app/services/core/profile"
	"nivlek-client/internal/app/services/core/reports"
	"nivlek-client/internal/app/services/guard"
	"nivlek-client/internal/app/services/shared/restclient"
	"nivlek-client/internal/app/services/shared/tokenstore"
	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/exceptions"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// application holds everything a command needs after bootstrap. One instance
// lives for the whole invocation; every backend call in that invocation shares
// the same request ID.
type application struct {
	ctx            context.Context
	internalConfig *config.InternalConfig
	driverConfig   *config.DriverConfig
	zapLogger      *zap.Logger

	store        contracts.TokenStore
	sessions     contracts.SessionManager
	patients     contracts.PatientClient
	appointments contracts.AppointmentClient
	medications  contracts.MedicationClient
	dashboard    contracts.DashboardClient
	reports      contracts.ReportClient
	profile      contracts.ProfileClient
	admin        contracts.AdminGateway

	shutdown func()
}

var app *application

var rootCmd = &cobra.Command{
	Use:           "nivlek",
	Short:         "Terminal front end for the patient management backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		app, err = bootstrap()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil && app.shutdown != nil {
			app.shutdown()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func bootstrap() (*application, error) {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig, driverConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	store, shutdown, err := buildTokenStore(internalConfig, driverConfig, zapLogger)
	if err != nil {
		logrus.WithError(err).Error("failed to open token store")
		return nil, err
	}

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, uuid.New().String())

	userRest := restclient.NewRestClient(constvars.StoreKeyToken, store, internalConfig, zapLogger)
	adminRest := restclient.NewRestClient(constvars.StoreKeyAdminToken, store, internalConfig, zapLogger)

	return &application{
		ctx:            ctx,
		internalConfig: internalConfig,
		driverConfig:   driverConfig,
		zapLogger:      zapLogger,
		store:          store,
		sessions:       auth.NewSessionManager(store, userRest, zapLogger),
		patients:       patients.NewPatientRestClient(userRest, zapLogger),
		appointments:   appointments.NewAppointmentRestClient(userRest, zapLogger),
		medications:    medications.NewMedicationRestClient(userRest, zapLogger),
		dashboard:      dashboard.NewDashboardRestClient(userRest, zapLogger),
		reports:        reports.NewReportRestClient(userRest, zapLogger),
		profile:        profile.NewProfileRestClient(userRest, zapLogger),
		admin:          admin.NewAdminGateway(store, adminRest, internalConfig.Demo, zapLogger),
		shutdown:       shutdown,
	}, nil
}

func buildTokenStore(internalConfig *config.InternalConfig, driverConfig *config.DriverConfig, zapLogger *zap.Logger) (contracts.TokenStore, func(), error) {
	switch internalConfig.App.TokenStoreBackend {
	case "redis":
		client := database.NewRedisClient(driverConfig)
		store := tokenstore.NewRedisTokenStore(client, zapLogger)
		return store, func() { client.Close() }, nil
	default:
		db, err := database.NewSQLiteDB(driverConfig)
		if err != nil {
			return nil, nil, err
		}
		store, err := tokenstore.NewSQLiteTokenStore(db, zapLogger)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil
	}
}

// requireSession resolves the session and admits the command only when it is
// authenticated. The not-logged-in outcome is the CLI rendering of a redirect
// to the login page.
func (a *application) requireSession() (contracts.Session, error) {
	session := a.sessions.Initialize(a.ctx)
	decision := guard.RequireSession(session)
	if decision.Action != guard.ActionRender {
		return session, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	return session, nil
}

// requireAnonymous mirrors the login-page guard: an already authenticated
// session is turned away instead of logging in twice.
func (a *application) requireAnonymous() error {
	session := a.sessions.Initialize(a.ctx)
	decision := guard.RequireAnonymous(session)
	if decision.Action != guard.ActionRender {
		return exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientSessionAlreadyActive, constvars.ErrDevSessionAlreadyActive)
	}
	return nil
}

// run wraps a command body so every failure is reported the same way: the
// client message on stderr, the dev detail in the structured log only.
func run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			fmt.Fprintln(os.Stderr, "Error: "+exceptions.ClientMessageOf(err))
			return err
		}
		return nil
	}
}
