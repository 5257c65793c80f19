package admin

import (
	"context"
	"time"

	"nivlek-client/internal/app/config"
	"nivlek-client/internal/app/contracts"
	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/dto/requests"
	"nivlek-client/internal/pkg/dto/responses"
	"nivlek-client/internal/pkg/exceptions"
	"nivlek-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type adminGateway struct {
	Store contracts.TokenStore
	Rest  contracts.RestClient
	Demo  config.Demo
	Log   *zap.Logger
}

// NewAdminGateway wires the admin surface. The RestClient it receives must be
// built with StoreKeyAdminToken so admin requests never carry the user token.
func NewAdminGateway(store contracts.TokenStore, rest contracts.RestClient, demoConfig config.Demo, logger *zap.Logger) contracts.AdminGateway {
	return &adminGateway{
		Store: store,
		Rest:  rest,
		Demo:  demoConfig,
		Log:   logger,
	}
}

func (g *adminGateway) Login(ctx context.Context, username, password string) (*responses.AdminUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Info("adminGateway.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.AdminLogin{Username: username, Password: password}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result := new(responses.AdminLogin)
	err := g.Rest.Post(ctx, constvars.PathAdminLogin, request, result, constvars.ResourceAdmin)
	if err != nil {
		return g.demoLoginFallback(ctx, username, password, err)
	}

	if err := g.persistAdmin(ctx, result.AccessToken, &result.Admin); err != nil {
		return nil, err
	}
	return &result.Admin, nil
}

// demoLoginFallback accepts the locally configured admin credential pair when
// demo mode is on and the backend rejected (or never received) the login. The
// token it stores is minted locally and the backend will not honor it; the
// admin views then rely on the sample-data fallback.
func (g *adminGateway) demoLoginFallback(ctx context.Context, username, password string, loginErr error) (*responses.AdminUser, error) {
	if !g.Demo.Enabled {
		return nil, loginErr
	}
	if username != g.Demo.AdminUsername || !utils.CheckPasswordHash(password, g.Demo.AdminPasswordHash) {
		return nil, loginErr
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Info("adminGateway.Login falling back to demo admin",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	expTime := time.Duration(g.Demo.TokenExpTimeInHours) * time.Hour
	token, err := utils.GenerateLocalAdminJWT(username, g.Demo.JWTSecret, expTime)
	if err != nil {
		return nil, err
	}

	adminUser := &responses.AdminUser{
		ID:       "demo-admin",
		Name:     "Demo Administrator",
		Username: username,
		Role:     "admin",
	}
	if err := g.persistAdmin(ctx, token, adminUser); err != nil {
		return nil, err
	}
	return adminUser, nil
}

func (g *adminGateway) persistAdmin(ctx context.Context, token string, adminUser *responses.AdminUser) error {
	if err := g.Store.Set(ctx, constvars.StoreKeyAdminToken, token); err != nil {
		return err
	}

	raw, err := json.Marshal(adminUser)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return g.Store.Set(ctx, constvars.StoreKeyAdminUser, string(raw))
}

// Logout removes the admin keys only. The user session, if any, stays live.
func (g *adminGateway) Logout(ctx context.Context) error {
	if err := g.Store.Remove(ctx, constvars.StoreKeyAdminToken); err != nil {
		return err
	}
	return g.Store.Remove(ctx, constvars.StoreKeyAdminUser)
}

// CurrentAdmin returns the persisted admin identity, or nil when no admin is
// logged in. It never calls the backend.
func (g *adminGateway) CurrentAdmin(ctx context.Context) (*responses.AdminUser, error) {
	raw, err := g.Store.Get(ctx, constvars.StoreKeyAdminUser)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	adminUser := new(responses.AdminUser)
	if err := json.Unmarshal([]byte(raw), adminUser); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAdmin)
	}
	return adminUser, nil
}

func (g *adminGateway) GetStats(ctx context.Context) (*responses.AdminStats, error) {
	result := new(responses.AdminStats)
	err := g.Rest.Get(ctx, constvars.PathAdminStats, result, constvars.ResourceAdmin)
	if err != nil {
		if g.Demo.Enabled {
			g.logSampleFallback(ctx, constvars.PathAdminStats, err)
			return sampleStats(), nil
		}
		return nil, err
	}
	return result, nil
}

func (g *adminGateway) ListUsers(ctx context.Context) ([]responses.UserProfile, error) {
	result := new(responses.AdminUserList)
	err := g.Rest.Get(ctx, constvars.PathAdminUsers, result, constvars.ResourceAdmin)
	if err != nil {
		if g.Demo.Enabled {
			g.logSampleFallback(ctx, constvars.PathAdminUsers, err)
			return sampleUsers(), nil
		}
		return nil, err
	}
	return result.Users, nil
}

func (g *adminGateway) ListPatients(ctx context.Context) ([]responses.Patient, error) {
	result := new(responses.PatientList)
	err := g.Rest.Get(ctx, constvars.PathAdminPatients, result, constvars.ResourcePatient)
	if err != nil {
		if g.Demo.Enabled {
			g.logSampleFallback(ctx, constvars.PathAdminPatients, err)
			return samplePatients(), nil
		}
		return nil, err
	}
	return result.Patients, nil
}

func (g *adminGateway) ListAppointments(ctx context.Context) ([]responses.Appointment, error) {
	result := new(responses.AppointmentList)
	err := g.Rest.Get(ctx, constvars.PathAdminAppointments, result, constvars.ResourceAppointment)
	if err != nil {
		if g.Demo.Enabled {
			g.logSampleFallback(ctx, constvars.PathAdminAppointments, err)
			return sampleAppointments(), nil
		}
		return nil, err
	}
	return result.Appointments, nil
}

func (g *adminGateway) logSampleFallback(ctx context.Context, path string, err error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Warn("adminGateway serving sample data after fetch failure",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPathKey, path),
		zap.Error(err),
	)
}
