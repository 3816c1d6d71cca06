package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"givebridge-be/internal/config"
	"givebridge-be/internal/dto"
	"givebridge-be/internal/pkg/logger"
	"givebridge-be/internal/repository/unitofwork"
	"givebridge-be/internal/service"
	"givebridge-be/pkg/database"
	"givebridge-be/pkg/eventbus"
	"givebridge-be/pkg/paygate"
)

// fakeGateway records the last session and returns a canned redirect URL, so
// checkout flows run without the real payment sandbox.
type fakeGateway struct {
	lastRequest *paygate.SessionRequest
}

func (g *fakeGateway) InitiateSession(ctx context.Context, req *paygate.SessionRequest) (string, error) {
	g.lastRequest = req
	return "https://gateway.test/session/" + req.TranRef, nil
}

type services struct {
	db       *gorm.DB
	uow      unitofwork.RepositoryFactory
	gateway  *fakeGateway
	auth     service.IAuthService
	user     service.IUserService
	donation service.IDonationService
	request  service.IRequestService
	campaign service.ICampaignService
	payment  service.IPaymentService
	reward   service.IRewardService
	notif    service.INotificationService
	admin    service.IAdminService
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDB(dsn)
	require.NoError(t, err, "failed to connect to DB")
	return db
}

func newServices(t *testing.T, db *gorm.DB) *services {
	t.Helper()

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
	bus := eventbus.New(nil)
	t.Cleanup(func() { bus.Close() })

	cfg := config.Load()
	gateway := &fakeGateway{}

	notif := service.NewNotificationService(uowFactory, nil, nil, sysLogger)
	reward := service.NewRewardService(uowFactory, notif, bus, sysLogger)

	return &services{
		db:       db,
		uow:      uowFactory,
		gateway:  gateway,
		auth:     service.NewAuthService(uowFactory, bus),
		user:     service.NewUserService(uowFactory),
		donation: service.NewDonationService(uowFactory, reward, notif, bus, sysLogger),
		request:  service.NewRequestService(uowFactory, reward, notif, bus, sysLogger),
		campaign: service.NewCampaignService(uowFactory),
		payment:  service.NewPaymentService(uowFactory, gateway, cfg, reward, notif, bus, sysLogger),
		reward:   reward,
		notif:    notif,
		admin:    service.NewAdminService(uowFactory, reward, notif, bus, sysLogger),
	}
}

func registerDonor(t *testing.T, s *services) *dto.UserResponse {
	t.Helper()

	suffix := uuid.New().String()[:8]
	res, err := s.auth.RegisterDonor(context.Background(), &dto.RegisterDonorRequest{
		Username: "donor-" + suffix,
		Email:    fmt.Sprintf("donor-%s@example.com", suffix),
		Password: "password123",
		FullName: "Test Donor " + suffix,
	})
	require.NoError(t, err)
	return res
}

func registerApprovedNGO(t *testing.T, s *services) *dto.UserResponse {
	t.Helper()

	suffix := uuid.New().String()[:8]
	res, err := s.auth.RegisterNGO(context.Background(), &dto.RegisterNGORequest{
		Username:      "ngo-" + suffix,
		Email:         fmt.Sprintf("ngo-%s@example.com", suffix),
		Password:      "password123",
		NGOName:       "Test NGO " + suffix,
		ContactPerson: "Contact Person",
	})
	require.NoError(t, err)

	require.NoError(t, s.admin.HandleNGO(context.Background(), res.Id, &dto.ApprovalRequest{Action: "approve"}))
	return res
}

func mustDecimal(t *testing.T, v string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	require.NoError(t, err)
	return d
}

func pastTime() time.Time {
	return time.Now().Add(-24 * time.Hour)
}
