package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"corpsite-backend/internal/config"
	m "corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded fixtures
var (
	TestAdminUser m.User
	TestHRUser    m.User

	// Plain password shared by every seeded user
	TestSeedPassword = "SeedPass123!"

	TestActiveCareer   m.Career
	TestFeaturedCareer m.Career
	TestDraftCareer    m.Career
	TestClosedCareer   m.Career
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	ctx := context.Background()
	dbContainer, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(ctx)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(ctx, nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName)
	db, err := Open(ctx, dsn, config.AdminConfig{})
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(ctx, db); err != nil {
		_ = dbContainer.Terminate(ctx)
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts one admin, one hr user and four careers in different states.
func seedTestData(ctx context.Context, db *DBinstanceStruct) error {
	tx := db.WithContext(ctx)

	hashedPwd, err := utilities.HashPassword(TestSeedPassword)
	if err != nil {
		return err
	}

	TestAdminUser = m.User{Username: "admin_user", Password: hashedPwd, Role: m.RoleAdmin, FullName: "Admin User", Email: ptr("admin@example.com")}
	TestHRUser = m.User{Username: "hr_user", Password: hashedPwd, Role: m.RoleHR, FullName: "HR User", Email: ptr("hr@example.com")}
	if err := tx.Create(&TestAdminUser).Error; err != nil {
		return err
	}
	if err := tx.Create(&TestHRUser).Error; err != nil {
		return err
	}

	now := time.Now()
	closeDate := now.AddDate(0, 1, 0)
	newCareer := func(title, location, level, status string, featured bool, published time.Time) m.Career {
		c := m.Career{
			EditableCareerInfo: m.EditableCareerInfo{
				Title:           title,
				Location:        location,
				ExperienceLevel: level,
				Description:     title + " for ongoing construction projects",
				Requirements:    "Relevant degree",
				Benefits:        pq.StringArray{"BPJS", "THR"},
				Department:      "Engineering",
				Featured:        featured,
				CloseDate:       &closeDate,
			},
			Status:      status,
			CreatedByID: &TestAdminUser.ID,
		}
		if status == m.CareerStatusActive || status == m.CareerStatusClosed {
			c.PublishDate = &published
		}
		return c
	}

	TestActiveCareer = newCareer("Site Engineer", "Jakarta", "Mid", m.CareerStatusActive, false, now.Add(-2*time.Hour))
	TestFeaturedCareer = newCareer("Project Manager", "Surabaya", "Senior", m.CareerStatusActive, true, now.Add(-48*time.Hour))
	TestDraftCareer = newCareer("Quantity Surveyor", "Bandung", "Junior", m.CareerStatusDraft, false, now)
	TestClosedCareer = newCareer("Safety Officer", "Medan", "Mid", m.CareerStatusClosed, false, now.Add(-72*time.Hour))

	for _, c := range []*m.Career{&TestActiveCareer, &TestFeaturedCareer, &TestDraftCareer, &TestClosedCareer} {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
	}
	return nil
}

// ptr helper
func ptr[T any](v T) *T { return &v }
