// Package testutil provides an in-memory schema and fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/league_admission/internal/database/database"
	inviteModel "github.com/festy23/league_admission/internal/invite/model"
	leagueModel "github.com/festy23/league_admission/internal/league/model"
	teamModel "github.com/festy23/league_admission/internal/team/model"
	userModel "github.com/festy23/league_admission/internal/user/model"
)

// Epoch is the instant fixtures are stamped with.
var Epoch = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

// NewDB opens an in-memory SQLite database with every table migrated.
// The pool holds a single connection so that all goroutines share the
// same database and transactions serialize.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: database.NewGormLogger(zaptest.NewLogger(t).Sugar(), time.Second),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(
		&userModel.User{},
		&teamModel.Team{},
		&leagueModel.League{},
		&leagueModel.Membership{},
		&inviteModel.Invite{},
	)
	require.NoError(t, err)

	return db
}

// SeedUser inserts a user profile.
func SeedUser(t testing.TB, db *gorm.DB, id int64, firstName, lastName string) *userModel.User {
	t.Helper()
	u := &userModel.User{ID: id, FirstName: firstName, LastName: lastName}
	require.NoError(t, db.Create(u).Error)
	return u
}

// SeedTeam inserts a user profile and the team it owns.
func SeedTeam(t testing.TB, db *gorm.DB, ownerID int64, name string) *teamModel.Team {
	t.Helper()
	SeedUser(t, db, ownerID, name+" Owner", "")
	team := &teamModel.Team{OwnerID: ownerID, Name: name, CreatedAt: Epoch}
	require.NoError(t, db.Create(team).Error)
	return team
}

// SeedLeague inserts a league owned by ownerTeam's owner and enrolls that team.
func SeedLeague(t testing.TB, db *gorm.DB, ownerTeam *teamModel.Team, name string, capacity int, private bool) *leagueModel.League {
	t.Helper()
	l := &leagueModel.League{
		Name:      name,
		IsPrivate: private,
		Capacity:  capacity,
		OwnerID:   ownerTeam.OwnerID,
		CreatedAt: Epoch,
	}
	require.NoError(t, db.Create(l).Error)
	require.NoError(t, db.Create(leagueModel.NewMembership(l.ID, ownerTeam.ID, ownerTeam.OwnerID, Epoch)).Error)
	return l
}

// CountMembers returns the number of membership rows of leagueID.
func CountMembers(t testing.TB, db *gorm.DB, leagueID int64) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&leagueModel.Membership{}).Where("league_id = ?", leagueID).Count(&n).Error)
	return n
}
