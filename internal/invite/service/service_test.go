package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/festy23/league_admission/internal/apperror"
	"github.com/festy23/league_admission/internal/config"
	inviteModel "github.com/festy23/league_admission/internal/invite/model"
	"github.com/festy23/league_admission/internal/invite/repository"
	leagueModel "github.com/festy23/league_admission/internal/league/model"
	leagueRepository "github.com/festy23/league_admission/internal/league/repository"
	leagueService "github.com/festy23/league_admission/internal/league/service"
	teamModel "github.com/festy23/league_admission/internal/team/model"
	teamRepository "github.com/festy23/league_admission/internal/team/repository"
	"github.com/festy23/league_admission/internal/testutil"
	userRepository "github.com/festy23/league_admission/internal/user/repository"
	"github.com/festy23/league_admission/pkg/clock"
	"github.com/festy23/league_admission/pkg/token"
)

var testInviteConfig = config.InviteConfig{
	BaseURL:     "https://leagues.example.com",
	TokenLength: 10,
	MaxAttempts: 5,
}

type sequenceGenerator struct {
	mu    sync.Mutex
	codes []string
	err   error
	calls int
}

func (g *sequenceGenerator) Generate(int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	i := g.calls - 1
	if i >= len(g.codes) {
		i = len(g.codes) - 1
	}
	return g.codes[i], nil
}

type fixture struct {
	db    *gorm.DB
	svc   Service
	owner *teamModel.Team
}

func setup(t *testing.T, tokens TokenGenerator) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	logger := zaptest.NewLogger(t).Sugar()
	clk := clock.Fixed{At: testutil.Epoch}

	leagues := leagueRepository.New(db)
	joiner := leagueService.New(leagues, teamRepository.New(db), db, clk, logger)
	svc := New(repository.New(db), leagues, userRepository.New(db), joiner, tokens, testInviteConfig, clk, logger)

	return &fixture{db: db, svc: svc, owner: testutil.SeedTeam(t, db, 1, "Engines")}
}

func countInvites(t *testing.T, db *gorm.DB, leagueID int64) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&inviteModel.Invite{}).Where("league_id = ?", leagueID).Count(&n).Error)
	return n
}

func TestService_GetOrCreateInvite(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent", func(t *testing.T) {
		f := setup(t, token.NewGenerator(nil))
		league := testutil.SeedLeague(t, f.db, f.owner, "Hidden", 4, true)

		first, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)
		require.NoError(t, err)
		second, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)
		require.NoError(t, err)

		assert.Equal(t, first.Token, second.Token)
		assert.Len(t, first.Token, 10)
		assert.Equal(t, "https://leagues.example.com/leagues/join/"+first.Token, first.URL)
		assert.Equal(t, int64(1), first.CreatedBy)
		assert.True(t, first.CreatedAt.Equal(testutil.Epoch))
		assert.Equal(t, int64(1), countInvites(t, f.db, league.ID))
	})

	t.Run("concurrent first calls converge", func(t *testing.T) {
		f := setup(t, token.NewGenerator(nil))
		league := testutil.SeedLeague(t, f.db, f.owner, "Hidden", 4, true)

		const callers = 8
		tokens := make([]string, callers)
		errs := make([]error, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				resp, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)
				errs[i] = err
				if err == nil {
					tokens[i] = resp.Token
				}
			}(i)
		}
		wg.Wait()

		for i := range errs {
			require.NoError(t, errs[i])
			assert.Equal(t, tokens[0], tokens[i])
		}
		assert.Equal(t, int64(1), countInvites(t, f.db, league.ID))
	})

	t.Run("non-owner", func(t *testing.T) {
		f := setup(t, token.NewGenerator(nil))
		league := testutil.SeedLeague(t, f.db, f.owner, "Hidden", 4, true)

		_, err := f.svc.GetOrCreateInvite(ctx, league.ID, 2)

		assert.ErrorIs(t, err, leagueModel.ErrNotLeagueOwner)
		assert.Zero(t, countInvites(t, f.db, league.ID))
	})

	t.Run("public league", func(t *testing.T) {
		f := setup(t, token.NewGenerator(nil))
		league := testutil.SeedLeague(t, f.db, f.owner, "Open", 4, false)

		_, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)

		assert.ErrorIs(t, err, inviteModel.ErrInviteRequiresPrivateLeague)
		assert.ErrorIs(t, err, apperror.New(apperror.CodeInvalidOperation, ""))
	})

	t.Run("missing league", func(t *testing.T) {
		f := setup(t, token.NewGenerator(nil))

		_, err := f.svc.GetOrCreateInvite(ctx, 99, 1)

		assert.ErrorIs(t, err, leagueModel.ErrLeagueNotFound)
	})

	t.Run("invalid ids", func(t *testing.T) {
		f := setup(t, token.NewGenerator(nil))

		_, err := f.svc.GetOrCreateInvite(ctx, 0, 1)
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

		_, err = f.svc.GetOrCreateInvite(ctx, 1, 0)
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})
}

func TestService_TokenCollisions(t *testing.T) {
	ctx := context.Background()

	t.Run("retries past a taken token", func(t *testing.T) {
		gen := &sequenceGenerator{codes: []string{"AAAAAAAAAA", "BBBBBBBBBB"}}
		f := setup(t, gen)
		other := testutil.SeedLeague(t, f.db, f.owner, "Other", 4, true)
		league := testutil.SeedLeague(t, f.db, f.owner, "Hidden", 4, true)
		require.NoError(t, f.db.Create(&inviteModel.Invite{LeagueID: other.ID, Token: "AAAAAAAAAA", CreatedBy: 1, CreatedAt: testutil.Epoch}).Error)

		resp, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)

		require.NoError(t, err)
		assert.Equal(t, "BBBBBBBBBB", resp.Token)
		assert.Equal(t, 2, gen.calls)
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		gen := &sequenceGenerator{codes: []string{"AAAAAAAAAA"}}
		f := setup(t, gen)
		other := testutil.SeedLeague(t, f.db, f.owner, "Other", 4, true)
		league := testutil.SeedLeague(t, f.db, f.owner, "Hidden", 4, true)
		require.NoError(t, f.db.Create(&inviteModel.Invite{LeagueID: other.ID, Token: "AAAAAAAAAA", CreatedBy: 1, CreatedAt: testutil.Epoch}).Error)

		_, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)

		assert.ErrorIs(t, err, inviteModel.ErrTokenGenerationFailed)
		assert.Equal(t, testInviteConfig.MaxAttempts, gen.calls)
		assert.Zero(t, countInvites(t, f.db, league.ID))

		classified := apperror.Classify(err)
		assert.Equal(t, 500, classified.Status)
		assert.True(t, classified.Disclose)
	})

	t.Run("random source failure", func(t *testing.T) {
		sourceErr := errors.New("entropy exhausted")
		f := setup(t, &sequenceGenerator{err: sourceErr})
		league := testutil.SeedLeague(t, f.db, f.owner, "Hidden", 4, true)

		_, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)

		assert.ErrorIs(t, err, inviteModel.ErrTokenGenerationFailed)
		assert.ErrorIs(t, err, sourceErr)
	})

	t.Run("source yielding only rejected bytes", func(t *testing.T) {
		f := setup(t, token.NewGenerator(bytes.NewReader(bytes.Repeat([]byte{0xFF}, 4096))))
		league := testutil.SeedLeague(t, f.db, f.owner, "Hidden", 4, true)

		_, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)

		assert.ErrorIs(t, err, inviteModel.ErrTokenGenerationFailed)
		assert.ErrorIs(t, err, token.ErrSourceExhausted)
		assert.Zero(t, countInvites(t, f.db, league.ID))
	})
}

func TestService_ValidateAndPreview(t *testing.T) {
	ctx := context.Background()

	t.Run("preview", func(t *testing.T) {
		f := setup(t, token.NewGenerator(nil))
		require.NoError(t, f.db.Exec("UPDATE users SET first_name = ?, last_name = ? WHERE id = ?", "Ada", "Lovelace", 1).Error)
		league := testutil.SeedLeague(t, f.db, f.owner, "Hidden", 3, true)
		invite, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)
		require.NoError(t, err)

		preview, err := f.svc.ValidateAndPreview(ctx, invite.Token)

		require.NoError(t, err)
		assert.Equal(t, &inviteModel.Preview{
			LeagueID:    league.ID,
			Name:        "Hidden",
			OwnerName:   "Ada Lovelace",
			MemberCount: 1,
			Capacity:    3,
			IsFull:      false,
			IsPrivate:   true,
		}, preview)
	})

	t.Run("unknown, malformed and orphaned tokens fail identically", func(t *testing.T) {
		f := setup(t, token.NewGenerator(nil))
		league := testutil.SeedLeague(t, f.db, f.owner, "Hidden", 3, true)
		invite, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)
		require.NoError(t, err)

		_, neverIssued := f.svc.ValidateAndPreview(ctx, "ZZZZZZZZZZ")
		_, malformed := f.svc.ValidateAndPreview(ctx, "not a token!")
		_, empty := f.svc.ValidateAndPreview(ctx, "")

		require.NoError(t, f.db.Delete(&leagueModel.League{}, league.ID).Error)
		_, orphaned := f.svc.ValidateAndPreview(ctx, invite.Token)

		for _, err := range []error{neverIssued, malformed, empty, orphaned} {
			assert.Equal(t, inviteModel.ErrInvalidInviteToken, err)
		}
	})
}

func TestService_Redeem(t *testing.T) {
	ctx := context.Background()

	t.Run("private league via invite", func(t *testing.T) {
		f := setup(t, token.NewGenerator(nil))
		league := testutil.SeedLeague(t, f.db, f.owner, "Hidden", 3, true)
		guest := testutil.SeedTeam(t, f.db, 2, "Looms")
		invite, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)
		require.NoError(t, err)

		resp, err := f.svc.Redeem(ctx, invite.Token, 2)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.MemberCount)
		assert.Equal(t, guest.ID, resp.Members[1].TeamID)

		_, err = f.svc.Redeem(ctx, invite.Token, 2)
		assert.ErrorIs(t, err, leagueModel.ErrAlreadyInLeague)
	})

	t.Run("capacity still applies", func(t *testing.T) {
		f := setup(t, token.NewGenerator(nil))
		league := testutil.SeedLeague(t, f.db, f.owner, "Solo", 1, true)
		testutil.SeedTeam(t, f.db, 2, "Looms")
		invite, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)
		require.NoError(t, err)

		_, err = f.svc.Redeem(ctx, invite.Token, 2)

		assert.ErrorIs(t, err, leagueModel.ErrLeagueFull)
	})

	t.Run("concurrent redemptions for the last slot", func(t *testing.T) {
		f := setup(t, token.NewGenerator(nil))
		league := testutil.SeedLeague(t, f.db, f.owner, "Pair", 2, true)
		invite, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)
		require.NoError(t, err)

		const guests = 6
		for i := int64(0); i < guests; i++ {
			testutil.SeedTeam(t, f.db, 10+i, "Guest")
		}

		errs := make([]error, guests)
		var wg sync.WaitGroup
		for i := 0; i < guests; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = f.svc.Redeem(ctx, invite.Token, 10+int64(i))
			}(i)
		}
		wg.Wait()

		wins := 0
		for _, err := range errs {
			if err == nil {
				wins++
				continue
			}
			assert.ErrorIs(t, err, leagueModel.ErrLeagueFull)
		}
		assert.Equal(t, 1, wins)
		assert.Equal(t, int64(2), testutil.CountMembers(t, f.db, league.ID))
	})

	t.Run("unknown token", func(t *testing.T) {
		f := setup(t, token.NewGenerator(nil))

		_, err := f.svc.Redeem(ctx, "ZZZZZZZZZZ", 1)

		assert.Equal(t, inviteModel.ErrInvalidInviteToken, err)
	})

	t.Run("caller without team", func(t *testing.T) {
		f := setup(t, token.NewGenerator(nil))
		league := testutil.SeedLeague(t, f.db, f.owner, "Hidden", 3, true)
		invite, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)
		require.NoError(t, err)

		_, err = f.svc.Redeem(ctx, invite.Token, 50)

		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})
}

func TestService_InviteScenario(t *testing.T) {
	ctx := context.Background()
	f := setup(t, token.NewGenerator(nil))
	testutil.SeedTeam(t, f.db, 3, "Mills")
	require.NoError(t, f.db.Exec("UPDATE users SET first_name = ?, last_name = ? WHERE id = ?", "Ada", "Lovelace", 1).Error)
	league := testutil.SeedLeague(t, f.db, f.owner, "Hidden", 4, true)

	first, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)
	require.NoError(t, err)
	second, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)
	require.NoError(t, err)
	require.Equal(t, first.Token, second.Token)

	before, err := f.svc.ValidateAndPreview(ctx, first.Token)
	require.NoError(t, err)
	assert.Equal(t, "Hidden", before.Name)
	assert.Equal(t, "Ada Lovelace", before.OwnerName)
	assert.Equal(t, 1, before.MemberCount)
	assert.Equal(t, 4, before.Capacity)

	_, err = f.svc.Redeem(ctx, first.Token, 3)
	require.NoError(t, err)

	third, err := f.svc.GetOrCreateInvite(ctx, league.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, first.Token, third.Token)

	after, err := f.svc.ValidateAndPreview(ctx, first.Token)
	require.NoError(t, err)
	assert.Equal(t, before.MemberCount+1, after.MemberCount)
}
