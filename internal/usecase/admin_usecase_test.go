package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveProjectNotifiesBidders(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	project := seedOpenProject(t, env, "client1")
	placeBid(t, env, project.ID, "free1", 800)
	withdrawn := placeBid(t, env, project.ID, "free2", 900)
	_, err := env.bidUC.WithdrawBid(ctx, withdrawn.ID, "free2")
	require.NoError(t, err)

	require.NoError(t, env.adminUC.RemoveProject(ctx, project.ID, "spam posting"))

	_, err = env.projects.GetByID(ctx, project.ID)
	assert.Error(t, err)

	// Client and the still-pending bidder are told; the withdrawn one is not.
	assert.NotEmpty(t, env.notifications.forUser("client1"))
	assert.NotEmpty(t, env.notifications.forUser("free1"))
	for _, n := range env.notifications.forUser("free2") {
		assert.NotEqual(t, "project_removed", n.Type)
	}
}

func TestRemoveProjectMissing(t *testing.T) {
	env := newTestEnv()
	assert.Error(t, env.adminUC.RemoveProject(context.Background(), "no-such-project", ""))
}

func TestGetBidAverages(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	first := seedOpenProject(t, env, "client1")
	seedOpenProject(t, env, "client1")
	placeBid(t, env, first.ID, "free1", 800)
	placeBid(t, env, first.ID, "free2", 900)
	placeBid(t, env, first.ID, "free3", 1000)

	averages, err := env.adminUC.GetBidAverages(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), averages.TotalProjects)
	assert.Equal(t, int64(3), averages.TotalBids)
	assert.Equal(t, 1.5, averages.AvgBidsPerProject)
}

func TestGetBidAveragesEmptyPlatform(t *testing.T) {
	env := newTestEnv()

	averages, err := env.adminUC.GetBidAverages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), averages.TotalProjects)
	assert.Equal(t, 0.0, averages.AvgBidsPerProject)
}

func TestTopSkills(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedClient("client1")

	for _, skills := range [][]string{
		{"Go", "react"},
		{"go", "postgres"},
		{"go"},
		{"react"},
	} {
		_, err := env.projectUC.CreateProject(ctx, "client1", CreateProjectInput{
			Title:       "Project",
			Description: "desc",
			Category:    "backend",
			Skills:      skills,
			BudgetMin:   100,
			BudgetMax:   200,
		})
		require.NoError(t, err)
	}

	ranking, err := env.adminUC.TopSkills(ctx, 2)
	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, SkillCount{Skill: "go", Count: 3}, ranking[0])
	assert.Equal(t, SkillCount{Skill: "react", Count: 2}, ranking[1])
}
