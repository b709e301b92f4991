package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/internal/domain/entity"
)

// startContract drives a project through bid and accept so the tests
// below start from in_progress with an active contract.
func startContract(t *testing.T, env *testEnv, clientID, freelancerID string, amount float64) *entity.Project {
	t.Helper()
	project := seedOpenProject(t, env, clientID)
	bid := placeBid(t, env, project.ID, freelancerID, amount)
	_, err := env.bidUC.AcceptBid(context.Background(), project.ID, bid.ID, clientID)
	require.NoError(t, err)
	updated, err := env.projects.GetByID(context.Background(), project.ID)
	require.NoError(t, err)
	return updated
}

func TestCreateProjectBudgetValidation(t *testing.T) {
	env := newTestEnv()
	env.seedClient("client1")

	_, err := env.projectUC.CreateProject(context.Background(), "client1", CreateProjectInput{
		Title:       "Bad budget",
		Description: "min above max",
		Category:    "backend",
		BudgetMin:   2000,
		BudgetMax:   500,
	})
	assert.Error(t, err)
}

func TestCreateProjectIncrementsProjectsPosted(t *testing.T) {
	env := newTestEnv()
	seedOpenProject(t, env, "client1")
	seedOpenProject(t, env, "client1")

	profile, err := env.clients.GetByUserID(context.Background(), "client1")
	require.NoError(t, err)
	assert.Equal(t, 2, profile.ProjectsPosted)
}

func TestUpdateProjectOpenOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	project := startContract(t, env, "client1", "free1", 900)

	_, err := env.projectUC.UpdateProject(ctx, project.ID, "client1", CreateProjectInput{
		Title:       "New title",
		Description: "changed",
		Category:    "backend",
		BudgetMin:   500,
		BudgetMax:   1500,
	})
	assert.Error(t, err)
}

func TestCancelProjectOnlyWhileOpen(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	project := seedOpenProject(t, env, "client1")
	placeBid(t, env, project.ID, "free1", 800)

	cancelled, err := env.projectUC.CancelProject(ctx, project.ID, "client1")
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	// Pending bidders hear about the cancellation.
	assert.NotEmpty(t, env.notifications.forUser("free1"))

	_, err = env.projectUC.CancelProject(ctx, project.ID, "client1")
	assert.Error(t, err)
}

func TestCancelProjectInProgressRejected(t *testing.T) {
	env := newTestEnv()
	project := startContract(t, env, "client1", "free1", 900)

	_, err := env.projectUC.CancelProject(context.Background(), project.ID, "client1")
	assert.Error(t, err)
}

func TestMilestoneFlow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	project := startContract(t, env, "client1", "free1", 900)

	withMilestone, err := env.projectUC.AddMilestone(ctx, project.ID, "client1", MilestoneInput{
		Title:  "First draft",
		Amount: 400,
	})
	require.NoError(t, err)
	require.Len(t, withMilestone.Milestones, 1)
	milestoneID := withMilestone.Milestones[0].ID
	assert.Equal(t, entity.MilestoneStatusPending, withMilestone.Milestones[0].Status)

	// Completion is blocked while a milestone is unapproved.
	_, err = env.projectUC.MarkComplete(ctx, project.ID, "client1")
	assert.Error(t, err)

	// Only the assigned freelancer can submit.
	env.seedFreelancer("free2")
	_, err = env.projectUC.SubmitMilestone(ctx, project.ID, milestoneID, "free2")
	assert.Error(t, err)

	submitted, err := env.projectUC.SubmitMilestone(ctx, project.ID, milestoneID, "free1")
	require.NoError(t, err)
	assert.Equal(t, entity.MilestoneStatusSubmitted, submitted.Milestones[0].Status)

	// A submitted milestone cannot be submitted again.
	_, err = env.projectUC.SubmitMilestone(ctx, project.ID, milestoneID, "free1")
	assert.Error(t, err)

	approved, err := env.projectUC.ApproveMilestone(ctx, project.ID, milestoneID, "client1")
	require.NoError(t, err)
	assert.Equal(t, entity.MilestoneStatusApproved, approved.Milestones[0].Status)

	completed, err := env.projectUC.MarkComplete(ctx, project.ID, "client1")
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusCompleted, completed.Status)
}

func TestSubmitWorkAssignedOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	project := startContract(t, env, "client1", "free1", 900)
	env.seedFreelancer("free2")

	_, err := env.projectUC.SubmitWork(ctx, project.ID, "free2", SubmitWorkInput{Message: "done"})
	assert.Error(t, err)

	completed, err := env.projectUC.SubmitWork(ctx, project.ID, "free1", SubmitWorkInput{
		Message:     "All done",
		Attachments: []string{"uploads/final.zip"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusCompleted, completed.Status)
	require.Len(t, completed.Submissions, 1)
	assert.Equal(t, "free1", completed.Submissions[0].FreelancerID)
}

func TestCompletionSettlesAggregates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	project := startContract(t, env, "client1", "free1", 900)

	_, err := env.projectUC.SubmitWork(ctx, project.ID, "free1", SubmitWorkInput{Message: "done"})
	require.NoError(t, err)

	contract, err := env.contracts.GetByProjectID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", contract.Status)
	require.NotNil(t, contract.CompletedAt)

	freelancer, err := env.freelancers.GetByUserID(ctx, "free1")
	require.NoError(t, err)
	assert.Equal(t, 1, freelancer.CompletedProjects)
	assert.Equal(t, 900.0, freelancer.TotalEarned)

	client, err := env.clients.GetByUserID(ctx, "client1")
	require.NoError(t, err)
	assert.Equal(t, 900.0, client.TotalSpent)
}

func TestListProjectsDefaultsToOpen(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	seedOpenProject(t, env, "client1")
	cancelled := seedOpenProject(t, env, "client1")
	_, err := env.projectUC.CancelProject(ctx, cancelled.ID, "client1")
	require.NoError(t, err)

	projects, total, err := env.projectUC.ListProjects(ctx, "", "", "", 0, 0, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, projects, 1)
	assert.Equal(t, entity.ProjectStatusOpen, projects[0].Status)
}
