package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeContract drives a project all the way to completed so reviews
// can be written against it.
func completeContract(t *testing.T, env *testEnv, clientID, freelancerID string, amount float64) string {
	t.Helper()
	project := startContract(t, env, clientID, freelancerID, amount)
	_, err := env.projectUC.SubmitWork(context.Background(), project.ID, freelancerID, SubmitWorkInput{Message: "done"})
	require.NoError(t, err)
	return project.ID
}

func TestCreateReviewRequiresCompletedProject(t *testing.T) {
	env := newTestEnv()
	project := startContract(t, env, "client1", "free1", 900)

	_, err := env.reviewUC.CreateReview(context.Background(), "client1", CreateReviewInput{
		ProjectID: project.ID,
		Rating:    5,
	})
	assert.Error(t, err)
}

func TestCreateReviewUpdatesRunningAverage(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	projectID := completeContract(t, env, "client1", "free1", 900)

	review, err := env.reviewUC.CreateReview(ctx, "client1", CreateReviewInput{
		ProjectID: projectID,
		Rating:    5,
		Comment:   "Great work",
	})
	require.NoError(t, err)
	assert.Equal(t, "client_review", review.Direction)
	assert.Equal(t, "free1", review.TargetID)

	freelancer, err := env.users.GetByID(ctx, "free1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, freelancer.Rating)
	assert.Equal(t, 1, freelancer.ReviewCount)

	// A second completed contract, a second review, average moves.
	secondProject := completeContract(t, env, "client1", "free1", 600)
	_, err = env.reviewUC.CreateReview(ctx, "client1", CreateReviewInput{
		ProjectID: secondProject,
		Rating:    3,
	})
	require.NoError(t, err)

	freelancer, err = env.users.GetByID(ctx, "free1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, freelancer.Rating)
	assert.Equal(t, 2, freelancer.ReviewCount)
}

func TestCreateReviewOncePerContract(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	projectID := completeContract(t, env, "client1", "free1", 900)

	_, err := env.reviewUC.CreateReview(ctx, "client1", CreateReviewInput{ProjectID: projectID, Rating: 5})
	require.NoError(t, err)

	_, err = env.reviewUC.CreateReview(ctx, "client1", CreateReviewInput{ProjectID: projectID, Rating: 4})
	assert.Error(t, err)
}

func TestFreelancerReviewsClient(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	projectID := completeContract(t, env, "client1", "free1", 900)

	review, err := env.reviewUC.CreateReview(ctx, "free1", CreateReviewInput{
		ProjectID: projectID,
		Rating:    4,
		Comment:   "Clear requirements",
	})
	require.NoError(t, err)
	assert.Equal(t, "freelancer_review", review.Direction)
	assert.Equal(t, "client1", review.TargetID)

	client, err := env.users.GetByID(ctx, "client1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, client.Rating)
}

func TestCreateReviewOutsiderRejected(t *testing.T) {
	env := newTestEnv()
	projectID := completeContract(t, env, "client1", "free1", 900)
	env.seedClient("client2")

	_, err := env.reviewUC.CreateReview(context.Background(), "client2", CreateReviewInput{
		ProjectID: projectID,
		Rating:    1,
	})
	assert.Error(t, err)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	env := newTestEnv()
	projectID := completeContract(t, env, "client1", "free1", 900)

	for _, rating := range []int{0, 6, -1} {
		_, err := env.reviewUC.CreateReview(context.Background(), "client1", CreateReviewInput{
			ProjectID: projectID,
			Rating:    rating,
		})
		assert.Error(t, err)
	}
}

func TestHideReviewRecomputesAverage(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	first := completeContract(t, env, "client1", "free1", 900)
	second := completeContract(t, env, "client1", "free1", 600)

	_, err := env.reviewUC.CreateReview(ctx, "client1", CreateReviewInput{ProjectID: first, Rating: 5})
	require.NoError(t, err)
	low, err := env.reviewUC.CreateReview(ctx, "client1", CreateReviewInput{ProjectID: second, Rating: 3})
	require.NoError(t, err)

	hidden, err := env.reviewUC.HideReview(ctx, low.ID)
	require.NoError(t, err)
	assert.Equal(t, "hidden", hidden.Status)

	freelancer, err := env.users.GetByID(ctx, "free1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, freelancer.Rating)
	assert.Equal(t, 1, freelancer.ReviewCount)

	// Hiding twice is idempotent.
	again, err := env.reviewUC.HideReview(ctx, low.ID)
	require.NoError(t, err)
	assert.Equal(t, "hidden", again.Status)
	freelancer, err = env.users.GetByID(ctx, "free1")
	require.NoError(t, err)
	assert.Equal(t, 1, freelancer.ReviewCount)
}
