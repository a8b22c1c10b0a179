package services

import (
	"testing"
	"time"

	"mindwrite-api/cache"
	"mindwrite-api/models"
	"mindwrite-api/repositories"

	"github.com/stretchr/testify/suite"
)

type CommentServiceTestSuite struct {
	suite.Suite
	service CommentService
	post    *models.Post
}

func (suite *CommentServiceTestSuite) SetupTest() {
	db := newTestDB(suite.T())

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	suite.service = NewCommentService(commentRepo, postRepo)

	author, err := NewAuthService(userRepo).Register(models.RegisterRequest{
		Username:  "author",
		FirstName: "Post",
		LastName:  "Author",
		Password:  "secret123",
	})
	suite.Require().NoError(err)

	posts := NewPostService(postRepo, tagRepo, commentRepo, cache.New(nil))
	suite.post, err = posts.CreatePost(models.CreatePostRequest{
		Title:   "Discussed",
		Content: "body",
	}, author.ID)
	suite.Require().NoError(err)
}

func (suite *CommentServiceTestSuite) TestCreateComment() {
	comment, err := suite.service.CreateComment(models.CreateCommentRequest{
		PostID:     suite.post.ID,
		Content:    "nice post",
		AuthorName: "visitor",
	})
	suite.NoError(err)
	suite.Equal(suite.post.ID, comment.PostID)
	suite.False(comment.CreatedAt.IsZero(), "creation is server-timestamped")
}

func (suite *CommentServiceTestSuite) TestCreateCommentOnMissingPost() {
	_, err := suite.service.CreateComment(models.CreateCommentRequest{
		PostID:     9999,
		Content:    "into the void",
		AuthorName: "visitor",
	})
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *CommentServiceTestSuite) TestCommentsNewestFirst() {
	for _, text := range []string{"older", "newer"} {
		_, err := suite.service.CreateComment(models.CreateCommentRequest{
			PostID:     suite.post.ID,
			Content:    text,
			AuthorName: "visitor",
		})
		suite.Require().NoError(err)
		time.Sleep(5 * time.Millisecond)
	}

	comments, err := suite.service.GetCommentsByPost(suite.post.ID)
	suite.NoError(err)
	suite.Require().Len(comments, 2)
	suite.Equal("newer", comments[0].Content)
	suite.Equal("older", comments[1].Content)
}

func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
