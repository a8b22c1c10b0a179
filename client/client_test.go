package client

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mindwrite-api/cache"
	"mindwrite-api/config"
	"mindwrite-api/handlers"
	"mindwrite-api/helper"
	"mindwrite-api/models"
	"mindwrite-api/repositories"
	"mindwrite-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *Client
}

func (suite *ClientTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", suite.T().Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(config.Migrate(db))

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	noCache := cache.New(nil)
	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo, tagRepo, commentRepo, noCache)
	commentService := services.NewCommentService(commentRepo, postRepo)
	tagService := services.NewTagService(tagRepo, noCache)

	h := helper.NewHTTPHelper()
	router := handlers.NewRouter(
		handlers.NewAuthHandler(authService, h),
		handlers.NewAdminHandler(authService, h),
		handlers.NewPostHandler(postService, h),
		handlers.NewCommentHandler(commentService, h),
		handlers.NewTagHandler(tagService, h),
	)

	suite.server = httptest.NewServer(router)
	suite.T().Cleanup(suite.server.Close)

	suite.client = New(suite.server.URL)
}

func (suite *ClientTestSuite) signUp(username string, role models.UserRole) {
	_, err := suite.client.Register(models.RegisterRequest{
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Password:  "Aa1!aaaa",
		Role:      role,
	})
	suite.Require().NoError(err)
}

func (suite *ClientTestSuite) TestLoginPopulatesSession() {
	suite.signUp("alice", "")
	suite.Nil(suite.client.Session())

	session, err := suite.client.Login("alice", "Aa1!aaaa")
	suite.NoError(err)
	suite.Require().NotNil(session)
	suite.Equal("alice", session.Username)
	suite.Equal(models.RoleEditor, session.Role)
	suite.NotEmpty(session.Token)

	suite.client.Logout()
	suite.Nil(suite.client.Session())
}

func (suite *ClientTestSuite) TestLoginFailureSurfacesStatus() {
	suite.signUp("alice", "")

	_, err := suite.client.Login("alice", "wrong")
	var apiErr *APIError
	suite.Require().True(errors.As(err, &apiErr))
	suite.Equal(http.StatusUnauthorized, apiErr.Status)
	suite.Nil(suite.client.Session())
}

// Any 401 response drops the held session, mirroring the frontend's
// behavior of logging out on a rejected token.
func (suite *ClientTestSuite) TestSessionClearedOnUnauthorized() {
	suite.signUp("alice", "")
	_, err := suite.client.Login("alice", "Aa1!aaaa")
	suite.Require().NoError(err)

	suite.client.session.Token = "tampered"

	_, err = suite.client.Profile()
	var apiErr *APIError
	suite.Require().True(errors.As(err, &apiErr))
	suite.Equal(http.StatusUnauthorized, apiErr.Status)
	suite.Nil(suite.client.Session(), "session must be cleared after a 401")
}

func (suite *ClientTestSuite) TestCheckUsername() {
	suite.signUp("alice", "")

	available, err := suite.client.CheckUsername("alice")
	suite.NoError(err)
	suite.False(available)

	available, err = suite.client.CheckUsername("someone-new")
	suite.NoError(err)
	suite.True(available)
}

func (suite *ClientTestSuite) TestMyPostsIncludesOwnDrafts() {
	suite.signUp("alice", "")
	suite.signUp("bob", "")

	_, err := suite.client.Login("bob", "Aa1!aaaa")
	suite.Require().NoError(err)
	_, err = suite.client.CreatePost(models.CreatePostRequest{Title: "Bob's", Content: "body"})
	suite.Require().NoError(err)

	_, err = suite.client.Login("alice", "Aa1!aaaa")
	suite.Require().NoError(err)
	_, err = suite.client.CreatePost(models.CreatePostRequest{Title: "Public", Content: "body"})
	suite.Require().NoError(err)
	_, err = suite.client.CreatePost(models.CreatePostRequest{
		Title:   "Secret draft",
		Content: "wip",
		Status:  models.StatusDraft,
	})
	suite.Require().NoError(err)

	mine, err := suite.client.MyPosts()
	suite.NoError(err)
	suite.Require().Len(mine, 2, "own drafts included, other authors excluded")
	for _, p := range mine {
		suite.Equal("alice", p.Author.Username)
	}
}

func (suite *ClientTestSuite) TestAdminUserManagement() {
	suite.signUp("root", models.RoleAdmin)
	suite.signUp("alice", "")

	_, err := suite.client.Login("root", "Aa1!aaaa")
	suite.Require().NoError(err)

	users, err := suite.client.ListUsers()
	suite.NoError(err)
	suite.Require().Len(users, 2)

	var alice models.UserListItem
	for _, u := range users {
		if u.Username == "alice" {
			alice = u
		}
	}

	suite.NoError(suite.client.UpdateUserRole(alice.ID, models.RoleAdmin))
	suite.NoError(suite.client.DeactivateUser(alice.ID))

	_, err = suite.client.Login("alice", "Aa1!aaaa")
	var apiErr *APIError
	suite.Require().True(errors.As(err, &apiErr))
	suite.Equal(http.StatusUnauthorized, apiErr.Status)
}

func (suite *ClientTestSuite) TestCommentAndTagRoundTrip() {
	suite.signUp("alice", "")
	_, err := suite.client.Login("alice", "Aa1!aaaa")
	suite.Require().NoError(err)

	tag, err := suite.client.CreateTag("go")
	suite.Require().NoError(err)

	post, err := suite.client.CreatePost(models.CreatePostRequest{
		Title:   "Tagged",
		Content: "body",
		TagIDs:  []uint{tag.ID},
	})
	suite.Require().NoError(err)

	_, err = suite.client.CreateComment(models.CreateCommentRequest{
		PostID:     post.ID,
		Content:    "hi",
		AuthorName: "drive-by reader",
	})
	suite.Require().NoError(err)

	comments, err := suite.client.ListComments(post.ID)
	suite.NoError(err)
	suite.Len(comments, 1)

	counts, err := suite.client.ListTagsWithCount()
	suite.NoError(err)
	suite.Require().Len(counts, 1)
	suite.Equal(1, counts[0].PostCount)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
