package services

import (
	"testing"

	"mindwrite-api/models"
	"mindwrite-api/repositories"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceTestSuite struct {
	suite.Suite
	userRepo repositories.UserRepository
	service  AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	db := newTestDB(suite.T())
	suite.userRepo = repositories.NewUserRepository(db)
	suite.service = NewAuthService(suite.userRepo)
}

func (suite *AuthServiceTestSuite) register(username string, role models.UserRole) *models.User {
	user, err := suite.service.Register(models.RegisterRequest{
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Password:  "Aa1!aaaa",
		Role:      role,
	})
	suite.Require().NoError(err)
	return user
}

func (suite *AuthServiceTestSuite) TestRegisterAndLoginFlow() {
	user, err := suite.service.Register(models.RegisterRequest{
		Username:  "alice",
		FirstName: "A",
		LastName:  "Liu",
		Password:  "Aa1!aaaa",
	})
	suite.NoError(err)
	suite.Equal(models.RoleEditor, user.Role, "role defaults to editor")
	suite.True(user.IsActive)
	suite.NotEqual("Aa1!aaaa", user.Password, "password must be hashed")

	available, err := suite.service.IsUsernameAvailable("alice")
	suite.NoError(err)
	suite.False(available)

	resp, err := suite.service.Login(models.LoginRequest{Username: "alice", Password: "Aa1!aaaa"})
	suite.NoError(err)
	suite.NotEmpty(resp.AccessToken)
	suite.Equal("alice", resp.Username)
	suite.Equal(user.ID, resp.ID)

	_, err = suite.service.Login(models.LoginRequest{Username: "alice", Password: "wrong"})
	suite.ErrorIs(err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateUsername() {
	suite.register("alice", "")

	_, err := suite.service.Register(models.RegisterRequest{
		Username:  "alice",
		FirstName: "Other",
		LastName:  "Person",
		Password:  "different1",
	})
	suite.ErrorIs(err, ErrConflict)
}

func (suite *AuthServiceTestSuite) TestRegisterTrimsNames() {
	user, err := suite.service.Register(models.RegisterRequest{
		Username:  "bob",
		FirstName: "  Bob ",
		LastName:  " Jones  ",
		Password:  "secret123",
	})
	suite.NoError(err)
	suite.Equal("Bob", user.FirstName)
	suite.Equal("Jones", user.LastName)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownUser() {
	_, err := suite.service.Login(models.LoginRequest{Username: "nobody", Password: "whatever"})
	suite.ErrorIs(err, ErrInvalidCredentials)
}

// A correct password against a deactivated account must fail exactly like a
// wrong password would.
func (suite *AuthServiceTestSuite) TestLoginDeactivatedAccount() {
	admin := suite.register("admin", models.RoleAdmin)
	target := suite.register("carol", "")

	suite.NoError(suite.service.DeactivateUser(admin.ID, target.ID))

	_, err := suite.service.Login(models.LoginRequest{Username: "carol", Password: "Aa1!aaaa"})
	suite.ErrorIs(err, ErrInvalidCredentials)

	_, wrongErr := suite.service.Login(models.LoginRequest{Username: "carol", Password: "wrong"})
	suite.Equal(wrongErr, err, "deactivated account must be indistinguishable from wrong password")
}

func (suite *AuthServiceTestSuite) TestDeactivatedUsernameStaysTaken() {
	admin := suite.register("admin", models.RoleAdmin)
	target := suite.register("dave", "")

	suite.NoError(suite.service.DeactivateUser(admin.ID, target.ID))

	available, err := suite.service.IsUsernameAvailable("dave")
	suite.NoError(err)
	suite.False(available, "soft-deleted accounts still own their username")
}

func (suite *AuthServiceTestSuite) TestUpdateUserRole() {
	admin := suite.register("admin", models.RoleAdmin)
	target := suite.register("erin", "")

	updated, err := suite.service.UpdateUserRole(admin.ID, target.ID, models.RoleAdmin)
	suite.NoError(err)
	suite.Equal(models.RoleAdmin, updated.Role)

	_, err = suite.service.UpdateUserRole(admin.ID, admin.ID, models.RoleEditor)
	suite.ErrorIs(err, ErrSelfAction, "self role change is always forbidden")

	_, err = suite.service.UpdateUserRole(admin.ID, target.ID, "superuser")
	suite.ErrorIs(err, ErrInvalidRole)

	_, err = suite.service.UpdateUserRole(admin.ID, 9999, models.RoleEditor)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestDeactivateUser() {
	admin := suite.register("admin", models.RoleAdmin)
	target := suite.register("frank", "")

	suite.ErrorIs(suite.service.DeactivateUser(admin.ID, admin.ID), ErrSelfAction)
	suite.ErrorIs(suite.service.DeactivateUser(admin.ID, 9999), ErrNotFound)
	suite.NoError(suite.service.DeactivateUser(admin.ID, target.ID))
}

func (suite *AuthServiceTestSuite) TestUpdateOwnProfile() {
	user := suite.register("grace", "")

	first := "Grace"
	updated, err := suite.service.UpdateOwnProfile(user.ID, models.UpdateProfileRequest{
		FirstName: &first,
	})
	suite.NoError(err)
	suite.Equal("Grace", updated.FirstName)
	suite.Equal("User", updated.LastName, "absent fields stay untouched")

	newPassword := "newsecret1"
	updated, err = suite.service.UpdateOwnProfile(user.ID, models.UpdateProfileRequest{
		Password: &newPassword,
	})
	suite.NoError(err)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte(newPassword)))

	empty := ""
	before := updated.Password
	updated, err = suite.service.UpdateOwnProfile(user.ID, models.UpdateProfileRequest{
		Password: &empty,
	})
	suite.NoError(err)
	suite.Equal(before, updated.Password, "empty password must not be rehashed")

	_, err = suite.service.UpdateOwnProfile(9999, models.UpdateProfileRequest{FirstName: &first})
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestGetPublicProfile() {
	user := suite.register("henry", "")

	profile, err := suite.service.GetPublicProfile("henry")
	suite.NoError(err)
	suite.Equal(user.ID, profile.ID)
	suite.Equal("Test", profile.FirstName)
	suite.Equal(models.RoleEditor, profile.Role)

	_, err = suite.service.GetPublicProfile("nobody")
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestGetAllUsersOrderedByID() {
	suite.register("zed", "")
	suite.register("amy", "")

	users, err := suite.service.GetAllUsers()
	suite.NoError(err)
	suite.Require().Len(users, 2)
	suite.Equal("zed", users[0].Username, "ordering is by id, not name")
	suite.Less(users[0].ID, users[1].ID)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
