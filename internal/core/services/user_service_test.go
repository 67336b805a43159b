package services_test

import (
	"context"
	"testing"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/gapy-app/gapy_backend/internal/core/services"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/gapy-app/gapy_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
}

func testUser(username, password string) *domain.User {
	hash, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return &domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Name:         "Asha Rao",
		Email:        username + "@example.com",
	}
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "asha",
		Password: "s3cret-pass",
		Name:     "Asha Rao",
		Email:    "asha@example.com",
	}
	svc := services.NewUserService(suite.mockRepo)

	suite.mockRepo.On("FindUserByUsername", ctx, req.Username).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == req.Username &&
			utils.CheckPasswordHash(req.Password, user.PasswordHash)
	})).Return(nil).Once()

	user, err := svc.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.NotEqual(req.Password, user.PasswordHash, "passwords are never stored in the clear")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	existing := testUser("asha", "whatever")
	svc := services.NewUserService(suite.mockRepo)

	suite.mockRepo.On("FindUserByUsername", ctx, "asha").Return(existing, nil).Once()

	_, err := svc.RegisterUser(ctx, dto.RegisterUserRequest{
		Username: "asha",
		Password: "s3cret-pass",
		Name:     "Someone Else",
		Email:    "other@example.com",
	})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	user := testUser("asha", "s3cret-pass")
	svc := services.NewUserService(suite.mockRepo)

	suite.mockRepo.On("FindUserByUsername", ctx, "asha").Return(user, nil).Once()

	got, err := svc.AuthenticateUser(ctx, "asha", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	user := testUser("asha", "s3cret-pass")
	svc := services.NewUserService(suite.mockRepo)

	suite.mockRepo.On("FindUserByUsername", ctx, "asha").Return(user, nil).Once()

	_, err := svc.AuthenticateUser(ctx, "asha", "wrong-pass")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()
	svc := services.NewUserService(suite.mockRepo)

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.AuthenticateUser(ctx, "ghost", "s3cret-pass")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized, "unknown users look identical to bad passwords")
}

func (suite *UserServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	user := testUser("asha", "old-password1")
	svc := services.NewUserService(suite.mockRepo)

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(updated domain.User) bool {
		return utils.CheckPasswordHash("new-password1", updated.PasswordHash)
	})).Return(nil).Once()
	suite.mockRepo.On("ClearRefreshToken", ctx, user.UserID).Return(nil).Once()

	err := svc.ChangePassword(ctx, user.UserID, "old-password1", "new-password1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangePassword_WrongCurrent() {
	ctx := context.Background()
	user := testUser("asha", "old-password1")
	svc := services.NewUserService(suite.mockRepo)

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	err := svc.ChangePassword(ctx, user.UserID, "not-the-password", "new-password1")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser")
	suite.mockRepo.AssertNotCalled(suite.T(), "ClearRefreshToken")
}

func (suite *UserServiceTestSuite) TestUpsertUserFromGoogle_ExistingEmail() {
	ctx := context.Background()
	user := testUser("asha", "s3cret-pass")
	svc := services.NewUserService(suite.mockRepo)

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := svc.UpsertUserFromGoogle(ctx, &domain.GoogleUserInfo{Email: user.Email, Name: "Asha Rao"})

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestUpsertUserFromGoogle_ProvisionsNewUser() {
	ctx := context.Background()
	svc := services.NewUserService(suite.mockRepo)

	suite.mockRepo.On("FindUserByEmail", ctx, "new.person@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByUsername", ctx, "newperson").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "newperson" &&
			user.Email == "new.person@example.com" &&
			user.PasswordHash != ""
	})).Return(nil).Once()

	user, err := svc.UpsertUserFromGoogle(ctx, &domain.GoogleUserInfo{
		Email: "new.person@example.com",
		Name:  "New Person",
	})

	suite.Require().NoError(err)
	suite.Equal("newperson", user.Username)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
