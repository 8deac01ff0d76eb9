package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kideo/kideo/internal/api"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/internal/rewards"
	"github.com/kideo/kideo/internal/service"
	"github.com/kideo/kideo/internal/service/mocks"
	"github.com/kideo/kideo/pkg/entity"
	jwtservice "github.com/kideo/kideo/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	username        = "test_parent"
	password        = "test_password"
	passwordHash, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID          = uuid.New()
)

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:       username,
		Password:   password,
		FamilyName: "the testers",
	})
	require.NoError(t, err)
	t.Run("registered", func(t *testing.T) {
		uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&entity.User{
			ID:           userID,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		serv.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("existed user", func(t *testing.T) {
		uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		serv.Register(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		serv.Register(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtservice.New("secret"),
	})
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Name:     username,
		Password: password,
	})
	require.NoError(t, err)
	t.Run("logged in", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), username, password).Return(&entity.User{
			ID:           userID,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		require.NoError(t, err)
		token, ok := result["token"].(string)
		if !ok || token == "" {
			t.Error("invalid token")
		}
	})
	t.Run("wrong password", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		serv.Login(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
	t.Run("unexist user", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		serv.Login(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": "` + uid.String() + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	jwtService := jwtservice.New("secret")
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtService,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	token, err := jwtService.GenerateToken(&entity.User{
		ID:   userID,
		Name: username,
	})
	require.NoError(t, err)
	t.Run("successful auth", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), userID).Return(&entity.User{
			ID:   userID,
			Name: username,
		}, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("missing token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("deleted user", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestCreateKid(t *testing.T) {
	ctrl := gomock.NewController(t)
	kService := mocks.NewMockKidsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		KidsService: kService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.CreateKidRequest{
		Name: "alice",
	})
	require.NoError(t, err)
	kidID := uuid.New()

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				kService.EXPECT().CreateKid(gomock.Any(), userID, &service.CreateKidRequest{
					Name: "alice",
				}).Return(&entity.Kid{
					ID:   kidID,
					Name: "alice",
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				kService.EXPECT().CreateKid(gomock.Any(), userID, &service.CreateKidRequest{
					Name: "alice",
				}).Return(nil, errorvalues.ErrKidNameTaken)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				kService.EXPECT().CreateKid(gomock.Any(), userID, &service.CreateKidRequest{
					Name: "alice",
				}).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/kids", tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.CreateKid(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestLogCompletionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCompletionsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CompletionsService: cService,
	})
	taskID := uuid.New()
	kidID := uuid.New()
	completionID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.LogCompletionRequest{
		TaskID: taskID,
		KidID:  kidID,
	})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				cService.EXPECT().LogCompletion(gomock.Any(), &service.LogCompletionRequest{
					TaskID: taskID,
					KidID:  kidID,
				}).Return(&entity.Completion{
					ID:     completionID,
					TaskID: taskID,
					KidID:  kidID,
					Status: entity.CompletionStatusPending,
				}, nil, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				cService.EXPECT().LogCompletion(gomock.Any(), gomock.Any()).
					Return(nil, nil, errorvalues.ErrCompletedToday)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				cService.EXPECT().LogCompletion(gomock.Any(), gomock.Any()).
					Return(nil, nil, errorvalues.ErrTaskInactive)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				cService.EXPECT().LogCompletion(gomock.Any(), gomock.Any()).
					Return(nil, nil, errorvalues.ErrTaskNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/completions", tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.LogCompletion(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestApproveCompletionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCompletionsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CompletionsService: cService,
	})
	completionID := uuid.New()

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				cService.EXPECT().Approve(gomock.Any(), userID, completionID).Return(&service.ApprovalResult{
					Completion: &entity.Completion{
						ID:     completionID,
						Status: entity.CompletionStatusApproved,
					},
					PointsAwarded: 12,
					Multiplier:    1.2,
					Streak:        &rewards.StreakUpdate{WasIncremented: true},
					NewBadges:     []*entity.BadgeDefinition{},
				}, nil)
			},
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				cService.EXPECT().Approve(gomock.Any(), userID, completionID).
					Return(nil, errorvalues.ErrCompletionProcessed)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				cService.EXPECT().Approve(gomock.Any(), userID, completionID).
					Return(nil, errorvalues.ErrWrongFamily)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				cService.EXPECT().Approve(gomock.Any(), userID, completionID).
					Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/completions/"+completionID.String()+"/approve", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", completionID.String())
		serv.ApproveCompletion(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestRequestRedemptionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockRewardsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		RewardsService: rService,
	})
	rewardID := uuid.New()
	kidID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.RedemptionRequest{
		RewardID: rewardID,
		KidID:    kidID,
	})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				rService.EXPECT().RequestRedemption(gomock.Any(), &service.RedemptionRequest{
					RewardID: rewardID,
					KidID:    kidID,
				}).Return(&entity.Redemption{
					ID:     uuid.New(),
					Status: entity.RedemptionStatusPending,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				rService.EXPECT().RequestRedemption(gomock.Any(), gomock.Any()).
					Return(nil, errorvalues.ErrInsufficientBalance)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				rService.EXPECT().RequestRedemption(gomock.Any(), gomock.Any()).
					Return(nil, errorvalues.ErrRewardNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/redemptions", tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.RequestRedemption(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetKidProgressHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockBadgesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		BadgesService: bService,
	})
	kidID := uuid.New()

	t.Run("progress provided", func(t *testing.T) {
		bService.EXPECT().Progress(gomock.Any(), userID, kidID).Return(&service.KidProgress{
			Stats: rewards.KidStats{
				TotalTasksCompleted: 9,
				CurrentStreak:       2,
				TotalPointsEarned:   80,
			},
			Nearby: []rewards.BadgeProgress{},
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/kids/"+kidID.String()+"/progress", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", kidID.String())
		serv.GetKidProgress(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp service.KidProgress
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Equal(t, 9, resp.Stats.TotalTasksCompleted)
	})
	t.Run("kid from another family", func(t *testing.T) {
		bService.EXPECT().Progress(gomock.Any(), userID, kidID).
			Return(nil, errorvalues.ErrWrongFamily)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/kids/"+kidID.String()+"/progress", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", kidID.String())
		serv.GetKidProgress(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/kids/abc/progress", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", "abc")
		serv.GetKidProgress(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}
